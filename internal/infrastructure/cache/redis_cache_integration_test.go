//go:build integration

package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/pos-crm-api/internal/infrastructure/cache"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379")
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	rc := cache.NewRedisCache(startRedis(t), "", 0, time.Minute)
	t.Cleanup(func() { _ = rc.Close() })
	require.NoError(t, rc.Ping(ctx))

	type country struct {
		Name string `json:"name"`
	}
	var got []country
	ok, err := rc.Get(ctx, "countries", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, rc.Set(ctx, "countries", []country{{Name: "Spain"}}))
	ok, err = rc.Get(ctx, "countries", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []country{{Name: "Spain"}}, got)

	require.NoError(t, rc.Delete(ctx, "countries", "pos_companies"))
	ok, err = rc.Get(ctx, "countries", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}
