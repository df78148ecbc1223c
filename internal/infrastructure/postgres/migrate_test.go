package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/pos-crm-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbebidasYOrdenadas(t *testing.T) {
	ms, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	assert.Equal(t, "0001", ms[0].Version)
	assert.Equal(t, "init", ms[0].Name)
	assert.Contains(t, ms[0].SQL, "CREATE TABLE poses")
	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].Version, ms[i].Version)
	}
}

func TestMapWriteErr_TraduceCodigos(t *testing.T) {
	assert.NoError(t, mapWriteErr(nil))
	assert.ErrorIs(t, mapWriteErr(&pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)
	assert.ErrorIs(t, mapWriteErr(&pgconn.PgError{Code: "23503"}), domain.ErrNotFound)

	other := errors.New("timeout")
	assert.Equal(t, other, mapWriteErr(other))
}
