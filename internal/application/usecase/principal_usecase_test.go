package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
)

func seedPrincipal(t *testing.T, e *testEnv, id, username string) {
	t.Helper()
	require.NoError(t, e.repos.Principals.Create(context.Background(), &entity.Principal{
		ID: id, Username: username, Name: username, Title: entity.DefaultPrincipalTitle,
		IsActive: true, CreatedAt: time.Now(),
	}))
}

func TestPrincipal_ToggleYSetDeFlags(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seedPrincipal(t, e, "p1", "maria")
	uc := usecase.NewPrincipalUseCase(e.repos.Principals, e.storage, e.log, e.metrics)

	res, err := uc.Toggle(ctx, actor, "p1", repository.FlagStaff)
	require.NoError(t, err)
	assert.True(t, res.Value)
	assert.Equal(t, "is_staff", res.Flag)

	res, err = uc.Toggle(ctx, actor, "p1", repository.FlagActive)
	require.NoError(t, err)
	assert.False(t, res.Value)

	for i := 0; i < 2; i++ {
		res, err = uc.Set(ctx, actor, "p1", repository.FlagActive, true)
		require.NoError(t, err)
		assert.True(t, res.Value)
	}

	_, err = uc.Toggle(ctx, actor, "no-existe", repository.FlagStaff)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrincipal_BorrarConservaLoQueCreo(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seedPrincipal(t, e, "creador", "creador")
	seedPrincipal(t, e, "admin", "admin")

	goal, err := newGoalUseCase(e).Create(ctx, "creador", dto.GoalRequest{TradingName: "Bar Sol"})
	require.NoError(t, err)
	country, err := e.countries().Create(ctx, "creador", dto.CountryRequest{Name: "Portugal"})
	require.NoError(t, err)

	uc := usecase.NewPrincipalUseCase(e.repos.Principals, e.storage, e.log, e.metrics)
	require.NoError(t, uc.Delete(ctx, "admin", "creador"))

	g, err := newGoalUseCase(e).Get(ctx, goal.ID)
	require.NoError(t, err)
	assert.Nil(t, g.CreatedBy)
	c, err := e.repos.Countries.GetByID(ctx, country.ID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Nil(t, c.CreatedBy)

	assert.ErrorIs(t, uc.Delete(ctx, "admin", "admin"), domain.ErrConflict)
}

func TestPrincipal_ListaYPerfil(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seedPrincipal(t, e, "p2", "zoe")
	seedPrincipal(t, e, "p1", "ana")
	uc := usecase.NewPrincipalUseCase(e.repos.Principals, e.storage, e.log, e.metrics)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ana", list[0].Name)

	p, err := uc.Profile(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "zoe", p.Username)

	_, err = uc.Profile(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
