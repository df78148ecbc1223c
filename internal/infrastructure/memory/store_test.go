package memory_test

import (
	"context"
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Run: aislamiento de la transacción
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_Run_RollbackNoBorraEscriturasConcurrentes(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	repos := st.Repositories()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- st.Run(ctx, func(tx repository.Repositories) error {
			if err := tx.Countries.Create(ctx, &entity.Country{ID: "tx", Name: "Dentro"}); err != nil {
				return err
			}
			close(started)
			<-release
			return errors.New("falla dentro de la transacción")
		})
	}()
	<-started

	created := make(chan error, 1)
	go func() {
		created <- repos.Countries.Create(ctx, &entity.Country{ID: "de", Name: "Germany", Abbreviation: "GER", IsCovered: true})
	}()
	close(release)

	require.Error(t, <-done)
	require.NoError(t, <-created)

	de, err := repos.Countries.GetByID(ctx, "de")
	require.NoError(t, err)
	assert.NotNil(t, de, "la escritura fuera de la transacción sobrevive al rollback")

	inTx, err := repos.Countries.GetByID(ctx, "tx")
	require.NoError(t, err)
	assert.Nil(t, inTx, "lo escrito dentro de la transacción fallida se descarta")
}

func TestStore_Run_CommitPublicaCambios(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	err := st.Run(ctx, func(tx repository.Repositories) error {
		return tx.Countries.Create(ctx, &entity.Country{ID: "fr", Name: "France", Abbreviation: "FRA"})
	})
	require.NoError(t, err)

	fr, err := st.Repositories().Countries.GetByID(ctx, "fr")
	require.NoError(t, err)
	require.NotNil(t, fr)
	assert.Equal(t, "France", fr.Name)
}

func TestStore_Run_ContextoCanceladoNoEjecuta(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := memory.NewStore().Run(ctx, func(repository.Repositories) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras por id: la clave es el id de la entidad guardada
// ──────────────────────────────────────────────────────────────────────────────

// volatileID devuelve un string que comparte memoria con buf, como los
// parámetros de ruta de fasthttp cuando el buffer se reutiliza.
func volatileID(buf []byte) string {
	return unsafe.String(&buf[0], len(buf))
}

func TestStore_EscriturasPorIDNoDependenDelStringDelLlamador(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Principals.Create(ctx, &entity.Principal{ID: "p-1", Username: "ines", IsActive: true}))
	require.NoError(t, repos.Countries.Create(ctx, &entity.Country{ID: "c-1", Name: "Germany", Abbreviation: "GER"}))

	buf := []byte("p-1")
	v, err := repos.Principals.ToggleFlag(ctx, volatileID(buf), repository.FlagActive)
	require.NoError(t, err)
	assert.False(t, v)
	copy(buf, "zzz")

	p, err := repos.Principals.GetByID(ctx, "p-1")
	require.NoError(t, err)
	require.NotNil(t, p, "el principal sigue bajo su propio id")
	assert.False(t, p.IsActive)
	require.NoError(t, repos.Principals.Delete(ctx, "p-1"))

	buf = []byte("c-1")
	_, err = repos.Countries.ToggleCoverage(ctx, volatileID(buf))
	require.NoError(t, err)
	copy(buf, "zzz")

	c, err := repos.Countries.GetByID(ctx, "c-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.True(t, c.IsCovered)
}
