//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-crm-api/pkg/config"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("poscrm"),
		tcpostgres.WithUsername("poscrm"),
		tcpostgres.WithPassword("poscrm"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = postgres.Migrate(ctx, pool, logger.Nop())
	require.NoError(t, err)
	return pool
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ─── Migraciones ──────────────────────────────────────────────────────────────

func TestMigrate_Idempotente(t *testing.T) {
	pool := setupDB(t)
	n, err := postgres.Migrate(context.Background(), pool, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// ─── Principal y Country ──────────────────────────────────────────────────────

func TestPrincipal_DuplicadoYFlags(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repos := postgres.NewRepositories(pool)

	p := &entity.Principal{
		ID: uuid.NewString(), Username: "admin", Title: entity.DefaultPrincipalTitle,
		PasswordHash: "hash", IsActive: true, IsStaff: true, CreatedAt: time.Now(),
	}
	require.NoError(t, repos.Principals.Create(ctx, p))

	dup := *p
	dup.ID = uuid.NewString()
	assert.ErrorIs(t, repos.Principals.Create(ctx, &dup), domain.ErrDuplicate)

	v, err := repos.Principals.ToggleFlag(ctx, p.ID, repository.FlagStaff)
	require.NoError(t, err)
	assert.False(t, v)

	v, err = repos.Principals.SetFlag(ctx, p.ID, repository.FlagActive, false)
	require.NoError(t, err)
	assert.False(t, v)

	_, err = repos.Principals.ToggleFlag(ctx, uuid.NewString(), repository.FlagStaff)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repos.Principals.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsStaff)
	assert.False(t, got.IsActive)

	missing, err := repos.Principals.GetByUsername(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCountry_BorrarDejaNacionalidadEnNull(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repos := postgres.NewRepositories(pool)

	c := &entity.Country{ID: uuid.NewString(), Name: "Spain", Abbreviation: "SPA", CreatedAt: time.Now()}
	require.NoError(t, repos.Countries.Create(ctx, c))

	p := &entity.Principal{
		ID: uuid.NewString(), Username: "maria", PasswordHash: "hash",
		NationalityID: &c.ID, CreatedAt: time.Now(),
	}
	require.NoError(t, repos.Principals.Create(ctx, p))

	used, err := repos.Countries.IsUsed(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, used)

	covered, err := repos.Countries.ToggleCoverage(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, covered)

	require.NoError(t, repos.Countries.Delete(ctx, c.ID))
	got, err := repos.Principals.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.NationalityID)
}

// ─── POS y contratos ──────────────────────────────────────────────────────────

type crmFixture struct {
	repos    repository.Repositories
	company  *entity.POSCompany
	model    *entity.PosModel
	pos      *entity.POS
	costumer *entity.Costumer
}

func seedCRM(t *testing.T, repos repository.Repositories) crmFixture {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	price := dec("100.00")

	company := &entity.POSCompany{ID: uuid.NewString(), Name: "Ingenico", SerialNumberLength: 8, CreatedAt: now}
	require.NoError(t, repos.Companies.Create(ctx, company))
	model := &entity.PosModel{ID: uuid.NewString(), Name: "Move 5000", CompanyID: company.ID, Price: &price, CreatedAt: now}
	require.NoError(t, repos.Models.Create(ctx, model))
	pos := &entity.POS{
		ID: uuid.NewString(), SerialNumber: "12345678", Type: entity.POSTypeMobile, ModelID: model.ID,
		Ownership: true, IsActive: true, Status: entity.POSStatusAvailable, CreatedAt: now,
	}
	require.NoError(t, repos.POS.Create(ctx, pos))
	costumer := &entity.Costumer{
		ID: uuid.NewString(), TradingName: "Café Sol", LegalName: "Café Sol Ltd",
		BusinessType: "Caterers", LegalEntity: entity.LegalEntityPrivateLimited,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repos.Costumers.Create(ctx, costumer))
	return crmFixture{repos: repos, company: company, model: model, pos: pos, costumer: costumer}
}

func TestPOS_DetalleYListadoFiltrado(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	f := seedCRM(t, postgres.NewRepositories(pool))

	d, err := f.repos.POS.GetDetail(ctx, f.pos.ID)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Move 5000", d.Model.Name)
	assert.Equal(t, "Ingenico", d.Company.Name)
	assert.True(t, d.Model.Price.Equal(dec("100")))

	inactive := false
	list, err := f.repos.POS.List(ctx, repository.POSFilter{Active: &inactive})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = f.repos.POS.List(ctx, repository.POSFilter{Type: entity.POSTypeMobile, ModelID: f.model.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	companies, err := f.repos.Companies.List(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, 1, companies[0].ModelCount)
}

func TestIDsMalFormados_SeTratanComoInexistentes(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	f := seedCRM(t, postgres.NewRepositories(pool))
	repos := f.repos

	c, err := repos.Countries.GetByID(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, c)

	d, err := repos.POS.GetDetail(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, d)

	used, err := repos.Countries.IsUsed(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, used)

	_, err = repos.Countries.ToggleCoverage(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repos.Countries.Delete(ctx, "abc"), domain.ErrNotFound)

	list, err := repos.POS.List(ctx, repository.POSFilter{ModelID: "abc"})
	require.NoError(t, err)
	assert.Empty(t, list)

	bad := *f.pos
	bad.ModelID = "abc"
	assert.ErrorIs(t, repos.POS.Update(ctx, &bad), domain.ErrNotFound)

	// el POS original sigue intacto
	d, err = repos.POS.GetDetail(ctx, f.pos.ID)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, f.model.ID, d.ModelID)
}

func TestPOS_VentanasYEstadosEnBatch(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	f := seedCRM(t, postgres.NewRepositories(pool))

	contract := &entity.Contract{
		ID: uuid.NewString(), CostumerID: f.costumer.ID, FaceToFaceSales: 80,
		Acquirer: entity.AcquirerFirstData, LiveDate: day(2026, 1, 1), EndDate: day(2026, 12, 31),
		CreatedAt: time.Now(),
	}
	require.NoError(t, f.repos.Contracts.Create(ctx, contract))
	link := &entity.ContractPOS{
		ID: uuid.NewString(), ContractID: contract.ID, POSID: f.pos.ID,
		Price: dec("90"), HardwareCost: dec("40"), SoftwareCost: dec("5"), CreatedAt: time.Now(),
	}
	require.NoError(t, f.repos.Contracts.AddPOS(ctx, link))

	windows, err := f.repos.POS.ContractWindows(ctx, []string{f.pos.ID})
	require.NoError(t, err)
	require.Len(t, windows[f.pos.ID], 1)
	assert.Equal(t, contract.ID, windows[f.pos.ID][0].ContractID)
	assert.True(t, windows[f.pos.ID][0].LiveDate.Equal(day(2026, 1, 1)))

	require.NoError(t, f.repos.POS.SetStatuses(ctx, map[string]string{f.pos.ID: entity.POSStatusUnavailable}))
	statuses, err := f.repos.POS.Statuses(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.POSStatusUnavailable, statuses[f.pos.ID])

	used, err := f.repos.POS.IsUsed(ctx, f.pos.ID)
	require.NoError(t, err)
	assert.True(t, used)

	active := day(2026, 6, 15)
	list, err := f.repos.Contracts.List(ctx, repository.ContractFilter{ActiveOn: &active})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	outside := day(2027, 1, 1)
	list, err = f.repos.Contracts.List(ctx, repository.ContractFilter{ActiveOn: &outside})
	require.NoError(t, err)
	assert.Empty(t, list)

	// CASCADE: borrar la empresa elimina modelo, POS y vínculo
	require.NoError(t, f.repos.Companies.Delete(ctx, f.company.ID))
	links, err := f.repos.Contracts.ListPOS(ctx, contract.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestContract_ClienteInexistente(t *testing.T) {
	pool := setupDB(t)
	repos := postgres.NewRepositories(pool)
	err := repos.Contracts.Create(context.Background(), &entity.Contract{
		ID: uuid.NewString(), CostumerID: uuid.NewString(), Acquirer: entity.AcquirerEmerchantPay,
		LiveDate: day(2026, 1, 1), EndDate: day(2026, 2, 1), CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Libros y transacciones ───────────────────────────────────────────────────

func TestLedger_BorrarSoloDelDueño(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	f := seedCRM(t, postgres.NewRepositories(pool))

	roll := &entity.PaperRoll{
		ID: uuid.NewString(), CostumerID: f.costumer.ID, Amount: 10,
		Cost: dec("2"), Price: dec("5"), DirectDebitCost: dec("0.5"),
		OrderedDate: time.Now(), CreatedAt: time.Now(),
	}
	require.NoError(t, f.repos.Ledger.CreatePaperRoll(ctx, roll))

	rolls, err := f.repos.Ledger.ListPaperRolls(ctx, f.costumer.ID)
	require.NoError(t, err)
	require.Len(t, rolls, 1)
	assert.True(t, rolls[0].Price.Equal(dec("5")))

	err = f.repos.Ledger.DeletePaperRoll(ctx, uuid.NewString(), roll.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, f.repos.Ledger.DeletePaperRoll(ctx, f.costumer.ID, roll.ID))
}

func TestTxRunner_RollbackAnteError(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)
	boom := errors.New("boom")

	id := uuid.NewString()
	err := runner.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Countries.Create(ctx, &entity.Country{
			ID: id, Name: "Portugal", Abbreviation: "POR", CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := postgres.NewRepositories(pool).Countries.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}
