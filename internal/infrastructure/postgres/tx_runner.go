package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// NewRepositories construye todos los repositorios sobre el mismo Querier.
func NewRepositories(q Querier) repository.Repositories {
	q = withIDMapping(q)
	return repository.Repositories{
		Principals: NewPrincipalRepository(q),
		Countries:  NewCountryRepository(q),
		Companies:  NewPOSCompanyRepository(q),
		Models:     NewPosModelRepository(q),
		POS:        NewPOSRepository(q),
		Services:   NewVirtualServiceRepository(q),
		Goals:      NewMarketingGoalRepository(q),
		Costumers:  NewCostumerRepository(q),
		Contracts:  NewContractRepository(q),
		Ledger:     NewLedgerRepository(q),
	}
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
