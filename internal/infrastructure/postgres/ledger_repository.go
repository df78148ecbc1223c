package postgres

import (
	"context"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepository)(nil)

const (
	paperRollColumns  = `id, costumer_id, amount, cost, price, direct_debit_cost, ordered_date, created_by, created_at`
	paymentColumns    = `id, contract_id, date, direct_debit_cost, created_by, created_at`
	midRevenueColumns = `id, contract_id, income, profit, date, created_by, created_at`
)

// LedgerRepository implementación PostgreSQL de repository.LedgerRepository.
type LedgerRepository struct {
	q Querier
}

func NewLedgerRepository(q Querier) *LedgerRepository {
	return &LedgerRepository{q: q}
}

func (r *LedgerRepository) CreatePaperRoll(ctx context.Context, p *entity.PaperRoll) error {
	_, err := r.q.Exec(ctx, `INSERT INTO paper_rolls (`+paperRollColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.CostumerID, p.Amount, p.Cost, p.Price, p.DirectDebitCost, p.OrderedDate, p.CreatedBy, p.CreatedAt)
	return mapWriteErr(err)
}

func (r *LedgerRepository) ListPaperRolls(ctx context.Context, costumerID string) ([]*entity.PaperRoll, error) {
	return selectAll[entity.PaperRoll](ctx, r.q,
		`SELECT `+paperRollColumns+` FROM paper_rolls WHERE costumer_id = $1 ORDER BY ordered_date DESC`, costumerID)
}

func (r *LedgerRepository) DeletePaperRoll(ctx context.Context, costumerID, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM paper_rolls WHERE id = $1 AND costumer_id = $2`, id, costumerID))
}

func (r *LedgerRepository) CreatePayment(ctx context.Context, p *entity.Payment) error {
	_, err := r.q.Exec(ctx, `INSERT INTO payments (`+paymentColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.ContractID, p.Date, p.DirectDebitCost, p.CreatedBy, p.CreatedAt)
	return mapWriteErr(err)
}

func (r *LedgerRepository) ListPayments(ctx context.Context, contractID string) ([]*entity.Payment, error) {
	return selectAll[entity.Payment](ctx, r.q,
		`SELECT `+paymentColumns+` FROM payments WHERE contract_id = $1 ORDER BY date DESC`, contractID)
}

func (r *LedgerRepository) DeletePayment(ctx context.Context, contractID, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM payments WHERE id = $1 AND contract_id = $2`, id, contractID))
}

func (r *LedgerRepository) CreateMIDRevenue(ctx context.Context, m *entity.MIDRevenue) error {
	_, err := r.q.Exec(ctx, `INSERT INTO mid_revenues (`+midRevenueColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ContractID, m.Income, m.Profit, m.Date, m.CreatedBy, m.CreatedAt)
	return mapWriteErr(err)
}

func (r *LedgerRepository) ListMIDRevenues(ctx context.Context, contractID string) ([]*entity.MIDRevenue, error) {
	return selectAll[entity.MIDRevenue](ctx, r.q,
		`SELECT `+midRevenueColumns+` FROM mid_revenues WHERE contract_id = $1 ORDER BY date DESC`, contractID)
}

func (r *LedgerRepository) DeleteMIDRevenue(ctx context.Context, contractID, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM mid_revenues WHERE id = $1 AND contract_id = $2`, id, contractID))
}
