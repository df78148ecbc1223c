package repository

import (
	"context"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// LedgerRepository libros de solo alta/baja: rollos de papel, pagos y MID revenue.
// Los Delete* devuelven domain.ErrNotFound si el registro no pertenece al dueño indicado.
type LedgerRepository interface {
	CreatePaperRoll(ctx context.Context, p *entity.PaperRoll) error
	ListPaperRolls(ctx context.Context, costumerID string) ([]*entity.PaperRoll, error)
	DeletePaperRoll(ctx context.Context, costumerID, id string) error

	CreatePayment(ctx context.Context, p *entity.Payment) error
	ListPayments(ctx context.Context, contractID string) ([]*entity.Payment, error)
	DeletePayment(ctx context.Context, contractID, id string) error

	CreateMIDRevenue(ctx context.Context, m *entity.MIDRevenue) error
	ListMIDRevenues(ctx context.Context, contractID string) ([]*entity.MIDRevenue, error)
	DeleteMIDRevenue(ctx context.Context, contractID, id string) error
}
