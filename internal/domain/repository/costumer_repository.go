package repository

import (
	"context"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// CostumerMini proyección mínima para sugerencias (id + nombres).
type CostumerMini struct {
	ID          string
	LegalName   string
	TradingName string
}

// CostumerRepository puerto de persistencia de comercios.
type CostumerRepository interface {
	Create(ctx context.Context, c *entity.Costumer) error
	GetByID(ctx context.Context, id string) (*entity.Costumer, error)
	Update(ctx context.Context, c *entity.Costumer) error
	ListMini(ctx context.Context) ([]CostumerMini, error)
	UpdateDocuments(ctx context.Context, id string, docs entity.CostumerDocuments) error

	AddTradingAddress(ctx context.Context, a *entity.TradingAddress) error
	ListTradingAddresses(ctx context.Context, costumerID string) ([]*entity.TradingAddress, error)
}
