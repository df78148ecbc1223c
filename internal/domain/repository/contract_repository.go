package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// ContractFilter filtros opcionales del listado de contratos.
type ContractFilter struct {
	Acquirer   string
	CostumerID string
	ActiveOn   *time.Time // contratos cuya ventana contiene esta fecha
}

// ContractRepository puerto de persistencia de contratos y sus vínculos.
type ContractRepository interface {
	Create(ctx context.Context, c *entity.Contract) error
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	Update(ctx context.Context, c *entity.Contract) error
	// List ordena por creación descendente.
	List(ctx context.Context, f ContractFilter) ([]*entity.Contract, error)
	UpdateDocuments(ctx context.Context, id string, docs entity.ContractDocuments) error

	AddPOS(ctx context.Context, l *entity.ContractPOS) error
	ListPOS(ctx context.Context, contractID string) ([]*entity.ContractPOS, error)
	GetPOSLink(ctx context.Context, id string) (*entity.ContractPOS, error)
	UpdatePOSLink(ctx context.Context, l *entity.ContractPOS) error

	AddService(ctx context.Context, l *entity.ContractService) error
	ListServices(ctx context.Context, contractID string) ([]*entity.ContractService, error)
	GetServiceLink(ctx context.Context, id string) (*entity.ContractService, error)
	UpdateServiceLink(ctx context.Context, l *entity.ContractService) error
}
