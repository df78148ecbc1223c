package repository

import (
	"context"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/rules"
)

// POSCompanyListItem empresa con el número de modelos registrados.
type POSCompanyListItem struct {
	entity.POSCompany
	ModelCount int
}

// POSCompanyRepository puerto de persistencia de fabricantes.
type POSCompanyRepository interface {
	Create(ctx context.Context, c *entity.POSCompany) error
	GetByID(ctx context.Context, id string) (*entity.POSCompany, error)
	// List ordena por nombre.
	List(ctx context.Context) ([]POSCompanyListItem, error)
	Update(ctx context.Context, c *entity.POSCompany) error
	Delete(ctx context.Context, id string) error
	IsUsed(ctx context.Context, id string) (bool, error)
}

// PosModelRepository puerto de persistencia de modelos.
type PosModelRepository interface {
	Create(ctx context.Context, m *entity.PosModel) error
	GetByID(ctx context.Context, id string) (*entity.PosModel, error)
	// List ordena por nombre; companyID vacío = todas las empresas.
	List(ctx context.Context, companyID string) ([]*entity.PosModel, error)
	Update(ctx context.Context, m *entity.PosModel) error
	Delete(ctx context.Context, id string) error
	IsUsed(ctx context.Context, id string) (bool, error)
}

// POSFilter filtros opcionales del listado de POS.
type POSFilter struct {
	Status  string
	ModelID string
	Type    string
	Active  *bool
}

// POSRepository puerto de persistencia de terminales.
type POSRepository interface {
	Create(ctx context.Context, p *entity.POS) error
	GetByID(ctx context.Context, id string) (*entity.POS, error)
	// GetDetail resuelve modelo y empresa; ContractID queda vacío (lo calcula el caso de uso).
	GetDetail(ctx context.Context, id string) (*entity.POSDetail, error)
	// List ordena por serial.
	List(ctx context.Context, f POSFilter) ([]*entity.POSDetail, error)
	Update(ctx context.Context, p *entity.POS) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (bool, error)
	SetActive(ctx context.Context, id string, value bool) (bool, error)
	IsUsed(ctx context.Context, id string) (bool, error)

	// Statuses devuelve el estado persistido de cada POS (id -> status).
	Statuses(ctx context.Context) (map[string]string, error)
	// SetStatuses persiste los estados indicados (solo los recibidos).
	SetStatuses(ctx context.Context, statuses map[string]string) error
	// ContractWindows ventanas de los contratos que referencian cada POS.
	// posIDs vacío = todos los POS con algún vínculo.
	ContractWindows(ctx context.Context, posIDs []string) (map[string][]rules.ContractWindow, error)
}
