package repository

import (
	"context"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// VirtualServiceRepository puerto de persistencia de servicios virtuales.
type VirtualServiceRepository interface {
	Create(ctx context.Context, s *entity.VirtualService) error
	GetByID(ctx context.Context, id string) (*entity.VirtualService, error)
	List(ctx context.Context) ([]*entity.VirtualService, error)
	Update(ctx context.Context, s *entity.VirtualService) error
	Delete(ctx context.Context, id string) error
	ToggleAvailability(ctx context.Context, id string) (bool, error)
	SetAvailability(ctx context.Context, id string, value bool) (bool, error)
	IsUsed(ctx context.Context, id string) (bool, error)
}
