package repository

import (
	"context"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// MarketingGoalRepository puerto de persistencia de prospectos.
type MarketingGoalRepository interface {
	Create(ctx context.Context, g *entity.MarketingGoal) error
	GetByID(ctx context.Context, id string) (*entity.MarketingGoal, error)
	// List filtra por estado si status no es vacío; orden: más recientes primero.
	List(ctx context.Context, status string) ([]*entity.MarketingGoal, error)
	Update(ctx context.Context, g *entity.MarketingGoal) error
	Delete(ctx context.Context, id string) error
}
