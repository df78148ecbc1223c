package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// GoalUseCase casos de uso de prospectos comerciales.
type GoalUseCase struct {
	repo repository.MarketingGoalRepository
	log  *logger.Logger
}

// NewGoalUseCase construye el caso de uso.
func NewGoalUseCase(repo repository.MarketingGoalRepository, log *logger.Logger) *GoalUseCase {
	return &GoalUseCase{repo: repo, log: log.Component("goal")}
}

func validateGoal(in *dto.GoalRequest) error {
	if strings.TrimSpace(in.TradingName) == "" {
		return domain.NewValidationError("trading_name", "el nombre comercial es obligatorio")
	}
	if in.Status == "" {
		in.Status = entity.GoalWaiting
	}
	if entity.GoalStatusName(in.Status) == "" {
		return domain.NewValidationError("status", "estado inválido (A, R, W, P)")
	}
	return nil
}

// List devuelve los prospectos, opcionalmente filtrados por estado.
func (uc *GoalUseCase) List(ctx context.Context, status string) ([]dto.GoalResponse, error) {
	if status != "" && entity.GoalStatusName(status) == "" {
		return nil, domain.NewValidationError("status", "estado inválido (A, R, W, P)")
	}
	list, err := uc.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoalResponse, 0, len(list))
	for _, g := range list {
		out = append(out, toGoalResponse(g))
	}
	return out, nil
}

// Create da de alta un prospecto; creador y último editor son el actor.
func (uc *GoalUseCase) Create(ctx context.Context, actorID string, in dto.GoalRequest) (*dto.GoalResponse, error) {
	if err := validateGoal(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	g := &entity.MarketingGoal{
		ID:           uuid.New().String(),
		CreatedBy:    strPtr(actorID),
		LastUpdateBy: strPtr(actorID),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyGoalRequest(g, in)
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	uc.log.Info().Str("goal_id", g.ID).Str("status", g.Status).Str("actor_id", actorID).Msg("prospecto creado")
	out := toGoalResponse(g)
	return &out, nil
}

func (uc *GoalUseCase) Get(ctx context.Context, id string) (*dto.GoalResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	out := toGoalResponse(g)
	return &out, nil
}

// Update fusiona apply sobre el prospecto y registra al actor como último editor.
func (uc *GoalUseCase) Update(ctx context.Context, actorID, id string, apply func(*dto.GoalRequest) error) (*dto.GoalResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	in := goalToRequest(g)
	if err := apply(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := validateGoal(&in); err != nil {
		return nil, err
	}
	applyGoalRequest(g, in)
	g.LastUpdateBy = strPtr(actorID)
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	uc.log.Info().Str("goal_id", g.ID).Str("status", g.Status).Str("actor_id", actorID).Msg("prospecto actualizado")
	out := toGoalResponse(g)
	return &out, nil
}

func (uc *GoalUseCase) Delete(ctx context.Context, actorID, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("goal_id", id).Str("actor_id", actorID).Msg("prospecto eliminado")
	return nil
}
