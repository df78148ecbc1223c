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
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

// VirtualServiceUseCase casos de uso de servicios virtuales.
type VirtualServiceUseCase struct {
	repo    repository.VirtualServiceRepository
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewVirtualServiceUseCase construye el caso de uso.
func NewVirtualServiceUseCase(repo repository.VirtualServiceRepository, log *logger.Logger, m *metrics.Metrics) *VirtualServiceUseCase {
	return &VirtualServiceUseCase{repo: repo, log: log.Component("service"), metrics: m}
}

func (uc *VirtualServiceUseCase) List(ctx context.Context) ([]dto.ServiceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

// Create da de alta un servicio (disponible por defecto). Nombre único.
func (uc *VirtualServiceUseCase) Create(ctx context.Context, actorID string, in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	s := &entity.VirtualService{
		ID:           uuid.New().String(),
		Name:         name,
		Price:        in.Price,
		Cost:         in.Cost,
		Availability: true,
		CreatedBy:    strPtr(actorID),
		CreatedAt:    time.Now(),
	}
	if in.Availability != nil {
		s.Availability = *in.Availability
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	out := toServiceResponse(s)
	return &out, nil
}

// Update fusiona apply sobre el servicio actual.
func (uc *VirtualServiceUseCase) Update(ctx context.Context, id string, apply func(*dto.ServiceRequest) error) (*dto.ServiceResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	in := dto.ServiceRequest{Name: s.Name, Price: s.Price, Cost: s.Cost, Availability: &s.Availability}
	if err := apply(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	s.Name = strings.TrimSpace(in.Name)
	if s.Name == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	s.Price, s.Cost = in.Price, in.Cost
	if in.Availability != nil {
		s.Availability = *in.Availability
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	out := toServiceResponse(s)
	return &out, nil
}

func (uc *VirtualServiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ToggleAvailability invierte availability.
func (uc *VirtualServiceUseCase) ToggleAvailability(ctx context.Context, actorID, id string) (*dto.FlagResponse, error) {
	v, err := uc.repo.ToggleAvailability(ctx, id)
	return uc.flagChanged(actorID, id, v, err)
}

// SetAvailability fija availability.
func (uc *VirtualServiceUseCase) SetAvailability(ctx context.Context, actorID, id string, value bool) (*dto.FlagResponse, error) {
	v, err := uc.repo.SetAvailability(ctx, id, value)
	return uc.flagChanged(actorID, id, v, err)
}

func (uc *VirtualServiceUseCase) flagChanged(actorID, id string, v bool, err error) (*dto.FlagResponse, error) {
	if err != nil {
		return nil, err
	}
	uc.metrics.RecordToggle("service", "availability")
	uc.log.Info().Str("service_id", id).Str("actor_id", actorID).Bool("availability", v).Msg("disponibilidad de servicio cambiada")
	return &dto.FlagResponse{ID: id, Flag: "availability", Value: v}, nil
}

// IsUsed informa si el servicio está vinculado a algún contrato.
func (uc *VirtualServiceUseCase) IsUsed(ctx context.Context, id string) (*dto.UsedResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	used, err := uc.repo.IsUsed(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UsedResponse{Used: used}, nil
}
