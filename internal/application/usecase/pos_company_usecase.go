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
	"github.com/jhoicas/pos-crm-api/internal/domain/rules"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

// POSCompanyUseCase casos de uso de fabricantes y sus modelos.
type POSCompanyUseCase struct {
	companies repository.POSCompanyRepository
	models    repository.PosModelRepository
	cache     ReferenceCache
	log       *logger.Logger
	metrics   *metrics.Metrics
}

// NewPOSCompanyUseCase construye el caso de uso.
func NewPOSCompanyUseCase(companies repository.POSCompanyRepository, models repository.PosModelRepository, cache ReferenceCache, log *logger.Logger, m *metrics.Metrics) *POSCompanyUseCase {
	return &POSCompanyUseCase{companies: companies, models: models, cache: cache, log: log.Component("pos_company"), metrics: m}
}

// List devuelve los fabricantes por nombre, con número de modelos.
func (uc *POSCompanyUseCase) List(ctx context.Context) ([]dto.POSCompanyResponse, error) {
	var cached []dto.POSCompanyResponse
	if ok, err := uc.cache.Get(ctx, CacheKeyPOSCompanies, &cached); err == nil && ok {
		return cached, nil
	} else if err != nil {
		uc.log.Warn().Err(err).Msg("caché de fabricantes no disponible")
	}
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.POSCompanyResponse, 0, len(list))
	for i := range list {
		out = append(out, *toPOSCompanyResponse(&list[i].POSCompany, list[i].ModelCount))
	}
	if err := uc.cache.Set(ctx, CacheKeyPOSCompanies, out); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo cachear fabricantes")
	}
	return out, nil
}

func validateCompany(c *entity.POSCompany) error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.NewValidationError("name", "el nombre es obligatorio")
	}
	return rules.ValidateSerialLength(c.SerialNumberLength)
}

// Create da de alta un fabricante.
func (uc *POSCompanyUseCase) Create(ctx context.Context, actorID string, in dto.POSCompanyRequest) (*dto.POSCompanyResponse, error) {
	c := &entity.POSCompany{
		ID:                 uuid.New().String(),
		Name:               strings.TrimSpace(in.Name),
		SerialNumberLength: in.SerialNumberLength,
		CreatedBy:          strPtr(actorID),
		CreatedAt:          time.Now(),
	}
	if err := validateCompany(c); err != nil {
		return nil, rejected(uc.metrics, err)
	}
	if err := uc.companies.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toPOSCompanyResponse(c, 0), nil
}

// Update aplica apply sobre el estado actual y guarda. Cambiar la longitud de
// serial no revalida los POS existentes.
func (uc *POSCompanyUseCase) Update(ctx context.Context, id string, apply func(*dto.POSCompanyRequest) error) (*dto.POSCompanyResponse, error) {
	c, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	in := dto.POSCompanyRequest{Name: c.Name, SerialNumberLength: c.SerialNumberLength}
	if err := apply(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	c.Name = strings.TrimSpace(in.Name)
	c.SerialNumberLength = in.SerialNumberLength
	if err := validateCompany(c); err != nil {
		return nil, rejected(uc.metrics, err)
	}
	if err := uc.companies.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toPOSCompanyResponse(c, 0), nil
}

// Delete borra el fabricante en cascada (modelos, POS y vínculos).
func (uc *POSCompanyUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.companies.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// Models lista los modelos de un fabricante. ErrNotFound si no existe.
func (uc *POSCompanyUseCase) Models(ctx context.Context, companyID string) ([]dto.PosModelResponse, error) {
	c, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.models.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PosModelResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toPosModelResponse(m, c))
	}
	return out, nil
}

// IsUsed informa si el fabricante tiene modelos.
func (uc *POSCompanyUseCase) IsUsed(ctx context.Context, id string) (*dto.UsedResponse, error) {
	c, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	used, err := uc.companies.IsUsed(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UsedResponse{Used: used}, nil
}

func (uc *POSCompanyUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Delete(ctx, CacheKeyPOSCompanies); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar caché de fabricantes")
	}
}
