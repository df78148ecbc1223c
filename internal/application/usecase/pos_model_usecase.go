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

// PosModelUseCase casos de uso de modelos de terminal.
type PosModelUseCase struct {
	models    repository.PosModelRepository
	companies repository.POSCompanyRepository
	cache     ReferenceCache
	log       *logger.Logger
}

// NewPosModelUseCase construye el caso de uso. El caché es el de fabricantes
// (model_count cambia con cada alta o baja de modelo).
func NewPosModelUseCase(models repository.PosModelRepository, companies repository.POSCompanyRepository, cache ReferenceCache, log *logger.Logger) *PosModelUseCase {
	return &PosModelUseCase{models: models, companies: companies, cache: cache, log: log.Component("pos_model")}
}

// List devuelve todos los modelos por nombre, con su empresa.
func (uc *PosModelUseCase) List(ctx context.Context) ([]dto.PosModelResponse, error) {
	list, err := uc.models.List(ctx, "")
	if err != nil {
		return nil, err
	}
	companies := map[string]*entity.POSCompany{}
	out := make([]dto.PosModelResponse, 0, len(list))
	for _, m := range list {
		c, ok := companies[m.CompanyID]
		if !ok {
			if c, err = uc.companies.GetByID(ctx, m.CompanyID); err != nil {
				return nil, err
			}
			companies[m.CompanyID] = c
		}
		out = append(out, *toPosModelResponse(m, c))
	}
	return out, nil
}

func (uc *PosModelUseCase) resolveCompany(ctx context.Context, id string) (*entity.POSCompany, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("company", "la empresa es obligatoria")
	}
	c, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Create da de alta un modelo. ErrNotFound si la empresa no existe.
func (uc *PosModelUseCase) Create(ctx context.Context, actorID string, in dto.PosModelRequest) (*dto.PosModelResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	company, err := uc.resolveCompany(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	m := &entity.PosModel{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		CompanyID:    company.ID,
		HardwareCost: in.HardwareCost,
		SoftwareCost: in.SoftwareCost,
		Price:        in.Price,
		CreatedBy:    strPtr(actorID),
		CreatedAt:    time.Now(),
	}
	if err := uc.models.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toPosModelResponse(m, company), nil
}

// Update aplica apply sobre el modelo actual.
func (uc *PosModelUseCase) Update(ctx context.Context, id string, apply func(*dto.PosModelRequest) error) (*dto.PosModelResponse, error) {
	m, err := uc.models.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	in := dto.PosModelRequest{
		Name: m.Name, CompanyID: m.CompanyID,
		HardwareCost: m.HardwareCost, SoftwareCost: m.SoftwareCost, Price: m.Price,
	}
	if err := apply(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	company, err := uc.resolveCompany(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	m.Name = strings.TrimSpace(in.Name)
	m.CompanyID = company.ID
	m.HardwareCost, m.SoftwareCost, m.Price = in.HardwareCost, in.SoftwareCost, in.Price
	if err := uc.models.Update(ctx, m); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toPosModelResponse(m, company), nil
}

// Delete borra el modelo y en cascada sus POS.
func (uc *PosModelUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.models.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// IsUsed informa si hay POS de este modelo.
func (uc *PosModelUseCase) IsUsed(ctx context.Context, id string) (*dto.UsedResponse, error) {
	m, err := uc.models.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	used, err := uc.models.IsUsed(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UsedResponse{Used: used}, nil
}

func (uc *PosModelUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Delete(ctx, CacheKeyPOSCompanies); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar caché de fabricantes")
	}
}
