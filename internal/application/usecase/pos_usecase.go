package usecase

import (
	"context"
	"strconv"
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

// POSUseCase casos de uso de terminales. Toda escritura pasa por
// validatePOS (tipo + longitud de serial contra la empresa del modelo).
type POSUseCase struct {
	poses     repository.POSRepository
	models    repository.PosModelRepository
	companies repository.POSCompanyRepository
	status    *POSStatusService
	log       *logger.Logger
	metrics   *metrics.Metrics
}

// NewPOSUseCase construye el caso de uso.
func NewPOSUseCase(
	poses repository.POSRepository,
	models repository.PosModelRepository,
	companies repository.POSCompanyRepository,
	status *POSStatusService,
	log *logger.Logger,
	m *metrics.Metrics,
) *POSUseCase {
	return &POSUseCase{
		poses: poses, models: models, companies: companies,
		status: status, log: log.Component("pos"), metrics: m,
	}
}

// List recalcula el estado de todos los POS y devuelve el listado filtrado,
// ordenado por serial, con el contrato vigente de cada unidad.
func (uc *POSUseCase) List(ctx context.Context, q dto.POSListQuery) ([]dto.POSResponse, error) {
	filter := repository.POSFilter{Status: q.Status, ModelID: q.ModelID, Type: q.Type}
	if q.Active != "" {
		active, err := strconv.ParseBool(q.Active)
		if err != nil {
			return nil, domain.NewValidationError("active", "debe ser true o false")
		}
		filter.Active = &active
	}
	active, err := uc.status.RefreshAll(ctx, uc.poses)
	if err != nil {
		return nil, err
	}
	list, err := uc.poses.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.POSResponse, 0, len(list))
	for _, d := range list {
		d.ContractID = active[d.ID]
		out = append(out, *toPOSResponse(d))
	}
	return out, nil
}

// Get devuelve un POS con su contrato vigente.
func (uc *POSUseCase) Get(ctx context.Context, id string) (*dto.POSResponse, error) {
	d, err := uc.poses.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	active, err := uc.status.ActiveContracts(ctx, uc.poses, []string{id})
	if err != nil {
		return nil, err
	}
	d.ContractID = active[id]
	return toPOSResponse(d), nil
}

// validatePOS resuelve modelo y empresa en la misma petición y aplica las reglas.
func (uc *POSUseCase) validatePOS(ctx context.Context, p *entity.POS) (*entity.PosModel, *entity.POSCompany, error) {
	if strings.TrimSpace(p.ModelID) == "" {
		return nil, nil, rejected(uc.metrics, domain.NewValidationError("model", "el modelo es obligatorio"))
	}
	model, err := uc.models.GetByID(ctx, p.ModelID)
	if err != nil {
		return nil, nil, err
	}
	if model == nil {
		return nil, nil, domain.ErrNotFound
	}
	company, err := uc.companies.GetByID(ctx, model.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, domain.ErrNotFound
	}
	if err := rules.ValidatePOS(p, company); err != nil {
		uc.log.Debug().Err(err).Str("serial_number", p.SerialNumber).Str("company_id", company.ID).Msg("POS rechazado")
		return nil, nil, rejected(uc.metrics, err)
	}
	return model, company, nil
}

// Create valida y da de alta un POS. Ownership e IsActive son true por defecto.
func (uc *POSUseCase) Create(ctx context.Context, actorID string, in dto.POSRequest) (*dto.POSResponse, error) {
	p := &entity.POS{
		ID:           uuid.New().String(),
		SerialNumber: in.SerialNumber,
		Type:         in.Type,
		ModelID:      in.ModelID,
		Note:         in.Note,
		Ownership:    true,
		IsActive:     true,
		Status:       entity.POSStatusAvailable,
		CreatedBy:    strPtr(actorID),
		CreatedAt:    time.Now(),
	}
	if in.Ownership != nil {
		p.Ownership = *in.Ownership
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	model, company, err := uc.validatePOS(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := uc.poses.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPOSResponse(&entity.POSDetail{POS: *p, Model: *model, Company: *company}), nil
}

// Update fusiona apply sobre el POS actual y revalida el serial contra la
// empresa vigente del modelo (también en actualizaciones parciales).
func (uc *POSUseCase) Update(ctx context.Context, id string, apply func(*dto.POSRequest) error) (*dto.POSResponse, error) {
	p, err := uc.poses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	in := dto.POSRequest{
		SerialNumber: p.SerialNumber, Type: p.Type, ModelID: p.ModelID, Note: p.Note,
		Ownership: &p.Ownership, IsActive: &p.IsActive,
	}
	if err := apply(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	p.SerialNumber, p.Type, p.ModelID, p.Note = in.SerialNumber, in.Type, in.ModelID, in.Note
	if in.Ownership != nil {
		p.Ownership = *in.Ownership
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	model, company, err := uc.validatePOS(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := uc.poses.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPOSResponse(&entity.POSDetail{POS: *p, Model: *model, Company: *company}), nil
}

// Delete borra el POS y sus vínculos a contratos.
func (uc *POSUseCase) Delete(ctx context.Context, id string) error {
	return uc.poses.Delete(ctx, id)
}

// ToggleActive invierte is_active.
func (uc *POSUseCase) ToggleActive(ctx context.Context, actorID, id string) (*dto.FlagResponse, error) {
	v, err := uc.poses.ToggleActive(ctx, id)
	return uc.flagChanged(actorID, id, v, err)
}

// SetActive fija is_active.
func (uc *POSUseCase) SetActive(ctx context.Context, actorID, id string, value bool) (*dto.FlagResponse, error) {
	v, err := uc.poses.SetActive(ctx, id, value)
	return uc.flagChanged(actorID, id, v, err)
}

func (uc *POSUseCase) flagChanged(actorID, id string, v bool, err error) (*dto.FlagResponse, error) {
	if err != nil {
		return nil, err
	}
	uc.metrics.RecordToggle("pos", "is_active")
	uc.log.Info().Str("pos_id", id).Str("actor_id", actorID).Bool("is_active", v).Msg("activación de POS cambiada")
	return &dto.FlagResponse{ID: id, Flag: "is_active", Value: v}, nil
}

// IsUsed informa si el POS está vinculado a algún contrato (vigente o no).
func (uc *POSUseCase) IsUsed(ctx context.Context, id string) (*dto.UsedResponse, error) {
	p, err := uc.poses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	used, err := uc.poses.IsUsed(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UsedResponse{Used: used}, nil
}
