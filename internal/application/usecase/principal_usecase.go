package usecase

import (
	"context"

	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

// PrincipalUseCase administración de cuentas de staff (listado, perfiles,
// promoción, activación y baja).
type PrincipalUseCase struct {
	repo    repository.PrincipalRepository
	storage FileStorage
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewPrincipalUseCase construye el caso de uso.
func NewPrincipalUseCase(repo repository.PrincipalRepository, storage FileStorage, log *logger.Logger, m *metrics.Metrics) *PrincipalUseCase {
	return &PrincipalUseCase{repo: repo, storage: storage, log: log.Component("principal"), metrics: m}
}

// ToPrincipalResponse salida pública de un principal; Image se expone como URL.
func ToPrincipalResponse(p *entity.Principal, storage FileStorage) dto.PrincipalResponse {
	out := dto.PrincipalResponse{
		ID:            p.ID,
		Username:      p.Username,
		Name:          p.Name,
		Title:         p.Title,
		Address:       p.Address,
		Phone:         p.Phone,
		PostalCode:    p.PostalCode,
		BirthDate:     dto.DatePtr(p.BirthDate),
		Email:         p.Email,
		NationalityID: p.NationalityID,
		IsActive:      p.IsActive,
		IsStaff:       p.IsStaff,
		IsSuperuser:   p.IsSuperuser,
		LastLogin:     p.LastLogin,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
	}
	if storage != nil {
		out.Image = fileURL(storage, p.Image)
	}
	return out
}

// List devuelve todos los principales ordenados por nombre.
func (uc *PrincipalUseCase) List(ctx context.Context) ([]dto.PrincipalResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PrincipalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPrincipalResponse(p, uc.storage))
	}
	return out, nil
}

// Profile perfil de otro principal.
func (uc *PrincipalUseCase) Profile(ctx context.Context, id string) (*dto.PrincipalResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := ToPrincipalResponse(p, uc.storage)
	return &out, nil
}

// Toggle invierte is_staff o is_active de forma atómica.
func (uc *PrincipalUseCase) Toggle(ctx context.Context, actorID, id string, flag repository.PrincipalFlag) (*dto.FlagResponse, error) {
	v, err := uc.repo.ToggleFlag(ctx, id, flag)
	return uc.flagChanged(actorID, id, flag, v, err)
}

// Set fija is_staff o is_active; repetirlo con el mismo valor no cambia nada.
func (uc *PrincipalUseCase) Set(ctx context.Context, actorID, id string, flag repository.PrincipalFlag, value bool) (*dto.FlagResponse, error) {
	v, err := uc.repo.SetFlag(ctx, id, flag, value)
	return uc.flagChanged(actorID, id, flag, v, err)
}

func (uc *PrincipalUseCase) flagChanged(actorID, id string, flag repository.PrincipalFlag, v bool, err error) (*dto.FlagResponse, error) {
	if err != nil {
		return nil, err
	}
	uc.metrics.RecordToggle("principal", string(flag))
	uc.log.Info().Str("principal_id", id).Str("actor_id", actorID).Str("flag", string(flag)).Bool("value", v).Msg("flag de principal cambiado")
	return &dto.FlagResponse{ID: id, Flag: string(flag), Value: v}, nil
}

// Delete borra la cuenta; los registros que creó quedan con created_by nulo.
func (uc *PrincipalUseCase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("principal_id", id).Str("actor_id", actorID).Msg("principal eliminado")
	return nil
}
