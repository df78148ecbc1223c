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

// CountryUseCase casos de uso de países. El listado se sirve desde caché y se
// invalida en cada escritura.
type CountryUseCase struct {
	repo    repository.CountryRepository
	cache   ReferenceCache
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewCountryUseCase construye el caso de uso.
func NewCountryUseCase(repo repository.CountryRepository, cache ReferenceCache, log *logger.Logger, m *metrics.Metrics) *CountryUseCase {
	return &CountryUseCase{repo: repo, cache: cache, log: log.Component("country"), metrics: m}
}

// List devuelve los países ordenados por abreviatura.
func (uc *CountryUseCase) List(ctx context.Context) ([]dto.CountryResponse, error) {
	var cached []dto.CountryResponse
	if ok, err := uc.cache.Get(ctx, CacheKeyCountries, &cached); err == nil && ok {
		return cached, nil
	} else if err != nil {
		uc.log.Warn().Err(err).Msg("caché de países no disponible")
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CountryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCountryResponse(c))
	}
	if err := uc.cache.Set(ctx, CacheKeyCountries, out); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo cachear países")
	}
	return out, nil
}

// Create da de alta un país; la abreviatura vacía se deriva del nombre.
func (uc *CountryUseCase) Create(ctx context.Context, actorID string, in dto.CountryRequest) (*dto.CountryResponse, error) {
	name := strings.TrimSpace(in.Name)
	abbr := rules.DeriveAbbreviation(name, in.Abbreviation)
	if err := rules.ValidateCountry(name, in.Code, abbr); err != nil {
		return nil, rejected(uc.metrics, err)
	}
	c := &entity.Country{
		ID:           uuid.New().String(),
		Name:         name,
		Code:         strings.TrimSpace(in.Code),
		Abbreviation: abbr,
		IsCovered:    true,
		CreatedBy:    strPtr(actorID),
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	out := toCountryResponse(c)
	return &out, nil
}

// Delete borra el país; las referencias quedan en NULL.
func (uc *CountryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// ToggleCoverage invierte is_covered.
func (uc *CountryUseCase) ToggleCoverage(ctx context.Context, actorID, id string) (*dto.FlagResponse, error) {
	v, err := uc.repo.ToggleCoverage(ctx, id)
	return uc.flagChanged(ctx, actorID, id, v, err)
}

// SetCoverage fija is_covered al valor indicado.
func (uc *CountryUseCase) SetCoverage(ctx context.Context, actorID, id string, value bool) (*dto.FlagResponse, error) {
	v, err := uc.repo.SetCoverage(ctx, id, value)
	return uc.flagChanged(ctx, actorID, id, v, err)
}

func (uc *CountryUseCase) flagChanged(ctx context.Context, actorID, id string, v bool, err error) (*dto.FlagResponse, error) {
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	uc.metrics.RecordToggle("country", "is_covered")
	uc.log.Info().Str("country_id", id).Str("actor_id", actorID).Bool("is_covered", v).Msg("cobertura de país cambiada")
	return &dto.FlagResponse{ID: id, Flag: "is_covered", Value: v}, nil
}

// IsUsed informa si el país está referenciado. ErrNotFound si no existe.
func (uc *CountryUseCase) IsUsed(ctx context.Context, id string) (*dto.UsedResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	used, err := uc.repo.IsUsed(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UsedResponse{Used: used}, nil
}

func (uc *CountryUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Delete(ctx, CacheKeyCountries); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar caché de países")
	}
}
