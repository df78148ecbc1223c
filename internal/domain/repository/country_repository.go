package repository

import (
	"context"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// CountryRepository define el puerto de persistencia para Country.
type CountryRepository interface {
	Create(ctx context.Context, c *entity.Country) error
	GetByID(ctx context.Context, id string) (*entity.Country, error)
	// List ordena por abreviatura.
	List(ctx context.Context) ([]*entity.Country, error)
	Delete(ctx context.Context, id string) error
	ToggleCoverage(ctx context.Context, id string) (bool, error)
	SetCoverage(ctx context.Context, id string, value bool) (bool, error)
	// IsUsed: referenciado por nacionalidad de un principal o por país, país
	// registrado, nacionalidad de director o de socio de un Costumer.
	IsUsed(ctx context.Context, id string) (bool, error)
}
