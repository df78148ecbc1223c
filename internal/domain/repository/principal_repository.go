package repository

import (
	"context"
	"time"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// PrincipalFlag flags booleanos del principal que admiten toggle/set.
type PrincipalFlag string

const (
	FlagStaff  PrincipalFlag = "is_staff"
	FlagActive PrincipalFlag = "is_active"
)

// PrincipalRepository define el puerto de persistencia para Principal (DIP).
// GetBy* devuelven (nil, nil) cuando no existe.
type PrincipalRepository interface {
	Create(ctx context.Context, p *entity.Principal) error
	GetByID(ctx context.Context, id string) (*entity.Principal, error)
	GetByUsername(ctx context.Context, username string) (*entity.Principal, error)
	List(ctx context.Context) ([]*entity.Principal, error)
	Update(ctx context.Context, p *entity.Principal) error
	UpdatePassword(ctx context.Context, id, hash string) error
	UpdateImage(ctx context.Context, id, path string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	// ToggleFlag invierte el flag de forma atómica y devuelve el valor resultante.
	ToggleFlag(ctx context.Context, id string, flag PrincipalFlag) (bool, error)
	SetFlag(ctx context.Context, id string, flag PrincipalFlag, value bool) (bool, error)
	Delete(ctx context.Context, id string) error
}
