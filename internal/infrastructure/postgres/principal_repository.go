package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
)

var _ repository.PrincipalRepository = (*PrincipalRepository)(nil)

const principalColumns = `id, username, name, title, address, phone, postal_code, birth_date,
	email, image, nationality_id, password_hash, is_active, is_staff, is_superuser,
	last_login, created_by, created_at`

// PrincipalRepository implementación PostgreSQL de repository.PrincipalRepository.
type PrincipalRepository struct {
	q Querier
}

// NewPrincipalRepository construye el repositorio sobre un pool o una tx.
func NewPrincipalRepository(q Querier) *PrincipalRepository {
	return &PrincipalRepository{q: q}
}

func (r *PrincipalRepository) Create(ctx context.Context, p *entity.Principal) error {
	query := `INSERT INTO principals (` + principalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Username, p.Name, p.Title, p.Address, p.Phone, p.PostalCode, p.BirthDate,
		p.Email, p.Image, p.NationalityID, p.PasswordHash, p.IsActive, p.IsStaff, p.IsSuperuser,
		p.LastLogin, p.CreatedBy, p.CreatedAt,
	)
	return mapWriteErr(err)
}

func (r *PrincipalRepository) get(ctx context.Context, where string, arg any) (*entity.Principal, error) {
	var p entity.Principal
	err := pgxscan.Get(ctx, r.q, &p, `SELECT `+principalColumns+` FROM principals WHERE `+where, arg)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("principal: %w", err)
	}
	return &p, nil
}

func (r *PrincipalRepository) GetByID(ctx context.Context, id string) (*entity.Principal, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *PrincipalRepository) GetByUsername(ctx context.Context, username string) (*entity.Principal, error) {
	return r.get(ctx, "username = $1", username)
}

func (r *PrincipalRepository) List(ctx context.Context) ([]*entity.Principal, error) {
	out := make([]*entity.Principal, 0)
	err := pgxscan.Select(ctx, r.q, &out, `SELECT `+principalColumns+` FROM principals ORDER BY name, username`)
	return out, err
}

func (r *PrincipalRepository) Update(ctx context.Context, p *entity.Principal) error {
	query := `UPDATE principals SET username = $2, name = $3, title = $4, address = $5, phone = $6,
		postal_code = $7, birth_date = $8, email = $9, nationality_id = $10
		WHERE id = $1`
	return affectOne(r.q.Exec(ctx, query,
		p.ID, p.Username, p.Name, p.Title, p.Address, p.Phone,
		p.PostalCode, p.BirthDate, p.Email, p.NationalityID,
	))
}

func (r *PrincipalRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	return affectOne(r.q.Exec(ctx, `UPDATE principals SET password_hash = $2 WHERE id = $1`, id, hash))
}

func (r *PrincipalRepository) UpdateImage(ctx context.Context, id, path string) error {
	return affectOne(r.q.Exec(ctx, `UPDATE principals SET image = $2 WHERE id = $1`, id, path))
}

func (r *PrincipalRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return affectOne(r.q.Exec(ctx, `UPDATE principals SET last_login = $2 WHERE id = $1`, id, at))
}

// flagColumn lista blanca de columnas modificables por toggle/set.
func flagColumn(flag repository.PrincipalFlag) (string, error) {
	switch flag {
	case repository.FlagStaff, repository.FlagActive:
		return string(flag), nil
	}
	return "", domain.NewValidationError("flag", "flag desconocido")
}

func (r *PrincipalRepository) ToggleFlag(ctx context.Context, id string, flag repository.PrincipalFlag) (bool, error) {
	col, err := flagColumn(flag)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`UPDATE principals SET %[1]s = NOT %[1]s WHERE id = $1 RETURNING %[1]s`, col)
	return scanBool(r.q.QueryRow(ctx, query, id))
}

func (r *PrincipalRepository) SetFlag(ctx context.Context, id string, flag repository.PrincipalFlag, value bool) (bool, error) {
	col, err := flagColumn(flag)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`UPDATE principals SET %[1]s = $2 WHERE id = $1 RETURNING %[1]s`, col)
	return scanBool(r.q.QueryRow(ctx, query, id, value))
}

func (r *PrincipalRepository) Delete(ctx context.Context, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM principals WHERE id = $1`, id))
}
