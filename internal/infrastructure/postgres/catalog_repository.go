package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/domain/rules"
)

var (
	_ repository.CountryRepository        = (*CountryRepository)(nil)
	_ repository.POSCompanyRepository     = (*POSCompanyRepository)(nil)
	_ repository.PosModelRepository       = (*PosModelRepository)(nil)
	_ repository.POSRepository            = (*POSRepository)(nil)
	_ repository.VirtualServiceRepository = (*VirtualServiceRepository)(nil)
)

// getOne ejecuta pgxscan.Get y traduce "sin filas" a (nil, nil).
func getOne[T any](ctx context.Context, q Querier, query string, args ...any) (*T, error) {
	var v T
	if err := pgxscan.Get(ctx, q, &v, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// selectAll ejecuta pgxscan.Select devolviendo un slice no nil.
func selectAll[T any](ctx context.Context, q Querier, query string, args ...any) ([]*T, error) {
	out := make([]*T, 0)
	if err := pgxscan.Select(ctx, q, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// ─── Country ──────────────────────────────────────────────────────────────────

const countryColumns = `id, name, code, abbreviation, is_covered, created_by, created_at`

// CountryRepository implementación PostgreSQL de repository.CountryRepository.
type CountryRepository struct {
	q Querier
}

func NewCountryRepository(q Querier) *CountryRepository {
	return &CountryRepository{q: q}
}

func (r *CountryRepository) Create(ctx context.Context, c *entity.Country) error {
	_, err := r.q.Exec(ctx, `INSERT INTO countries (`+countryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Code, c.Abbreviation, c.IsCovered, c.CreatedBy, c.CreatedAt)
	return mapWriteErr(err)
}

func (r *CountryRepository) GetByID(ctx context.Context, id string) (*entity.Country, error) {
	return getOne[entity.Country](ctx, r.q, `SELECT `+countryColumns+` FROM countries WHERE id = $1`, id)
}

func (r *CountryRepository) List(ctx context.Context) ([]*entity.Country, error) {
	return selectAll[entity.Country](ctx, r.q, `SELECT `+countryColumns+` FROM countries ORDER BY abbreviation, name`)
}

func (r *CountryRepository) Delete(ctx context.Context, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id))
}

func (r *CountryRepository) ToggleCoverage(ctx context.Context, id string) (bool, error) {
	return scanBool(r.q.QueryRow(ctx,
		`UPDATE countries SET is_covered = NOT is_covered WHERE id = $1 RETURNING is_covered`, id))
}

func (r *CountryRepository) SetCoverage(ctx context.Context, id string, value bool) (bool, error) {
	return scanBool(r.q.QueryRow(ctx,
		`UPDATE countries SET is_covered = $2 WHERE id = $1 RETURNING is_covered`, id, value))
}

func (r *CountryRepository) IsUsed(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, `
		SELECT 1 FROM principals WHERE nationality_id = $1
		UNION ALL
		SELECT 1 FROM costumers
		WHERE country_id = $1 OR registered_country_id = $1
		   OR director_nationality_id = $1 OR partner_nationality_id = $1`, id)
}

// ─── POSCompany ───────────────────────────────────────────────────────────────

const companyColumns = `id, name, serial_number_length, created_by, created_at`

// POSCompanyRepository implementación PostgreSQL de repository.POSCompanyRepository.
type POSCompanyRepository struct {
	q Querier
}

func NewPOSCompanyRepository(q Querier) *POSCompanyRepository {
	return &POSCompanyRepository{q: q}
}

func (r *POSCompanyRepository) Create(ctx context.Context, c *entity.POSCompany) error {
	_, err := r.q.Exec(ctx, `INSERT INTO pos_companies (`+companyColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.SerialNumberLength, c.CreatedBy, c.CreatedAt)
	return mapWriteErr(err)
}

func (r *POSCompanyRepository) GetByID(ctx context.Context, id string) (*entity.POSCompany, error) {
	return getOne[entity.POSCompany](ctx, r.q, `SELECT `+companyColumns+` FROM pos_companies WHERE id = $1`, id)
}

func (r *POSCompanyRepository) List(ctx context.Context) ([]repository.POSCompanyListItem, error) {
	out := make([]repository.POSCompanyListItem, 0)
	err := pgxscan.Select(ctx, r.q, &out, `
		SELECT c.id, c.name, c.serial_number_length, c.created_by, c.created_at,
		       (SELECT COUNT(*) FROM pos_models m WHERE m.company_id = c.id) AS model_count
		FROM pos_companies c
		ORDER BY c.name`)
	return out, err
}

func (r *POSCompanyRepository) Update(ctx context.Context, c *entity.POSCompany) error {
	return affectOne(r.q.Exec(ctx,
		`UPDATE pos_companies SET name = $2, serial_number_length = $3 WHERE id = $1`,
		c.ID, c.Name, c.SerialNumberLength))
}

func (r *POSCompanyRepository) Delete(ctx context.Context, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM pos_companies WHERE id = $1`, id))
}

func (r *POSCompanyRepository) IsUsed(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, `SELECT 1 FROM pos_models WHERE company_id = $1`, id)
}

// ─── PosModel ─────────────────────────────────────────────────────────────────

const modelColumns = `id, name, company_id, hardware_cost, software_cost, price, created_by, created_at`

// PosModelRepository implementación PostgreSQL de repository.PosModelRepository.
type PosModelRepository struct {
	q Querier
}

func NewPosModelRepository(q Querier) *PosModelRepository {
	return &PosModelRepository{q: q}
}

func (r *PosModelRepository) Create(ctx context.Context, m *entity.PosModel) error {
	_, err := r.q.Exec(ctx, `INSERT INTO pos_models (`+modelColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.Name, m.CompanyID, m.HardwareCost, m.SoftwareCost, m.Price, m.CreatedBy, m.CreatedAt)
	return mapWriteErr(err)
}

func (r *PosModelRepository) GetByID(ctx context.Context, id string) (*entity.PosModel, error) {
	return getOne[entity.PosModel](ctx, r.q, `SELECT `+modelColumns+` FROM pos_models WHERE id = $1`, id)
}

func (r *PosModelRepository) List(ctx context.Context, companyID string) ([]*entity.PosModel, error) {
	q := psql.Select(modelColumns).From("pos_models").OrderBy("name")
	if companyID != "" {
		q = q.Where(squirrel.Eq{"company_id": companyID})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return selectAll[entity.PosModel](ctx, r.q, sql, args...)
}

func (r *PosModelRepository) Update(ctx context.Context, m *entity.PosModel) error {
	return affectOne(r.q.Exec(ctx, `UPDATE pos_models
		SET name = $2, company_id = $3, hardware_cost = $4, software_cost = $5, price = $6
		WHERE id = $1`,
		m.ID, m.Name, m.CompanyID, m.HardwareCost, m.SoftwareCost, m.Price))
}

func (r *PosModelRepository) Delete(ctx context.Context, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM pos_models WHERE id = $1`, id))
}

func (r *PosModelRepository) IsUsed(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, `SELECT 1 FROM poses WHERE model_id = $1`, id)
}

// ─── POS ──────────────────────────────────────────────────────────────────────

const posColumns = `id, serial_number, type, model_id, note, ownership, is_active, status, created_by, created_at`

// posDetailSelect POS con su modelo y empresa (lecturas).
var posDetailSelect = psql.Select(
	"p.id", "p.serial_number", "p.type", "p.model_id", "p.note", "p.ownership",
	"p.is_active", "p.status", "p.created_by", "p.created_at",
	"m.id", "m.name", "m.company_id", "m.hardware_cost", "m.software_cost", "m.price",
	"m.created_by", "m.created_at",
	"c.id", "c.name", "c.serial_number_length", "c.created_by", "c.created_at",
).From("poses p").
	Join("pos_models m ON m.id = p.model_id").
	Join("pos_companies c ON c.id = m.company_id")

func scanPOSDetail(row pgx.Row) (*entity.POSDetail, error) {
	var d entity.POSDetail
	err := row.Scan(
		&d.ID, &d.SerialNumber, &d.Type, &d.ModelID, &d.Note, &d.Ownership,
		&d.IsActive, &d.Status, &d.POS.CreatedBy, &d.POS.CreatedAt,
		&d.Model.ID, &d.Model.Name, &d.Model.CompanyID, &d.Model.HardwareCost, &d.Model.SoftwareCost,
		&d.Model.Price, &d.Model.CreatedBy, &d.Model.CreatedAt,
		&d.Company.ID, &d.Company.Name, &d.Company.SerialNumberLength, &d.Company.CreatedBy, &d.Company.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// POSRepository implementación PostgreSQL de repository.POSRepository.
type POSRepository struct {
	q Querier
}

func NewPOSRepository(q Querier) *POSRepository {
	return &POSRepository{q: q}
}

func (r *POSRepository) Create(ctx context.Context, p *entity.POS) error {
	_, err := r.q.Exec(ctx, `INSERT INTO poses (`+posColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.SerialNumber, p.Type, p.ModelID, p.Note, p.Ownership, p.IsActive, p.Status, p.CreatedBy, p.CreatedAt)
	return mapWriteErr(err)
}

func (r *POSRepository) GetByID(ctx context.Context, id string) (*entity.POS, error) {
	return getOne[entity.POS](ctx, r.q, `SELECT `+posColumns+` FROM poses WHERE id = $1`, id)
}

func (r *POSRepository) GetDetail(ctx context.Context, id string) (*entity.POSDetail, error) {
	sql, args, err := posDetailSelect.Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	d, err := scanPOSDetail(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (r *POSRepository) List(ctx context.Context, f repository.POSFilter) ([]*entity.POSDetail, error) {
	q := posDetailSelect.OrderBy("p.serial_number")
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"p.status": f.Status})
	}
	if f.ModelID != "" {
		q = q.Where(squirrel.Eq{"p.model_id": f.ModelID})
	}
	if f.Type != "" {
		q = q.Where(squirrel.Eq{"p.type": f.Type})
	}
	if f.Active != nil {
		q = q.Where(squirrel.Eq{"p.is_active": *f.Active})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*entity.POSDetail, 0)
	for rows.Next() {
		d, err := scanPOSDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *POSRepository) Update(ctx context.Context, p *entity.POS) error {
	return affectOne(r.q.Exec(ctx, `UPDATE poses
		SET serial_number = $2, type = $3, model_id = $4, note = $5, ownership = $6, is_active = $7, status = $8
		WHERE id = $1`,
		p.ID, p.SerialNumber, p.Type, p.ModelID, p.Note, p.Ownership, p.IsActive, p.Status))
}

func (r *POSRepository) Delete(ctx context.Context, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM poses WHERE id = $1`, id))
}

func (r *POSRepository) ToggleActive(ctx context.Context, id string) (bool, error) {
	return scanBool(r.q.QueryRow(ctx,
		`UPDATE poses SET is_active = NOT is_active WHERE id = $1 RETURNING is_active`, id))
}

func (r *POSRepository) SetActive(ctx context.Context, id string, value bool) (bool, error) {
	return scanBool(r.q.QueryRow(ctx,
		`UPDATE poses SET is_active = $2 WHERE id = $1 RETURNING is_active`, id, value))
}

func (r *POSRepository) IsUsed(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, `SELECT 1 FROM contract_poses WHERE pos_id = $1`, id)
}

func (r *POSRepository) Statuses(ctx context.Context) (map[string]string, error) {
	rows, err := r.q.Query(ctx, `SELECT id, status FROM poses`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var id, status string
		if err := rows.Scan(&id, &status); err != nil {
			return nil, err
		}
		out[id] = status
	}
	return out, rows.Err()
}

// SetStatuses envía un UPDATE por POS en un único batch.
func (r *POSRepository) SetStatuses(ctx context.Context, statuses map[string]string) error {
	if len(statuses) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for id, status := range statuses {
		batch.Queue(`UPDATE poses SET status = $2 WHERE id = $1`, id, status)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range statuses {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("actualizar estado de POS: %w", err)
		}
	}
	return nil
}

func (r *POSRepository) ContractWindows(ctx context.Context, posIDs []string) (map[string][]rules.ContractWindow, error) {
	q := psql.Select("l.pos_id", "c.id", "c.live_date", "c.end_date", "c.created_at").
		From("contract_poses l").
		Join("contracts c ON c.id = l.contract_id")
	if len(posIDs) > 0 {
		q = q.Where(squirrel.Eq{"l.pos_id": posIDs})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string][]rules.ContractWindow)
	for rows.Next() {
		var posID string
		var w rules.ContractWindow
		if err := rows.Scan(&posID, &w.ContractID, &w.LiveDate, &w.EndDate, &w.CreatedAt); err != nil {
			return nil, err
		}
		out[posID] = append(out[posID], w)
	}
	return out, rows.Err()
}

// ─── VirtualService ───────────────────────────────────────────────────────────

const serviceColumns = `id, name, price, cost, availability, created_by, created_at`

// VirtualServiceRepository implementación PostgreSQL de repository.VirtualServiceRepository.
type VirtualServiceRepository struct {
	q Querier
}

func NewVirtualServiceRepository(q Querier) *VirtualServiceRepository {
	return &VirtualServiceRepository{q: q}
}

func (r *VirtualServiceRepository) Create(ctx context.Context, s *entity.VirtualService) error {
	_, err := r.q.Exec(ctx, `INSERT INTO virtual_services (`+serviceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.Price, s.Cost, s.Availability, s.CreatedBy, s.CreatedAt)
	return mapWriteErr(err)
}

func (r *VirtualServiceRepository) GetByID(ctx context.Context, id string) (*entity.VirtualService, error) {
	return getOne[entity.VirtualService](ctx, r.q, `SELECT `+serviceColumns+` FROM virtual_services WHERE id = $1`, id)
}

func (r *VirtualServiceRepository) List(ctx context.Context) ([]*entity.VirtualService, error) {
	return selectAll[entity.VirtualService](ctx, r.q, `SELECT `+serviceColumns+` FROM virtual_services ORDER BY name`)
}

func (r *VirtualServiceRepository) Update(ctx context.Context, s *entity.VirtualService) error {
	return affectOne(r.q.Exec(ctx, `UPDATE virtual_services
		SET name = $2, price = $3, cost = $4, availability = $5
		WHERE id = $1`,
		s.ID, s.Name, s.Price, s.Cost, s.Availability))
}

func (r *VirtualServiceRepository) Delete(ctx context.Context, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM virtual_services WHERE id = $1`, id))
}

func (r *VirtualServiceRepository) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	return scanBool(r.q.QueryRow(ctx,
		`UPDATE virtual_services SET availability = NOT availability WHERE id = $1 RETURNING availability`, id))
}

func (r *VirtualServiceRepository) SetAvailability(ctx context.Context, id string, value bool) (bool, error) {
	return scanBool(r.q.QueryRow(ctx,
		`UPDATE virtual_services SET availability = $2 WHERE id = $1 RETURNING availability`, id, value))
}

func (r *VirtualServiceRepository) IsUsed(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.q, `SELECT 1 FROM contract_services WHERE service_id = $1`, id)
}
