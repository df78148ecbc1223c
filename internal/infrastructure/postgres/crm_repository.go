package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
)

var (
	_ repository.MarketingGoalRepository = (*MarketingGoalRepository)(nil)
	_ repository.CostumerRepository      = (*CostumerRepository)(nil)
	_ repository.ContractRepository      = (*ContractRepository)(nil)
)

// ─── MarketingGoal ────────────────────────────────────────────────────────────

const goalColumns = `id, trading_name, legal_name, business_field, land_line, trading_address,
	postal_code, decision_maker, mobile, email, website, status, note,
	created_by, last_update_by, created_at, updated_at`

// MarketingGoalRepository implementación PostgreSQL de repository.MarketingGoalRepository.
type MarketingGoalRepository struct {
	q Querier
}

func NewMarketingGoalRepository(q Querier) *MarketingGoalRepository {
	return &MarketingGoalRepository{q: q}
}

func (r *MarketingGoalRepository) Create(ctx context.Context, g *entity.MarketingGoal) error {
	_, err := r.q.Exec(ctx, `INSERT INTO marketing_goals (`+goalColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		g.ID, g.TradingName, g.LegalName, g.BusinessField, g.LandLine, g.TradingAddress,
		g.PostalCode, g.DecisionMaker, g.Mobile, g.Email, g.Website, g.Status, g.Note,
		g.CreatedBy, g.LastUpdateBy, g.CreatedAt, g.UpdatedAt)
	return mapWriteErr(err)
}

func (r *MarketingGoalRepository) GetByID(ctx context.Context, id string) (*entity.MarketingGoal, error) {
	return getOne[entity.MarketingGoal](ctx, r.q, `SELECT `+goalColumns+` FROM marketing_goals WHERE id = $1`, id)
}

func (r *MarketingGoalRepository) List(ctx context.Context, status string) ([]*entity.MarketingGoal, error) {
	q := psql.Select(goalColumns).From("marketing_goals").OrderBy("created_at DESC")
	if status != "" {
		q = q.Where(squirrel.Eq{"status": status})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return selectAll[entity.MarketingGoal](ctx, r.q, sql, args...)
}

func (r *MarketingGoalRepository) Update(ctx context.Context, g *entity.MarketingGoal) error {
	return affectOne(r.q.Exec(ctx, `UPDATE marketing_goals
		SET trading_name = $2, legal_name = $3, business_field = $4, land_line = $5,
		    trading_address = $6, postal_code = $7, decision_maker = $8, mobile = $9,
		    email = $10, website = $11, status = $12, note = $13,
		    last_update_by = $14, updated_at = $15
		WHERE id = $1`,
		g.ID, g.TradingName, g.LegalName, g.BusinessField, g.LandLine,
		g.TradingAddress, g.PostalCode, g.DecisionMaker, g.Mobile,
		g.Email, g.Website, g.Status, g.Note,
		g.LastUpdateBy, g.UpdatedAt))
}

func (r *MarketingGoalRepository) Delete(ctx context.Context, id string) error {
	return affectOne(r.q.Exec(ctx, `DELETE FROM marketing_goals WHERE id = $1`, id))
}

// ─── Costumer ─────────────────────────────────────────────────────────────────

const costumerColumns = `id, trading_name, legal_name, business_type, legal_entity, business_date,
	registered_address, registered_postal_code, country_id, registered_country_id,
	business_postal_code, company_number, company_mobile, land_line, business_email, website,
	director_name, director_phone, director_email, director_address, director_postal_code,
	director_nationality_id, director_birth_date, note,
	sort_code, issuing_bank, account_number, business_bank_name,
	partner_name, partner_address, partner_nationality_id, shareholder,
	pob, kyc1_id, kyc2_address_proof, kyb_premises_photo, kyb_trading_address_proof,
	created_by, last_updated_by, created_at, updated_at`

// costumerFields orden de columnas de costumerColumns.
func costumerFields(c *entity.Costumer) []any {
	return []any{
		&c.ID, &c.TradingName, &c.LegalName, &c.BusinessType, &c.LegalEntity, &c.BusinessDate,
		&c.RegisteredAddress, &c.RegisteredPostalCode, &c.CountryID, &c.RegisteredCountryID,
		&c.BusinessPostalCode, &c.CompanyNumber, &c.CompanyMobile, &c.LandLine, &c.BusinessEmail, &c.Website,
		&c.DirectorName, &c.DirectorPhone, &c.DirectorEmail, &c.DirectorAddress, &c.DirectorPostalCode,
		&c.DirectorNationalityID, &c.DirectorBirthDate, &c.Note,
		&c.SortCode, &c.IssuingBank, &c.AccountNumber, &c.BusinessBankName,
		&c.PartnerName, &c.PartnerAddress, &c.PartnerNationalityID, &c.Shareholder,
		&c.Documents.POB, &c.Documents.KYC1ID, &c.Documents.KYC2AddressProof,
		&c.Documents.KYBPremisesPhoto, &c.Documents.KYBTradingAddressProof,
		&c.CreatedBy, &c.LastUpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	}
}

// CostumerRepository implementación PostgreSQL de repository.CostumerRepository.
type CostumerRepository struct {
	q Querier
}

func NewCostumerRepository(q Querier) *CostumerRepository {
	return &CostumerRepository{q: q}
}

func (r *CostumerRepository) Create(ctx context.Context, c *entity.Costumer) error {
	args := []any{
		c.ID, c.TradingName, c.LegalName, c.BusinessType, c.LegalEntity, c.BusinessDate,
		c.RegisteredAddress, c.RegisteredPostalCode, c.CountryID, c.RegisteredCountryID,
		c.BusinessPostalCode, c.CompanyNumber, c.CompanyMobile, c.LandLine, c.BusinessEmail, c.Website,
		c.DirectorName, c.DirectorPhone, c.DirectorEmail, c.DirectorAddress, c.DirectorPostalCode,
		c.DirectorNationalityID, c.DirectorBirthDate, c.Note,
		c.SortCode, c.IssuingBank, c.AccountNumber, c.BusinessBankName,
		c.PartnerName, c.PartnerAddress, c.PartnerNationalityID, c.Shareholder,
		c.Documents.POB, c.Documents.KYC1ID, c.Documents.KYC2AddressProof,
		c.Documents.KYBPremisesPhoto, c.Documents.KYBTradingAddressProof,
		c.CreatedBy, c.LastUpdatedBy, c.CreatedAt, c.UpdatedAt,
	}
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := `INSERT INTO costumers (` + costumerColumns + `) VALUES (` + strings.Join(placeholders, ", ") + `)`
	_, err := r.q.Exec(ctx, query, args...)
	return mapWriteErr(err)
}

func (r *CostumerRepository) GetByID(ctx context.Context, id string) (*entity.Costumer, error) {
	var c entity.Costumer
	err := r.q.QueryRow(ctx, `SELECT `+costumerColumns+` FROM costumers WHERE id = $1`, id).Scan(costumerFields(&c)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Update no toca documentos ni datos de alta.
func (r *CostumerRepository) Update(ctx context.Context, c *entity.Costumer) error {
	return affectOne(r.q.Exec(ctx, `UPDATE costumers SET
		trading_name = $2, legal_name = $3, business_type = $4, legal_entity = $5, business_date = $6,
		registered_address = $7, registered_postal_code = $8, country_id = $9, registered_country_id = $10,
		business_postal_code = $11, company_number = $12, company_mobile = $13, land_line = $14,
		business_email = $15, website = $16,
		director_name = $17, director_phone = $18, director_email = $19, director_address = $20,
		director_postal_code = $21, director_nationality_id = $22, director_birth_date = $23, note = $24,
		sort_code = $25, issuing_bank = $26, account_number = $27, business_bank_name = $28,
		partner_name = $29, partner_address = $30, partner_nationality_id = $31, shareholder = $32,
		last_updated_by = $33, updated_at = $34
		WHERE id = $1`,
		c.ID, c.TradingName, c.LegalName, c.BusinessType, c.LegalEntity, c.BusinessDate,
		c.RegisteredAddress, c.RegisteredPostalCode, c.CountryID, c.RegisteredCountryID,
		c.BusinessPostalCode, c.CompanyNumber, c.CompanyMobile, c.LandLine,
		c.BusinessEmail, c.Website,
		c.DirectorName, c.DirectorPhone, c.DirectorEmail, c.DirectorAddress,
		c.DirectorPostalCode, c.DirectorNationalityID, c.DirectorBirthDate, c.Note,
		c.SortCode, c.IssuingBank, c.AccountNumber, c.BusinessBankName,
		c.PartnerName, c.PartnerAddress, c.PartnerNationalityID, c.Shareholder,
		c.LastUpdatedBy, c.UpdatedAt,
	))
}

func (r *CostumerRepository) ListMini(ctx context.Context) ([]repository.CostumerMini, error) {
	rows, err := r.q.Query(ctx, `SELECT id, legal_name, trading_name FROM costumers ORDER BY legal_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]repository.CostumerMini, 0)
	for rows.Next() {
		var m repository.CostumerMini
		if err := rows.Scan(&m.ID, &m.LegalName, &m.TradingName); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *CostumerRepository) UpdateDocuments(ctx context.Context, id string, d entity.CostumerDocuments) error {
	return affectOne(r.q.Exec(ctx, `UPDATE costumers SET
		pob = $2, kyc1_id = $3, kyc2_address_proof = $4, kyb_premises_photo = $5, kyb_trading_address_proof = $6
		WHERE id = $1`,
		id, d.POB, d.KYC1ID, d.KYC2AddressProof, d.KYBPremisesPhoto, d.KYBTradingAddressProof))
}

func (r *CostumerRepository) AddTradingAddress(ctx context.Context, a *entity.TradingAddress) error {
	_, err := r.q.Exec(ctx, `INSERT INTO trading_addresses (id, address, costumer_id) VALUES ($1, $2, $3)`,
		a.ID, a.Address, a.CostumerID)
	return mapWriteErr(err)
}

// ListTradingAddresses en orden de alta.
func (r *CostumerRepository) ListTradingAddresses(ctx context.Context, costumerID string) ([]*entity.TradingAddress, error) {
	return selectAll[entity.TradingAddress](ctx, r.q,
		`SELECT id, address, costumer_id FROM trading_addresses WHERE costumer_id = $1 ORDER BY position`, costumerID)
}

// ─── Contract ─────────────────────────────────────────────────────────────────

const contractColumns = `id, costumer_id, face_to_face_sales, atv, annual_card_turnover, annual_total_turnover,
	interchange_visa, interchange_mastercard, authorization_fee, pci_dss, amex_fee, acquirer,
	mid, ecommerce_mid, amex_mid, tid,
	pci_due_date, live_date, end_date, ecommerce_live_date, ecommerce_end_date,
	total_cost, total_price,
	acquirer_application, financial_report, vat_return, fd_consent, credit_search,
	created_by, created_at`

func contractFields(c *entity.Contract) []any {
	return []any{
		&c.ID, &c.CostumerID, &c.FaceToFaceSales, &c.ATV, &c.AnnualCardTurnover, &c.AnnualTotalTurnover,
		&c.InterchangeVisa, &c.InterchangeMasterCard, &c.AuthorizationFee, &c.PCIDSS, &c.AmexFee, &c.Acquirer,
		&c.MID, &c.ECommerceMID, &c.AmexMID, &c.TID,
		&c.PCIDueDate, &c.LiveDate, &c.EndDate, &c.ECommerceLiveDate, &c.ECommerceEndDate,
		&c.TotalCost, &c.TotalPrice,
		&c.Documents.AcquirerApplication, &c.Documents.FinancialReport, &c.Documents.VATReturn,
		&c.Documents.FDConsent, &c.Documents.CreditSearch,
		&c.CreatedBy, &c.CreatedAt,
	}
}

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var c entity.Contract
	if err := row.Scan(contractFields(&c)...); err != nil {
		return nil, err
	}
	return &c, nil
}

// ContractRepository implementación PostgreSQL de repository.ContractRepository.
type ContractRepository struct {
	q Querier
}

func NewContractRepository(q Querier) *ContractRepository {
	return &ContractRepository{q: q}
}

func (r *ContractRepository) Create(ctx context.Context, c *entity.Contract) error {
	_, err := r.q.Exec(ctx, `INSERT INTO contracts (`+contractColumns+`) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)`,
		c.ID, c.CostumerID, c.FaceToFaceSales, c.ATV, c.AnnualCardTurnover, c.AnnualTotalTurnover,
		c.InterchangeVisa, c.InterchangeMasterCard, c.AuthorizationFee, c.PCIDSS, c.AmexFee, c.Acquirer,
		c.MID, c.ECommerceMID, c.AmexMID, c.TID,
		c.PCIDueDate, c.LiveDate, c.EndDate, c.ECommerceLiveDate, c.ECommerceEndDate,
		c.TotalCost, c.TotalPrice,
		c.Documents.AcquirerApplication, c.Documents.FinancialReport, c.Documents.VATReturn,
		c.Documents.FDConsent, c.Documents.CreditSearch,
		c.CreatedBy, c.CreatedAt)
	return mapWriteErr(err)
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	c, err := scanContract(r.q.QueryRow(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Update no toca documentos ni datos de alta.
func (r *ContractRepository) Update(ctx context.Context, c *entity.Contract) error {
	return affectOne(r.q.Exec(ctx, `UPDATE contracts SET
		costumer_id = $2, face_to_face_sales = $3, atv = $4, annual_card_turnover = $5,
		annual_total_turnover = $6, interchange_visa = $7, interchange_mastercard = $8,
		authorization_fee = $9, pci_dss = $10, amex_fee = $11, acquirer = $12,
		mid = $13, ecommerce_mid = $14, amex_mid = $15, tid = $16,
		pci_due_date = $17, live_date = $18, end_date = $19,
		ecommerce_live_date = $20, ecommerce_end_date = $21,
		total_cost = $22, total_price = $23
		WHERE id = $1`,
		c.ID, c.CostumerID, c.FaceToFaceSales, c.ATV, c.AnnualCardTurnover,
		c.AnnualTotalTurnover, c.InterchangeVisa, c.InterchangeMasterCard,
		c.AuthorizationFee, c.PCIDSS, c.AmexFee, c.Acquirer,
		c.MID, c.ECommerceMID, c.AmexMID, c.TID,
		c.PCIDueDate, c.LiveDate, c.EndDate,
		c.ECommerceLiveDate, c.ECommerceEndDate,
		c.TotalCost, c.TotalPrice,
	))
}

func (r *ContractRepository) List(ctx context.Context, f repository.ContractFilter) ([]*entity.Contract, error) {
	q := psql.Select(contractColumns).From("contracts").OrderBy("created_at DESC", "id DESC")
	if f.Acquirer != "" {
		q = q.Where(squirrel.Eq{"acquirer": f.Acquirer})
	}
	if f.CostumerID != "" {
		q = q.Where(squirrel.Eq{"costumer_id": f.CostumerID})
	}
	if f.ActiveOn != nil {
		day := f.ActiveOn.Format("2006-01-02")
		q = q.Where(squirrel.And{
			squirrel.LtOrEq{"live_date": day},
			squirrel.GtOrEq{"end_date": day},
		})
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
	out := make([]*entity.Contract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ContractRepository) UpdateDocuments(ctx context.Context, id string, d entity.ContractDocuments) error {
	return affectOne(r.q.Exec(ctx, `UPDATE contracts SET
		acquirer_application = $2, financial_report = $3, vat_return = $4, fd_consent = $5, credit_search = $6
		WHERE id = $1`,
		id, d.AcquirerApplication, d.FinancialReport, d.VATReturn, d.FDConsent, d.CreditSearch))
}

const contractPOSColumns = `id, contract_id, pos_id, price, hardware_cost, software_cost, created_by, created_at`

func scanContractPOS(row pgx.Row) (*entity.ContractPOS, error) {
	var l entity.ContractPOS
	err := row.Scan(&l.ID, &l.ContractID, &l.POSID, &l.Price, &l.HardwareCost, &l.SoftwareCost, &l.CreatedBy, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ContractRepository) AddPOS(ctx context.Context, l *entity.ContractPOS) error {
	_, err := r.q.Exec(ctx, `INSERT INTO contract_poses (`+contractPOSColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.ContractID, l.POSID, l.Price, l.HardwareCost, l.SoftwareCost, l.CreatedBy, l.CreatedAt)
	return mapWriteErr(err)
}

func (r *ContractRepository) ListPOS(ctx context.Context, contractID string) ([]*entity.ContractPOS, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+contractPOSColumns+` FROM contract_poses WHERE contract_id = $1 ORDER BY created_at, id`, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*entity.ContractPOS, 0)
	for rows.Next() {
		l, err := scanContractPOS(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *ContractRepository) GetPOSLink(ctx context.Context, id string) (*entity.ContractPOS, error) {
	l, err := scanContractPOS(r.q.QueryRow(ctx, `SELECT `+contractPOSColumns+` FROM contract_poses WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func (r *ContractRepository) UpdatePOSLink(ctx context.Context, l *entity.ContractPOS) error {
	return affectOne(r.q.Exec(ctx, `UPDATE contract_poses
		SET contract_id = $2, pos_id = $3, price = $4, hardware_cost = $5, software_cost = $6
		WHERE id = $1`,
		l.ID, l.ContractID, l.POSID, l.Price, l.HardwareCost, l.SoftwareCost))
}

const contractServiceColumns = `id, contract_id, service_id, price, cost, created_by, created_at`

func scanContractService(row pgx.Row) (*entity.ContractService, error) {
	var l entity.ContractService
	if err := row.Scan(&l.ID, &l.ContractID, &l.ServiceID, &l.Price, &l.Cost, &l.CreatedBy, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ContractRepository) AddService(ctx context.Context, l *entity.ContractService) error {
	_, err := r.q.Exec(ctx, `INSERT INTO contract_services (`+contractServiceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.ContractID, l.ServiceID, l.Price, l.Cost, l.CreatedBy, l.CreatedAt)
	return mapWriteErr(err)
}

func (r *ContractRepository) ListServices(ctx context.Context, contractID string) ([]*entity.ContractService, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+contractServiceColumns+` FROM contract_services WHERE contract_id = $1 ORDER BY created_at, id`, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*entity.ContractService, 0)
	for rows.Next() {
		l, err := scanContractService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *ContractRepository) GetServiceLink(ctx context.Context, id string) (*entity.ContractService, error) {
	l, err := scanContractService(r.q.QueryRow(ctx, `SELECT `+contractServiceColumns+` FROM contract_services WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func (r *ContractRepository) UpdateServiceLink(ctx context.Context, l *entity.ContractService) error {
	return affectOne(r.q.Exec(ctx, `UPDATE contract_services
		SET contract_id = $2, service_id = $3, price = $4, cost = $5
		WHERE id = $1`,
		l.ID, l.ContractID, l.ServiceID, l.Price, l.Cost))
}
