package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// PaperRollDateLayout formato del campo "date" de los pedidos de rollos.
const PaperRollDateLayout = "2006-01-02 15:04"

// LedgerUseCase libros por contrato: rollos de papel (del comercio del
// contrato), pagos, MID revenue y el agregado económico.
type LedgerUseCase struct {
	repos repository.Repositories
	log   *logger.Logger
	now   func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(repos repository.Repositories, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{repos: repos, log: log.Component("ledger"), now: time.Now}
}

// logEntry registra un alta o baja en el libro del contrato.
func (uc *LedgerUseCase) logEntry(kind, action, contractID, id, actorID string) {
	uc.log.Info().
		Str("entry", kind).
		Str("contract_id", contractID).
		Str("entry_id", id).
		Str("actor_id", actorID).
		Msg(action)
}

func (uc *LedgerUseCase) contract(ctx context.Context, id string) (*entity.Contract, error) {
	c, err := uc.repos.Contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// ── Paper rolls ──────────────────────────────────────────────────────────────

func toPaperRollResponse(p *entity.PaperRoll) dto.PaperRollResponse {
	return dto.PaperRollResponse{
		ID:              p.ID,
		Amount:          p.Amount,
		Cost:            p.Cost,
		Price:           p.Price,
		DirectDebitCost: p.DirectDebitCost,
		OrderedDate:     p.OrderedDate,
		Date:            p.OrderedDate.Format(PaperRollDateLayout),
	}
}

// ListPaperRolls pedidos del comercio dueño del contrato.
func (uc *LedgerUseCase) ListPaperRolls(ctx context.Context, contractID string) ([]dto.PaperRollResponse, error) {
	c, err := uc.contract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repos.Ledger.ListPaperRolls(ctx, c.CostumerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaperRollResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPaperRollResponse(p))
	}
	return out, nil
}

// CreatePaperRoll registra un pedido; sin ordered_date se usa la hora actual.
func (uc *LedgerUseCase) CreatePaperRoll(ctx context.Context, actorID, contractID string, in dto.PaperRollRequest) (*dto.PaperRollResponse, error) {
	if in.Amount < 0 {
		return nil, domain.NewValidationError("amount", "no puede ser negativo")
	}
	c, err := uc.contract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	p := &entity.PaperRoll{
		ID:              uuid.New().String(),
		CostumerID:      c.CostumerID,
		Amount:          in.Amount,
		Cost:            in.Cost,
		Price:           in.Price,
		DirectDebitCost: in.DirectDebitCost,
		OrderedDate:     now,
		CreatedBy:       strPtr(actorID),
		CreatedAt:       now,
	}
	if in.OrderedDate != nil {
		p.OrderedDate = *in.OrderedDate
	}
	if err := uc.repos.Ledger.CreatePaperRoll(ctx, p); err != nil {
		return nil, err
	}
	uc.logEntry("paper_roll", "asiento creado", contractID, p.ID, actorID)
	out := toPaperRollResponse(p)
	return &out, nil
}

// DeletePaperRoll borra un pedido del comercio del contrato.
func (uc *LedgerUseCase) DeletePaperRoll(ctx context.Context, actorID, contractID, id string) error {
	c, err := uc.contract(ctx, contractID)
	if err != nil {
		return err
	}
	if err := uc.repos.Ledger.DeletePaperRoll(ctx, c.CostumerID, id); err != nil {
		return err
	}
	uc.logEntry("paper_roll", "asiento eliminado", contractID, id, actorID)
	return nil
}

// ── Payments ─────────────────────────────────────────────────────────────────

func (uc *LedgerUseCase) ListPayments(ctx context.Context, contractID string) ([]dto.PaymentResponse, error) {
	if _, err := uc.contract(ctx, contractID); err != nil {
		return nil, err
	}
	list, err := uc.repos.Ledger.ListPayments(ctx, contractID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PaymentResponse{ID: p.ID, Date: dto.NewDate(p.Date), DirectDebitCost: p.DirectDebitCost})
	}
	return out, nil
}

func (uc *LedgerUseCase) CreatePayment(ctx context.Context, actorID, contractID string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if in.Date.IsZero() {
		return nil, domain.NewValidationError("date", "es requerido")
	}
	if _, err := uc.contract(ctx, contractID); err != nil {
		return nil, err
	}
	p := &entity.Payment{
		ID:              uuid.New().String(),
		ContractID:      contractID,
		Date:            in.Date.Time,
		DirectDebitCost: in.DirectDebitCost,
		CreatedBy:       strPtr(actorID),
		CreatedAt:       uc.now(),
	}
	if err := uc.repos.Ledger.CreatePayment(ctx, p); err != nil {
		return nil, err
	}
	uc.logEntry("payment", "asiento creado", contractID, p.ID, actorID)
	return &dto.PaymentResponse{ID: p.ID, Date: in.Date, DirectDebitCost: p.DirectDebitCost}, nil
}

func (uc *LedgerUseCase) DeletePayment(ctx context.Context, actorID, contractID, id string) error {
	if err := uc.repos.Ledger.DeletePayment(ctx, contractID, id); err != nil {
		return err
	}
	uc.logEntry("payment", "asiento eliminado", contractID, id, actorID)
	return nil
}

// ── MID revenue ──────────────────────────────────────────────────────────────

func (uc *LedgerUseCase) ListMIDRevenues(ctx context.Context, contractID string) ([]dto.MIDRevenueResponse, error) {
	if _, err := uc.contract(ctx, contractID); err != nil {
		return nil, err
	}
	list, err := uc.repos.Ledger.ListMIDRevenues(ctx, contractID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MIDRevenueResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MIDRevenueResponse{ID: m.ID, Income: m.Income, Profit: m.Profit, Date: dto.NewDate(m.Date)})
	}
	return out, nil
}

func (uc *LedgerUseCase) CreateMIDRevenue(ctx context.Context, actorID, contractID string, in dto.MIDRevenueRequest) (*dto.MIDRevenueResponse, error) {
	if in.Date.IsZero() {
		return nil, domain.NewValidationError("date", "es requerido")
	}
	if _, err := uc.contract(ctx, contractID); err != nil {
		return nil, err
	}
	m := &entity.MIDRevenue{
		ID:         uuid.New().String(),
		ContractID: contractID,
		Income:     in.Income,
		Profit:     in.Profit,
		Date:       in.Date.Time,
		CreatedBy:  strPtr(actorID),
		CreatedAt:  uc.now(),
	}
	if err := uc.repos.Ledger.CreateMIDRevenue(ctx, m); err != nil {
		return nil, err
	}
	uc.logEntry("mid_revenue", "asiento creado", contractID, m.ID, actorID)
	return &dto.MIDRevenueResponse{ID: m.ID, Income: m.Income, Profit: m.Profit, Date: in.Date}, nil
}

func (uc *LedgerUseCase) DeleteMIDRevenue(ctx context.Context, actorID, contractID, id string) error {
	if err := uc.repos.Ledger.DeleteMIDRevenue(ctx, contractID, id); err != nil {
		return err
	}
	uc.logEntry("mid_revenue", "asiento eliminado", contractID, id, actorID)
	return nil
}

// ── Revenue ──────────────────────────────────────────────────────────────────

// Revenue agrega las cifras económicas del contrato.
func (uc *LedgerUseCase) Revenue(ctx context.Context, contractID string) (*dto.RevenueResponse, error) {
	c, err := uc.contract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	r, err := computeRevenue(ctx, uc.repos, c)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// computeRevenue suma pagos, MID, rollos del comercio y precios/costos de los
// vínculos. Margin = ingresos (precios + MID profit) - costos (costos + domiciliaciones).
func computeRevenue(ctx context.Context, repos repository.Repositories, c *entity.Contract) (dto.RevenueResponse, error) {
	r := dto.RevenueResponse{ContractID: c.ID}
	payments, err := repos.Ledger.ListPayments(ctx, c.ID)
	if err != nil {
		return r, err
	}
	r.PaymentsCount = len(payments)
	for _, p := range payments {
		r.DirectDebitTotal = r.DirectDebitTotal.Add(p.DirectDebitCost)
	}
	mids, err := repos.Ledger.ListMIDRevenues(ctx, c.ID)
	if err != nil {
		return r, err
	}
	for _, m := range mids {
		r.MIDIncomeTotal = r.MIDIncomeTotal.Add(m.Income)
		r.MIDProfitTotal = r.MIDProfitTotal.Add(m.Profit)
	}
	rolls, err := repos.Ledger.ListPaperRolls(ctx, c.CostumerID)
	if err != nil {
		return r, err
	}
	r.PaperRollsCount = len(rolls)
	for _, p := range rolls {
		r.PaperRollUnits += p.Amount
		r.PaperRollPriceTotal = r.PaperRollPriceTotal.Add(p.Price)
		r.PaperRollCostTotal = r.PaperRollCostTotal.Add(p.Cost).Add(p.DirectDebitCost)
	}
	poses, err := repos.Contracts.ListPOS(ctx, c.ID)
	if err != nil {
		return r, err
	}
	for _, l := range poses {
		r.POSPriceTotal = r.POSPriceTotal.Add(l.Price)
		r.POSCostTotal = r.POSCostTotal.Add(l.HardwareCost).Add(l.SoftwareCost)
	}
	services, err := repos.Contracts.ListServices(ctx, c.ID)
	if err != nil {
		return r, err
	}
	for _, l := range services {
		r.ServicePriceTotal = r.ServicePriceTotal.Add(l.Price)
		r.ServiceCostTotal = r.ServiceCostTotal.Add(l.Cost)
	}
	income := decimal.Sum(r.POSPriceTotal, r.ServicePriceTotal, r.PaperRollPriceTotal, r.MIDProfitTotal)
	cost := decimal.Sum(r.POSCostTotal, r.ServiceCostTotal, r.PaperRollCostTotal, r.DirectDebitTotal)
	r.Margin = income.Sub(cost)
	return r, nil
}
