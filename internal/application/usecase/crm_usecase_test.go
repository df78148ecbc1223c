package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/domain/rules"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Estado de POS derivado de contratos vigentes
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_ListadoRefrescaYDevuelveContrato(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	modelID := e.seedModel(t, "PAX", 4)
	busy := e.seedPOS(t, modelID, "0001")
	free := e.seedPOS(t, modelID, "0002")
	costumerID := e.seedCostumer(t)

	active := e.seedContract(t, costumerID, today.AddDate(0, -1, 0), today.AddDate(0, 1, 0))
	expired := e.seedContract(t, costumerID, today.AddDate(-1, 0, 0), today.AddDate(0, 0, -1))
	_, err := e.contracts().AddPOS(ctx, actor, active, dto.ContractPOSRequest{POSID: busy})
	require.NoError(t, err)
	_, err = e.contracts().AddPOS(ctx, actor, expired, dto.ContractPOSRequest{POSID: free})
	require.NoError(t, err)

	list, err := e.poses().List(ctx, dto.POSListQuery{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "0001", list[0].SerialNumber)
	assert.Equal(t, entity.POSStatusUnavailable, list[0].Status)
	assert.Equal(t, active, list[0].ContractID)
	assert.Equal(t, entity.POSStatusAvailable, list[1].Status)
	assert.Empty(t, list[1].ContractID)

	unavailable, err := e.poses().List(ctx, dto.POSListQuery{Status: entity.POSStatusUnavailable})
	require.NoError(t, err)
	require.Len(t, unavailable, 1)
	assert.Equal(t, busy, unavailable[0].ID)
}

func TestStatus_LimitesDeLaVentanaSonInclusivos(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	modelID := e.seedModel(t, "PAX", 4)
	first := e.seedPOS(t, modelID, "0001")
	last := e.seedPOS(t, modelID, "0002")
	costumerID := e.seedCostumer(t)

	startsToday := e.seedContract(t, costumerID, today, today.AddDate(0, 1, 0))
	endsToday := e.seedContract(t, costumerID, today.AddDate(0, -1, 0), today)
	_, err := e.contracts().AddPOS(ctx, actor, startsToday, dto.ContractPOSRequest{POSID: first})
	require.NoError(t, err)
	_, err = e.contracts().AddPOS(ctx, actor, endsToday, dto.ContractPOSRequest{POSID: last})
	require.NoError(t, err)

	list, err := e.poses().List(ctx, dto.POSListQuery{})
	require.NoError(t, err)
	for _, p := range list {
		assert.Equal(t, entity.POSStatusUnavailable, p.Status, p.SerialNumber)
	}
}

func TestStatus_UpdateDeContratoRefrescaSusPOS(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	posID := e.seedPOS(t, e.seedModel(t, "PAX", 4), "0001")
	contractID := e.seedContract(t, e.seedCostumer(t), today.AddDate(0, -1, 0), today.AddDate(0, 1, 0))

	link, err := e.contracts().AddPOS(ctx, actor, contractID, dto.ContractPOSRequest{POSID: posID})
	require.NoError(t, err)
	require.NotNil(t, link.POSDetail)
	assert.Equal(t, entity.POSStatusUnavailable, link.POSDetail.Status)

	_, err = e.contracts().Update(ctx, actor, contractID, patch(func(in *dto.ContractRequest) {
		in.EndDate = dto.NewDate(today.AddDate(0, 0, -1))
	}))
	require.NoError(t, err)

	p, err := e.repos.POS.GetByID(ctx, posID)
	require.NoError(t, err)
	assert.Equal(t, entity.POSStatusAvailable, p.Status, "sin esperar al próximo listado")
}

func TestStatus_SolapeGanaElContratoMasReciente(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	posID := e.seedPOS(t, e.seedModel(t, "PAX", 4), "0001")
	costumerID := e.seedCostumer(t)
	older := e.seedContract(t, costumerID, today.AddDate(0, -2, 0), today.AddDate(0, 2, 0))
	_, err := e.contracts().AddPOS(ctx, actor, older, dto.ContractPOSRequest{POSID: posID})
	require.NoError(t, err)

	newer := e.seedContract(t, costumerID, today.AddDate(0, -1, 0), today.AddDate(0, 1, 0))
	_, err = e.contracts().AddPOS(ctx, actor, newer, dto.ContractPOSRequest{POSID: posID})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := e.poses().Get(ctx, posID)
		require.NoError(t, err)
		assert.Equal(t, newer, got.ContractID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Contratos
// ──────────────────────────────────────────────────────────────────────────────

func TestContract_Validaciones(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	costumerID := e.seedCostumer(t)

	in := contractFor(costumerID, today, today.AddDate(0, 0, -1))
	_, err := e.contracts().Create(ctx, actor, in)
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "end_date", ve.Field)

	in = contractFor(costumerID, today, today)
	in.FaceToFaceSales = 101
	_, err = e.contracts().Create(ctx, actor, in)
	ve, ok = domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "face_to_face_sales", ve.Field)

	in = contractFor(costumerID, today, today)
	in.Acquirer = "XX"
	_, err = e.contracts().Create(ctx, actor, in)
	ve, ok = domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "acquirer", ve.Field)

	_, err = e.contracts().Create(ctx, actor, contractFor("no-existe", today, today))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContract_ListaConFiltros(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	costumerID := e.seedCostumer(t)
	current := e.seedContract(t, costumerID, today.AddDate(0, -1, 0), today.AddDate(0, 1, 0))
	fd := contractFor(costumerID, today.AddDate(-2, 0, 0), today.AddDate(-1, 0, 0))
	fd.Acquirer = "FD"
	_, err := e.contracts().Create(ctx, actor, fd)
	require.NoError(t, err)

	all, err := e.contracts().List(ctx, dto.ContractListQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Central Foods Ltd", all[0].Costumer.LegalName)
	assert.Equal(t, "Restaurants, Pubs and Fast Food", all[0].BusinessType)

	activeOn, err := e.contracts().List(ctx, dto.ContractListQuery{ActiveOn: today.Format("2006-01-02")})
	require.NoError(t, err)
	require.Len(t, activeOn, 1)
	assert.Equal(t, current, activeOn[0].ID)

	onlyFD, err := e.contracts().List(ctx, dto.ContractListQuery{Acquirer: "FD"})
	require.NoError(t, err)
	assert.Len(t, onlyFD, 1)

	_, err = e.contracts().List(ctx, dto.ContractListQuery{ActiveOn: "15/06/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContract_SolutionsEsAtomico(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	posID := e.seedPOS(t, e.seedModel(t, "PAX", 4), "0001")
	svc, err := e.services().Create(ctx, actor, dto.ServiceRequest{Name: "Pay by link"})
	require.NoError(t, err)
	contractID := e.seedContract(t, e.seedCostumer(t), today, today.AddDate(1, 0, 0))

	_, err = e.contracts().Attach(ctx, actor, contractID, dto.SolutionsRequest{
		Services: []dto.SolutionService{{ID: svc.ID, Price: decimal.NewFromInt(10)}},
		POSes:    []dto.SolutionPOS{{ID: posID}, {ID: "no-existe"}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	services, err := e.contracts().ListServices(ctx, contractID)
	require.NoError(t, err)
	assert.Empty(t, services, "el lote fallido no deja vínculos parciales")
	poses, err := e.contracts().ListPOS(ctx, contractID)
	require.NoError(t, err)
	assert.Empty(t, poses)

	res, err := e.contracts().Attach(ctx, actor, contractID, dto.SolutionsRequest{
		Services: []dto.SolutionService{{ID: svc.ID, Price: decimal.NewFromInt(10), Cost: decimal.NewFromInt(4)}},
		POSes:    []dto.SolutionPOS{{ID: posID, Price: decimal.NewFromInt(300)}},
	})
	require.NoError(t, err)
	require.Len(t, res.Services, 1)
	require.Len(t, res.POSes, 1)
	assert.Equal(t, "Pay by link", res.Services[0].ServiceName)
	assert.Equal(t, contractID, res.POSes[0].POSDetail.ContractID)
}

// countingPOS cuenta las consultas de ventanas de contrato.
type countingPOS struct {
	repository.POSRepository
	windows int
}

func (c *countingPOS) ContractWindows(ctx context.Context, posIDs []string) (map[string][]rules.ContractWindow, error) {
	c.windows++
	return c.POSRepository.ContractWindows(ctx, posIDs)
}

func TestContract_ListPOSSinVinculosNoConsulta(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	contractID := e.seedContract(t, e.seedCostumer(t), today, today.AddDate(0, 1, 0))

	counting := &countingPOS{POSRepository: e.repos.POS}
	repos := e.repos
	repos.POS = counting
	uc := usecase.NewContractUseCase(repos, e.store, e.status, e.storage, e.log, e.metrics)

	out, err := uc.ListPOS(ctx, contractID)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.Zero(t, counting.windows)
}

func TestContract_UpdatePOSLinkCambiaDeUnidad(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	modelID := e.seedModel(t, "PAX", 4)
	oldPOS := e.seedPOS(t, modelID, "0001")
	newPOS := e.seedPOS(t, modelID, "0002")
	contractID := e.seedContract(t, e.seedCostumer(t), today, today.AddDate(1, 0, 0))
	link, err := e.contracts().AddPOS(ctx, actor, contractID, dto.ContractPOSRequest{POSID: oldPOS})
	require.NoError(t, err)

	out, err := e.contracts().UpdatePOSLink(ctx, link.ID, patch(func(in *dto.ContractPOSRequest) { in.POSID = newPOS }))
	require.NoError(t, err)
	assert.Equal(t, newPOS, out.POSID)

	p, err := e.repos.POS.GetByID(ctx, oldPOS)
	require.NoError(t, err)
	assert.Equal(t, entity.POSStatusAvailable, p.Status)
	p, err = e.repos.POS.GetByID(ctx, newPOS)
	require.NoError(t, err)
	assert.Equal(t, entity.POSStatusUnavailable, p.Status)
}

func TestContract_ArchivosConservanLosNoEnviados(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	contractID := e.seedContract(t, e.seedCostumer(t), today, today)
	uc := e.contracts()

	_, err := uc.UpdateFiles(ctx, contractID, map[string]usecase.Upload{
		"vat_return": {Name: "vat.pdf", Reader: strings.NewReader("vat")},
		"otro":       {Name: "x.pdf", Reader: strings.NewReader("x")},
	})
	require.NoError(t, err)
	out, err := uc.UpdateFiles(ctx, contractID, map[string]usecase.Upload{
		"credit_search": {Name: "cs.pdf", Reader: strings.NewReader("cs")},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.VATReturn, "/media/uploads/contracts/"))
	assert.True(t, strings.HasSuffix(out.CreditSearch, "cs.pdf"))
	assert.Empty(t, out.FDConsent)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comercios
// ──────────────────────────────────────────────────────────────────────────────

func TestCostumer_BancoDebeCoincidirConNombreLegal(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	in := validCostumer()
	in.BusinessBankName = "Otro Nombre"

	_, err := e.costumers().Create(ctx, actor, in)
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "business_bank_name", ve.Field)

	mini, err := e.costumers().ListMini(ctx)
	require.NoError(t, err)
	assert.Empty(t, mini)
}

func TestCostumer_SoleTraderVaciaSocio(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	in := validCostumer()
	partner, share := "Luis", 40
	in.PartnerName = &partner
	in.Shareholder = &share

	c, err := e.costumers().Create(ctx, actor, in)
	require.NoError(t, err)
	require.NotNil(t, c.PartnerName)

	out, err := e.costumers().Update(ctx, actor, c.ID, patch(func(in *dto.CostumerRequest) {
		in.LegalEntity = entity.LegalEntitySoleTrader
	}))
	require.NoError(t, err)
	assert.Nil(t, out.PartnerName)
	assert.Nil(t, out.Shareholder)
}

func TestCostumer_PatchRevalidaEstadoCompleto(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	id := e.seedCostumer(t)

	// Cambiar solo legal_name rompe la igualdad con business_bank_name.
	_, err := e.costumers().Update(ctx, actor, id, patch(func(in *dto.CostumerRequest) { in.LegalName = "Nuevo Ltd" }))
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "business_bank_name", ve.Field)

	got, err := e.costumers().Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Central Foods Ltd", got.LegalName)

	share := 101
	_, err = e.costumers().Update(ctx, actor, id, patch(func(in *dto.CostumerRequest) { in.Shareholder = &share }))
	ve, ok = domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "shareholder", ve.Field)
}

func TestCostumer_DireccionesEnLote(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	id := e.seedCostumer(t)

	_, err := e.costumers().AddAddresses(ctx, id, []dto.TradingAddressRequest{{Address: "2 Low St"}, {Address: " "}})
	require.Error(t, err)

	out, err := e.costumers().AddAddresses(ctx, id, []dto.TradingAddressRequest{{Address: "2 Low St"}, {Address: "3 Mid St"}})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	got, err := e.costumers().Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.TradingAddresses, 2)
	assert.Equal(t, "2 Low St", got.TradingAddresses[0].Address)

	_, err = e.costumers().AddAddresses(ctx, "no-existe", []dto.TradingAddressRequest{{Address: "x"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCostumer_ArchivosPorContrato(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	contractID := e.seedContract(t, e.seedCostumer(t), today, today)

	out, err := e.costumers().UpdateFiles(ctx, contractID, map[string]usecase.Upload{
		"pob": {Name: "pob.png", Reader: strings.NewReader("img")},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.POB)

	again, err := e.costumers().Files(ctx, contractID)
	require.NoError(t, err)
	assert.Equal(t, out.POB, again.POB)

	_, err = e.costumers().Files(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Libros y agregado económico
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_RevenueAgregaTodo(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	posID := e.seedPOS(t, e.seedModel(t, "PAX", 4), "0001")
	svc, err := e.services().Create(ctx, actor, dto.ServiceRequest{Name: "Pay by phone"})
	require.NoError(t, err)
	contractID := e.seedContract(t, e.seedCostumer(t), today, today.AddDate(1, 0, 0))
	_, err = e.contracts().Attach(ctx, actor, contractID, dto.SolutionsRequest{
		Services: []dto.SolutionService{{ID: svc.ID, Price: decimal.NewFromInt(20), Cost: decimal.NewFromInt(5)}},
		POSes:    []dto.SolutionPOS{{ID: posID, Price: decimal.NewFromInt(300), HardwareCost: decimal.NewFromInt(100), SoftwareCost: decimal.NewFromInt(50)}},
	})
	require.NoError(t, err)

	l := e.ledger()
	_, err = l.CreatePayment(ctx, actor, contractID, dto.PaymentRequest{Date: dto.NewDate(today), DirectDebitCost: decimal.NewFromInt(2)})
	require.NoError(t, err)
	_, err = l.CreateMIDRevenue(ctx, actor, contractID, dto.MIDRevenueRequest{Date: dto.NewDate(today), Income: decimal.NewFromInt(40), Profit: decimal.NewFromInt(15)})
	require.NoError(t, err)
	roll, err := l.CreatePaperRoll(ctx, actor, contractID, dto.PaperRollRequest{Amount: 10, Price: decimal.NewFromInt(30), Cost: decimal.NewFromInt(12)})
	require.NoError(t, err)
	assert.NotEmpty(t, roll.Date)

	r, err := l.Revenue(ctx, contractID)
	require.NoError(t, err)
	assert.Equal(t, 1, r.PaymentsCount)
	assert.Equal(t, 10, r.PaperRollUnits)
	assert.True(t, r.POSCostTotal.Equal(decimal.NewFromInt(150)))
	// ingresos 300+20+30+15 = 365; costos 150+5+12+2 = 169
	assert.True(t, r.Margin.Equal(decimal.NewFromInt(196)), r.Margin.String())

	require.NoError(t, l.DeletePaperRoll(ctx, actor, contractID, roll.ID))
	rolls, err := l.ListPaperRolls(ctx, contractID)
	require.NoError(t, err)
	assert.Empty(t, rolls)
}

func TestLedger_BorrarDeOtroContratoEsNotFound(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	costumerID := e.seedCostumer(t)
	a := e.seedContract(t, costumerID, today, today)
	b := e.seedContract(t, costumerID, today, today)

	p, err := e.ledger().CreatePayment(ctx, actor, a, dto.PaymentRequest{Date: dto.NewDate(today)})
	require.NoError(t, err)
	assert.ErrorIs(t, e.ledger().DeletePayment(ctx, actor, b, p.ID), domain.ErrNotFound)
	assert.NoError(t, e.ledger().DeletePayment(ctx, actor, a, p.ID))
}

// logLines decodifica la salida JSON de zerolog línea a línea.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLedger_AltasYBajasRegistranActor(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	contractID := e.seedContract(t, e.seedCostumer(t), today, today)

	var buf bytes.Buffer
	l := usecase.NewLedgerUseCase(e.repos, logger.FromZerolog(zerolog.New(&buf)))

	p, err := l.CreatePayment(ctx, actor, contractID, dto.PaymentRequest{Date: dto.NewDate(today)})
	require.NoError(t, err)
	require.NoError(t, l.DeletePayment(ctx, "actor-2", contractID, p.ID))
	assert.ErrorIs(t, l.DeletePayment(ctx, "actor-2", contractID, p.ID), domain.ErrNotFound)

	lines := logLines(t, &buf)
	require.Len(t, lines, 2, "la baja fallida no se registra")
	assert.Equal(t, "ledger", lines[0]["component"])
	assert.Equal(t, "payment", lines[0]["entry"])
	assert.Equal(t, p.ID, lines[0]["entry_id"])
	assert.Equal(t, contractID, lines[0]["contract_id"])
	assert.Equal(t, actor, lines[0]["actor_id"])
	assert.Equal(t, "asiento creado", lines[0]["message"])
	assert.Equal(t, "actor-2", lines[1]["actor_id"])
	assert.Equal(t, "asiento eliminado", lines[1]["message"])
}

func TestGoal_EscriturasRegistranActor(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	var buf bytes.Buffer
	uc := usecase.NewGoalUseCase(e.repos.Goals, logger.FromZerolog(zerolog.New(&buf)))

	g, err := uc.Create(ctx, actor, dto.GoalRequest{TradingName: "Bar Sur"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, "actor-2", g.ID))

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "goal", lines[0]["component"])
	assert.Equal(t, actor, lines[0]["actor_id"])
	assert.Equal(t, g.ID, lines[1]["goal_id"])
	assert.Equal(t, "actor-2", lines[1]["actor_id"])
}

func TestLedger_PagoSinFecha(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	contractID := e.seedContract(t, e.seedCostumer(t), today, today)
	_, err := e.ledger().CreatePayment(ctx, actor, contractID, dto.PaymentRequest{})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "date", ve.Field)
}
