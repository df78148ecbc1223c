package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Países
// ──────────────────────────────────────────────────────────────────────────────

func TestCountry_AbreviaturaDerivadaYCache(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	uc := e.countries()

	c, err := uc.Create(ctx, actor, dto.CountryRequest{Name: "Germany"})
	require.NoError(t, err)
	assert.Equal(t, "GER", c.Abbreviation)
	assert.True(t, c.IsCovered)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	_, cached := e.cache.values["countries"]
	assert.True(t, cached)

	_, err = uc.ToggleCoverage(ctx, actor, c.ID)
	require.NoError(t, err)
	_, cached = e.cache.values["countries"]
	assert.False(t, cached, "el toggle invalida la caché")

	list, err = uc.List(ctx)
	require.NoError(t, err)
	assert.False(t, list[0].IsCovered)
}

func TestCountry_NombreDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := newEnv(t).countries()
	_, err := uc.Create(ctx, actor, dto.CountryRequest{Name: "Spain", Abbreviation: "ES"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, actor, dto.CountryRequest{Name: "Spain"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCountry_SetCoverageIdempotente(t *testing.T) {
	ctx := context.Background()
	uc := newEnv(t).countries()
	c, err := uc.Create(ctx, actor, dto.CountryRequest{Name: "France"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		res, err := uc.SetCoverage(ctx, actor, c.ID, false)
		require.NoError(t, err)
		assert.False(t, res.Value)
	}
}

func TestCountry_IsUsedPorNacionalidadDeComercio(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c, err := e.countries().Create(ctx, actor, dto.CountryRequest{Name: "Italy"})
	require.NoError(t, err)

	used, err := e.countries().IsUsed(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, used.Used)

	in := validCostumer()
	in.DirectorNationalityID = &c.ID
	_, err = e.costumers().Create(ctx, actor, in)
	require.NoError(t, err)

	used, err = e.countries().IsUsed(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, used.Used)

	_, err = e.countries().IsUsed(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fabricantes y modelos
// ──────────────────────────────────────────────────────────────────────────────

func TestPOSCompany_LongitudDeSerialObligatoria(t *testing.T) {
	_, err := newEnv(t).companies().Create(context.Background(), actor, dto.POSCompanyRequest{Name: "Ingenico"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "serial_number_length", ve.Field)
}

func TestPOSCompany_ListaConCantidadDeModelos(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.seedModel(t, "Verifone", 8)

	list, err := e.companies().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ModelCount)

	used, err := e.companies().IsUsed(ctx, list[0].ID)
	require.NoError(t, err)
	assert.True(t, used.Used)
}

func TestPosModel_EmpresaInexistente(t *testing.T) {
	_, err := newEnv(t).models().Create(context.Background(), actor, dto.PosModelRequest{Name: "X", CompanyID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPOSCompany_DeleteEnCascada(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	modelID := e.seedModel(t, "PAX", 4)
	posID := e.seedPOS(t, modelID, "0001")

	m, err := e.repos.Models.GetByID(ctx, modelID)
	require.NoError(t, err)
	require.NoError(t, e.companies().Delete(ctx, m.CompanyID))

	p, err := e.repos.POS.GetByID(ctx, posID)
	require.NoError(t, err)
	assert.Nil(t, p)
}

// ──────────────────────────────────────────────────────────────────────────────
// POS: serial contra la empresa del modelo
// ──────────────────────────────────────────────────────────────────────────────

func TestPOS_SerialContraLongitudDeLaEmpresa(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	modelID := e.seedModel(t, "Ingenico", 8)

	_, err := e.poses().Create(ctx, actor, dto.POSRequest{SerialNumber: "1234", Type: "D", ModelID: modelID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	ve, _ := domain.AsValidation(err)
	assert.Equal(t, "serial_number", ve.Field)

	list, err := e.poses().List(ctx, dto.POSListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list, "una escritura rechazada no persiste nada")

	p, err := e.poses().Create(ctx, actor, dto.POSRequest{SerialNumber: "12345678", Type: "M", ModelID: modelID})
	require.NoError(t, err)
	assert.True(t, p.IsActive)
	assert.True(t, p.Ownership)
	assert.Equal(t, entity.POSStatusAvailable, p.Status)
}

func TestPOS_UpdateParcialRevalidaSerial(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	model8 := e.seedModel(t, "Ingenico", 8)
	model4 := e.seedModel(t, "PAX", 4)
	posID := e.seedPOS(t, model8, "12345678")

	// Solo cambia el modelo: el serial actual ya no cumple la nueva empresa.
	_, err := e.poses().Update(ctx, posID, patch(func(in *dto.POSRequest) { in.ModelID = model4 }))
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "serial_number", ve.Field)

	p, err := e.repos.POS.GetByID(ctx, posID)
	require.NoError(t, err)
	assert.Equal(t, model8, p.ModelID)

	// Solo la nota: sigue validando y pasa.
	out, err := e.poses().Update(ctx, posID, patch(func(in *dto.POSRequest) { in.Note = "caja 2" }))
	require.NoError(t, err)
	assert.Equal(t, "caja 2", out.Note)
	assert.Equal(t, "12345678", out.SerialNumber)
}

func TestPOS_ToggleYSetActive(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	posID := e.seedPOS(t, e.seedModel(t, "PAX", 4), "0001")
	uc := e.poses()

	res, err := uc.ToggleActive(ctx, actor, posID)
	require.NoError(t, err)
	assert.False(t, res.Value)
	res, err = uc.ToggleActive(ctx, actor, posID)
	require.NoError(t, err)
	assert.True(t, res.Value)

	res, err = uc.SetActive(ctx, actor, posID, true)
	require.NoError(t, err)
	assert.True(t, res.Value)

	_, err = uc.ToggleActive(ctx, actor, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPOS_FiltroActivoInvalido(t *testing.T) {
	_, err := newEnv(t).poses().List(context.Background(), dto.POSListQuery{Active: "quizás"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "active", ve.Field)
}

func TestPosModel_IsUsedPorPOS(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	modelID := e.seedModel(t, "PAX", 4)

	used, err := e.models().IsUsed(ctx, modelID)
	require.NoError(t, err)
	assert.False(t, used.Used)

	e.seedPOS(t, modelID, "0001")
	used, err = e.models().IsUsed(ctx, modelID)
	require.NoError(t, err)
	assert.True(t, used.Used)
}

// ──────────────────────────────────────────────────────────────────────────────
// Servicios y prospectos
// ──────────────────────────────────────────────────────────────────────────────

func TestVirtualService_DisponibilidadEIsUsed(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s, err := e.services().Create(ctx, actor, dto.ServiceRequest{Name: "Pay by phone"})
	require.NoError(t, err)
	assert.True(t, s.Availability)

	res, err := e.services().ToggleAvailability(ctx, actor, s.ID)
	require.NoError(t, err)
	assert.False(t, res.Value)

	used, err := e.services().IsUsed(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, used.Used)

	contractID := e.seedContract(t, e.seedCostumer(t), today, today.AddDate(1, 0, 0))
	_, err = e.contracts().AddService(ctx, actor, contractID, dto.ContractServiceRequest{ServiceID: s.ID})
	require.NoError(t, err)

	used, err = e.services().IsUsed(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, used.Used)
}

func TestGoal_EstadoPorDefectoYFiltro(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	uc := newGoalUseCase(e)

	g, err := uc.Create(ctx, actor, dto.GoalRequest{TradingName: "Bar Sol"})
	require.NoError(t, err)
	assert.Equal(t, entity.GoalWaiting, g.Status)

	_, err = uc.Create(ctx, actor, dto.GoalRequest{TradingName: "Bar Luna", Status: "X"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "status", ve.Field)

	_, err = uc.Update(ctx, "actor-2", g.ID, patch(func(in *dto.GoalRequest) { in.Status = entity.GoalAccepted }))
	require.NoError(t, err)

	accepted, err := uc.List(ctx, entity.GoalAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "Bar Sol", accepted[0].TradingName)

	waiting, err := uc.List(ctx, entity.GoalWaiting)
	require.NoError(t, err)
	assert.Empty(t, waiting)
}
