package rules_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/rules"
)

// ──────────────────────────────────────────────────────────────────────────────
// Serial / catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateSerialNumber(t *testing.T) {
	cases := []struct {
		name   string
		serial string
		length int
		ok     bool
	}{
		{"longitud exacta", "12345678", 8, true},
		{"demasiado largo", "1234567890", 8, false},
		{"demasiado corto", "1234", 8, false},
		{"cuenta runas, no bytes", "ÄÖÜ12345", 8, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := rules.ValidateSerialNumber(tc.serial, tc.length)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			ve, ok := domain.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, "serial_number", ve.Field)
		})
	}
}

func TestValidateSerialLength_SoloPositivos(t *testing.T) {
	assert.NoError(t, rules.ValidateSerialLength(1))
	assert.Error(t, rules.ValidateSerialLength(0))
	assert.Error(t, rules.ValidateSerialLength(-4))
}

func TestValidatePOS_TipoInvalido(t *testing.T) {
	company := &entity.POSCompany{SerialNumberLength: 4}
	err := rules.ValidatePOS(&entity.POS{SerialNumber: "1234", Type: "X"}, company)
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "type", ve.Field)

	assert.NoError(t, rules.ValidatePOS(&entity.POS{SerialNumber: "1234", Type: entity.POSTypeMobile}, company))
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado de contrato vigente
// ──────────────────────────────────────────────────────────────────────────────

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestActiveContract_SinVinculos(t *testing.T) {
	id, ok := rules.ActiveContract(nil, day("2026-10-17"))
	assert.False(t, ok)
	assert.Empty(t, id, "sin contratos el id derivado es el centinela vacío")
	assert.Equal(t, entity.POSStatusAvailable, rules.POSStatus(nil, day("2026-10-17")))
}

func TestActiveContract_LimitesInclusivos(t *testing.T) {
	w := []rules.ContractWindow{{ContractID: "c1", LiveDate: day("2026-01-01"), EndDate: day("2026-12-31")}}

	for _, today := range []string{"2026-01-01", "2026-06-15", "2026-12-31"} {
		id, ok := rules.ActiveContract(w, day(today))
		assert.True(t, ok, today)
		assert.Equal(t, "c1", id)
	}
	for _, today := range []string{"2025-12-31", "2027-01-01"} {
		_, ok := rules.ActiveContract(w, day(today))
		assert.False(t, ok, today)
	}
}

func TestActiveContract_IgnoraHoraDelDia(t *testing.T) {
	w := []rules.ContractWindow{{ContractID: "c1", LiveDate: day("2026-10-17"), EndDate: day("2026-10-17")}}
	late := time.Date(2026, 10, 17, 23, 59, 0, 0, time.Local)
	_, ok := rules.ActiveContract(w, late)
	assert.True(t, ok)
}

func TestActiveContract_SolapeDesempataPorMasReciente(t *testing.T) {
	older := rules.ContractWindow{ContractID: "b", LiveDate: day("2026-01-01"), EndDate: day("2026-12-31"), CreatedAt: day("2025-12-01")}
	newer := rules.ContractWindow{ContractID: "a", LiveDate: day("2026-06-01"), EndDate: day("2027-06-01"), CreatedAt: day("2026-05-01")}
	expired := rules.ContractWindow{ContractID: "z", LiveDate: day("2020-01-01"), EndDate: day("2021-01-01"), CreatedAt: day("2026-09-01")}

	for _, order := range [][]rules.ContractWindow{{older, newer, expired}, {expired, newer, older}} {
		id, ok := rules.ActiveContract(order, day("2026-10-17"))
		require.True(t, ok)
		assert.Equal(t, "a", id, "gana el contrato vigente creado más recientemente")
	}

	sameTime := []rules.ContractWindow{
		{ContractID: "c1", LiveDate: day("2026-01-01"), EndDate: day("2026-12-31"), CreatedAt: day("2026-01-01")},
		{ContractID: "c2", LiveDate: day("2026-01-01"), EndDate: day("2026-12-31"), CreatedAt: day("2026-01-01")},
	}
	id, _ := rules.ActiveContract(sameTime, day("2026-10-17"))
	assert.Equal(t, "c2", id)
	assert.Equal(t, entity.POSStatusUnavailable, rules.POSStatus(sameTime, day("2026-10-17")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Costumer
// ──────────────────────────────────────────────────────────────────────────────

func validCostumer() *entity.Costumer {
	return &entity.Costumer{
		TradingName:       "Corner Shop",
		LegalName:         "Corner Shop Ltd",
		BusinessType:      "Taxis",
		LegalEntity:       entity.LegalEntityPrivateLimited,
		RegisteredAddress: "1 High Street",
		DirectorName:      "Jane Doe",
		BusinessBankName:  "Corner Shop Ltd",
	}
}

func ptr[T any](v T) *T { return &v }

func TestValidateCostumer_NombreBancoIgualNombreLegal(t *testing.T) {
	c := validCostumer()
	assert.NoError(t, rules.ValidateCostumer(c))

	c.BusinessBankName = "Corner Shop Limited"
	err := rules.ValidateCostumer(c)
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "business_bank_name", ve.Field)
	assert.Equal(t, "bank_name", ve.Rule)
}

func TestValidateCostumer_Shareholder(t *testing.T) {
	for _, v := range []int{0, 50, 100} {
		c := validCostumer()
		c.Shareholder = ptr(v)
		assert.NoError(t, rules.ValidateCostumer(c), "shareholder=%d", v)
	}
	for _, v := range []int{-1, 101} {
		c := validCostumer()
		c.Shareholder = ptr(v)
		assert.Error(t, rules.ValidateCostumer(c), "shareholder=%d", v)
	}
}

func TestValidateCostumer_Enumerados(t *testing.T) {
	c := validCostumer()
	c.LegalEntity = "ST"
	assert.Error(t, rules.ValidateCostumer(c))

	c = validCostumer()
	c.BusinessType = "Space Tourism"
	assert.Error(t, rules.ValidateCostumer(c))
}

func TestPrepareCostumer_SoleTraderVaciaSocio(t *testing.T) {
	c := validCostumer()
	c.LegalEntity = entity.LegalEntitySoleTrader
	c.PartnerName = ptr("John")
	c.PartnerAddress = ptr("2 Low Street")
	c.PartnerNationalityID = ptr("country-1")
	c.Shareholder = ptr(40)

	require.NoError(t, rules.PrepareCostumer(c))
	assert.Nil(t, c.PartnerName)
	assert.Nil(t, c.PartnerAddress)
	assert.Nil(t, c.PartnerNationalityID)
	assert.Nil(t, c.Shareholder)
}

func TestPrepareCostumer_OtraFormaConservaSocio(t *testing.T) {
	c := validCostumer()
	c.LegalEntity = entity.LegalEntityPartnership
	c.PartnerName = ptr("John")
	c.Shareholder = ptr(40)

	require.NoError(t, rules.PrepareCostumer(c))
	assert.Equal(t, "John", *c.PartnerName)
	assert.Equal(t, 40, *c.Shareholder)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contract / Country
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateContract(t *testing.T) {
	base := func() *entity.Contract {
		return &entity.Contract{
			CostumerID: "c1", FaceToFaceSales: 80, Acquirer: entity.AcquirerFirstData,
			LiveDate: day("2026-01-01"), EndDate: day("2026-12-31"),
		}
	}
	assert.NoError(t, rules.ValidateContract(base()))

	c := base()
	c.FaceToFaceSales = 101
	assert.Error(t, rules.ValidateContract(c))

	c = base()
	c.Acquirer = "XX"
	assert.Error(t, rules.ValidateContract(c))

	c = base()
	c.EndDate = day("2025-12-31")
	assert.Error(t, rules.ValidateContract(c))

	c = base()
	c.ECommerceLiveDate = ptr(day("2026-05-01"))
	c.ECommerceEndDate = ptr(day("2026-04-01"))
	assert.Error(t, rules.ValidateContract(c))
}

func TestDeriveAbbreviation(t *testing.T) {
	assert.Equal(t, "GER", rules.DeriveAbbreviation("Germany", ""))
	assert.Equal(t, "UK", rules.DeriveAbbreviation("uk", "  "))
	assert.Equal(t, "ÖST", rules.DeriveAbbreviation("österreich", ""))
	assert.Equal(t, "ESP", rules.DeriveAbbreviation("Spain", "ESP"))
}

func TestValidateCountry(t *testing.T) {
	assert.NoError(t, rules.ValidateCountry("Germany", "49", "GER"))
	assert.Error(t, rules.ValidateCountry("", "", ""))
	assert.Error(t, rules.ValidateCountry("Germany", "", "GERMAN"))
}
