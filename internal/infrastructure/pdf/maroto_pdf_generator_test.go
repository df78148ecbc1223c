package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

func sampleDocument() usecase.ContractDocument {
	price := decimal.RequireFromString("120.00")
	return usecase.ContractDocument{
		Contract: &entity.Contract{
			ID: "c-1", CostumerID: "cu-1", FaceToFaceSales: 70, Acquirer: entity.AcquirerFirstData,
			ATV: decimal.NewFromInt(35), AnnualCardTurnover: decimal.NewFromInt(250000),
			LiveDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:  time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			MID:      "MID-1",
		},
		Costumer: &entity.Costumer{
			ID: "cu-1", TradingName: "Café Sol", LegalName: "Café Sol Ltd",
			LegalEntity: entity.LegalEntityPrivateLimited, BusinessType: "Caterers",
			AccountNumber: "12345678",
		},
		POS: []usecase.ContractPOSLine{{
			Link: &entity.ContractPOS{Price: price, HardwareCost: decimal.NewFromInt(60)},
			Detail: &entity.POSDetail{
				POS:     entity.POS{SerialNumber: "ABC12345"},
				Model:   entity.PosModel{Name: "Move 5000", Price: &price},
				Company: entity.POSCompany{Name: "Ingenico"},
			},
		}},
		Revenue:   dto.RevenueResponse{ContractID: "c-1", Margin: decimal.NewFromInt(60)},
		Generated: time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderContractSummary_GeneraPDF(t *testing.T) {
	g := NewMarotoPDFGenerator("POS CRM")
	out, err := g.RenderContractSummary(context.Background(), sampleDocument())
	require.NoError(t, err)
	require.True(t, len(out) > 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderContractSummary_DocumentoIncompleto(t *testing.T) {
	g := NewMarotoPDFGenerator("POS CRM")
	_, err := g.RenderContractSummary(context.Background(), usecase.ContractDocument{})
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "£0.00", money(decimal.Zero))
	assert.Equal(t, "£1,234.50", money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-£1,000,000.00", money(decimal.NewFromInt(-1000000)))
}

func TestMaskAccount(t *testing.T) {
	assert.Equal(t, "****5678", maskAccount("12345678"))
	assert.Equal(t, "-", maskAccount(""))
}
