package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adquirentes soportados.
const (
	AcquirerEmerchantPay = "EP"
	AcquirerFirstData    = "FD"
)

// AcquirerName nombre legible del adquirente.
func AcquirerName(code string) string {
	switch code {
	case AcquirerEmerchantPay:
		return "Emerchant Pay"
	case AcquirerFirstData:
		return "First Data"
	}
	return ""
}

// Contract acuerdo con un Costumer; [LiveDate, EndDate] es la ventana de vigencia.
type Contract struct {
	ID                    string
	CostumerID            string
	FaceToFaceSales       int // porcentaje 0..100
	ATV                   decimal.Decimal
	AnnualCardTurnover    decimal.Decimal
	AnnualTotalTurnover   decimal.Decimal
	InterchangeVisa       *float64
	InterchangeMasterCard *float64
	AuthorizationFee      float64
	PCIDSS                float64
	AmexFee               *float64
	Acquirer              string

	MID          string
	ECommerceMID string
	AmexMID      string
	TID          string

	PCIDueDate        *time.Time
	LiveDate          time.Time
	EndDate           time.Time
	ECommerceLiveDate *time.Time
	ECommerceEndDate  *time.Time

	TotalCost  *decimal.Decimal
	TotalPrice *decimal.Decimal

	Documents ContractDocuments

	CreatedBy *string
	CreatedAt time.Time
}

// ContractDocuments rutas de los documentos del contrato.
type ContractDocuments struct {
	AcquirerApplication string
	FinancialReport     string
	VATReturn           string
	FDConsent           string
	CreditSearch        string
}

// ContractPOS vincula un POS a un contrato con precio/costos propios del contrato
// (independientes del precio de catálogo).
type ContractPOS struct {
	ID           string
	ContractID   string
	POSID        string
	Price        decimal.Decimal
	HardwareCost decimal.Decimal
	SoftwareCost decimal.Decimal
	CreatedBy    *string
	CreatedAt    time.Time
}

// ContractService vincula un VirtualService a un contrato con precio/costo negociado.
type ContractService struct {
	ID         string
	ContractID string
	ServiceID  string
	Price      decimal.Decimal
	Cost       decimal.Decimal
	CreatedBy  *string
	CreatedAt  time.Time
}
