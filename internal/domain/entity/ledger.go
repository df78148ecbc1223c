package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaperRoll pedido de rollos de papel de un Costumer. Solo alta y baja.
type PaperRoll struct {
	ID              string
	CostumerID      string
	Amount          int
	Cost            decimal.Decimal
	Price           decimal.Decimal
	DirectDebitCost decimal.Decimal
	OrderedDate     time.Time
	CreatedBy       *string
	CreatedAt       time.Time
}

// Payment cobro por domiciliación de un contrato.
type Payment struct {
	ID              string
	ContractID      string
	Date            time.Time
	DirectDebitCost decimal.Decimal
	CreatedBy       *string
	CreatedAt       time.Time
}

// MIDRevenue bonificación/ingreso asociado al MID de un contrato.
type MIDRevenue struct {
	ID         string
	ContractID string
	Income     decimal.Decimal
	Profit     decimal.Decimal
	Date       time.Time
	CreatedBy  *string
	CreatedAt  time.Time
}
