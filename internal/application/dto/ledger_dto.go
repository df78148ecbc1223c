package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaperRollRequest pedido de rollos de papel.
type PaperRollRequest struct {
	Amount          int             `json:"amount"`
	Cost            decimal.Decimal `json:"cost"`
	Price           decimal.Decimal `json:"price"`
	DirectDebitCost decimal.Decimal `json:"direct_debit_cost"`
	OrderedDate     *time.Time      `json:"ordered_date"`
}

// PaperRollResponse pedido de rollos con la fecha formateada.
type PaperRollResponse struct {
	ID              string          `json:"id"`
	Amount          int             `json:"amount"`
	Cost            decimal.Decimal `json:"cost"`
	Price           decimal.Decimal `json:"price"`
	DirectDebitCost decimal.Decimal `json:"direct_debit_cost"`
	OrderedDate     time.Time       `json:"ordered_date"`
	Date            string          `json:"date"`
}

// PaymentRequest cobro de un contrato.
type PaymentRequest struct {
	Date            Date            `json:"date"`
	DirectDebitCost decimal.Decimal `json:"direct_debit_cost"`
}

// PaymentResponse cobro de un contrato.
type PaymentResponse struct {
	ID              string          `json:"id"`
	Date            Date            `json:"date"`
	DirectDebitCost decimal.Decimal `json:"direct_debit_cost"`
}

// MIDRevenueRequest ingreso MID de un contrato.
type MIDRevenueRequest struct {
	Income decimal.Decimal `json:"income"`
	Profit decimal.Decimal `json:"profit"`
	Date   Date            `json:"date"`
}

// MIDRevenueResponse ingreso MID de un contrato.
type MIDRevenueResponse struct {
	ID     string          `json:"id"`
	Income decimal.Decimal `json:"income"`
	Profit decimal.Decimal `json:"profit"`
	Date   Date            `json:"date"`
}

// RevenueResponse agregado económico de un contrato.
type RevenueResponse struct {
	ContractID          string          `json:"contract_id"`
	PaymentsCount       int             `json:"payments_count"`
	DirectDebitTotal    decimal.Decimal `json:"direct_debit_total"`
	MIDIncomeTotal      decimal.Decimal `json:"mid_income_total"`
	MIDProfitTotal      decimal.Decimal `json:"mid_profit_total"`
	PaperRollsCount     int             `json:"paper_rolls_count"`
	PaperRollUnits      int             `json:"paper_roll_units"`
	PaperRollPriceTotal decimal.Decimal `json:"paper_roll_price_total"`
	PaperRollCostTotal  decimal.Decimal `json:"paper_roll_cost_total"`
	POSPriceTotal       decimal.Decimal `json:"pos_price_total"`
	POSCostTotal        decimal.Decimal `json:"pos_cost_total"`
	ServicePriceTotal   decimal.Decimal `json:"service_price_total"`
	ServiceCostTotal    decimal.Decimal `json:"service_cost_total"`
	Margin              decimal.Decimal `json:"margin"`
}
