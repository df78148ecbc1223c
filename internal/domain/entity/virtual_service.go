package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VirtualService servicio virtual vendible en un contrato (ej. pago por teléfono).
type VirtualService struct {
	ID           string
	Name         string // único
	Price        *decimal.Decimal
	Cost         *decimal.Decimal
	Availability bool
	CreatedBy    *string
	CreatedAt    time.Time
}
