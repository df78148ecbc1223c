package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// POSCompany fabricante de terminales. SerialNumberLength es el formato que
// deben cumplir los seriales de todos los POS vendidos bajo esta empresa.
type POSCompany struct {
	ID                 string
	Name               string
	SerialNumberLength int
	CreatedBy          *string
	CreatedAt          time.Time
}

// PosModel modelo de terminal de una POSCompany.
type PosModel struct {
	ID           string
	Name         string
	CompanyID    string
	HardwareCost *decimal.Decimal
	SoftwareCost *decimal.Decimal
	Price        *decimal.Decimal
	CreatedBy    *string
	CreatedAt    time.Time
}

// Tipos de POS.
const (
	POSTypeDesktop  = "D"
	POSTypeMobile   = "M"
	POSTypePortable = "P"
)

// POSTypeName devuelve el nombre legible del tipo ("" si no es válido).
func POSTypeName(t string) string {
	switch t {
	case POSTypeDesktop:
		return "Desktop"
	case POSTypeMobile:
		return "Mobile"
	case POSTypePortable:
		return "Portable"
	}
	return ""
}

// Estados persistidos de un POS, recalculados antes de cada listado.
const (
	POSStatusAvailable   = "available"
	POSStatusUnavailable = "unavailable"
)

// POS unidad física de terminal.
type POS struct {
	ID           string
	SerialNumber string
	Type         string // D, M, P
	ModelID      string
	Note         string
	Ownership    bool
	IsActive     bool
	Status       string // available | unavailable
	CreatedBy    *string
	CreatedAt    time.Time
}

// POSDetail POS con su modelo y empresa resueltos (lecturas).
type POSDetail struct {
	POS
	Model   PosModel
	Company POSCompany
	// ContractID contrato vigente hoy que usa el POS; "" si está libre.
	ContractID string
}
