package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountryRequest alta de país. Abbreviation vacía se deriva del nombre.
type CountryRequest struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	Abbreviation string `json:"abbreviation"`
}

// CountryResponse salida de un país.
type CountryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Abbreviation string `json:"abbreviation"`
	IsCovered    bool   `json:"is_covered"`
}

// POSCompanyRequest alta/edición de un fabricante (PATCH fusiona sobre el estado actual).
type POSCompanyRequest struct {
	Name               string `json:"name"`
	SerialNumberLength int    `json:"serial_number_length"`
}

// POSCompanyResponse salida de un fabricante.
type POSCompanyResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	SerialNumberLength int     `json:"serial_number_length"`
	ModelCount         int     `json:"model_count"`
	CreatedBy          *string `json:"created_by"`
}

// PosModelRequest alta/edición de un modelo.
type PosModelRequest struct {
	Name         string           `json:"name"`
	CompanyID    string           `json:"company"`
	HardwareCost *decimal.Decimal `json:"hardware_cost"`
	SoftwareCost *decimal.Decimal `json:"software_cost"`
	Price        *decimal.Decimal `json:"price"`
}

// PosModelResponse salida de un modelo con su empresa.
type PosModelResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	HardwareCost *decimal.Decimal    `json:"hardware_cost"`
	SoftwareCost *decimal.Decimal    `json:"software_cost"`
	Price        *decimal.Decimal    `json:"price"`
	CreatedBy    *string             `json:"created_by"`
	Company      *POSCompanyResponse `json:"company,omitempty"`
}

// POSRequest alta/edición de un POS.
type POSRequest struct {
	SerialNumber string `json:"serial_number"`
	Type         string `json:"type"`
	ModelID      string `json:"model"`
	Note         string `json:"note"`
	Ownership    *bool  `json:"ownership"`
	IsActive     *bool  `json:"is_active"`
}

// POSListQuery filtros del listado de POS (?status=&model_id=&type=&active=).
type POSListQuery struct {
	Status  string `query:"status"`
	ModelID string `query:"model_id"`
	Type    string `query:"type"`
	Active  string `query:"active"`
}

// POSResponse salida de un POS. ContractID vacío si no está en un contrato vigente.
type POSResponse struct {
	ID           string            `json:"id"`
	SerialNumber string            `json:"serial_number"`
	Type         string            `json:"type"`
	TypeName     string            `json:"type_name"`
	Note         string            `json:"note"`
	Ownership    bool              `json:"ownership"`
	IsActive     bool              `json:"is_active"`
	Status       string            `json:"status"`
	Model        *PosModelResponse `json:"model,omitempty"`
	ContractID   string            `json:"contract_id"`
	CreatedBy    *string           `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ServiceRequest alta/edición de un servicio virtual.
type ServiceRequest struct {
	Name         string           `json:"name"`
	Price        *decimal.Decimal `json:"price"`
	Cost         *decimal.Decimal `json:"cost"`
	Availability *bool            `json:"availability"`
}

// ServiceResponse salida de un servicio virtual.
type ServiceResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Price        *decimal.Decimal `json:"price"`
	Cost         *decimal.Decimal `json:"cost"`
	Availability bool             `json:"availability"`
	CreatedBy    *string          `json:"created_by"`
	CreatedAt    time.Time        `json:"created_at"`
}
