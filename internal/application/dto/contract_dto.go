package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractRequest alta/edición de un contrato.
type ContractRequest struct {
	CostumerID            string           `json:"costumer"`
	FaceToFaceSales       int              `json:"face_to_face_sales"`
	ATV                   decimal.Decimal  `json:"atv"`
	AnnualCardTurnover    decimal.Decimal  `json:"annual_card_turnover"`
	AnnualTotalTurnover   decimal.Decimal  `json:"annual_total_turnover"`
	InterchangeVisa       *float64         `json:"interchange_visa"`
	InterchangeMasterCard *float64         `json:"interchange_master_card"`
	AuthorizationFee      float64          `json:"authorization_fee"`
	PCIDSS                float64          `json:"pci_dss"`
	AmexFee               *float64         `json:"amex_fee"`
	Acquirer              string           `json:"acquirer"`
	MID                   string           `json:"m_id"`
	ECommerceMID          string           `json:"e_commerce_m_id"`
	AmexMID               string           `json:"amex_m_id"`
	TID                   string           `json:"t_id"`
	PCIDueDate            *Date            `json:"pci_due_date"`
	LiveDate              Date             `json:"live_date"`
	EndDate               Date             `json:"end_date"`
	ECommerceLiveDate     *Date            `json:"e_commerce_live_date"`
	ECommerceEndDate      *Date            `json:"e_commerce_end_date"`
	TotalCost             *decimal.Decimal `json:"total_cost"`
	TotalPrice            *decimal.Decimal `json:"total_price"`
}

// ContractResponse detalle de un contrato. Costumer se incluye en GET /contracts/:id.
type ContractResponse struct {
	ID                    string            `json:"id"`
	CostumerID            string            `json:"costumer_id"`
	Costumer              *CostumerResponse `json:"costumer,omitempty"`
	FaceToFaceSales       int               `json:"face_to_face_sales"`
	ATV                   decimal.Decimal   `json:"atv"`
	AnnualCardTurnover    decimal.Decimal   `json:"annual_card_turnover"`
	AnnualTotalTurnover   decimal.Decimal   `json:"annual_total_turnover"`
	InterchangeVisa       *float64          `json:"interchange_visa"`
	InterchangeMasterCard *float64          `json:"interchange_master_card"`
	AuthorizationFee      float64           `json:"authorization_fee"`
	PCIDSS                float64           `json:"pci_dss"`
	AmexFee               *float64          `json:"amex_fee"`
	Acquirer              string            `json:"acquirer"`
	AcquirerName          string            `json:"acquirer_name"`
	MID                   string            `json:"m_id"`
	ECommerceMID          string            `json:"e_commerce_m_id"`
	AmexMID               string            `json:"amex_m_id"`
	TID                   string            `json:"t_id"`
	PCIDueDate            *Date             `json:"pci_due_date"`
	LiveDate              Date              `json:"live_date"`
	EndDate               Date              `json:"end_date"`
	ECommerceLiveDate     *Date             `json:"e_commerce_live_date"`
	ECommerceEndDate      *Date             `json:"e_commerce_end_date"`
	TotalCost             *decimal.Decimal  `json:"total_cost"`
	TotalPrice            *decimal.Decimal  `json:"total_price"`
	CreatedAt             time.Time         `json:"created_at"`
}

// ContractListItem fila del listado de contratos.
type ContractListItem struct {
	ID           string               `json:"id"`
	MID          string               `json:"m_id"`
	LiveDate     Date                 `json:"live_date"`
	EndDate      Date                 `json:"end_date"`
	Costumer     CostumerMiniResponse `json:"costumer"`
	BusinessType string               `json:"business_type"`
}

// ContractListQuery filtros del listado (?acquirer=EP&active_on=2026-01-01&costumer=).
type ContractListQuery struct {
	Acquirer   string `query:"acquirer"`
	ActiveOn   string `query:"active_on"`
	CostumerID string `query:"costumer"`
}

// ContractPOSRequest vínculo POS-contrato con precio/costos negociados.
type ContractPOSRequest struct {
	POSID        string          `json:"pos"`
	Price        decimal.Decimal `json:"price"`
	HardwareCost decimal.Decimal `json:"hardware_cost"`
	SoftwareCost decimal.Decimal `json:"software_cost"`
}

// ContractPOSResponse vínculo POS-contrato con el detalle del POS.
type ContractPOSResponse struct {
	ID           string          `json:"id"`
	POSID        string          `json:"pos"`
	Price        decimal.Decimal `json:"price"`
	HardwareCost decimal.Decimal `json:"hardware_cost"`
	SoftwareCost decimal.Decimal `json:"software_cost"`
	POSDetail    *POSResponse    `json:"pos_detail,omitempty"`
}

// ContractServiceRequest vínculo servicio-contrato.
type ContractServiceRequest struct {
	ServiceID string          `json:"service"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
}

// ContractServiceResponse vínculo servicio-contrato con nombre del servicio.
type ContractServiceResponse struct {
	ID          string          `json:"id"`
	ServiceID   string          `json:"service"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	ServiceName string          `json:"service_name"`
}

// SolutionService elemento "services" de POST /contract/:id/solutions.
type SolutionService struct {
	ID    string          `json:"id"`
	Price decimal.Decimal `json:"price"`
	Cost  decimal.Decimal `json:"cost"`
}

// SolutionPOS elemento "poses" de POST /contract/:id/solutions.
type SolutionPOS struct {
	ID           string          `json:"id"`
	Price        decimal.Decimal `json:"price"`
	HardwareCost decimal.Decimal `json:"hardware_cost"`
	SoftwareCost decimal.Decimal `json:"software_cost"`
}

// SolutionsRequest alta en lote de servicios y POS de un contrato (todo o nada).
type SolutionsRequest struct {
	Services []SolutionService `json:"services"`
	POSes    []SolutionPOS     `json:"poses"`
}

// SolutionsResponse vínculos creados por el lote.
type SolutionsResponse struct {
	Services []ContractServiceResponse `json:"services"`
	POSes    []ContractPOSResponse     `json:"poses"`
}

// ContractFilesResponse URLs de los documentos del contrato.
type ContractFilesResponse struct {
	AcquirerApplication string `json:"acquirer_application"`
	FinancialReport     string `json:"financial_report"`
	VATReturn           string `json:"vat_return"`
	FDConsent           string `json:"fd_consent"`
	CreditSearch        string `json:"credit_search"`
}
