package dto

import "time"

// CostumerRequest alta/edición de un comercio. En PATCH el cuerpo se fusiona
// sobre el estado actual antes de validar.
type CostumerRequest struct {
	TradingName          string  `json:"trading_name"`
	LegalName            string  `json:"legal_name"`
	BusinessType         string  `json:"business_type"`
	LegalEntity          string  `json:"legal_entity"`
	BusinessDate         *Date   `json:"business_date"`
	RegisteredAddress    string  `json:"registered_address"`
	RegisteredPostalCode string  `json:"registered_postal_code"`
	CountryID            *string `json:"country"`
	RegisteredCountryID  *string `json:"registered_country"`
	BusinessPostalCode   string  `json:"business_postal_code"`
	CompanyNumber        string  `json:"company_number"`
	CompanyMobile        string  `json:"company_mobile"`
	LandLine             string  `json:"land_line"`
	BusinessEmail        string  `json:"business_email"`
	Website              string  `json:"website"`

	DirectorName          string  `json:"director_name"`
	DirectorPhone         string  `json:"director_phone"`
	DirectorEmail         string  `json:"director_email"`
	DirectorAddress       string  `json:"director_address"`
	DirectorPostalCode    string  `json:"director_postal_code"`
	DirectorNationalityID *string `json:"director_nationality"`
	DirectorBirthDate     *Date   `json:"director_birth_date"`

	Note string `json:"note"`

	SortCode         string `json:"sort_code"`
	IssuingBank      string `json:"issuing_bank"`
	AccountNumber    string `json:"account_number"`
	BusinessBankName string `json:"business_bank_name"`

	PartnerName          *string `json:"partner_name"`
	PartnerAddress       *string `json:"partner_address"`
	PartnerNationalityID *string `json:"partner_nationality"`
	Shareholder          *int    `json:"shareholder"`
}

// NationalityResponse país mínimo embebido en otras respuestas.
type NationalityResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// TradingAddressRequest elemento del alta masiva de direcciones.
type TradingAddressRequest struct {
	Address string `json:"address"`
}

// TradingAddressResponse dirección comercial.
type TradingAddressResponse struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// CostumerResponse detalle de un comercio con países resueltos y direcciones.
// BusinessType y LegalEntity van en su forma legible.
type CostumerResponse struct {
	ID                   string               `json:"id"`
	TradingName          string               `json:"trading_name"`
	LegalName            string               `json:"legal_name"`
	BusinessType         string               `json:"business_type"`
	LegalEntity          string               `json:"legal_entity"`
	BusinessDate         *Date                `json:"business_date"`
	RegisteredAddress    string               `json:"registered_address"`
	RegisteredPostalCode string               `json:"registered_postal_code"`
	Country              *NationalityResponse `json:"country"`
	RegisteredCountry    *NationalityResponse `json:"registered_country"`
	BusinessPostalCode   string               `json:"business_postal_code"`
	CompanyNumber        string               `json:"company_number"`
	CompanyMobile        string               `json:"company_mobile"`
	LandLine             string               `json:"land_line"`
	BusinessEmail        string               `json:"business_email"`
	Website              string               `json:"website"`

	DirectorName        string               `json:"director_name"`
	DirectorPhone       string               `json:"director_phone"`
	DirectorEmail       string               `json:"director_email"`
	DirectorAddress     string               `json:"director_address"`
	DirectorPostalCode  string               `json:"director_postal_code"`
	DirectorNationality *NationalityResponse `json:"director_nationality"`
	DirectorBirthDate   *Date                `json:"director_birth_date"`

	Note string `json:"note"`

	SortCode         string `json:"sort_code"`
	IssuingBank      string `json:"issuing_bank"`
	AccountNumber    string `json:"account_number"`
	BusinessBankName string `json:"business_bank_name"`

	PartnerName        *string              `json:"partner_name"`
	PartnerAddress     *string              `json:"partner_address"`
	PartnerNationality *NationalityResponse `json:"partner_nationality"`
	Shareholder        *int                 `json:"shareholder"`

	TradingAddresses []TradingAddressResponse `json:"trading_addresses"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// CostumerMiniResponse sugerencia de comercio (id + nombres).
type CostumerMiniResponse struct {
	ID          string `json:"id"`
	LegalName   string `json:"legal_name"`
	TradingName string `json:"trading_name"`
}

// CostumerFilesResponse URLs de los documentos KYC/KYB ("" si no se subió).
type CostumerFilesResponse struct {
	POB                    string `json:"pob"`
	KYC1ID                 string `json:"kyc1_id"`
	KYC2AddressProof       string `json:"kyc2_address_proof"`
	KYBPremisesPhoto       string `json:"kyb_premises_photo"`
	KYBTradingAddressProof string `json:"kyb_trading_address_proof"`
}
