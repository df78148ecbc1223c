package entity

import "time"

// Formas jurídicas del comercio.
const (
	LegalEntitySoleTrader     = "Sole Trader"
	LegalEntityPartnership    = "Partnership"
	LegalEntityPrivateLimited = "Private Limited Company"
	LegalEntityPublicLimited  = "Public Limited Company"
	LegalEntityLLP            = "Limited Liability Partnership"
	LegalEntityCharity        = "Charity"
	LegalEntityOther          = "Other"
)

// LegalEntities valores aceptados de LegalEntity.
var LegalEntities = []string{
	LegalEntitySoleTrader, LegalEntityPartnership, LegalEntityPrivateLimited,
	LegalEntityPublicLimited, LegalEntityLLP, LegalEntityCharity, LegalEntityOther,
}

// BusinessTypes valores aceptados de BusinessType (se conservan tal como los usa el negocio).
var BusinessTypes = []string{
	"Accommodation", "Accountants and Auditors", "Builders, Carpenters and Materials",
	"Carpets nd Floornig", "Caterers", "Cinema, Nightclub and Entertainment",
	"Cleaning and Maintenance Servises", "Clothing and Accessories", "Education and Trainig",
	"Estate Agents", "Food, Drink and Newsagents", "Furniture", "Garden Centers and Landscaping",
	"Gift Shopes, Arts and Crafts", "Hair and Beauty", "Health and Mediacal Services",
	"Heating, Plumping and Air Conditioning", "Home Appliances and Decor", "Jewellery",
	"Leather Goods", "Motor Sales, Servicing and parts", "Pet Services",
	"Petrol and Motorway Service Stations", "Photography", "Restaurants, Pubs and Fast Food",
	"Sports and Recreation Faculties", "Taxis", "Theaters and Ticket Agencies", "Other",
}

// Costumer comercio (merchant) cliente de la distribuidora.
type Costumer struct {
	ID                   string
	TradingName          string
	LegalName            string
	BusinessType         string
	LegalEntity          string
	BusinessDate         *time.Time
	RegisteredAddress    string
	RegisteredPostalCode string
	CountryID            *string
	RegisteredCountryID  *string
	BusinessPostalCode   string
	CompanyNumber        string
	CompanyMobile        string
	LandLine             string
	BusinessEmail        string
	Website              string

	DirectorName          string
	DirectorPhone         string
	DirectorEmail         string
	DirectorAddress       string
	DirectorPostalCode    string
	DirectorNationalityID *string
	DirectorBirthDate     *time.Time

	Note string

	SortCode         string
	IssuingBank      string
	AccountNumber    string
	BusinessBankName string

	PartnerName          *string
	PartnerAddress       *string
	PartnerNationalityID *string
	Shareholder          *int // porcentaje 0..100

	Documents CostumerDocuments

	CreatedBy     *string
	CreatedAt     time.Time
	LastUpdatedBy *string
	UpdatedAt     time.Time
}

// CostumerDocuments rutas de los documentos KYC/KYB subidos.
type CostumerDocuments struct {
	POB                    string
	KYC1ID                 string
	KYC2AddressProof       string
	KYBPremisesPhoto       string
	KYBTradingAddressProof string
}

// TradingAddress dirección comercial adicional de un Costumer.
type TradingAddress struct {
	ID         string
	Address    string
	CostumerID string
}
