package rules

import (
	"slices"
	"strings"

	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// ValidatePercent valida un porcentaje entero en [0, 100].
func ValidatePercent(field string, v int) error {
	if v < 0 || v > 100 {
		return &domain.ValidationError{Field: field, Rule: "percent", Message: "debe estar entre 0 y 100"}
	}
	return nil
}

// ValidateCostumer es la compuerta de escritura de un Costumer. Se evalúa sobre el
// estado completo resultante (creación o actualización), nunca sobre un parche.
func ValidateCostumer(c *entity.Costumer) error {
	required := []struct{ field, value string }{
		{"trading_name", c.TradingName},
		{"legal_name", c.LegalName},
		{"registered_address", c.RegisteredAddress},
		{"director_name", c.DirectorName},
		{"business_bank_name", c.BusinessBankName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.NewValidationError(r.field, "es requerido")
		}
	}
	if !slices.Contains(entity.BusinessTypes, c.BusinessType) {
		return domain.NewValidationError("business_type", "valor no permitido")
	}
	if !slices.Contains(entity.LegalEntities, c.LegalEntity) {
		return domain.NewValidationError("legal_entity", "valor no permitido")
	}
	if c.BusinessBankName != c.LegalName {
		return &domain.ValidationError{
			Field:   "business_bank_name",
			Rule:    "bank_name",
			Message: "el nombre del banco del negocio y el nombre legal deben coincidir",
		}
	}
	if c.Shareholder != nil {
		if err := ValidatePercent("shareholder", *c.Shareholder); err != nil {
			return err
		}
	}
	return nil
}

// ClearSoleTraderPartner vacía los datos de socio cuando la forma jurídica es
// Sole Trader, sin importar lo que se haya enviado.
func ClearSoleTraderPartner(c *entity.Costumer) {
	if c.LegalEntity != entity.LegalEntitySoleTrader {
		return
	}
	c.PartnerName = nil
	c.PartnerAddress = nil
	c.PartnerNationalityID = nil
	c.Shareholder = nil
}

// PrepareCostumer valida y luego normaliza: primero la compuerta completa, después
// el vaciado de socio para Sole Trader.
func PrepareCostumer(c *entity.Costumer) error {
	if err := ValidateCostumer(c); err != nil {
		return err
	}
	ClearSoleTraderPartner(c)
	return nil
}
