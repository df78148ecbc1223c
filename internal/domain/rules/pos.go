package rules

import (
	"strings"

	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// ValidatePOS valida un POS contra la empresa de su modelo, leída en la misma
// petición (la configuración vigente, sin caché).
func ValidatePOS(p *entity.POS, company *entity.POSCompany) error {
	if entity.POSTypeName(p.Type) == "" {
		return domain.NewValidationError("type", "debe ser D, M o P")
	}
	if strings.TrimSpace(p.SerialNumber) == "" {
		return domain.NewValidationError("serial_number", "es requerido")
	}
	return ValidateSerialNumber(p.SerialNumber, company.SerialNumberLength)
}
