package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/jhoicas/pos-crm-api/internal/domain"
)

// ValidateSerialLength comprueba la configuración de una POSCompany.
func ValidateSerialLength(length int) error {
	if length <= 0 {
		return domain.NewValidationError("serial_number_length", "debe ser un entero positivo")
	}
	return nil
}

// ValidateSerialNumber exige que el serial tenga exactamente la longitud configurada
// en la empresa del modelo. Nunca rellena ni trunca.
func ValidateSerialNumber(serial string, companyLength int) error {
	n := utf8.RuneCountInString(serial)
	if n != companyLength {
		return &domain.ValidationError{
			Field:   "serial_number",
			Rule:    "serial_number",
			Message: fmt.Sprintf("longitud de serial inválida: tiene %d caracteres, la empresa exige %d", n, companyLength),
		}
	}
	return nil
}
