package rules

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/pos-crm-api/internal/domain"
)

const maxAbbreviationLen = 5

var upper = cases.Upper(language.Und)

// DeriveAbbreviation devuelve la abreviatura a persistir: la enviada, o las tres
// primeras letras del nombre en mayúsculas si viene vacía ("Germany" -> "GER").
func DeriveAbbreviation(name, abbreviation string) string {
	if a := strings.TrimSpace(abbreviation); a != "" {
		return a
	}
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return upper.String(string(runes))
}

// ValidateCountry aplica las restricciones de longitud del catálogo de países.
func ValidateCountry(name, code, abbreviation string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("name", "es requerido")
	}
	if utf8.RuneCountInString(name) > 50 {
		return domain.NewValidationError("name", "máximo 50 caracteres")
	}
	if utf8.RuneCountInString(code) > 10 {
		return domain.NewValidationError("code", "máximo 10 caracteres")
	}
	if utf8.RuneCountInString(abbreviation) > maxAbbreviationLen {
		return domain.NewValidationError("abbreviation", "máximo 5 caracteres")
	}
	return nil
}
