package dto

import (
	"encoding/json"
	"strings"
	"time"
)

// ErrorResponse cuerpo de error HTTP. Field solo se informa en errores de validación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// UsedResponse respuesta de los endpoints is-used.
type UsedResponse struct {
	Used bool `json:"used"`
}

// FlagRequest cuerpo de los endpoints set-to-value (PUT .../{flag}).
type FlagRequest struct {
	Value *bool `json:"value"`
}

// FlagResponse estado resultante de un toggle/set.
type FlagResponse struct {
	ID    string `json:"id"`
	Flag  string `json:"flag"`
	Value bool   `json:"value"`
}

// DateLayout formato de fecha civil en la API.
const DateLayout = "2006-01-02"

// Date fecha civil (sin hora) serializada como "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate trunca t a su fecha civil.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DatePtr versión nil-safe para campos opcionales.
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// TimePtr devuelve el time.Time de una fecha opcional.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	// se aceptan también timestamps completos; se conserva la fecha
	if len(s) > len(DateLayout) {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
		*d = NewDate(t)
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
