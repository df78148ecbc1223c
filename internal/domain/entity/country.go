package entity

import "time"

// Country país de referencia (nacionalidades, país registrado, cobertura comercial).
type Country struct {
	ID           string
	Name         string // único
	Code         string
	Abbreviation string // si viene vacío se deriva de las tres primeras letras del nombre
	IsCovered    bool
	CreatedBy    *string
	CreatedAt    time.Time
}
