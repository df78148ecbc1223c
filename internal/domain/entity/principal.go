package entity

import "time"

// DefaultPrincipalTitle título asignado cuando no se envía uno.
const DefaultPrincipalTitle = "BTC Admin"

// Principal representa una cuenta de staff/administración del back-office.
// CreatedBy es una referencia débil a otro Principal (ON DELETE SET NULL):
// borrar al creador nunca borra las cuentas que creó.
type Principal struct {
	ID            string
	Username      string // único
	Name          string
	Title         string
	Address       string
	Phone         string
	PostalCode    string
	BirthDate     *time.Time
	Email         string
	Image         string // ruta relativa en el almacenamiento (uploads/user/...)
	NationalityID *string
	PasswordHash  string // bcrypt hash, nunca plano
	IsActive      bool
	IsStaff       bool
	IsSuperuser   bool
	LastLogin     *time.Time
	CreatedBy     *string
	CreatedAt     time.Time
}
