package dto

import "time"

// TokenRequest credenciales para obtener un token.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse token JWT y datos del principal autenticado.
type TokenResponse struct {
	Token string            `json:"token"`
	User  PrincipalResponse `json:"user"`
}

// CreatePrincipalRequest alta de un principal (solo superuser).
type CreatePrincipalRequest struct {
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	Name          string  `json:"name"`
	Title         string  `json:"title"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	PostalCode    string  `json:"postal_code"`
	BirthDate     *Date   `json:"birth_date"`
	Email         string  `json:"email"`
	NationalityID *string `json:"nationality"`
	IsStaff       bool    `json:"is_staff"`
	IsSuperuser   bool    `json:"is_superuser"`
}

// UpdateMeRequest actualización parcial del propio perfil. Password opcional.
type UpdateMeRequest struct {
	Name          *string `json:"name"`
	Title         *string `json:"title"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	PostalCode    *string `json:"postal_code"`
	BirthDate     *Date   `json:"birth_date"`
	Email         *string `json:"email"`
	NationalityID *string `json:"nationality"`
	Password      *string `json:"password"`
}

// ChangePasswordRequest cambio de contraseña con verificación de la anterior.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// PrincipalResponse salida de un principal (sin hash).
type PrincipalResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Name          string     `json:"name"`
	Title         string     `json:"title"`
	Address       string     `json:"address"`
	Phone         string     `json:"phone"`
	PostalCode    string     `json:"postal_code"`
	BirthDate     *Date      `json:"birth_date"`
	Email         string     `json:"email"`
	Image         string     `json:"image"`
	NationalityID *string    `json:"nationality"`
	IsActive      bool       `json:"is_active"`
	IsStaff       bool       `json:"is_staff"`
	IsSuperuser   bool       `json:"is_superuser"`
	LastLogin     *time.Time `json:"last_login"`
	CreatedBy     *string    `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ImageResponse URL pública de la imagen subida.
type ImageResponse struct {
	Image string `json:"image"`
}
