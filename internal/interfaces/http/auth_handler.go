package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-crm-api/internal/application/auth"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// AuthHandler maneja token, alta de principales y el perfil propio.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Token godoc
// @Summary      Obtener token
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "username, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admins/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Token(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear principal
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.CreatePrincipalRequest  true  "datos del principal"
// @Success      201   {object}  dto.PrincipalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admins/create [post]
func (h *AuthHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrincipalRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.CreatePrincipal(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me godoc
// @Summary      Perfil propio
// @Tags         admins
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.PrincipalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admins/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Actualizar perfil propio
// @Description  Actualización parcial. Si llega password se vuelve a hashear.
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.UpdateMeRequest  true  "campos a modificar"
// @Success      200   {object}  dto.PrincipalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admins/me [patch]
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateMeRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.UpdateMe(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Tags         admins
// @Accept       json
// @Security     Bearer
// @Param        body  body  dto.ChangePasswordRequest  true  "old_password, new_password"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admins/me/changepassword [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.ChangePassword(c.UserContext(), GetUserID(c), in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadPicture godoc
// @Summary      Subir foto de perfil
// @Tags         admins
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        image  formData  file  true  "imagen"
// @Success      200    {object}  dto.ImageResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admins/me/picture [post]
func (h *AuthHandler) UploadPicture(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el campo image es requerido", Field: "image"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, h.log, errInvalidBody)
	}
	defer f.Close()
	out, err := h.uc.UploadPicture(c.UserContext(), GetUserID(c), fh.Filename, f)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
