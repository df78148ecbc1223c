package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// PrincipalHandler administración de principales (listado, flags, baja).
type PrincipalHandler struct {
	uc  *usecase.PrincipalUseCase
	log *logger.Logger
}

func NewPrincipalHandler(uc *usecase.PrincipalUseCase, log *logger.Logger) *PrincipalHandler {
	return &PrincipalHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar principales
// @Tags         admins
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   dto.PrincipalResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admins/list [get]
func (h *PrincipalHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Perfil de otro principal
// @Tags         admins
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Principal ID"
// @Success      200  {object}  dto.PrincipalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admins/profile/{id} [get]
func (h *PrincipalHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Promote godoc
// @Summary      Alternar is_staff
// @Tags         admins
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Principal ID"
// @Success      200  "sin cuerpo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admins/promote/{id} [post]
func (h *PrincipalHandler) Promote(c *fiber.Ctx) error {
	return h.toggle(c, repository.FlagStaff)
}

// Deactivate godoc
// @Summary      Alternar is_active
// @Tags         admins
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Principal ID"
// @Success      200  "sin cuerpo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admins/deactive/{id} [post]
func (h *PrincipalHandler) Deactivate(c *fiber.Ctx) error {
	return h.toggle(c, repository.FlagActive)
}

// SetStaff godoc
// @Summary      Fijar is_staff
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string           true  "Principal ID"
// @Param        body  body  dto.FlagRequest  true  "value"
// @Success      200   {object}  dto.FlagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admins/{id}/staff [put]
func (h *PrincipalHandler) SetStaff(c *fiber.Ctx) error {
	return h.set(c, repository.FlagStaff)
}

// SetActive godoc
// @Summary      Fijar is_active
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string           true  "Principal ID"
// @Param        body  body  dto.FlagRequest  true  "value"
// @Success      200   {object}  dto.FlagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admins/{id}/active [put]
func (h *PrincipalHandler) SetActive(c *fiber.Ctx) error {
	return h.set(c, repository.FlagActive)
}

// Delete godoc
// @Summary      Eliminar principal
// @Tags         admins
// @Security     Bearer
// @Param        id   path  string  true  "Principal ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admins/{id} [delete]
func (h *PrincipalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PrincipalHandler) toggle(c *fiber.Ctx, flag repository.PrincipalFlag) error {
	_, err := h.uc.Toggle(c.UserContext(), GetUserID(c), c.Params("id"), flag)
	return flipped(c, h.log, err)
}

func (h *PrincipalHandler) set(c *fiber.Ctx, flag repository.PrincipalFlag) error {
	v, err := flagValue(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Set(c.UserContext(), GetUserID(c), c.Params("id"), flag, v)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
