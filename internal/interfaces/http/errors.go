package http

import (
	"encoding/json"
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// errInvalidBody cuerpo JSON o multipart ilegible.
var errInvalidBody = errors.New("cuerpo inválido")

// writeError traduce errores de dominio a status + ErrorResponse.
// Los errores no tipados se registran y responden 500 sin detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	if ve, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ve.Message, Field: ve.Field})
	}
	switch {
	case errors.Is(err, errInvalidBody):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredential):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "AUTH_FAILED", Message: "usuario o contraseña incorrectos"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrUsernameExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// parseBody decodifica el cuerpo JSON en out.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return nil
}

// patchWith devuelve el callback de actualización parcial: el cuerpo se
// decodifica encima del estado actual, así los campos ausentes se conservan.
func patchWith[T any](c *fiber.Ctx) func(*T) error {
	body := c.Body()
	return func(cur *T) error {
		if len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, cur); err != nil {
			return errInvalidBody
		}
		return nil
	}
}

// flipped responde 200 sin cuerpo a los toggles. SendStatus escribiría "OK"
// como texto plano.
func flipped(c *fiber.Ctx, log *logger.Logger, err error) error {
	if err != nil {
		return writeError(c, log, err)
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

// flagValue lee {"value": bool} de los endpoints set-to-value.
func flagValue(c *fiber.Ctx) (bool, error) {
	var in dto.FlagRequest
	if err := parseBody(c, &in); err != nil {
		return false, err
	}
	if in.Value == nil {
		return false, domain.NewValidationError("value", "value es requerido")
	}
	return *in.Value, nil
}

// formUploads abre el primer archivo de cada campo del formulario multipart.
// El llamador debe invocar closeAll al terminar.
func formUploads(c *fiber.Ctx) (map[string]usecase.Upload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, errInvalidBody
	}
	files := make(map[string]usecase.Upload, len(form.File))
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		f, err := headers[0].Open()
		if err != nil {
			closeAll()
			return nil, func() {}, errInvalidBody
		}
		opened = append(opened, f)
		files[field] = usecase.Upload{Name: headers[0].Filename, Reader: f}
	}
	return files, closeAll, nil
}
