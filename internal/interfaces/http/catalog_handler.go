package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// CatalogHandler catálogos: países, fabricantes, modelos, terminales y servicios.
type CatalogHandler struct {
	countries *usecase.CountryUseCase
	companies *usecase.POSCompanyUseCase
	models    *usecase.PosModelUseCase
	poses     *usecase.POSUseCase
	services  *usecase.VirtualServiceUseCase
	log       *logger.Logger
}

// CatalogUseCases agrupa los casos de uso del catálogo.
type CatalogUseCases struct {
	Countries *usecase.CountryUseCase
	Companies *usecase.POSCompanyUseCase
	Models    *usecase.PosModelUseCase
	POS       *usecase.POSUseCase
	Services  *usecase.VirtualServiceUseCase
}

func NewCatalogHandler(ucs CatalogUseCases, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		countries: ucs.Countries,
		companies: ucs.Companies,
		models:    ucs.Models,
		poses:     ucs.POS,
		services:  ucs.Services,
		log:       log,
	}
}

// respond escribe out con status o traduce err.
func (h *CatalogHandler) respond(c *fiber.Ctx, status int, out interface{}, err error) error {
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(status).JSON(out)
}

func (h *CatalogHandler) noContent(c *fiber.Ctx, err error) error {
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Países ─────────────────────────────────────────────────────────────────

// ListCountries godoc
// @Summary      Listar países
// @Tags         countries
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.CountryResponse
// @Router       /api/crm/countries [get]
func (h *CatalogHandler) ListCountries(c *fiber.Ctx) error {
	out, err := h.countries.List(c.UserContext())
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreateCountry godoc
// @Summary      Crear país
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.CountryRequest  true  "país"
// @Success      201   {object}  dto.CountryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/countries [post]
func (h *CatalogHandler) CreateCountry(c *fiber.Ctx) error {
	var in dto.CountryRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.countries.Create(c.UserContext(), GetUserID(c), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// DeleteCountry godoc
// @Summary      Eliminar país
// @Tags         countries
// @Security     Bearer
// @Param        id   path  string  true  "Country ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/countries/{id} [delete]
func (h *CatalogHandler) DeleteCountry(c *fiber.Ctx) error {
	return h.noContent(c, h.countries.Delete(c.UserContext(), c.Params("id")))
}

// ToggleCoverage godoc
// @Summary      Alternar cobertura del país
// @Tags         countries
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Country ID"
// @Success      200  "sin cuerpo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/countries/{id}/coverage [post]
func (h *CatalogHandler) ToggleCoverage(c *fiber.Ctx) error {
	_, err := h.countries.ToggleCoverage(c.UserContext(), GetUserID(c), c.Params("id"))
	return flipped(c, h.log, err)
}

// SetCoverage godoc
// @Summary      Fijar cobertura del país
// @Tags         countries
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string           true  "Country ID"
// @Param        body  body  dto.FlagRequest  true  "value"
// @Success      200   {object}  dto.FlagResponse
// @Router       /api/crm/countries/{id}/coverage [put]
func (h *CatalogHandler) SetCoverage(c *fiber.Ctx) error {
	v, err := flagValue(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.countries.SetCoverage(c.UserContext(), GetUserID(c), c.Params("id"), v)
	return h.respond(c, fiber.StatusOK, out, err)
}

// CountryIsUsed godoc
// @Summary      ¿País referenciado?
// @Tags         countries
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Country ID"
// @Success      200  {object}  dto.UsedResponse
// @Router       /api/crm/is-used/country/{id} [get]
func (h *CatalogHandler) CountryIsUsed(c *fiber.Ctx) error {
	out, err := h.countries.IsUsed(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// ─── Fabricantes ────────────────────────────────────────────────────────────

// ListCompanies godoc
// @Summary      Listar fabricantes de terminales
// @Tags         companies
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.POSCompanyResponse
// @Router       /api/crm/companies [get]
func (h *CatalogHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.companies.List(c.UserContext())
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreateCompany godoc
// @Summary      Crear fabricante
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.POSCompanyRequest  true  "fabricante"
// @Success      201   {object}  dto.POSCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/companies [post]
func (h *CatalogHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.POSCompanyRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.companies.Create(c.UserContext(), GetUserID(c), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// UpdateCompany godoc
// @Summary      Actualizar fabricante
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                 true  "Company ID"
// @Param        body  body  dto.POSCompanyRequest  true  "campos a modificar"
// @Success      200   {object}  dto.POSCompanyResponse
// @Router       /api/crm/companies/{id} [patch]
func (h *CatalogHandler) UpdateCompany(c *fiber.Ctx) error {
	out, err := h.companies.Update(c.UserContext(), c.Params("id"), patchWith[dto.POSCompanyRequest](c))
	return h.respond(c, fiber.StatusOK, out, err)
}

// DeleteCompany godoc
// @Summary      Eliminar fabricante
// @Tags         companies
// @Security     Bearer
// @Param        id   path  string  true  "Company ID"
// @Success      204
// @Router       /api/crm/companies/{id} [delete]
func (h *CatalogHandler) DeleteCompany(c *fiber.Ctx) error {
	return h.noContent(c, h.companies.Delete(c.UserContext(), c.Params("id")))
}

// CompanyModels godoc
// @Summary      Modelos de un fabricante
// @Tags         companies
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "Company ID"
// @Success      200  {array}  dto.PosModelResponse
// @Router       /api/crm/company/{id}/models [get]
func (h *CatalogHandler) CompanyModels(c *fiber.Ctx) error {
	out, err := h.companies.Models(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// CompanyIsUsed godoc
// @Summary      ¿Fabricante referenciado?
// @Tags         companies
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  dto.UsedResponse
// @Router       /api/crm/is-used/company/{id} [get]
func (h *CatalogHandler) CompanyIsUsed(c *fiber.Ctx) error {
	out, err := h.companies.IsUsed(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// ─── Modelos ────────────────────────────────────────────────────────────────

// ListModels godoc
// @Summary      Listar modelos de terminal
// @Tags         posmodels
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.PosModelResponse
// @Router       /api/crm/posmodels [get]
func (h *CatalogHandler) ListModels(c *fiber.Ctx) error {
	out, err := h.models.List(c.UserContext())
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreateModel godoc
// @Summary      Crear modelo
// @Tags         posmodels
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.PosModelRequest  true  "modelo"
// @Success      201   {object}  dto.PosModelResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/crm/posmodels [post]
func (h *CatalogHandler) CreateModel(c *fiber.Ctx) error {
	var in dto.PosModelRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.models.Create(c.UserContext(), GetUserID(c), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// UpdateModel godoc
// @Summary      Actualizar modelo
// @Tags         posmodels
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string               true  "Model ID"
// @Param        body  body  dto.PosModelRequest  true  "campos a modificar"
// @Success      200   {object}  dto.PosModelResponse
// @Router       /api/crm/posmodels/{id} [patch]
func (h *CatalogHandler) UpdateModel(c *fiber.Ctx) error {
	out, err := h.models.Update(c.UserContext(), c.Params("id"), patchWith[dto.PosModelRequest](c))
	return h.respond(c, fiber.StatusOK, out, err)
}

// DeleteModel godoc
// @Summary      Eliminar modelo
// @Tags         posmodels
// @Security     Bearer
// @Param        id   path  string  true  "Model ID"
// @Success      204
// @Router       /api/crm/posmodels/{id} [delete]
func (h *CatalogHandler) DeleteModel(c *fiber.Ctx) error {
	return h.noContent(c, h.models.Delete(c.UserContext(), c.Params("id")))
}

// ModelIsUsed godoc
// @Summary      ¿Modelo referenciado?
// @Tags         posmodels
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Model ID"
// @Success      200  {object}  dto.UsedResponse
// @Router       /api/crm/is-used/model/{id} [get]
func (h *CatalogHandler) ModelIsUsed(c *fiber.Ctx) error {
	out, err := h.models.IsUsed(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// ─── Terminales ─────────────────────────────────────────────────────────────

// ListPOS godoc
// @Summary      Listar terminales
// @Description  Recalcula el estado según contratos vigentes antes de listar.
// @Tags         poses
// @Produce      json
// @Security     Bearer
// @Param        status    query  string  false  "available | unavailable"
// @Param        model_id  query  string  false  "Model ID"
// @Param        type      query  string  false  "tipo de terminal"
// @Param        active    query  string  false  "true | false"
// @Success      200  {array}  dto.POSResponse
// @Router       /api/crm/poses [get]
func (h *CatalogHandler) ListPOS(c *fiber.Ctx) error {
	var q dto.POSListQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, h.log, errInvalidBody)
	}
	out, err := h.poses.List(c.UserContext(), q)
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreatePOS godoc
// @Summary      Crear terminal
// @Tags         poses
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.POSRequest  true  "terminal"
// @Success      201   {object}  dto.POSResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/poses [post]
func (h *CatalogHandler) CreatePOS(c *fiber.Ctx) error {
	var in dto.POSRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.poses.Create(c.UserContext(), GetUserID(c), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// GetPOS godoc
// @Summary      Obtener terminal con su contrato vigente
// @Tags         poses
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "POS ID"
// @Success      200  {object}  dto.POSResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/poses/{id} [get]
func (h *CatalogHandler) GetPOS(c *fiber.Ctx) error {
	out, err := h.poses.Get(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// UpdatePOS godoc
// @Summary      Actualizar terminal
// @Tags         poses
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string          true  "POS ID"
// @Param        body  body  dto.POSRequest  true  "campos a modificar"
// @Success      200   {object}  dto.POSResponse
// @Router       /api/crm/poses/{id} [patch]
func (h *CatalogHandler) UpdatePOS(c *fiber.Ctx) error {
	out, err := h.poses.Update(c.UserContext(), c.Params("id"), patchWith[dto.POSRequest](c))
	return h.respond(c, fiber.StatusOK, out, err)
}

// DeletePOS godoc
// @Summary      Eliminar terminal
// @Tags         poses
// @Security     Bearer
// @Param        id   path  string  true  "POS ID"
// @Success      204
// @Router       /api/crm/poses/{id} [delete]
func (h *CatalogHandler) DeletePOS(c *fiber.Ctx) error {
	return h.noContent(c, h.poses.Delete(c.UserContext(), c.Params("id")))
}

// TogglePOSActive godoc
// @Summary      Alternar active del terminal
// @Tags         poses
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "POS ID"
// @Success      200  "sin cuerpo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/pos-active/{id} [post]
func (h *CatalogHandler) TogglePOSActive(c *fiber.Ctx) error {
	_, err := h.poses.ToggleActive(c.UserContext(), GetUserID(c), c.Params("id"))
	return flipped(c, h.log, err)
}

// SetPOSActive godoc
// @Summary      Fijar active del terminal
// @Tags         poses
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string           true  "POS ID"
// @Param        body  body  dto.FlagRequest  true  "value"
// @Success      200   {object}  dto.FlagResponse
// @Router       /api/crm/poses/{id}/active [put]
func (h *CatalogHandler) SetPOSActive(c *fiber.Ctx) error {
	v, err := flagValue(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.poses.SetActive(c.UserContext(), GetUserID(c), c.Params("id"), v)
	return h.respond(c, fiber.StatusOK, out, err)
}

// POSIsUsed godoc
// @Summary      ¿Terminal referenciado?
// @Tags         poses
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "POS ID"
// @Success      200  {object}  dto.UsedResponse
// @Router       /api/crm/is-used/pos/{id} [get]
func (h *CatalogHandler) POSIsUsed(c *fiber.Ctx) error {
	out, err := h.poses.IsUsed(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// ─── Servicios ──────────────────────────────────────────────────────────────

// ListServices godoc
// @Summary      Listar servicios virtuales
// @Tags         services
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.ServiceResponse
// @Router       /api/crm/services [get]
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	out, err := h.services.List(c.UserContext())
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreateService godoc
// @Summary      Crear servicio virtual
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.ServiceRequest  true  "servicio"
// @Success      201   {object}  dto.ServiceResponse
// @Router       /api/crm/services [post]
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var in dto.ServiceRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.services.Create(c.UserContext(), GetUserID(c), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// UpdateService godoc
// @Summary      Actualizar servicio virtual
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string              true  "Service ID"
// @Param        body  body  dto.ServiceRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ServiceResponse
// @Router       /api/crm/services/{id} [patch]
func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	out, err := h.services.Update(c.UserContext(), c.Params("id"), patchWith[dto.ServiceRequest](c))
	return h.respond(c, fiber.StatusOK, out, err)
}

// DeleteService godoc
// @Summary      Eliminar servicio virtual
// @Tags         services
// @Security     Bearer
// @Param        id   path  string  true  "Service ID"
// @Success      204
// @Router       /api/crm/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	return h.noContent(c, h.services.Delete(c.UserContext(), c.Params("id")))
}

// ToggleAvailability godoc
// @Summary      Alternar disponibilidad del servicio
// @Tags         services
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Service ID"
// @Success      200  "sin cuerpo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/services/{id}/availability [post]
func (h *CatalogHandler) ToggleAvailability(c *fiber.Ctx) error {
	_, err := h.services.ToggleAvailability(c.UserContext(), GetUserID(c), c.Params("id"))
	return flipped(c, h.log, err)
}

// SetAvailability godoc
// @Summary      Fijar disponibilidad del servicio
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string           true  "Service ID"
// @Param        body  body  dto.FlagRequest  true  "value"
// @Success      200   {object}  dto.FlagResponse
// @Router       /api/crm/services/{id}/availability [put]
func (h *CatalogHandler) SetAvailability(c *fiber.Ctx) error {
	v, err := flagValue(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.services.SetAvailability(c.UserContext(), GetUserID(c), c.Params("id"), v)
	return h.respond(c, fiber.StatusOK, out, err)
}

// ServiceIsUsed godoc
// @Summary      ¿Servicio referenciado?
// @Tags         services
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  dto.UsedResponse
// @Router       /api/crm/is-used/service/{id} [get]
func (h *CatalogHandler) ServiceIsUsed(c *fiber.Ctx) error {
	out, err := h.services.IsUsed(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}
