package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// CRMUseCases agrupa los casos de uso de objetivos, comercios y contratos.
type CRMUseCases struct {
	Goals     *usecase.GoalUseCase
	Costumers *usecase.CostumerUseCase
	Contracts *usecase.ContractUseCase
	Ledger    *usecase.LedgerUseCase
}

// CRMHandler objetivos comerciales, comercios, contratos y sus libros.
type CRMHandler struct {
	goals     *usecase.GoalUseCase
	costumers *usecase.CostumerUseCase
	contracts *usecase.ContractUseCase
	ledger    *usecase.LedgerUseCase
	log       *logger.Logger
}

func NewCRMHandler(ucs CRMUseCases, log *logger.Logger) *CRMHandler {
	return &CRMHandler{
		goals:     ucs.Goals,
		costumers: ucs.Costumers,
		contracts: ucs.Contracts,
		ledger:    ucs.Ledger,
		log:       log,
	}
}

func (h *CRMHandler) respond(c *fiber.Ctx, status int, out interface{}, err error) error {
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(status).JSON(out)
}

func (h *CRMHandler) noContent(c *fiber.Ctx, err error) error {
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Objetivos ──────────────────────────────────────────────────────────────

// ListGoals godoc
// @Summary      Listar objetivos comerciales
// @Tags         goals
// @Produce      json
// @Security     Bearer
// @Param        status  query  string  false  "A | R | W | P"
// @Success      200  {array}  dto.GoalResponse
// @Router       /api/crm/goals [get]
func (h *CRMHandler) ListGoals(c *fiber.Ctx) error {
	out, err := h.goals.List(c.UserContext(), c.Query("status"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreateGoal godoc
// @Summary      Crear objetivo
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.GoalRequest  true  "objetivo"
// @Success      201   {object}  dto.GoalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/goals [post]
func (h *CRMHandler) CreateGoal(c *fiber.Ctx) error {
	var in dto.GoalRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.goals.Create(c.UserContext(), GetUserID(c), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// GetGoal godoc
// @Summary      Obtener objetivo
// @Tags         goals
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Goal ID"
// @Success      200  {object}  dto.GoalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/goals/{id} [get]
func (h *CRMHandler) GetGoal(c *fiber.Ctx) error {
	out, err := h.goals.Get(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// UpdateGoal godoc
// @Summary      Actualizar objetivo
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string           true  "Goal ID"
// @Param        body  body  dto.GoalRequest  true  "campos a modificar"
// @Success      200   {object}  dto.GoalResponse
// @Router       /api/crm/goals/{id} [patch]
func (h *CRMHandler) UpdateGoal(c *fiber.Ctx) error {
	out, err := h.goals.Update(c.UserContext(), GetUserID(c), c.Params("id"), patchWith[dto.GoalRequest](c))
	return h.respond(c, fiber.StatusOK, out, err)
}

// DeleteGoal godoc
// @Summary      Eliminar objetivo
// @Tags         goals
// @Security     Bearer
// @Param        id   path  string  true  "Goal ID"
// @Success      204
// @Router       /api/crm/goals/{id} [delete]
func (h *CRMHandler) DeleteGoal(c *fiber.Ctx) error {
	return h.noContent(c, h.goals.Delete(c.UserContext(), GetUserID(c), c.Params("id")))
}

// ─── Comercios ──────────────────────────────────────────────────────────────

// CreateCostumer godoc
// @Summary      Crear comercio
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.CostumerRequest  true  "comercio"
// @Success      201   {object}  dto.CostumerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/customers [post]
func (h *CRMHandler) CreateCostumer(c *fiber.Ctx) error {
	var in dto.CostumerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.costumers.Create(c.UserContext(), GetUserID(c), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// GetCostumer godoc
// @Summary      Obtener comercio con direcciones comerciales
// @Tags         customers
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Costumer ID"
// @Success      200  {object}  dto.CostumerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/customers/{id} [get]
func (h *CRMHandler) GetCostumer(c *fiber.Ctx) error {
	out, err := h.costumers.Get(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// UpdateCostumer godoc
// @Summary      Actualizar comercio
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string               true  "Costumer ID"
// @Param        body  body  dto.CostumerRequest  true  "campos a modificar"
// @Success      200   {object}  dto.CostumerResponse
// @Router       /api/crm/customers/{id} [patch]
func (h *CRMHandler) UpdateCostumer(c *fiber.Ctx) error {
	out, err := h.costumers.Update(c.UserContext(), GetUserID(c), c.Params("id"), patchWith[dto.CostumerRequest](c))
	return h.respond(c, fiber.StatusOK, out, err)
}

// ListCostumers godoc
// @Summary      Listado mínimo de comercios
// @Tags         customers
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  dto.CostumerMiniResponse
// @Router       /api/crm/allcustomers [get]
func (h *CRMHandler) ListCostumers(c *fiber.Ctx) error {
	out, err := h.costumers.ListMini(c.UserContext())
	return h.respond(c, fiber.StatusOK, out, err)
}

// AddAddresses godoc
// @Summary      Alta masiva de direcciones comerciales
// @Description  Todas o ninguna.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                       true  "Costumer ID"
// @Param        body  body  []dto.TradingAddressRequest  true  "direcciones"
// @Success      201   {array}   dto.TradingAddressResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/customer/{id}/address [post]
func (h *CRMHandler) AddAddresses(c *fiber.Ctx) error {
	var in []dto.TradingAddressRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.costumers.AddAddresses(c.UserContext(), c.Params("id"), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// CostumerFiles godoc
// @Summary      Documentos KYC/KYB del comercio de un contrato
// @Tags         customers
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  dto.CostumerFilesResponse
// @Router       /api/crm/customer/{id}/files [get]
func (h *CRMHandler) CostumerFiles(c *fiber.Ctx) error {
	out, err := h.costumers.Files(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// UpdateCostumerFiles godoc
// @Summary      Subir documentos KYC/KYB
// @Tags         customers
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        id                         path      string  true   "Contract ID"
// @Param        pob                        formData  file    false  "proof of business"
// @Param        kyc1_id                    formData  file    false  "documento de identidad"
// @Param        kyc2_address_proof         formData  file    false  "prueba de domicilio"
// @Param        kyb_premises_photo         formData  file    false  "foto del local"
// @Param        kyb_trading_address_proof  formData  file    false  "prueba de dirección comercial"
// @Success      200  {object}  dto.CostumerFilesResponse
// @Router       /api/crm/customer/{id}/files [put]
func (h *CRMHandler) UpdateCostumerFiles(c *fiber.Ctx) error {
	files, closeAll, err := formUploads(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	defer closeAll()
	out, err := h.costumers.UpdateFiles(c.UserContext(), c.Params("id"), files)
	return h.respond(c, fiber.StatusOK, out, err)
}

// ─── Contratos ──────────────────────────────────────────────────────────────

// ListContracts godoc
// @Summary      Listar contratos
// @Tags         contracts
// @Produce      json
// @Security     Bearer
// @Param        acquirer   query  string  false  "EP | FD"
// @Param        active_on  query  string  false  "YYYY-MM-DD"
// @Param        costumer   query  string  false  "Costumer ID"
// @Success      200  {array}  dto.ContractListItem
// @Router       /api/crm/contracts [get]
func (h *CRMHandler) ListContracts(c *fiber.Ctx) error {
	var q dto.ContractListQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, h.log, errInvalidBody)
	}
	out, err := h.contracts.List(c.UserContext(), q)
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreateContract godoc
// @Summary      Crear contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.ContractRequest  true  "contrato"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/crm/contracts [post]
func (h *CRMHandler) CreateContract(c *fiber.Ctx) error {
	var in dto.ContractRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.contracts.Create(c.UserContext(), GetUserID(c), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// GetContract godoc
// @Summary      Obtener contrato
// @Tags         contracts
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/contracts/{id} [get]
func (h *CRMHandler) GetContract(c *fiber.Ctx) error {
	out, err := h.contracts.Get(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// UpdateContract godoc
// @Summary      Actualizar contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string               true  "Contract ID"
// @Param        body  body  dto.ContractRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ContractResponse
// @Router       /api/crm/contracts/{id} [patch]
func (h *CRMHandler) UpdateContract(c *fiber.Ctx) error {
	out, err := h.contracts.Update(c.UserContext(), GetUserID(c), c.Params("id"), patchWith[dto.ContractRequest](c))
	return h.respond(c, fiber.StatusOK, out, err)
}

// ContractFiles godoc
// @Summary      Documentos del contrato
// @Tags         contracts
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  dto.ContractFilesResponse
// @Router       /api/crm/contract/{id}/files [get]
func (h *CRMHandler) ContractFiles(c *fiber.Ctx) error {
	out, err := h.contracts.Files(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// UpdateContractFiles godoc
// @Summary      Subir documentos del contrato
// @Tags         contracts
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        id                    path      string  true   "Contract ID"
// @Param        acquirer_application  formData  file    false  "solicitud al adquirente"
// @Param        financial_report      formData  file    false  "informe financiero"
// @Param        vat_return            formData  file    false  "declaración de IVA"
// @Param        fd_consent            formData  file    false  "consentimiento FD"
// @Param        credit_search         formData  file    false  "consulta de crédito"
// @Success      200  {object}  dto.ContractFilesResponse
// @Router       /api/crm/contract/{id}/files [put]
func (h *CRMHandler) UpdateContractFiles(c *fiber.Ctx) error {
	files, closeAll, err := formUploads(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	defer closeAll()
	out, err := h.contracts.UpdateFiles(c.UserContext(), c.Params("id"), files)
	return h.respond(c, fiber.StatusOK, out, err)
}

// AttachSolutions godoc
// @Summary      Vincular terminales y servicios en lote
// @Description  Todo el lote se aplica en una transacción.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                true  "Contract ID"
// @Param        body  body  dto.SolutionsRequest  true  "services y poses"
// @Success      201   {object}  dto.SolutionsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crm/contract/{id}/solutions [post]
func (h *CRMHandler) AttachSolutions(c *fiber.Ctx) error {
	var in dto.SolutionsRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.contracts.Attach(c.UserContext(), GetUserID(c), c.Params("id"), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// ListContractPOS godoc
// @Summary      Terminales del contrato
// @Tags         contracts
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "Contract ID"
// @Success      200  {array}  dto.ContractPOSResponse
// @Router       /api/crm/contracts/{id}/pos [get]
func (h *CRMHandler) ListContractPOS(c *fiber.Ctx) error {
	out, err := h.contracts.ListPOS(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// AddContractPOS godoc
// @Summary      Vincular terminal al contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                  true  "Contract ID"
// @Param        body  body  dto.ContractPOSRequest  true  "vínculo"
// @Success      201   {object}  dto.ContractPOSResponse
// @Router       /api/crm/contracts/{id}/pos [post]
func (h *CRMHandler) AddContractPOS(c *fiber.Ctx) error {
	var in dto.ContractPOSRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.contracts.AddPOS(c.UserContext(), GetUserID(c), c.Params("id"), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// UpdateContractPOS godoc
// @Summary      Actualizar vínculo contrato-terminal
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                  true  "ContractPOS ID"
// @Param        body  body  dto.ContractPOSRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ContractPOSResponse
// @Router       /api/crm/contract-pos/{id} [patch]
func (h *CRMHandler) UpdateContractPOS(c *fiber.Ctx) error {
	out, err := h.contracts.UpdatePOSLink(c.UserContext(), c.Params("id"), patchWith[dto.ContractPOSRequest](c))
	return h.respond(c, fiber.StatusOK, out, err)
}

// ListContractServices godoc
// @Summary      Servicios del contrato
// @Tags         contracts
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "Contract ID"
// @Success      200  {array}  dto.ContractServiceResponse
// @Router       /api/crm/contracts/{id}/service [get]
func (h *CRMHandler) ListContractServices(c *fiber.Ctx) error {
	out, err := h.contracts.ListServices(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// AddContractService godoc
// @Summary      Vincular servicio al contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                      true  "Contract ID"
// @Param        body  body  dto.ContractServiceRequest  true  "vínculo"
// @Success      201   {object}  dto.ContractServiceResponse
// @Router       /api/crm/contracts/{id}/service [post]
func (h *CRMHandler) AddContractService(c *fiber.Ctx) error {
	var in dto.ContractServiceRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.contracts.AddService(c.UserContext(), GetUserID(c), c.Params("id"), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// UpdateContractService godoc
// @Summary      Actualizar vínculo contrato-servicio
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                      true  "ContractService ID"
// @Param        body  body  dto.ContractServiceRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ContractServiceResponse
// @Router       /api/crm/contract-service/{id} [patch]
func (h *CRMHandler) UpdateContractService(c *fiber.Ctx) error {
	out, err := h.contracts.UpdateServiceLink(c.UserContext(), c.Params("id"), patchWith[dto.ContractServiceRequest](c))
	return h.respond(c, fiber.StatusOK, out, err)
}

// ─── Libros del contrato ────────────────────────────────────────────────────

// ListPaperRolls godoc
// @Summary      Pedidos de rollos de papel
// @Tags         ledger
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "Contract ID"
// @Success      200  {array}  dto.PaperRollResponse
// @Router       /api/crm/contracts/{id}/paperroll [get]
func (h *CRMHandler) ListPaperRolls(c *fiber.Ctx) error {
	out, err := h.ledger.ListPaperRolls(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreatePaperRoll godoc
// @Summary      Registrar pedido de rollos
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                true  "Contract ID"
// @Param        body  body  dto.PaperRollRequest  true  "pedido"
// @Success      201   {object}  dto.PaperRollResponse
// @Router       /api/crm/contracts/{id}/paperroll [post]
func (h *CRMHandler) CreatePaperRoll(c *fiber.Ctx) error {
	var in dto.PaperRollRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.ledger.CreatePaperRoll(c.UserContext(), GetUserID(c), c.Params("id"), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// DeletePaperRoll godoc
// @Summary      Eliminar pedido de rollos
// @Tags         ledger
// @Security     Bearer
// @Param        id    path  string  true  "Contract ID"
// @Param        item  path  string  true  "PaperRoll ID"
// @Success      204
// @Router       /api/crm/contracts/{id}/paperroll/{item} [delete]
func (h *CRMHandler) DeletePaperRoll(c *fiber.Ctx) error {
	return h.noContent(c, h.ledger.DeletePaperRoll(c.UserContext(), GetUserID(c), c.Params("id"), c.Params("item")))
}

// ListPayments godoc
// @Summary      Pagos del contrato
// @Tags         ledger
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "Contract ID"
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/crm/contracts/{id}/payment [get]
func (h *CRMHandler) ListPayments(c *fiber.Ctx) error {
	out, err := h.ledger.ListPayments(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreatePayment godoc
// @Summary      Registrar pago
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string              true  "Contract ID"
// @Param        body  body  dto.PaymentRequest  true  "pago"
// @Success      201   {object}  dto.PaymentResponse
// @Router       /api/crm/contracts/{id}/payment [post]
func (h *CRMHandler) CreatePayment(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.ledger.CreatePayment(c.UserContext(), GetUserID(c), c.Params("id"), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// DeletePayment godoc
// @Summary      Eliminar pago
// @Tags         ledger
// @Security     Bearer
// @Param        id    path  string  true  "Contract ID"
// @Param        item  path  string  true  "Payment ID"
// @Success      204
// @Router       /api/crm/contracts/{id}/payment/{item} [delete]
func (h *CRMHandler) DeletePayment(c *fiber.Ctx) error {
	return h.noContent(c, h.ledger.DeletePayment(c.UserContext(), GetUserID(c), c.Params("id"), c.Params("item")))
}

// ListMIDRevenues godoc
// @Summary      Ingresos MID del contrato
// @Tags         ledger
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "Contract ID"
// @Success      200  {array}  dto.MIDRevenueResponse
// @Router       /api/crm/contracts/{id}/mid [get]
func (h *CRMHandler) ListMIDRevenues(c *fiber.Ctx) error {
	out, err := h.ledger.ListMIDRevenues(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// CreateMIDRevenue godoc
// @Summary      Registrar ingreso MID
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                 true  "Contract ID"
// @Param        body  body  dto.MIDRevenueRequest  true  "ingreso"
// @Success      201   {object}  dto.MIDRevenueResponse
// @Router       /api/crm/contracts/{id}/mid [post]
func (h *CRMHandler) CreateMIDRevenue(c *fiber.Ctx) error {
	var in dto.MIDRevenueRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.ledger.CreateMIDRevenue(c.UserContext(), GetUserID(c), c.Params("id"), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// DeleteMIDRevenue godoc
// @Summary      Eliminar ingreso MID
// @Tags         ledger
// @Security     Bearer
// @Param        id    path  string  true  "Contract ID"
// @Param        item  path  string  true  "MIDRevenue ID"
// @Success      204
// @Router       /api/crm/contracts/{id}/mid/{item} [delete]
func (h *CRMHandler) DeleteMIDRevenue(c *fiber.Ctx) error {
	return h.noContent(c, h.ledger.DeleteMIDRevenue(c.UserContext(), GetUserID(c), c.Params("id"), c.Params("item")))
}

// Revenue godoc
// @Summary      Resumen económico del contrato
// @Tags         ledger
// @Produce      json
// @Security     Bearer
// @Param        id   path  string  true  "Contract ID"
// @Success      200  {object}  dto.RevenueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/contracts/{id}/revenue [get]
func (h *CRMHandler) Revenue(c *fiber.Ctx) error {
	out, err := h.ledger.Revenue(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}
