package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// HeaderContentDigest cabecera con el SHA-256 del XML canonicalizado.
const HeaderContentDigest = "X-Content-Digest"

// ExportHandler descargas de un contrato (PDF, XML de alta, ZIP de documentos).
type ExportHandler struct {
	uc  *usecase.ExportUseCase
	log *logger.Logger
}

func NewExportHandler(uc *usecase.ExportUseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// SummaryPDF godoc
// @Summary      Resumen del contrato en PDF
// @Tags         exports
// @Produce      application/pdf
// @Security     Bearer
// @Param        id   path  string  true  "Contract ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/contracts/{id}/summary.pdf [get]
func (h *ExportHandler) SummaryPDF(c *fiber.Ctx) error {
	data, err := h.uc.SummaryPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return h.attachment(c, "application/pdf", "contract-"+c.Params("id")+".pdf", data)
}

// AcquirerXML godoc
// @Summary      XML de alta del comercio para el adquirente
// @Description  La cabecera X-Content-Digest lleva el SHA-256 del XML canonicalizado.
// @Tags         exports
// @Produce      application/xml
// @Security     Bearer
// @Param        id   path  string  true  "Contract ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/contracts/{id}/acquirer.xml [get]
func (h *ExportHandler) AcquirerXML(c *fiber.Ctx) error {
	data, digest, err := h.uc.AcquirerXML(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(HeaderContentDigest, "sha-256="+digest)
	return h.attachment(c, fiber.MIMEApplicationXMLCharsetUTF8, "onboarding-"+c.Params("id")+".xml", data)
}

// DocumentsZip godoc
// @Summary      Documentos del contrato y del comercio en ZIP
// @Tags         exports
// @Produce      application/zip
// @Security     Bearer
// @Param        id   path  string  true  "Contract ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crm/contracts/{id}/documents.zip [get]
func (h *ExportHandler) DocumentsZip(c *fiber.Ctx) error {
	data, err := h.uc.DocumentsZip(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return h.attachment(c, "application/zip", "documents-"+c.Params("id")+".zip", data)
}

func (h *ExportHandler) attachment(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
