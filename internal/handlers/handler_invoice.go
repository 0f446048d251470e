package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
	"github.com/SscSPs/oris_formation_app/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices and credit notes.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, docs *documentHandler) {
	h := &invoiceHandler{invoiceService: invoiceService}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.PATCH("/:id/status", h.updateInvoiceStatus)
		invoices.POST("/:id/credit-note", h.createCreditNote)
		invoices.GET("/:id/document", docs.invoiceDocument)
		invoices.GET("/:id/document.pdf", docs.invoicePDF)
	}
}

// createInvoice godoc
// @Summary Issue an invoice without a quote
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !bindJSON(c, &req, "CreateInvoice") {
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create invoice")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("number", invoice.Number))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices and credit notes, most recent first
// @Tags invoices
// @Produce  json
// @Success 200 {array} dto.InvoiceResponse
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice or credit note
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateInvoiceStatus godoc
// @Summary Change the payment status of an invoice
// @Description PAID and CANCELLED are final. Credit notes cannot change status.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   status body dto.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /invoices/{id}/status [patch]
func (h *invoiceHandler) updateInvoiceStatus(c *gin.Context) {
	var req dto.UpdateInvoiceStatusRequest
	if !bindJSON(c, &req, "UpdateInvoiceStatus") {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), c.Param("id"), domain.InvoiceStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update invoice status")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// createCreditNote godoc
// @Summary Reverse an invoice with a credit note
// @Description Answers 409 when the invoice already has a credit note.
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Target is itself a credit note"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /invoices/{id}/credit-note [post]
func (h *invoiceHandler) createCreditNote(c *gin.Context) {
	creditNote, err := h.invoiceService.CreateCreditNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to create credit note")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Credit note created", slog.String("invoice_id", creditNote.InvoiceID), slog.String("number", creditNote.Number))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(creditNote))
}
