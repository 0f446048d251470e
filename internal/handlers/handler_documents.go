package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/oris_formation_app/internal/core/documents"
	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/middleware"
)

const pdfContentType = "application/pdf"

// documentHandler serves print layouts as JSON and as PDF downloads.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

func (h *documentHandler) servePDF(c *gin.Context, kind documents.Kind, id string) {
	rendered, err := h.documentService.RenderPDF(c.Request.Context(), kind, id)
	if err != nil {
		respondError(c, err, "Failed to render document")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Document rendered",
		slog.String("kind", string(kind)), slog.String("file_name", rendered.FileName), slog.Int("bytes", len(rendered.Content)))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, rendered.FileName))
	c.Data(http.StatusOK, pdfContentType, rendered.Content)
}

// quoteDocument godoc
// @Summary Quote print layout
// @Tags documents
// @Produce  json
// @Param   id path string true "Quote ID"
// @Success 200 {object} documents.BillingSheet
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{id}/document [get]
func (h *documentHandler) quoteDocument(c *gin.Context) {
	sheet, err := h.documentService.QuoteDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build quote document")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// quotePDF godoc
// @Summary Quote as PDF
// @Tags documents
// @Produce  application/pdf
// @Param   id path string true "Quote ID"
// @Success 200 {file} binary
// @Failure 502 {object} dto.ErrorResponse "Rendering failed, print the JSON layout instead"
// @Router /quotes/{id}/document.pdf [get]
func (h *documentHandler) quotePDF(c *gin.Context) {
	h.servePDF(c, documents.KindQuote, c.Param("id"))
}

// invoiceDocument godoc
// @Summary Invoice or credit note print layout
// @Tags documents
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} documents.BillingSheet
// @Router /invoices/{id}/document [get]
func (h *documentHandler) invoiceDocument(c *gin.Context) {
	sheet, err := h.documentService.InvoiceDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build invoice document")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// invoicePDF godoc
// @Summary Invoice or credit note as PDF
// @Tags documents
// @Produce  application/pdf
// @Param   id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 502 {object} dto.ErrorResponse
// @Router /invoices/{id}/document.pdf [get]
func (h *documentHandler) invoicePDF(c *gin.Context) {
	h.servePDF(c, documents.KindInvoice, c.Param("id"))
}

// sessionDocument godoc
// @Summary Session documents
// @Description kind is attendance or certificate, with a .pdf suffix for the PDF rendering.
// @Tags documents
// @Produce  json,application/pdf
// @Param   id path string true "Session ID"
// @Param   kind path string true "attendance, certificate, attendance.pdf or certificate.pdf"
// @Success 200 {object} documents.AttendanceSheet
// @Failure 400 {object} dto.ErrorResponse
// @Router /sessions/{id}/documents/{kind} [get]
func (h *documentHandler) sessionDocument(c *gin.Context) {
	sessionID := c.Param("id")
	kind, asPDF := parseDocumentKind(c.Param("kind"))

	if kind != documents.KindAttendance && kind != documents.KindCertificate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown session document: " + c.Param("kind")})
		return
	}
	if asPDF {
		h.servePDF(c, kind, sessionID)
		return
	}

	var (
		layout any
		err    error
	)
	if kind == documents.KindAttendance {
		layout, err = h.documentService.AttendanceDocument(c.Request.Context(), sessionID)
	} else {
		layout, err = h.documentService.CertificateDocument(c.Request.Context(), sessionID)
	}
	if err != nil {
		respondError(c, err, "Failed to build session document")
		return
	}
	c.JSON(http.StatusOK, layout)
}

func parseDocumentKind(raw string) (documents.Kind, bool) {
	const suffix = ".pdf"
	if len(raw) > len(suffix) && raw[len(raw)-len(suffix):] == suffix {
		return documents.Kind(raw[:len(raw)-len(suffix)]), true
	}
	return documents.Kind(raw), false
}
