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

// quoteHandler handles HTTP requests related to quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade, docs *documentHandler) {
	h := &quoteHandler{quoteService: quoteService}

	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.saveQuote)
		quotes.GET("", h.listQuotes)
		quotes.GET("/:id", h.getQuote)
		quotes.DELETE("/:id", h.deleteQuote)
		quotes.PATCH("/:id/status", h.updateQuoteStatus)
		quotes.POST("/:id/convert", h.convertQuote)
		quotes.GET("/:id/document", docs.quoteDocument)
		quotes.GET("/:id/document.pdf", docs.quotePDF)
	}
}

// saveQuote godoc
// @Summary Issue a quote
// @Description Numbers the quote DEV-{year}-{seq}, computes totals and stores it as SENT.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   quote body dto.SaveQuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Number already in use"
// @Router /quotes [post]
func (h *quoteHandler) saveQuote(c *gin.Context) {
	var req dto.SaveQuoteRequest
	if !bindJSON(c, &req, "SaveQuote") {
		return
	}

	quote, err := h.quoteService.SaveQuote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save quote")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Quote saved", slog.String("quote_id", quote.QuoteID), slog.String("number", quote.Number))
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// listQuotes godoc
// @Summary List quotes, most recent first
// @Tags quotes
// @Produce  json
// @Success 200 {array} dto.QuoteResponse
// @Router /quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	quotes, err := h.quoteService.ListQuotes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list quotes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListQuoteResponse(quotes))
}

// getQuote godoc
// @Summary Get a quote
// @Tags quotes
// @Produce  json
// @Param   id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{id} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	quote, err := h.quoteService.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// deleteQuote godoc
// @Summary Delete a quote
// @Tags quotes
// @Param   id path string true "Quote ID"
// @Success 204
// @Router /quotes/{id} [delete]
func (h *quoteHandler) deleteQuote(c *gin.Context) {
	if err := h.quoteService.DeleteQuote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete quote")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateQuoteStatus godoc
// @Summary Change the status of a quote
// @Description DRAFT to SENT; SENT to ACCEPTED, REJECTED or EXPIRED. Other moves answer 409.
// @Tags quotes
// @Accept  json
// @Produce  json
// @Param   id path string true "Quote ID"
// @Param   status body dto.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} dto.QuoteResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /quotes/{id}/status [patch]
func (h *quoteHandler) updateQuoteStatus(c *gin.Context) {
	var req dto.UpdateQuoteStatusRequest
	if !bindJSON(c, &req, "UpdateQuoteStatus") {
		return
	}

	quote, err := h.quoteService.TransitionQuoteStatus(c.Request.Context(), c.Param("id"), domain.QuoteStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update quote status")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// convertQuote godoc
// @Summary Convert a quote into an invoice
// @Description The quote must be SENT or ACCEPTED and is converted at most once.
// @Tags quotes
// @Produce  json
// @Param   id path string true "Quote ID"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already invoiced"
// @Router /quotes/{id}/convert [post]
func (h *quoteHandler) convertQuote(c *gin.Context) {
	invoice, err := h.quoteService.ConvertToInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to convert quote")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Quote converted", slog.String("invoice_id", invoice.InvoiceID), slog.String("number", invoice.Number))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}
