package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// quoteDraftHandler edits quotes line by line before they are issued.
type quoteDraftHandler struct {
	draftService portssvc.QuoteDraftSvcFacade
}

func registerQuoteDraftRoutes(rg *gin.RouterGroup, draftService portssvc.QuoteDraftSvcFacade) {
	h := &quoteDraftHandler{draftService: draftService}

	drafts := rg.Group("/quote-drafts")
	{
		drafts.POST("", h.newDraft)
		drafts.GET("/:id", h.getDraft)
		drafts.PATCH("/:id", h.updateDraft)
		drafts.DELETE("/:id", h.discardDraft)
		drafts.POST("/:id/lines", h.addLine)
		drafts.PATCH("/:id/lines/:lineID", h.updateLine)
		drafts.DELETE("/:id/lines/:lineID", h.removeLine)
		drafts.POST("/:id/save", h.saveDraft)
	}
}

// newDraft godoc
// @Summary Open a quote draft
// @Tags quote-drafts
// @Accept  json
// @Produce  json
// @Param   draft body dto.NewDraftRequest false "Draft header"
// @Success 201 {object} dto.DraftResponse
// @Router /quote-drafts [post]
func (h *quoteDraftHandler) newDraft(c *gin.Context) {
	var req dto.NewDraftRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req, "NewDraft") {
		return
	}
	draft, err := h.draftService.NewDraft(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to open draft")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDraftResponse(draft))
}

func (h *quoteDraftHandler) getDraft(c *gin.Context) {
	draft, err := h.draftService.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *quoteDraftHandler) updateDraft(c *gin.Context) {
	var req dto.UpdateDraftRequest
	if !bindJSON(c, &req, "UpdateDraft") {
		return
	}
	draft, err := h.draftService.UpdateDraft(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *quoteDraftHandler) discardDraft(c *gin.Context) {
	if err := h.draftService.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to discard draft")
		return
	}
	c.Status(http.StatusNoContent)
}

// addLine godoc
// @Summary Append a line to a draft
// @Description The new line has quantity 1, unit price 0 and 20% VAT.
// @Tags quote-drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Router /quote-drafts/{id}/lines [post]
func (h *quoteDraftHandler) addLine(c *gin.Context) {
	draft, err := h.draftService.AddLine(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to add line")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

// updateLine godoc
// @Summary Edit one field of a draft line
// @Description Setting description to the exact title of a catalog module also copies its price.
// @Tags quote-drafts
// @Accept  json
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   lineID path string true "Line ID"
// @Param   line body dto.UpdateLineRequest true "Field and value"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quote-drafts/{id}/lines/{lineID} [patch]
func (h *quoteDraftHandler) updateLine(c *gin.Context) {
	var req dto.UpdateLineRequest
	if !bindJSON(c, &req, "UpdateLine") {
		return
	}
	draft, err := h.draftService.UpdateLine(c.Request.Context(), c.Param("id"), c.Param("lineID"), req)
	if err != nil {
		respondError(c, err, "Failed to update line")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *quoteDraftHandler) removeLine(c *gin.Context) {
	draft, err := h.draftService.RemoveLine(c.Request.Context(), c.Param("id"), c.Param("lineID"))
	if err != nil {
		respondError(c, err, "Failed to remove line")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

// saveDraft godoc
// @Summary Issue the draft as a quote
// @Tags quote-drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quote-drafts/{id}/save [post]
func (h *quoteDraftHandler) saveDraft(c *gin.Context) {
	quote, err := h.draftService.SaveDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to save draft")
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}
