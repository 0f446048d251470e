package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := &catalogHandler{catalogService: catalogService}

	catalog := rg.Group("/catalog")
	{
		catalog.POST("", h.createTraining)
		catalog.GET("", h.listTrainings)
		catalog.GET("/:id", h.getTraining)
		catalog.PUT("/:id", h.updateTraining)
		catalog.DELETE("/:id", h.deleteTraining)
	}
}

// createTraining godoc
// @Summary Add a training module to the catalog
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   training body dto.CreateTrainingRequest true "Training module"
// @Success 201 {object} dto.TrainingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /catalog [post]
func (h *catalogHandler) createTraining(c *gin.Context) {
	var req dto.CreateTrainingRequest
	if !bindJSON(c, &req, "CreateTraining") {
		return
	}
	training, err := h.catalogService.CreateTraining(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create training")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTrainingResponse(training))
}

// listTrainings godoc
// @Summary List the catalog
// @Description Returns every module, or the module whose title matches the title query exactly.
// @Tags catalog
// @Produce  json
// @Param   title query string false "Exact title"
// @Success 200 {array} dto.TrainingResponse
// @Router /catalog [get]
func (h *catalogHandler) listTrainings(c *gin.Context) {
	if title, ok := c.GetQuery("title"); ok {
		training, err := h.catalogService.FindTrainingByTitle(c.Request.Context(), title)
		if err != nil {
			respondError(c, err, "Failed to search catalog")
			return
		}
		c.JSON(http.StatusOK, []dto.TrainingResponse{dto.ToTrainingResponse(training)})
		return
	}

	trainings, err := h.catalogService.ListTrainings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list trainings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTrainingResponse(trainings))
}

// getTraining godoc
// @Summary Get a training module
// @Tags catalog
// @Produce  json
// @Param   id path string true "Training ID"
// @Success 200 {object} dto.TrainingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /catalog/{id} [get]
func (h *catalogHandler) getTraining(c *gin.Context) {
	training, err := h.catalogService.GetTrainingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve training")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrainingResponse(training))
}

// updateTraining godoc
// @Summary Update a training module
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   id path string true "Training ID"
// @Param   training body dto.UpdateTrainingRequest true "Training module"
// @Success 200 {object} dto.TrainingResponse
// @Router /catalog/{id} [put]
func (h *catalogHandler) updateTraining(c *gin.Context) {
	var req dto.UpdateTrainingRequest
	if !bindJSON(c, &req, "UpdateTraining") {
		return
	}
	training, err := h.catalogService.UpdateTraining(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update training")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrainingResponse(training))
}

// deleteTraining godoc
// @Summary Delete a training module
// @Tags catalog
// @Param   id path string true "Training ID"
// @Success 204
// @Router /catalog/{id} [delete]
func (h *catalogHandler) deleteTraining(c *gin.Context) {
	if err := h.catalogService.DeleteTraining(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete training")
		return
	}
	c.Status(http.StatusNoContent)
}
