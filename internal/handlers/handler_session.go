package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
)

// sessionHandler handles HTTP requests related to training sessions.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade, docs *documentHandler) {
	h := &sessionHandler{sessionService: sessionService}

	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("", h.listSessions)
		sessions.GET("/:id", h.getSession)
		sessions.PUT("/:id", h.updateSession)
		sessions.DELETE("/:id", h.deleteSession)
		sessions.POST("/:id/trainees", h.addTrainee)
		sessions.DELETE("/:id/trainees/:traineeID", h.removeTrainee)
		sessions.GET("/:id/documents/:kind", docs.sessionDocument)
	}
}

// createSession godoc
// @Summary Schedule a training session
// @Tags sessions
// @Accept  json
// @Produce  json
// @Param   session body dto.CreateSessionRequest true "Session"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sessions [post]
func (h *sessionHandler) createSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if !bindJSON(c, &req, "CreateSession") {
		return
	}
	session, err := h.sessionService.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create session")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// listSessions godoc
// @Summary List sessions, earliest first
// @Tags sessions
// @Produce  json
// @Success 200 {array} dto.SessionResponse
// @Router /sessions [get]
func (h *sessionHandler) listSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListSessions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list sessions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSessionResponse(sessions))
}

func (h *sessionHandler) getSession(c *gin.Context) {
	session, err := h.sessionService.GetSessionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve session")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *sessionHandler) updateSession(c *gin.Context) {
	var req dto.UpdateSessionRequest
	if !bindJSON(c, &req, "UpdateSession") {
		return
	}
	session, err := h.sessionService.UpdateSession(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update session")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *sessionHandler) deleteSession(c *gin.Context) {
	if err := h.sessionService.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete session")
		return
	}
	c.Status(http.StatusNoContent)
}

// addTrainee godoc
// @Summary Enrol a trainee
// @Tags sessions
// @Accept  json
// @Produce  json
// @Param   id path string true "Session ID"
// @Param   trainee body dto.AddTraineeRequest true "Trainee"
// @Success 200 {object} dto.SessionResponse
// @Router /sessions/{id}/trainees [post]
func (h *sessionHandler) addTrainee(c *gin.Context) {
	var req dto.AddTraineeRequest
	if !bindJSON(c, &req, "AddTrainee") {
		return
	}
	session, err := h.sessionService.AddTrainee(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to add trainee")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *sessionHandler) removeTrainee(c *gin.Context) {
	session, err := h.sessionService.RemoveTrainee(c.Request.Context(), c.Param("id"), c.Param("traineeID"))
	if err != nil {
		respondError(c, err, "Failed to remove trainee")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}
