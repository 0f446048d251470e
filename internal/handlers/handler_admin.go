package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/oris_formation_app/internal/core/ports/services"
	"github.com/SscSPs/oris_formation_app/internal/dto"
	"github.com/SscSPs/oris_formation_app/internal/middleware"
)

// adminHandler serves company settings, certifications, the dashboard and demo seeding.
type adminHandler struct {
	settings       portssvc.SettingsSvcFacade
	certifications portssvc.CertificationSvcFacade
	dashboard      portssvc.DashboardService
	seed           portssvc.SeedService
}

func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &adminHandler{
		settings:       services.Settings,
		certifications: services.Certification,
		dashboard:      services.Dashboard,
		seed:           services.Seed,
	}

	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)

	certs := rg.Group("/certifications")
	{
		certs.POST("", h.createCertification)
		certs.GET("", h.listCertifications)
		certs.DELETE("/:id", h.deleteCertification)
	}

	rg.GET("/dashboard", h.getDashboard)
	rg.POST("/seed", h.seedDemoData)
}

// getSettings godoc
// @Summary Company settings
// @Description The first read stores the default company identity.
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Router /settings [get]
func (h *adminHandler) getSettings(c *gin.Context) {
	settings, err := h.settings.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update company settings
// @Description Only the fields present in the body are changed.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} dto.SettingsResponse
// @Router /settings [put]
func (h *adminHandler) updateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindJSON(c, &req, "UpdateSettings") {
		return
	}
	settings, err := h.settings.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// createCertification godoc
// @Summary Record a certification
// @Tags certifications
// @Accept  json
// @Produce  json
// @Param   certification body dto.CreateCertificationRequest true "Certification"
// @Success 201 {object} dto.CertificationResponse
// @Router /certifications [post]
func (h *adminHandler) createCertification(c *gin.Context) {
	var req dto.CreateCertificationRequest
	if !bindJSON(c, &req, "CreateCertification") {
		return
	}
	cert, err := h.certifications.CreateCertification(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create certification")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCertificationResponse(cert))
}

func (h *adminHandler) listCertifications(c *gin.Context) {
	certs, err := h.certifications.ListCertifications(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list certifications")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCertificationResponse(certs))
}

func (h *adminHandler) deleteCertification(c *gin.Context) {
	if err := h.certifications.DeleteCertification(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete certification")
		return
	}
	c.Status(http.StatusNoContent)
}

// getDashboard godoc
// @Summary Home page figures
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (h *adminHandler) getDashboard(c *gin.Context) {
	dashboard, err := h.dashboard.GetDashboard(c.Request.Context(), time.Time{})
	if err != nil {
		respondError(c, err, "Failed to compute dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

// seedDemoData godoc
// @Summary Load demo data
// @Description Writes the demo clients, catalog, quotes, invoices, sessions and certifications in one batch.
// @Tags seed
// @Produce  json
// @Success 201 {object} dto.SeedResponse
// @Failure 409 {object} dto.ErrorResponse "Demo numbers already in use"
// @Router /seed [post]
func (h *adminHandler) seedDemoData(c *gin.Context) {
	res, err := h.seed.Seed(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to seed demo data")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Demo data seeded", slog.Int("quotes", res.Quotes), slog.Int("invoices", res.Invoices))
	c.JSON(http.StatusCreated, res)
}
