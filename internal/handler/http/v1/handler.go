package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/medfieldpro/geofence/internal/config"
	"github.com/medfieldpro/geofence/internal/models"
	"github.com/medfieldpro/geofence/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	fenceService      service.GeoFenceService
	complianceService service.ComplianceService
	attendanceService service.AttendanceService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	fenceService service.GeoFenceService,
	complianceService service.ComplianceService,
	attendanceService service.AttendanceService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		fenceService:      fenceService,
		complianceService: complianceService,
		attendanceService: attendanceService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// respondError сопоставляет ошибку сервиса с HTTP-статусом
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidCoordinates):
		log.WithError(err).Warn("Invalid coordinates")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidFence):
		log.WithError(err).Warn("Invalid geofence configuration")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyClockedIn),
		errors.Is(err, service.ErrNotClockedIn),
		errors.Is(err, service.ErrAlreadyReviewed):
		log.WithError(err).Warn("Conflicting attendance state")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate читает JSON и проверяет DTO; при ошибке ответ уже отправлен
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	return page, pageSize
}

// @Summary Create a new geofence
// @Description Create a hospital geofence. Requires API key.
// @Tags GeoFences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param fence body CreateGeoFenceRequest true "Geofence creation request"
// @Success 201 {object} GeoFenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Invalid geofence configuration"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences [post]
func (h *Handler) createFence(c *gin.Context) {
	var input CreateGeoFenceRequest
	log := h.logger.WithField("method", "createFence")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToGeoFenceModel(input)
	if err := h.fenceService.CreateFence(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToGeoFenceResponse(model))
}

// @Summary Get a list of geofences
// @Description Get a paginated list of all geofences, newest first. Requires API key.
// @Tags GeoFences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} GeoFenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences [get]
func (h *Handler) listFences(c *gin.Context) {
	log := h.logger.WithField("method", "listFences")
	page, pageSize := pagination(c)

	fences, err := h.fenceService.ListFences(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToGeoFenceResponses(fences))
}

// @Summary Get geofence by ID
// @Description Get a single geofence by its ID. Requires API key.
// @Tags GeoFences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "GeoFence ID"
// @Success 200 {object} GeoFenceResponse
// @Failure 400 {object} map[string]string "Invalid geofence ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "GeoFence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences/{id} [get]
func (h *Handler) getFence(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getFence").WithField("id", id)

	fence, err := h.fenceService.GetFence(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGeoFenceResponse(fence))
}

// @Summary Update an existing geofence
// @Description Update an existing geofence by ID. Requires API key.
// @Tags GeoFences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "GeoFence ID"
// @Param fence body UpdateGeoFenceRequest true "Geofence update request"
// @Success 200 {object} GeoFenceResponse
// @Failure 400 {object} map[string]string "Invalid geofence ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "GeoFence not found"
// @Failure 422 {object} map[string]string "Invalid geofence configuration"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences/{id} [put]
func (h *Handler) updateFence(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateFence").WithField("id", id)

	var input UpdateGeoFenceRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToGeoFenceModel(input)
	model.ID = id

	if err := h.fenceService.UpdateFence(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGeoFenceResponse(model))
}

// @Summary Deactivate a geofence
// @Description Deactivate a geofence by its ID. Inactive fences are ignored by compliance checks. Requires API key.
// @Tags GeoFences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "GeoFence ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid geofence ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "GeoFence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences/{id} [delete]
func (h *Handler) deleteFence(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteFence").WithField("id", id)

	if err := h.fenceService.DeactivateFence(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List active geofences
// @Description List active geofences, optionally for one hospital. Requires rep token.
// @Tags GeoFences
// @Produce json
// @Security BearerAuth
// @Param hospital_id query string false "Hospital ID"
// @Success 200 {array} GeoFenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences/active [get]
func (h *Handler) listActiveFences(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveFences")

	var hospitalID *string
	if v := c.Query("hospital_id"); v != "" {
		hospitalID = &v
	}

	fences, err := h.fenceService.ActiveFences(c.Request.Context(), hospitalID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToGeoFenceResponses(fences))
}

// @Summary Check geofence compliance
// @Description Evaluate a GPS reading against the active geofences. Requires rep token.
// @Tags Compliance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param position body PositionRequest true "GPS reading"
// @Success 200 {object} ComplianceResponse
// @Failure 400 {object} map[string]string "Invalid request body or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /compliance/check [post]
func (h *Handler) checkCompliance(c *gin.Context) {
	repID := c.GetString(ctxRepID)
	log := h.logger.WithField("method", "checkCompliance").WithField("rep_id", repID)

	var input PositionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	report, err := h.complianceService.CheckCompliance(c.Request.Context(), repID, PositionDTOToReading(input), input.HospitalID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ReportToComplianceResponse(report))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
