package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Clock in
// @Description Clock the rep in. Readings outside every geofence are accepted but flagged for manual approval. Requires rep token.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param position body PositionRequest true "GPS reading"
// @Success 201 {object} AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid request body or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Already clocked in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /attendance/clock-in [post]
func (h *Handler) clockIn(c *gin.Context) {
	repID := c.GetString(ctxRepID)
	log := h.logger.WithField("method", "clockIn").WithField("rep_id", repID)

	var input PositionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	record, err := h.attendanceService.ClockIn(c.Request.Context(), repID, PositionDTOToReading(input), input.HospitalID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAttendanceResponse(record))
}

// @Summary Clock out
// @Description Close the rep's open attendance record. Requires rep token.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param position body PositionRequest true "GPS reading"
// @Success 200 {object} AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid request body or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Not clocked in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /attendance/clock-out [post]
func (h *Handler) clockOut(c *gin.Context) {
	repID := c.GetString(ctxRepID)
	log := h.logger.WithField("method", "clockOut").WithField("rep_id", repID)

	var input PositionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	record, err := h.attendanceService.ClockOut(c.Request.Context(), repID, PositionDTOToReading(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAttendanceResponse(record))
}

// @Summary List attendance awaiting approval
// @Description Get a paginated list of flagged attendance records, newest first. Requires API key.
// @Tags Attendance
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} AttendanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /attendance/pending [get]
func (h *Handler) listPendingAttendance(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingAttendance")
	page, pageSize := pagination(c)

	records, err := h.attendanceService.ListPending(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAttendanceResponses(records))
}

// @Summary Get attendance record by ID
// @Tags Attendance
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Attendance ID"
// @Success 200 {object} AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid attendance ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Attendance record not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /attendance/{id} [get]
func (h *Handler) getAttendance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAttendance").WithField("id", id)

	record, err := h.attendanceService.GetAttendance(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAttendanceResponse(record))
}

// @Summary Review flagged attendance
// @Description Approve or reject an attendance record awaiting manual approval. Requires API key.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Attendance ID"
// @Param review body ReviewRequest true "Review decision"
// @Success 200 {object} AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid attendance ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Attendance record not found"
// @Failure 409 {object} map[string]string "Record is not pending approval"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /attendance/{id}/review [post]
func (h *Handler) reviewAttendance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "reviewAttendance").WithField("id", id)

	var input ReviewRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	record, err := h.attendanceService.Review(c.Request.Context(), id, input.Reviewer, *input.Approve, input.Note)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAttendanceResponse(record))
}
