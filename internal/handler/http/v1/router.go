package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	adminAuth := APIKeyAuthMiddleware(h.cfg, h.logger)
	repAuth := RepAuthMiddleware(h.cfg, h.logger)

	// Маршруты представителя; /geofences/active регистрируется раньше /:id
	rep := api.Group("", repAuth)
	{
		rep.GET("/geofences/active", h.listActiveFences)
		rep.POST("/compliance/check", h.checkCompliance)
		rep.POST("/attendance/clock-in", h.clockIn)
		rep.POST("/attendance/clock-out", h.clockOut)
	}

	// Управление геозонами (CRUD)
	fences := api.Group("/geofences", adminAuth)
	{
		fences.POST("", h.createFence)
		fences.GET("", h.listFences)
		fences.GET("/:id", h.getFence)
		fences.PUT("/:id", h.updateFence)
		fences.DELETE("/:id", h.deleteFence)
	}

	// Ручное подтверждение отметок
	attendance := api.Group("/attendance", adminAuth)
	{
		attendance.GET("/pending", h.listPendingAttendance)
		attendance.GET("/:id", h.getAttendance)
		attendance.POST("/:id/review", h.reviewAttendance)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
