package v1

import (
	"github.com/medfieldpro/geofence/internal/geo"
	"github.com/medfieldpro/geofence/internal/models"
)

// DTOToGeoFenceModel преобразует DTO создания/обновления в доменную модель.
func DTOToGeoFenceModel(dto any) *models.GeoFence {
	switch v := dto.(type) {
	case CreateGeoFenceRequest:
		return &models.GeoFence{
			Name:              v.Name,
			CenterLatitude:    *v.CenterLatitude,
			CenterLongitude:   *v.CenterLongitude,
			RadiusMeters:      v.RadiusMeters,
			HospitalID:        v.HospitalID,
			AlertRadiusMeters: v.AlertRadiusMeters,
		}
	case UpdateGeoFenceRequest:
		return &models.GeoFence{
			Name:              v.Name,
			CenterLatitude:    *v.CenterLatitude,
			CenterLongitude:   *v.CenterLongitude,
			RadiusMeters:      v.RadiusMeters,
			HospitalID:        v.HospitalID,
			AlertRadiusMeters: v.AlertRadiusMeters,
			IsActive:          *v.IsActive,
		}
	}
	return nil
}

// ModelToGeoFenceResponse преобразует доменную модель в DTO для ответа
func ModelToGeoFenceResponse(model *models.GeoFence) *GeoFenceResponse {
	if model == nil {
		return nil
	}
	return &GeoFenceResponse{
		ID:                model.ID,
		Name:              model.Name,
		CenterLatitude:    model.CenterLatitude,
		CenterLongitude:   model.CenterLongitude,
		RadiusMeters:      model.RadiusMeters,
		HospitalID:        model.HospitalID,
		AlertRadiusMeters: model.AlertRadiusMeters,
		IsActive:          model.IsActive,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToGeoFenceResponses преобразует слайс моделей в слайс DTO
func ModelsToGeoFenceResponses(fences []*models.GeoFence) []*GeoFenceResponse {
	responses := make([]*GeoFenceResponse, len(fences))
	for i, fence := range fences {
		responses[i] = ModelToGeoFenceResponse(fence)
	}
	return responses
}

// PositionDTOToReading преобразует DTO позиции в показание GPS
func PositionDTOToReading(dto PositionRequest) models.PositionReading {
	return models.PositionReading{
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
		Accuracy:  dto.Accuracy,
	}
}

// ReportToComplianceResponse преобразует вердикт в DTO; бесконечное расстояние становится null
func ReportToComplianceResponse(report *geo.Report) *ComplianceResponse {
	return &ComplianceResponse{
		IsCompliant:       report.IsCompliant,
		WithinRadius:      report.WithinRadius,
		DistanceMeters:    report.FiniteDistance(),
		Distance:          geo.FormatDistance(report.DistanceMeters),
		NearestFence:      ModelToGeoFenceResponse(report.NearestFence),
		Proximity:         string(report.Proximity),
		AlertRadiusMeters: report.AlertRadiusMeters,
		CheckedAt:         report.CheckedAt,
	}
}

// ModelToAttendanceResponse преобразует отметку в DTO для ответа
func ModelToAttendanceResponse(model *models.AttendanceRecord) *AttendanceResponse {
	return &AttendanceResponse{
		ID:                     model.ID,
		RepID:                  model.RepID,
		HospitalID:             model.HospitalID,
		FenceID:                model.FenceID,
		ClockInAt:              model.ClockInAt,
		ClockInLatitude:        model.ClockInLatitude,
		ClockInLongitude:       model.ClockInLongitude,
		ClockInDistanceMeters:  model.ClockInDistanceMeters,
		WithinGeoFence:         model.WithinGeoFence,
		ClockOutAt:             model.ClockOutAt,
		ClockOutDistanceMeters: model.ClockOutDistanceMeters,
		ClockOutWithinGeoFence: model.ClockOutWithinGeoFence,
		Status:                 string(model.Status),
		FlagReason:             model.FlagReason,
		RequiresApproval:       model.Status == models.AttendancePendingApproval,
		ReviewNote:             model.ReviewNote,
		ReviewedBy:             model.ReviewedBy,
		ReviewedAt:             model.ReviewedAt,
	}
}

// ModelsToAttendanceResponses преобразует слайс отметок в слайс DTO
func ModelsToAttendanceResponses(records []*models.AttendanceRecord) []*AttendanceResponse {
	responses := make([]*AttendanceResponse, len(records))
	for i, record := range records {
		responses[i] = ModelToAttendanceResponse(record)
	}
	return responses
}
