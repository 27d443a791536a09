package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateGeoFenceRequest DTO для создания геозоны
// @Description DTO для создания геозоны
type CreateGeoFenceRequest struct {
	Name              string   `json:"name" validate:"required,min=2,max=255"`
	CenterLatitude    *float64 `json:"center_latitude" validate:"required,latitude"`
	CenterLongitude   *float64 `json:"center_longitude" validate:"required,longitude"`
	RadiusMeters      float64  `json:"radius_meters" validate:"required,gt=0"`
	HospitalID        *string  `json:"hospital_id,omitempty" validate:"omitempty,min=1,max=64"`
	AlertRadiusMeters *float64 `json:"alert_radius_meters,omitempty" validate:"omitempty,gt=0"`
}

// UpdateGeoFenceRequest DTO для обновления геозоны
// @Description DTO для обновления геозоны
type UpdateGeoFenceRequest struct {
	Name              string   `json:"name" validate:"required,min=2,max=255"`
	CenterLatitude    *float64 `json:"center_latitude" validate:"required,latitude"`
	CenterLongitude   *float64 `json:"center_longitude" validate:"required,longitude"`
	RadiusMeters      float64  `json:"radius_meters" validate:"required,gt=0"`
	HospitalID        *string  `json:"hospital_id,omitempty" validate:"omitempty,min=1,max=64"`
	AlertRadiusMeters *float64 `json:"alert_radius_meters,omitempty" validate:"omitempty,gt=0"`
	IsActive          *bool    `json:"is_active" validate:"required"`
}

// GeoFenceResponse DTO для ответа с информацией о геозоне
// @Description DTO для ответа с информацией о геозоне
type GeoFenceResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	CenterLatitude    float64   `json:"center_latitude"`
	CenterLongitude   float64   `json:"center_longitude"`
	RadiusMeters      float64   `json:"radius_meters"`
	HospitalID        *string   `json:"hospital_id,omitempty"`
	AlertRadiusMeters *float64  `json:"alert_radius_meters,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PositionRequest DTO с показанием GPS
// @Description DTO с показанием GPS
type PositionRequest struct {
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Longitude  *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy   *float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	HospitalID *string  `json:"hospital_id,omitempty" validate:"omitempty,min=1,max=64"`
}

// ComplianceResponse DTO для ответа с вердиктом проверки
// @Description DTO для ответа с вердиктом проверки. distance_meters равен null, если расстояние не вычислено.
type ComplianceResponse struct {
	IsCompliant       bool              `json:"is_compliant"`
	WithinRadius      bool              `json:"within_radius"`
	DistanceMeters    *float64          `json:"distance_meters"`
	Distance          string            `json:"distance"`
	NearestFence      *GeoFenceResponse `json:"nearest_fence"`
	Proximity         string            `json:"proximity"`
	AlertRadiusMeters float64           `json:"alert_radius_meters"`
	CheckedAt         time.Time         `json:"checked_at"`
}

// AttendanceResponse DTO для ответа с отметкой
// @Description DTO для ответа с отметкой прихода/ухода
type AttendanceResponse struct {
	ID                     uuid.UUID  `json:"id"`
	RepID                  string     `json:"rep_id"`
	HospitalID             *string    `json:"hospital_id,omitempty"`
	FenceID                *uuid.UUID `json:"fence_id,omitempty"`
	ClockInAt              time.Time  `json:"clock_in_at"`
	ClockInLatitude        float64    `json:"clock_in_latitude"`
	ClockInLongitude       float64    `json:"clock_in_longitude"`
	ClockInDistanceMeters  *float64   `json:"clock_in_distance_meters"`
	WithinGeoFence         bool       `json:"within_geofence"`
	ClockOutAt             *time.Time `json:"clock_out_at,omitempty"`
	ClockOutDistanceMeters *float64   `json:"clock_out_distance_meters,omitempty"`
	ClockOutWithinGeoFence *bool      `json:"clock_out_within_geofence,omitempty"`
	Status                 string     `json:"status"`
	FlagReason             string     `json:"flag_reason,omitempty"`
	RequiresApproval       bool       `json:"requires_approval"`
	ReviewNote             string     `json:"review_note,omitempty"`
	ReviewedBy             *string    `json:"reviewed_by,omitempty"`
	ReviewedAt             *time.Time `json:"reviewed_at,omitempty"`
}

// ReviewRequest DTO для ручного подтверждения отметки
// @Description DTO для ручного подтверждения отметки
type ReviewRequest struct {
	Approve  *bool  `json:"approve" validate:"required"`
	Reviewer string `json:"reviewer" validate:"required,max=64"`
	Note     string `json:"note,omitempty" validate:"max=1000"`
}
