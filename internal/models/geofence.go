package models

import (
	"time"

	"github.com/google/uuid"
)

// GeoFence - круговая допустимая зона вокруг объекта (больницы)
type GeoFence struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CenterLatitude  float64   `json:"center_latitude"`
	CenterLongitude float64   `json:"center_longitude"`
	RadiusMeters    float64   `json:"radius_meters"`
	HospitalID      *string   `json:"hospital_id,omitempty"`
	// AlertRadiusMeters переопределяет глобальный порог "приближения" для этой зоны
	AlertRadiusMeters *float64  `json:"alert_radius_meters,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BelongsTo сообщает, относится ли зона к указанной больнице
func (f *GeoFence) BelongsTo(hospitalID string) bool {
	return f.HospitalID != nil && *f.HospitalID == hospitalID
}

// PositionReading - одно показание GPS устройства
type PositionReading struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}
