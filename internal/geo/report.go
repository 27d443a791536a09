package geo

import (
	"math"
	"time"

	"github.com/medfieldpro/geofence/internal/models"
)

// Report - вердикт соответствия вместе с классификацией близости
type Report struct {
	ComplianceResult
	Proximity         Proximity `json:"proximity"`
	AlertRadiusMeters float64   `json:"alert_radius_meters"`
	CheckedAt         time.Time `json:"checked_at"`
}

// AlertRadiusFor возвращает порог "приближения" для зоны: собственный, если задан, иначе общий
func AlertRadiusFor(fence *models.GeoFence, defaultRadius float64) float64 {
	if fence != nil && fence.AlertRadiusMeters != nil && *fence.AlertRadiusMeters > 0 {
		return *fence.AlertRadiusMeters
	}
	return defaultRadius
}

// Evaluate проверяет позицию и классифицирует близость к ближайшей зоне
func Evaluate(pos Coordinate, fences []*models.GeoFence, defaultAlertRadius float64) Report {
	result := CheckGeoFenceCompliance(pos, fences)
	alertRadius := AlertRadiusFor(result.NearestFence, defaultAlertRadius)
	return Report{
		ComplianceResult:  result,
		Proximity:         ClassifyProximity(result, alertRadius),
		AlertRadiusMeters: alertRadius,
	}
}

// FiniteDistance возвращает расстояние или nil, если оно не конечно (JSON не умеет Inf/NaN)
func (r ComplianceResult) FiniteDistance() *float64 {
	if math.IsNaN(r.DistanceMeters) || math.IsInf(r.DistanceMeters, 0) {
		return nil
	}
	d := r.DistanceMeters
	return &d
}
