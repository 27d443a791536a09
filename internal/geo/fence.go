package geo

import (
	"math"

	"github.com/medfieldpro/geofence/internal/models"
)

// ComplianceResult - вердикт проверки позиции относительно набора геозон
type ComplianceResult struct {
	IsCompliant    bool             `json:"is_compliant"`
	NearestFence   *models.GeoFence `json:"nearest_fence"`
	DistanceMeters float64          `json:"distance_meters"`
	WithinRadius   bool             `json:"within_radius"`
}

// Verifiable сообщает, удалось ли получить конечное расстояние.
// Непроверяемый результат вызывающий код должен трактовать как отказ (ручное подтверждение).
func (r ComplianceResult) Verifiable() bool {
	return !math.IsNaN(r.DistanceMeters) && !math.IsInf(r.DistanceMeters, 0)
}

// NearestFence - ближайшая зона и расстояние до её центра
type NearestFence struct {
	Fence          *models.GeoFence
	DistanceMeters float64
}

// FenceCenter возвращает центр зоны
func FenceCenter(fence *models.GeoFence) Coordinate {
	return Coordinate{Latitude: fence.CenterLatitude, Longitude: fence.CenterLongitude}
}

// IsWithinGeoFence проверяет попадание позиции в зону. Граница включается.
func IsWithinGeoFence(pos Coordinate, fence *models.GeoFence) bool {
	return DistanceBetween(pos, FenceCenter(fence)) <= fence.RadiusMeters
}

// FindNearestGeoFence линейно перебирает зоны и возвращает ближайшую.
// При равных расстояниях побеждает первая. false - если зон нет.
func FindNearestGeoFence(pos Coordinate, fences []*models.GeoFence) (*NearestFence, bool) {
	var nearest *NearestFence
	for _, fence := range fences {
		if fence == nil {
			continue
		}
		d := DistanceBetween(pos, FenceCenter(fence))
		if nearest == nil || d < nearest.DistanceMeters {
			nearest = &NearestFence{Fence: fence, DistanceMeters: d}
		}
	}
	return nearest, nearest != nil
}

// CheckGeoFenceCompliance вычисляет вердикт по ближайшей зоне.
// Пустой набор зон никогда не считается соответствием.
func CheckGeoFenceCompliance(pos Coordinate, fences []*models.GeoFence) ComplianceResult {
	nearest, ok := FindNearestGeoFence(pos, fences)
	if !ok {
		return ComplianceResult{
			IsCompliant:    false,
			NearestFence:   nil,
			DistanceMeters: math.Inf(1),
			WithinRadius:   false,
		}
	}

	within := nearest.DistanceMeters <= nearest.Fence.RadiusMeters
	return ComplianceResult{
		IsCompliant:    within,
		NearestFence:   nearest.Fence,
		DistanceMeters: nearest.DistanceMeters,
		WithinRadius:   within,
	}
}
