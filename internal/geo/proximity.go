package geo

import (
	"fmt"
	"math"
)

// Proximity - положение представителя относительно ближайшей зоны
type Proximity string

const (
	ProximityInside      Proximity = "inside"
	ProximityApproaching Proximity = "approaching"
	ProximityAway        Proximity = "away"
	ProximityUnknown     Proximity = "unknown"
)

// ClassifyProximity сравнивает расстояние с порогом предупреждения alertRadius,
// который отделён от радиуса зоны. Если alertRadius не больше радиуса, полосы "approaching" нет.
func ClassifyProximity(result ComplianceResult, alertRadius float64) Proximity {
	if result.NearestFence == nil || !result.Verifiable() {
		return ProximityUnknown
	}
	if result.WithinRadius {
		return ProximityInside
	}
	if result.DistanceMeters <= alertRadius {
		return ProximityApproaching
	}
	return ProximityAway
}

// FormatDistance форматирует расстояние для уведомлений: "85 m", "1.2 km"
func FormatDistance(meters float64) string {
	switch {
	case math.IsNaN(meters) || math.IsInf(meters, 0) || meters < 0:
		return "unknown"
	case math.Round(meters) < 1000:
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	default:
		return fmt.Sprintf("%.1f km", meters/1000)
	}
}
