package geo

import (
	"math"
	"testing"

	"github.com/medfieldpro/geofence/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyProximity(t *testing.T) {
	fence := newFence("clinic", 0, 0, 100)

	tests := []struct {
		name   string
		result ComplianceResult
		alert  float64
		want   Proximity
	}{
		{"inside", ComplianceResult{NearestFence: fence, DistanceMeters: 40, WithinRadius: true, IsCompliant: true}, 200, ProximityInside},
		{"approaching", ComplianceResult{NearestFence: fence, DistanceMeters: 150}, 200, ProximityApproaching},
		{"approaching boundary", ComplianceResult{NearestFence: fence, DistanceMeters: 200}, 200, ProximityApproaching},
		{"away", ComplianceResult{NearestFence: fence, DistanceMeters: 250}, 200, ProximityAway},
		{"threshold below radius", ComplianceResult{NearestFence: fence, DistanceMeters: 120}, 50, ProximityAway},
		{"no fence", ComplianceResult{DistanceMeters: math.Inf(1)}, 200, ProximityUnknown},
		{"nan", ComplianceResult{NearestFence: fence, DistanceMeters: math.NaN()}, 200, ProximityUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyProximity(tc.result, tc.alert))
		})
	}
}

func TestClassifyProximity_FromCompliance(t *testing.T) {
	pos := Coordinate{40.7580, -73.9855}
	result := CheckGeoFenceCompliance(pos, []*models.GeoFence{newFence("Midtown General", 40.7589, -73.9851, 100)})

	assert.Equal(t, ProximityApproaching, ClassifyProximity(result, 200))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0 m", FormatDistance(0))
	assert.Equal(t, "85 m", FormatDistance(85.4))
	assert.Equal(t, "1.0 km", FormatDistance(999.7))
	assert.Equal(t, "1.2 km", FormatDistance(1166.7))
	assert.Equal(t, "12.5 km", FormatDistance(12500))
	assert.Equal(t, "unknown", FormatDistance(math.Inf(1)))
	assert.Equal(t, "unknown", FormatDistance(math.NaN()))
	assert.Equal(t, "unknown", FormatDistance(-1))
}
