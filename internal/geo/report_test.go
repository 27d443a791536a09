package geo

import (
	"testing"

	"github.com/medfieldpro/geofence/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_DefaultAlertRadius(t *testing.T) {
	fence := newFence("Midtown General", 40.7589, -73.9851, 100)

	report := Evaluate(Coordinate{40.7580, -73.9855}, []*models.GeoFence{fence}, 200)

	assert.False(t, report.IsCompliant)
	assert.Equal(t, ProximityApproaching, report.Proximity)
	assert.Equal(t, 200.0, report.AlertRadiusMeters)
	require.NotNil(t, report.FiniteDistance())
	assert.InDelta(t, 105.6, *report.FiniteDistance(), 0.5)
}

func TestEvaluate_FenceOverride(t *testing.T) {
	override := 104.0
	fence := newFence("Midtown General", 40.7589, -73.9851, 100)
	fence.AlertRadiusMeters = &override

	report := Evaluate(Coordinate{40.7580, -73.9855}, []*models.GeoFence{fence}, 200)

	assert.Equal(t, 104.0, report.AlertRadiusMeters)
	assert.Equal(t, ProximityAway, report.Proximity)
}

func TestEvaluate_NoFences(t *testing.T) {
	report := Evaluate(Coordinate{1, 1}, nil, 200)

	assert.False(t, report.IsCompliant)
	assert.Equal(t, ProximityUnknown, report.Proximity)
	assert.Nil(t, report.FiniteDistance())
}
