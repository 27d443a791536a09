package geo

import (
	"math"
	"testing"

	kgeo "github.com/kellydunn/golang-geo"
	"github.com/stretchr/testify/assert"
)

// referenceDistance - независимая реализация гаверсинуса (км -> м)
func referenceDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return kgeo.NewPoint(lat1, lon1).GreatCircleDistance(kgeo.NewPoint(lat2, lon2)) * 1000
}

var samplePairs = []struct {
	name                   string
	lat1, lon1, lat2, lon2 float64
}{
	{"manhattan hospitals", 40.7589, -73.9851, 40.7505, -73.9934},
	{"short hop", 40.7580, -73.9855, 40.7589, -73.9851},
	{"jakarta", -6.2088, 106.8456, -6.2100, 106.8456},
	{"antimeridian", 10.0, 179.9995, 10.0, -179.9995},
	{"near pole", 89.9, 0, 89.9, 90},
	{"equator", 0, 0, 0, 0.001},
}

func TestCalculateDistance_KnownHospitals(t *testing.T) {
	d := CalculateDistance(40.7589, -73.9851, 40.7505, -73.9934)

	assert.InDelta(t, 1166.7, d, 1.0)
	assert.InEpsilon(t, referenceDistance(40.7589, -73.9851, 40.7505, -73.9934), d, 1e-9)
}

func TestCalculateDistance_MatchesReference(t *testing.T) {
	for _, tc := range samplePairs {
		t.Run(tc.name, func(t *testing.T) {
			want := referenceDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			got := CalculateDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.InEpsilon(t, want, got, 1e-9)
		})
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	for _, tc := range samplePairs {
		t.Run(tc.name, func(t *testing.T) {
			ab := CalculateDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			ba := CalculateDistance(tc.lat2, tc.lon2, tc.lat1, tc.lon1)
			assert.InEpsilon(t, ab, ba, 1e-6)
			assert.GreaterOrEqual(t, ab, 0.0)
		})
	}
}

func TestCalculateDistance_Identity(t *testing.T) {
	points := []Coordinate{
		{40.7589, -73.9851},
		{-6.2088, 106.8456},
		{90, 0},
		{-90, 180},
		{0, -180},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceBetween(p, p), "point %+v", p)
	}
}

func TestCalculateDistance_AntimeridianIsShort(t *testing.T) {
	d := CalculateDistance(10.0, 179.9995, 10.0, -179.9995)
	assert.Less(t, d, 200.0)
}

func TestCalculateDistance_PropagatesNaN(t *testing.T) {
	assert.True(t, math.IsNaN(CalculateDistance(math.NaN(), 0, 0, 0)))
	assert.True(t, math.IsNaN(CalculateDistance(0, math.Inf(1), 0, 0)))
}

func TestAreValidCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"origin", 0, 0, true},
		{"hospital", 40.7589, -73.9851, true},
		{"north pole", 90, 0, true},
		{"south edge", -90, -180, true},
		{"dateline", 0, 180, true},
		{"lat too high", 90.0001, 0, false},
		{"lat too low", -91, 0, false},
		{"lon too high", 0, 180.5, false},
		{"lon too low", 0, -181, false},
		{"nan lat", math.NaN(), 0, false},
		{"nan lon", 0, math.NaN(), false},
		{"inf lat", math.Inf(1), 0, false},
		{"inf lon", 0, math.Inf(-1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AreValidCoordinates(tc.lat, tc.lon))
			assert.Equal(t, tc.want, Coordinate{tc.lat, tc.lon}.Valid())
		})
	}
}
