// Package geo содержит чистые функции проверки геозон: расстояние по формуле
// гаверсинуса, попадание в круговую зону, выбор ближайшей зоны и вердикт соответствия.
// Функции не имеют состояния и безопасны для конкурентного вызова.
package geo

import "math"

// EarthRadiusMeters - средний радиус Земли
const EarthRadiusMeters = 6371000.0

// Coordinate - точка на поверхности Земли
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid проверяет координату через AreValidCoordinates
func (c Coordinate) Valid() bool {
	return AreValidCoordinates(c.Latitude, c.Longitude)
}

// AreValidCoordinates проверяет, что широта и долгота конечны и лежат в допустимых диапазонах.
// Вызывать до передачи координат в CalculateDistance и CheckGeoFenceCompliance.
func AreValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// CalculateDistance возвращает расстояние по большому кругу в метрах.
// Входные данные не проверяются: NaN и Inf распространяются в результат.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceBetween - CalculateDistance для двух координат
func DistanceBetween(a, b Coordinate) float64 {
	return CalculateDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
