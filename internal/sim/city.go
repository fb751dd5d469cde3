package sim

import "math"

const earthRadiusKM = 6371.0

// City is immutable reference data. Timezone is the UTC offset in hours and
// may be fractional (e.g. 5.5 for Delhi).
type City struct {
	Name       string  `json:"name"`
	Short      string  `json:"short"`
	Population int     `json:"population"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Timezone   float64 `json:"timezone"`
}

// Distance returns the great-circle distance to other in kilometers.
func (c City) Distance(other City) float64 {
	lat1 := toRadians(c.Lat)
	lat2 := toRadians(other.Lat)
	dLat := toRadians(other.Lat - c.Lat)
	dLon := toRadians(other.Lon - c.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
