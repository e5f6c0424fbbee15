package types

// Point is a coordinate in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewPoint(latitude, longitude float64) Point {
	return Point{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
