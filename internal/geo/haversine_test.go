package geo

import (
	"math"
	"testing"
)

func TestHaversineMeters(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		want       float64
		tolerance  float64
	}{
		{
			name: "identical points",
			lat1: 25.0330, lon1: 121.5654,
			lat2: 25.0330, lon2: 121.5654,
			want:      0,
			tolerance: 0,
		},
		{
			name: "adjacent points in Taipei",
			lat1: 25.0330, lon1: 121.5654,
			lat2: 25.0331, lon2: 121.5655,
			want:      15,
			tolerance: 2,
		},
		{
			name: "one degree of latitude at the equator",
			lat1: 0, lon1: 0,
			lat2: 1, lon2: 0,
			want:      111195,
			tolerance: 100,
		},
		{
			name: "across the antimeridian",
			lat1: 0, lon1: 179.9,
			lat2: 0, lon2: -179.9,
			want:      22239,
			tolerance: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMeters(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("HaversineMeters() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{25.0330, 121.5654, 25.0478, 121.5170},
		{39.11539, -107.65840, 39.19386, -106.81745},
		{-33.8688, 151.2093, 35.6762, 139.6503},
	}

	for _, p := range pairs {
		forward := HaversineMeters(p[0], p[1], p[2], p[3])
		reverse := HaversineMeters(p[2], p[3], p[0], p[1])
		if forward != reverse {
			t.Errorf("HaversineMeters not symmetric: %v vs %v", forward, reverse)
		}
		if forward < 0 {
			t.Errorf("HaversineMeters returned negative distance %v", forward)
		}
	}
}
