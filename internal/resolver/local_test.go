package resolver

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"restroom-finder/internal/store"
	"restroom-finder/internal/types"
)

type mockFacilityLister struct {
	rows []store.FacilityRow
	err  error
}

func (m *mockFacilityLister) ListFacilities(ctx context.Context) ([]store.FacilityRow, error) {
	return m.rows, m.err
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestLocalProvider_Nearby(t *testing.T) {
	taipei := types.NewPoint(25.0330, 121.5654)

	tests := []struct {
		name      string
		rows      []store.FacilityRow
		err       error
		radius    float64
		wantErr   bool
		wantNames []string
	}{
		{
			name: "filters by radius",
			rows: []store.FacilityRow{
				{Name: "Station A", Address: "Addr", Latitude: floatPtr(25.0331), Longitude: floatPtr(121.5655)},
				{Name: "Far Away", Address: "Addr", Latitude: floatPtr(25.1000), Longitude: floatPtr(121.6000)},
			},
			radius:    500,
			wantNames: []string{"Station A"},
		},
		{
			name: "rows without coordinates are skipped silently",
			rows: []store.FacilityRow{
				{Name: "No Coords", Address: "Addr"},
				{Name: "Half Coords", Address: "Addr", Latitude: floatPtr(25.0331)},
				{Name: "Station A", Address: "Addr", Latitude: floatPtr(25.0331), Longitude: floatPtr(121.5655)},
			},
			radius:    500,
			wantNames: []string{"Station A"},
		},
		{
			name:      "empty dataset yields no hits",
			rows:      nil,
			radius:    500,
			wantNames: []string{},
		},
		{
			name:    "store failure propagates",
			err:     errors.New("connection reset"),
			radius:  500,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewLocalProvider(&mockFacilityLister{rows: tt.rows, err: tt.err}, slog.Default())

			got, err := provider.Nearby(context.Background(), taipei, tt.radius)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Nearby() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Nearby() unexpected error: %v", err)
			}

			if len(got) != len(tt.wantNames) {
				t.Fatalf("len(results) = %d, want %d", len(got), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if got[i].Name != name {
					t.Errorf("results[%d].Name = %q, want %q", i, got[i].Name, name)
				}
			}
			for _, f := range got {
				if f.Source != types.SourceLocal {
					t.Errorf("facility %q source = %q, want %q", f.Name, f.Source, types.SourceLocal)
				}
				if f.DistanceMeters < 0 || f.DistanceMeters > tt.radius {
					t.Errorf("facility %q distance %v outside [0, %v]", f.Name, f.DistanceMeters, tt.radius)
				}
			}
		})
	}
}

func TestLocalProvider_Nearby_Distance(t *testing.T) {
	provider := NewLocalProvider(&mockFacilityLister{rows: []store.FacilityRow{
		{Name: "Station A", Address: "Addr", Latitude: floatPtr(25.0331), Longitude: floatPtr(121.5655)},
	}}, slog.Default())

	got, err := provider.Nearby(context.Background(), types.NewPoint(25.0330, 121.5654), 500)
	if err != nil {
		t.Fatalf("Nearby() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(got))
	}

	// True great-circle distance for this pair is roughly 15 m.
	if got[0].DistanceMeters < 10 || got[0].DistanceMeters > 20 {
		t.Errorf("DistanceMeters = %v, want about 15", got[0].DistanceMeters)
	}
}
