package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"restroom-finder/internal/geo"
	"restroom-finder/internal/store"
	"restroom-finder/internal/types"
)

// FacilityLister reads the full local facility dataset.
type FacilityLister interface {
	ListFacilities(ctx context.Context) ([]store.FacilityRow, error)
}

// LocalProvider serves nearby queries from the local dataset with a full
// scan and an in-memory distance filter.
type LocalProvider struct {
	store  FacilityLister
	logger *slog.Logger
}

func NewLocalProvider(store FacilityLister, logger *slog.Logger) *LocalProvider {
	return &LocalProvider{
		store:  store,
		logger: logger.With("component", "local-provider"),
	}
}

func (p *LocalProvider) Nearby(ctx context.Context, center types.Point, radiusMeters float64) ([]types.Facility, error) {
	rows, err := p.store.ListFacilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}

	var results []types.Facility
	for _, row := range rows {
		// Rows without coordinates never match.
		if row.Latitude == nil || row.Longitude == nil {
			continue
		}

		distance := geo.HaversineMeters(center.Latitude, center.Longitude, *row.Latitude, *row.Longitude)
		if distance > radiusMeters {
			continue
		}

		results = append(results, types.Facility{
			Source:         types.SourceLocal,
			Name:           row.Name,
			Address:        row.Address,
			Location:       types.NewPoint(*row.Latitude, *row.Longitude),
			DistanceMeters: distance,
		})
	}

	p.logger.Debug("local dataset scanned",
		"rows", len(rows),
		"hits", len(results),
		"radius_meters", radiusMeters,
	)

	return results, nil
}
