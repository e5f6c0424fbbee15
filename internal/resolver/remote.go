package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"restroom-finder/internal/geo"
	"restroom-finder/internal/providers/overpass"
	"restroom-finder/internal/types"
)

const (
	// OSM tags public restrooms as amenity=toilets.
	restroomAmenity = "toilets"

	// Placeholders for remote features with no usable name or address.
	placeholderName    = "no name"
	placeholderAddress = "OpenStreetMap"
)

// AmenityQuerier issues one spatial query against the remote map service.
type AmenityQuerier interface {
	QueryAmenities(ctx context.Context, amenity string, latitude, longitude, radiusMeters float64) (*overpass.QueryAPIResponse, error)
}

// RemoteProvider serves nearby queries from OpenStreetMap via Overpass.
// The radius is enforced by the remote service only; returned elements are
// not re-filtered by distance here.
type RemoteProvider struct {
	client AmenityQuerier
	logger *slog.Logger
}

func NewRemoteProvider(client AmenityQuerier, logger *slog.Logger) *RemoteProvider {
	return &RemoteProvider{
		client: client,
		logger: logger.With("component", "remote-provider"),
	}
}

func (p *RemoteProvider) Nearby(ctx context.Context, center types.Point, radiusMeters float64) ([]types.Facility, error) {
	resp, err := p.client.QueryAmenities(ctx, restroomAmenity, center.Latitude, center.Longitude, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to query map service: %w", err)
	}

	var results []types.Facility
	skipped := 0
	for _, el := range resp.Elements {
		var lat, lon float64
		switch {
		case el.Lat != nil && el.Lon != nil:
			lat, lon = *el.Lat, *el.Lon
		case el.Center != nil:
			lat, lon = el.Center.Lat, el.Center.Lon
		default:
			// No resolvable coordinates for this element.
			skipped++
			continue
		}

		name := el.Tags["name"]
		if name == "" {
			name = placeholderName
		}

		results = append(results, types.Facility{
			Source:         types.SourceRemote,
			Name:           name,
			Address:        placeholderAddress,
			Location:       types.NewPoint(lat, lon),
			DistanceMeters: geo.HaversineMeters(center.Latitude, center.Longitude, lat, lon),
		})
	}

	p.logger.Debug("remote elements mapped",
		"elements", len(resp.Elements),
		"results", len(results),
		"skipped", skipped,
	)

	return results, nil
}
