package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"restroom-finder/internal/types"
)

// Default query bounds, matching the chat frontend's behavior.
const (
	DefaultRadiusMeters = 500
	DefaultMinResults   = 3
	DefaultMaxResults   = 5
)

// Provider returns facility candidates near a point. The local dataset and
// the remote map service implement the same capability so the resolver can
// compose them as primary and fallback sources.
type Provider interface {
	Nearby(ctx context.Context, center types.Point, radiusMeters float64) ([]types.Facility, error)
}

// Query describes one nearest-facility lookup. Zero values for the bounds
// are replaced with the defaults above.
type Query struct {
	Center       types.Point
	RadiusMeters float64
	MinResults   int
	MaxResults   int
}

// Service resolves the nearest public restrooms for a point.
type Service interface {
	// FindNearest returns up to MaxResults facilities sorted ascending by
	// distance. An empty slice is a valid result, not an error.
	FindNearest(ctx context.Context, q Query) ([]types.Facility, error)
}

type resolverService struct {
	primary  Provider
	fallback Provider
	logger   *slog.Logger
}

// NewService creates a resolver that queries primary first and adds fallback
// results only when primary coverage is insufficient.
func NewService(primary, fallback Provider, logger *slog.Logger) Service {
	return &resolverService{
		primary:  primary,
		fallback: fallback,
		logger:   logger.With("component", "resolver"),
	}
}

func (s *resolverService) FindNearest(ctx context.Context, q Query) ([]types.Facility, error) {
	if q.RadiusMeters <= 0 {
		q.RadiusMeters = DefaultRadiusMeters
	}
	if q.MinResults <= 0 {
		q.MinResults = DefaultMinResults
	}
	if q.MaxResults <= 0 {
		q.MaxResults = DefaultMaxResults
	}

	results, err := s.primary.Nearby(ctx, q.Center, q.RadiusMeters)
	if err != nil {
		s.logger.Error("primary provider failed",
			"latitude", q.Center.Latitude,
			"longitude", q.Center.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to query local facilities: %w", err)
	}

	if len(results) < q.MinResults {
		remote, err := s.fallback.Nearby(ctx, q.Center, q.RadiusMeters)
		if err != nil {
			// A broken fallback degrades to local-only results.
			s.logger.Warn("fallback provider failed",
				"latitude", q.Center.Latitude,
				"longitude", q.Center.Longitude,
				"error", err,
			)
		} else {
			results = append(results, remote...)
		}
	}

	// Stable keeps insertion order for equal distances; there is no
	// secondary sort key.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	if len(results) > q.MaxResults {
		results = results[:q.MaxResults]
	}

	return results, nil
}
