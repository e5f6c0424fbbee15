package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FacilityRow is one row of the facilities table. Coordinates are nullable
// because imported rows are not always geocoded.
type FacilityRow struct {
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// FacilityStore reads the local restroom dataset from Postgres. The table is
// owned by an external import pipeline; this store never writes.
type FacilityStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewFacilityStore(pool *pgxpool.Pool, logger *slog.Logger) *FacilityStore {
	return &FacilityStore{
		pool:   pool,
		logger: logger.With("component", "facility-store"),
	}
}

// ListFacilities reads the whole facilities table. The dataset is small
// enough that callers filter by distance in memory.
func (s *FacilityStore) ListFacilities(ctx context.Context) ([]FacilityRow, error) {
	rows, err := s.pool.Query(ctx, "SELECT name, address, latitude, longitude FROM facilities")
	if err != nil {
		s.logger.Error("failed to query facilities", "error", err)
		return nil, fmt.Errorf("failed to query facilities: %w", err)
	}
	defer rows.Close()

	var facilities []FacilityRow
	for rows.Next() {
		var row FacilityRow
		if err := rows.Scan(&row.Name, &row.Address, &row.Latitude, &row.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan facility row: %w", err)
		}
		facilities = append(facilities, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read facilities: %w", err)
	}

	s.logger.Debug("listed facilities", "count", len(facilities))

	return facilities, nil
}
