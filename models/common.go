package models

import (
	"context"
	"time"
)

// Coordinate is a pair of WGS 84 degrees. Range validation is left to the
// upstream API.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Location is a display name plus an optional coordinate. Coord is nil for a
// city that has not been geocoded yet.
type Location struct {
	Name  string
	Coord *Coordinate
}

// CityRequest is one unit of work for the worker pool. Run resolves the
// request and delivers its result to the submitter; the pool only logs the
// returned error.
type CityRequest struct {
	Index   int
	Service string
	Run     func(ctx context.Context) error
}

type RateLimitSettings struct {
	MaxRequests int
	PerDuration time.Duration
}
