package inspect

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"pkg.jsn.cam/parkgen/pkg/geo"
	"pkg.jsn.cam/parkgen/pkg/parking"
)

// Preference orders matching lots.
type Preference string

const (
	PreferClosest Preference = "closest"
	PreferCheap   Preference = "cheap"
)

var ErrInvalidQuery = errors.New("invalid query")

// Query selects lots around a target point at a given time.
type Query struct {
	Lat, Lon     float64
	RadiusMeters float64
	At           time.Time
	// Hours is the intended stay, used for cost estimates.
	Hours    float64
	Prefer   Preference
	OpenOnly bool
	Limit    int
}

// Result is one lot matching a query.
type Result struct {
	Record         parking.Record
	DistanceMeters float64
	Open           bool
	Busy           bool
	Cost           float64
}

func (q Query) validate() error {
	if q.RadiusMeters <= 0 {
		return fmt.Errorf("%w: radius must be positive", ErrInvalidQuery)
	}
	if q.Hours < 0 {
		return fmt.Errorf("%w: hours must not be negative", ErrInvalidQuery)
	}
	switch q.Prefer {
	case "", PreferClosest, PreferCheap:
	default:
		return fmt.Errorf("%w: unknown preference %q", ErrInvalidQuery, q.Prefer)
	}
	return nil
}

// Find returns the lots within the query radius, ordered by preference.
// Records whose schedule cannot be parsed are skipped and counted.
func Find(records []parking.Record, q Query) (results []Result, skipped int, err error) {
	if err := q.validate(); err != nil {
		return nil, 0, err
	}

	for _, rec := range records {
		dist := geo.DistanceMeters(q.Lat, q.Lon, rec.Latitude, rec.Longitude)
		if dist > q.RadiusMeters {
			continue
		}

		sched, err := parking.ParseSchedule(rec.OpenCloseTimes)
		if err != nil {
			skipped++
			continue
		}

		open := sched.IsOpen(q.At)
		if q.OpenOnly && !open {
			continue
		}

		results = append(results, Result{
			Record:         rec,
			DistanceMeters: dist,
			Open:           open,
			Busy:           parking.IsBusy(rec.BusyHours, q.At),
			Cost:           parking.EstimateCost(rec.Prices, q.Hours),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if q.Prefer == PreferCheap && a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.DistanceMeters < b.DistanceMeters
	})

	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}

	return results, skipped, nil
}
