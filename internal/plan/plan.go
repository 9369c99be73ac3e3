// Package plan builds a step-by-step parking itinerary for a day of events:
// where to park for each one, when to leave, and when a free-parking limit
// forces the car to be moved.
package plan

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"pkg.jsn.cam/parkgen/internal/inspect"
	"pkg.jsn.cam/parkgen/pkg/geo"
	"pkg.jsn.cam/parkgen/pkg/parking"
)

// Kind classifies a timeline step.
type Kind string

const (
	KindDrive    Kind = "drive"
	KindPark     Kind = "park"
	KindWalk     Kind = "walk"
	KindEvent    Kind = "event"
	KindRelocate Kind = "relocate"
)

// Difficulty is a rough effort rating shown next to a step.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

const (
	// DriveSpeed and WalkSpeed are average speeds in meters per second.
	DriveSpeed = 13.4
	WalkSpeed  = 1.4

	// ArriveEarly is how long before an event starts the plan arrives.
	ArriveEarly = 15 * time.Minute
	// MoveWindow is how long before a free-parking limit the car is moved,
	// and how long the move takes.
	MoveWindow = 15 * time.Minute
)

var ErrInvalidEvent = errors.New("invalid event")

// Point is a latitude/longitude pair.
type Point struct {
	Lat float64 `toml:"lat"`
	Lon float64 `toml:"lon"`
}

// Event is something to attend at a place and time.
type Event struct {
	Title string    `toml:"title"`
	Lat   float64   `toml:"lat"`
	Lon   float64   `toml:"lon"`
	Start time.Time `toml:"start"`
	End   time.Time `toml:"end"`
}

func (e Event) point() Point {
	return Point{Lat: e.Lat, Lon: e.Lon}
}

// Validate checks that the event has a title and ends after it starts.
func (e Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidEvent)
	}
	if e.Start.IsZero() || !e.End.After(e.Start) {
		return fmt.Errorf("%w: %q must end after it starts", ErrInvalidEvent, e.Title)
	}
	return nil
}

// Step is one entry of the itinerary.
type Step struct {
	Time        time.Time
	Title       string
	Description string
	Kind        Kind
	Difficulty  Difficulty
	MapLink     string
	// Cost is the estimated charge of a park step, in pounds.
	Cost float64
}

// Options control lot selection.
type Options struct {
	RadiusMeters float64
	Prefer       inspect.Preference
}

type place struct {
	Point
	name string
}

// Timeline plans parking for events in start order, starting from home.
// Each event gets the preferred lot within the radius that is open when the
// event starts. Events with no such lot get a single advisory step and the
// next leg starts from the last place parked.
func Timeline(records []parking.Record, home Point, events []Event, opts Options) ([]Step, error) {
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		return a.Start.Compare(b.Start)
	})

	var (
		steps    []Step
		prev     = place{Point: home, name: "home"}
		lastSeen *Event
	)

	for i := range sorted {
		e := sorted[i]

		lot, found, err := bestLot(records, e, opts)
		if err != nil {
			return nil, err
		}
		if !found {
			steps = append(steps, Step{
				Time:        e.Start,
				Title:       "No parking for " + e.Title,
				Description: "Try increasing the radius.",
				Kind:        KindDrive,
				Difficulty:  Advanced,
			})
			continue
		}

		at := Point{Lat: lot.Latitude, Lon: lot.Longitude}
		drive := travel(prev.Point, at, DriveSpeed)
		walk := travel(at, e.point(), WalkSpeed)

		arrive := e.Start.Add(-ArriveEarly)
		parked := arrive.Add(-walk)
		leave := parked.Add(-drive)
		stay := e.End.Sub(parked).Hours()

		if lastSeen != nil {
			steps = append(steps, Step{
				Time:        leave,
				Title:       "Walk to car",
				Description: "Return to " + prev.name + ".",
				Kind:        KindWalk,
				Difficulty:  Intermediate,
				MapLink:     DirectionsLink(lastSeen.point(), prev.Point, "walking"),
			})
		}

		title := "Drive to " + lot.Name
		if lastSeen == nil {
			title = "Leave home"
		}
		steps = append(steps,
			Step{
				Time:        leave,
				Title:       title,
				Description: fmt.Sprintf("Drive ~%.0f mins.", drive.Minutes()),
				Kind:        KindDrive,
				Difficulty:  Beginner,
				MapLink:     DirectionsLink(prev.Point, at, "driving"),
			},
			Step{
				Time:        parked,
				Title:       "Park at " + lot.Name,
				Description: lot.Prices,
				Kind:        KindPark,
				Difficulty:  Intermediate,
				MapLink:     LocationLink(at),
				Cost:        parking.EstimateCost(lot.Prices, stay),
			},
		)

		if limit, ok := parking.FreeHourLimit(lot.Description); ok && stay > float64(limit) {
			moved, err := relocate(records, lot, e, parked, stay, limit, opts)
			if err != nil {
				return nil, err
			}
			steps = append(steps, moved...)
		}

		steps = append(steps, Step{
			Time:        arrive,
			Title:       "Arrive at " + e.Title,
			Description: fmt.Sprintf("Walked ~%.0f mins.", walk.Minutes()),
			Kind:        KindEvent,
			Difficulty:  Beginner,
			MapLink:     DirectionsLink(at, e.point(), "walking"),
		})

		prev = place{Point: at, name: lot.Name}
		lastSeen = &sorted[i]
	}

	return steps, nil
}

// relocate plans the move away from a lot whose free limit ends before the
// event does.
func relocate(records []parking.Record, lot parking.Record, e Event, parked time.Time, stay float64, limit int, opts Options) ([]Step, error) {
	at := Point{Lat: lot.Latitude, Lon: lot.Longitude}
	moveAt := parked.Add(time.Duration(limit)*time.Hour - MoveWindow)

	candidates, _, err := inspect.Find(records, inspect.Query{
		Lat:          e.Lat,
		Lon:          e.Lon,
		RadiusMeters: opts.RadiusMeters,
		At:           moveAt,
		Hours:        stay - float64(limit),
		Prefer:       opts.Prefer,
		OpenOnly:     true,
	})
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		if c.Record.Name == lot.Name {
			continue
		}
		backup := Point{Lat: c.Record.Latitude, Lon: c.Record.Longitude}
		return []Step{
			{
				Time:        moveAt,
				Title:       "Move car",
				Description: fmt.Sprintf("Limit (%dh) expiring. Move to %s.", limit, c.Record.Name),
				Kind:        KindRelocate,
				Difficulty:  Advanced,
				MapLink:     DirectionsLink(at, backup, "driving"),
			},
			{
				Time:        moveAt.Add(MoveWindow),
				Title:       "Repark at " + c.Record.Name,
				Description: c.Record.Prices,
				Kind:        KindPark,
				Difficulty:  Intermediate,
				MapLink:     LocationLink(backup),
				Cost:        parking.EstimateCost(c.Record.Prices, stay-float64(limit)),
			},
		}, nil
	}

	return []Step{{
		Time:        moveAt,
		Title:       "Limit reached",
		Description: fmt.Sprintf("Limit (%dh) expiring. No backup spot found.", limit),
		Kind:        KindRelocate,
		Difficulty:  Advanced,
		MapLink:     DirectionsLink(e.point(), at, "walking"),
	}}, nil
}

func bestLot(records []parking.Record, e Event, opts Options) (parking.Record, bool, error) {
	results, _, err := inspect.Find(records, inspect.Query{
		Lat:          e.Lat,
		Lon:          e.Lon,
		RadiusMeters: opts.RadiusMeters,
		At:           e.Start,
		Hours:        e.End.Sub(e.Start).Hours(),
		Prefer:       opts.Prefer,
		OpenOnly:     true,
		Limit:        1,
	})
	if err != nil || len(results) == 0 {
		return parking.Record{}, false, err
	}
	return results[0].Record, true, nil
}

func travel(from, to Point, speed float64) time.Duration {
	meters := geo.DistanceMeters(from.Lat, from.Lon, to.Lat, to.Lon)
	return time.Duration(meters / speed * float64(time.Second))
}

// TotalCost sums the estimated cost of every park step.
func TotalCost(steps []Step) float64 {
	var total float64
	for _, s := range steps {
		total += s.Cost
	}
	return total
}

// DirectionsLink returns a Google Maps directions URL between two points.
// mode is "driving" or "walking".
func DirectionsLink(from, to Point, mode string) string {
	return "https://www.google.com/maps/dir/?api=1&origin=" + coords(from) +
		"&destination=" + coords(to) + "&travelmode=" + mode
}

// LocationLink returns a Google Maps search URL for a point.
func LocationLink(p Point) string {
	return "https://www.google.com/maps/search/?api=1&query=" + coords(p)
}

func coords(p Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lon, 'f', -1, 64)
}
