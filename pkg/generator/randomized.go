package generator

import "pkg.jsn.cam/parkgen/pkg/parking"

// Half-open hour ranges for the randomized schedule.
const (
	openHourMin, openHourMax               = 5, 11
	closeHourMin, closeHourMax             = 4, 12
	sundayCloseHourMin, sundayCloseHourMax = 5, 10
	busyHourMin, busyHourMax               = 6, 11
	maxBusyHours                           = 4
)

// RandomizedGenerator produces lots with drawn opening hours and up to
// four busy hours each.
type RandomizedGenerator struct {
	lot
}

// NewRandomizedGenerator creates a randomized-hours generator. Call Init
// before Record.
func NewRandomizedGenerator(opts Options) *RandomizedGenerator {
	opts = opts.withDefaults()
	opts.Mode = ModeRandomized
	return &RandomizedGenerator{lot: lot{opts: opts}}
}

func (g *RandomizedGenerator) Record() parking.Record {
	weekday := parking.Hours{
		Open:  g.clock(openHourMin, openHourMax, false),
		Close: g.clock(closeHourMin, closeHourMax, true),
	}
	sunday := parking.Hours{
		Open:  g.clock(openHourMin, openHourMax, false),
		Close: g.clock(sundayCloseHourMin, sundayCloseHourMax, true),
	}

	return g.record(parking.FormatWeek(weekday, weekday, sunday), g.busyHours())
}

// clock draws an hour in [lo, hi) and a minute in [0, 60).
func (g *RandomizedGenerator) clock(lo, hi int, pm bool) string {
	hour := lo + g.rand.IntN(hi-lo)
	minute := g.rand.IntN(60)
	return parking.ClockLabel(hour, minute, pm)
}

// busyHours returns 0 to maxBusyHours labels in draw order. The result is
// never nil so it always encodes as a JSON array.
func (g *RandomizedGenerator) busyHours() []string {
	n := g.rand.IntN(maxBusyHours + 1)
	busy := make([]string, 0, n)
	for i := 0; i < n; i++ {
		hour := busyHourMin + g.rand.IntN(busyHourMax-busyHourMin)
		pm := g.rand.IntN(2) == 1
		busy = append(busy, parking.ClockLabel(hour, 0, pm))
	}
	return busy
}

func (g *RandomizedGenerator) Description() string {
	return "Parking lots with randomized opening hours and busy hours"
}

func (g *RandomizedGenerator) DefaultCount() int {
	return 50
}
