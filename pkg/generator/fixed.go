package generator

import "pkg.jsn.cam/parkgen/pkg/parking"

var (
	fixedWeekday  = parking.Hours{Open: "6:30am", Close: "1:00am"}
	fixedSaturday = parking.Hours{Open: "6:30am", Close: "1:00am"}
	fixedSunday   = parking.Hours{Open: "10:00am", Close: "6:00pm"}
)

// FixedGenerator produces lots that all share the same literal opening hours
// and carry no busy hours.
type FixedGenerator struct {
	lot
}

// NewFixedGenerator creates a fixed-hours generator. Call Init before Record.
func NewFixedGenerator(opts Options) *FixedGenerator {
	opts = opts.withDefaults()
	opts.Mode = ModeFixed
	return &FixedGenerator{lot: lot{opts: opts}}
}

func (g *FixedGenerator) Record() parking.Record {
	return g.record(parking.FormatWeek(fixedWeekday, fixedSaturday, fixedSunday), nil)
}

func (g *FixedGenerator) Description() string {
	return "Parking lots with fixed opening hours (6:30am - 1:00am, Sunday 10:00am - 6:00pm)"
}

func (g *FixedGenerator) DefaultCount() int {
	return 50
}
