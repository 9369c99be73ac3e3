package generator

import "pkg.jsn.cam/parkgen/pkg/parking"

// lot holds what every generator shares: options, the random source, and
// the name/coordinate draws.
type lot struct {
	opts Options
	rand Rand
}

func (l *lot) Init(r Rand) {
	l.rand = r
}

func (l *lot) name() string {
	first := l.opts.FirstWords[l.rand.IntN(len(l.opts.FirstWords))]
	last := l.opts.LastWords[l.rand.IntN(len(l.opts.LastWords))]
	return first + " " + last
}

func (l *lot) record(openCloseTimes string, busyHours []string) parking.Record {
	name := l.name()
	lat, lon := l.opts.Bounds.Sample(l.rand)

	return parking.Record{
		Name:           name,
		Description:    l.opts.Description,
		Latitude:       lat,
		Longitude:      lon,
		OpenCloseTimes: openCloseTimes,
		Prices:         l.opts.Prices,
		BusyHours:      busyHours,
	}
}
