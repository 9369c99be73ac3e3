package generator

import "pkg.jsn.cam/parkgen/pkg/parking"

// Rand is the random source a generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Generator produces synthetic parking records
type Generator interface {
	// Init sets the random source used by every subsequent Record call
	Init(r Rand)

	// Record builds a single fresh record
	Record() parking.Record

	// Description returns a human-readable description of the records produced
	Description() string

	// DefaultCount returns the suggested number of records to generate
	DefaultCount() int
}

// Generate calls g n times and returns the records in generation order.
// n <= 0 yields an empty sequence.
func Generate(g Generator, n int) []parking.Record {
	records := make([]parking.Record, 0, max(n, 0))
	Each(g, n, func(_ int, rec parking.Record) {
		records = append(records, rec)
	})
	return records
}

// Each calls g n times and hands every record to fn as it is produced.
func Each(g Generator, n int, fn func(i int, rec parking.Record)) {
	for i := 0; i < n; i++ {
		fn(i, g.Record())
	}
}
