package generator

import "pkg.jsn.cam/parkgen/pkg/geo"

// Mode selects how opening hours and busy hours are produced.
type Mode string

const (
	// ModeFixed uses literal opening hours and no busy hours.
	ModeFixed Mode = "fixed"
	// ModeRandomized draws opening hours and up to four busy hours per lot.
	ModeRandomized Mode = "randomized"
)

const (
	DefaultDescription = "A cool place to park"
	DefaultPrices      = "£1 / hour"
)

var FirstWords = []string{
	"New house",
	"Best",
	"Quick",
	"Safe",
	"Rundown",
	"Park and go",
	"Car protect",
	"Top",
	"James'",
	"React",
	"Node.js",
	"LeicesterCS",
	"Freemans",
	"Cheap",
}

var LastWords = []string{
	"parking",
	"multi-story car park",
	"park",
	"cheap parking",
	"quick parking",
	"parking lot",
	"car storage",
}

// Options configures a generator. Empty fields fall back to the defaults.
type Options struct {
	Mode        Mode
	FirstWords  []string
	LastWords   []string
	Bounds      geo.BoundingBox
	Description string
	Prices      string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Mode:        ModeRandomized,
		FirstWords:  FirstWords,
		LastWords:   LastWords,
		Bounds:      geo.Leicester,
		Description: DefaultDescription,
		Prices:      DefaultPrices,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Mode == "" {
		o.Mode = d.Mode
	}
	if len(o.FirstWords) == 0 {
		o.FirstWords = d.FirstWords
	}
	if len(o.LastWords) == 0 {
		o.LastWords = d.LastWords
	}
	if o.Bounds == (geo.BoundingBox{}) {
		o.Bounds = d.Bounds
	}
	if o.Description == "" {
		o.Description = d.Description
	}
	if o.Prices == "" {
		o.Prices = d.Prices
	}
	return o
}
