package plan

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type eventsFile struct {
	Home   *Point  `toml:"home"`
	Events []Event `toml:"event"`
}

// LoadEvents reads events from a TOML file of [[event]] tables, each with
// title, lat, lon, start and end. An optional [home] table with lat and lon
// is returned as home; ok is false when it is absent.
func LoadEvents(path string) (events []Event, home Point, ok bool, err error) {
	var f eventsFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, Point{}, false, fmt.Errorf("failed to decode events %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, Point{}, false, fmt.Errorf("%w: unknown key %s in %s", ErrInvalidEvent, undecoded[0], path)
	}

	for _, e := range f.Events {
		if err := e.Validate(); err != nil {
			return nil, Point{}, false, err
		}
	}

	if f.Home != nil {
		return f.Events, *f.Home, true, nil
	}
	return f.Events, Point{}, false, nil
}
