package parking

import "errors"

var (
	ErrMalformedSchedule = errors.New("malformed opening schedule")
	ErrMalformedClock    = errors.New("malformed clock time")
)
