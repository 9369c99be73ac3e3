package parking

// Record is one synthetic parking-lot entry as consumed by the map front-end.
// Field order is the JSON key order.
type Record struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	OpenCloseTimes string  `json:"openCloseTimes"`
	Prices         string  `json:"prices"`
	// BusyHours is nil for generators that do not produce busy slots and is
	// omitted from the output in that case. An empty non-nil slice encodes as [].
	BusyHours []string `json:"busyHours,omitzero"`
}
