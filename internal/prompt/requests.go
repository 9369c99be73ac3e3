package prompt

import "strconv"

// WriteMode is the single-character output mode flag.
type WriteMode string

const (
	ModeWrite  WriteMode = "w"
	ModeAppend WriteMode = "a"
)

// ModeRequest asks whether to add to or write the output file.
func ModeRequest() Request[string] {
	return Request[string]{
		Label: "Add or write to output, w/a",
		Parse: String,
		Rule:  OneOf(string(ModeWrite), string(ModeAppend)),
	}
}

// CountRequest asks for the number of records to generate. A positive
// defaultCount is offered for empty input.
func CountRequest(defaultCount int) Request[int] {
	req := Request[int]{
		Label: "Input (max) number of datapoints you want to make",
		Parse: Int,
		Rule:  Positive(),
	}
	if defaultCount > 0 {
		req.Default = strconv.Itoa(defaultCount)
	}
	return req
}
