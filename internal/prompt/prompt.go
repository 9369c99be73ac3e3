package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

var ErrAborted = errors.New("prompt aborted")

// LineReader reads one line of input after displaying a prompt.
// *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Rule is an acceptance check with a human-readable description that is
// shown when input is rejected.
type Rule[T any] struct {
	Description string
	Accept      func(T) bool
}

// Request describes a typed value to ask for.
type Request[T any] struct {
	Label string
	// Default is used for empty input and shown in the prompt when set.
	Default string
	Parse   func(string) (T, error)
	Rule    Rule[T]
}

// Prompter asks for values until they parse and satisfy their rule.
type Prompter struct {
	in  LineReader
	out io.Writer
}

// New creates a prompter reading from in and writing rejection notices to out.
func New(in LineReader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Ask prompts for req until the input is accepted. End of input or an
// interactive abort returns ErrAborted.
func Ask[T any](p *Prompter, req Request[T]) (T, error) {
	var zero T
	label := req.Label + ": "
	if req.Default != "" {
		label = req.Label + " [" + req.Default + "]: "
	}

	for {
		line, err := p.in.Prompt(label)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				return zero, ErrAborted
			}
			return zero, fmt.Errorf("failed to read %q: %w", req.Label, err)
		}

		line = strings.TrimSpace(line)
		if line == "" && req.Default != "" {
			line = req.Default
		}

		v, err := req.Parse(line)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: %v\n", err)
			continue
		}

		if req.Rule.Accept != nil && !req.Rule.Accept(v) {
			fmt.Fprintf(p.out, "Invalid input: %s\n", req.Rule.Description)
			continue
		}

		return v, nil
	}
}

// String returns its input unchanged.
func String(s string) (string, error) {
	return s, nil
}

// Int parses a base-10 integer.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}

// OneOf accepts only the listed values.
func OneOf(values ...string) Rule[string] {
	return Rule[string]{
		Description: "accept only one of " + strings.Join(values, ", "),
		Accept: func(s string) bool {
			for _, v := range values {
				if s == v {
					return true
				}
			}
			return false
		},
	}
}

// Positive accepts integers greater than zero.
func Positive() Rule[int] {
	return Rule[int]{
		Description: "accept only if result > 0",
		Accept:      func(n int) bool { return n > 0 },
	}
}
