package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pkg.jsn.cam/parkgen/pkg/parking"
)

// DefaultPath is where generated records are written unless configured otherwise.
const DefaultPath = "parkingLocations.json"

const indent = "    "

// Encode writes records as a pretty-printed JSON array. HTML characters are
// left unescaped so schedule line breaks stay readable.
func Encode(w io.Writer, records []parking.Record) error {
	if records == nil {
		records = []parking.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// WriteFile replaces the file at path with the encoded records, creating
// parent directories as needed. It returns the number of bytes written.
func WriteFile(path string, records []parking.Record) (int64, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return 0, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	n, err := buf.WriteTo(file)
	if err != nil {
		return n, fmt.Errorf("failed to write output file: %w", err)
	}

	if err := file.Close(); err != nil {
		return n, fmt.Errorf("failed to close output file: %w", err)
	}

	return n, nil
}

// Decode reads a JSON array of records.
func Decode(r io.Reader) ([]parking.Record, error) {
	var records []parking.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	return records, nil
}

// ReadFile decodes the records stored at path.
func ReadFile(path string) ([]parking.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return Decode(file)
}
