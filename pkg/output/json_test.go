package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pkg.jsn.cam/parkgen/pkg/parking"
)

var schedule = parking.FormatWeek(
	parking.Hours{Open: "6:30am", Close: "1:00am"},
	parking.Hours{Open: "6:30am", Close: "1:00am"},
	parking.Hours{Open: "10:00am", Close: "6:00pm"},
)

func sampleRecords(busy bool) []parking.Record {
	records := []parking.Record{
		{Name: "Best park", Description: "A cool place to park", Latitude: 52.6, Longitude: -1.1, OpenCloseTimes: schedule, Prices: "£1 / hour"},
		{Name: "Top parking lot", Description: "A cool place to park", Latitude: 52.65, Longitude: -1.2, OpenCloseTimes: schedule, Prices: "£1 / hour"},
		{Name: "Safe car storage", Description: "A cool place to park", Latitude: 52.58, Longitude: -1.05, OpenCloseTimes: schedule, Prices: "£1 / hour"},
	}
	if busy {
		records[0].BusyHours = []string{"07:00 am", "07:00 am"}
		records[1].BusyHours = []string{}
		records[2].BusyHours = []string{"10:00 pm"}
	}
	return records
}

// objectKeys returns the keys of each top-level array element in document order.
func objectKeys(t *testing.T, data []byte) [][]string {
	t.Helper()

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}

	var keys [][]string
	for _, obj := range raw {
		dec := json.NewDecoder(bytes.NewReader(obj))
		if _, err := dec.Token(); err != nil {
			t.Fatalf("Token failed: %v", err)
		}
		var objKeys []string
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				t.Fatalf("Token failed: %v", err)
			}
			objKeys = append(objKeys, tok.(string))
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				t.Fatalf("Decode value failed: %v", err)
			}
		}
		keys = append(keys, objKeys)
	}
	return keys
}

func TestWriteFile(t *testing.T) {
	t.Run("RandomizedKeys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultPath)

		n, err := WriteFile(path, sampleRecords(true))
		if err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if int64(len(data)) != n {
			t.Errorf("WriteFile reported %d bytes, file has %d", n, len(data))
		}

		keys := objectKeys(t, data)
		if len(keys) != 3 {
			t.Fatalf("Got %d objects, want 3", len(keys))
		}
		want := []string{"name", "description", "latitude", "longitude", "openCloseTimes", "prices", "busyHours"}
		for i, k := range keys {
			if diff := cmp.Diff(want, k); diff != "" {
				t.Errorf("object %d keys mismatch (-want +got):\n%s", i, diff)
			}
		}

		if !strings.Contains(string(data), `"busyHours": []`) {
			t.Error("empty busy hours should encode as []")
		}
	})

	t.Run("FixedOmitsBusyHours", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultPath)

		if _, err := WriteFile(path, sampleRecords(false)); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		data, _ := os.ReadFile(path)

		want := []string{"name", "description", "latitude", "longitude", "openCloseTimes", "prices"}
		for i, k := range objectKeys(t, data) {
			if diff := cmp.Diff(want, k); diff != "" {
				t.Errorf("object %d keys mismatch (-want +got):\n%s", i, diff)
			}
		}
	})

	t.Run("FourSpaceIndent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultPath)

		if _, err := WriteFile(path, sampleRecords(true)); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		data, _ := os.ReadFile(path)
		lines := strings.Split(string(data), "\n")

		if lines[0] != "[" {
			t.Errorf("first line = %q, want [", lines[0])
		}
		if lines[1] != "    {" {
			t.Errorf("second line = %q, want 4-space indented {", lines[1])
		}
		if lines[2] != `        "name": "Best park",` {
			t.Errorf("third line = %q, want 8-space indented name", lines[2])
		}
	})

	t.Run("LiteralMarkup", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, sampleRecords(false)); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "<br>") {
			t.Error("line break marker should not be escaped")
		}
		if !strings.Contains(out, "£1 / hour") {
			t.Error("pound sign should be written as UTF-8")
		}
	})

	t.Run("Overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultPath)

		if _, err := WriteFile(path, sampleRecords(true)); err != nil {
			t.Fatalf("first WriteFile failed: %v", err)
		}
		if _, err := WriteFile(path, sampleRecords(true)[:1]); err != nil {
			t.Fatalf("second WriteFile failed: %v", err)
		}

		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("Got %d records after overwrite, want 1", len(got))
		}
	})

	t.Run("CreatesDirectories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", DefaultPath)
		if _, err := WriteFile(path, nil); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		data, _ := os.ReadFile(path)
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("empty sequence wrote %q, want []", data)
		}
	})

	t.Run("UnwritablePath", func(t *testing.T) {
		dir := t.TempDir()
		// A directory cannot be truncated as a file.
		if _, err := WriteFile(dir, sampleRecords(false)); err == nil {
			t.Error("WriteFile to a directory should fail")
		}
	})
}

func TestReadFile(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultPath)
		want := sampleRecords(true)

		if _, err := WriteFile(path, want); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("ReadFile should fail for a missing file")
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := Decode(strings.NewReader("invalid json")); err == nil {
			t.Error("Decode should fail for invalid JSON")
		}
	})
}
