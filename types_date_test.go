package moneta

import (
	"encoding/json"
	"testing"
)

func TestParseDateLenient(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2026-08-27", want: "2026-08-27"},
		{input: "2026-8-7", want: "2026-08-07"},
		{input: "not a date", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range testCases {
		d, err := ParseDate(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.input, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.input, err)
			continue
		}
		if d.String() != tc.want {
			t.Errorf("ParseDate(%q) = %q, want %q", tc.input, d, tc.want)
		}
	}
}

func TestDateUnmarshalAcceptsTimestamps(t *testing.T) {
	// the service writes server-assigned update times as full timestamps
	var d Date
	if err := json.Unmarshal([]byte(`"2026-08-27T14:03:00Z"`), &d); err != nil {
		t.Fatalf("unmarshal timestamp: %v", err)
	}
	if d.String() != "2026-08-27" {
		t.Errorf("date = %q, want 2026-08-27", d)
	}

	if err := json.Unmarshal([]byte(`"2026-08-27"`), &d); err != nil {
		t.Fatalf("unmarshal bare date: %v", err)
	}
	if d.String() != "2026-08-27" {
		t.Errorf("date = %q, want 2026-08-27", d)
	}
}
