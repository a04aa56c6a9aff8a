package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewErrorBody(t *testing.T) {
	now := time.Date(2026, 1, 16, 8, 30, 0, 123456789, time.FixedZone("CST", 8*3600))

	body := NewErrorBody("upstream request timed out", now)

	if body.Error != "Proxy failed" {
		t.Errorf("Error = %q, want %q", body.Error, "Proxy failed")
	}
	if body.Message != "upstream request timed out" {
		t.Errorf("Message = %q, want %q", body.Message, "upstream request timed out")
	}
	if want := "2026-01-16T00:30:00.123Z"; body.Timestamp != want {
		t.Errorf("Timestamp = %q, want %q", body.Timestamp, want)
	}

	parsed, err := time.Parse(time.RFC3339Nano, body.Timestamp)
	if err != nil {
		t.Fatalf("timestamp not RFC 3339: %v", err)
	}
	if !parsed.Equal(now.Truncate(time.Millisecond)) {
		t.Errorf("parsed timestamp = %v, want %v", parsed, now.Truncate(time.Millisecond))
	}
}

func TestErrorBody_JSONKeys(t *testing.T) {
	data, err := json.Marshal(NewErrorBody("boom", time.Unix(0, 0)))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"error", "message", "timestamp"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if len(m) != 3 {
		t.Errorf("got %d keys, want 3: %s", len(m), data)
	}
}
