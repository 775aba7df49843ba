package core

import (
	"encoding/json"
	"testing"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{OK(), "ok"},
		{HTTPFailure(404), "http_error:404"},
		{HTTPFailure(503), "http_error:503"},
		{Failure("timeout"), "error:timeout"},
		{Skipped("no_meta"), "skipped:no_meta"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseStatusRoundTrip(t *testing.T) {
	wire := []string{"ok", "http_error:404", "error:timeout", "skipped:no_meta"}
	for _, raw := range wire {
		s, err := ParseStatus(raw)
		if err != nil {
			t.Fatalf("ParseStatus(%q) failed: %v", raw, err)
		}
		if got := s.String(); got != raw {
			t.Errorf("round trip %q -> %q", raw, got)
		}
	}
}

func TestParseStatusInvalid(t *testing.T) {
	for _, raw := range []string{"http_error:abc", "bogus", "bogus:1"} {
		if _, err := ParseStatus(raw); err == nil {
			t.Errorf("ParseStatus(%q) should fail", raw)
		}
	}
}

func TestStatusJSON(t *testing.T) {
	data, err := json.Marshal(HTTPFailure(429))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"http_error:429"` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var s Status
	if err := json.Unmarshal([]byte(`"skipped:no_meta"`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s.Kind != KindSkipped || s.Reason != "no_meta" {
		t.Errorf("unexpected status: %+v", s)
	}
	if s.IsOK() {
		t.Error("skipped status must not be OK")
	}
}
