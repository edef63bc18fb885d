package calhub

import (
	"encoding/json"
	"testing"
)

func TestJSON(t *testing.T) {
	rawJSON := `{"id":"d4kdisifn76c73dkrju0","name":"bench-rig","captured_at":"2026-08-30T10:00:00Z","servos":[{"min":1000,"max":2000},{"min":1200,"max":1800}]}`

	var r record
	err := json.Unmarshal([]byte(rawJSON), &r)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if r.GetID() != "d4kdisifn76c73dkrju0" {
		t.Errorf("unexpected ID: %q", r.GetID())
	}
	if r.Name != "bench-rig" {
		t.Errorf("unexpected name: %q", r.Name)
	}
	if len(r.Servos) != 2 || r.Servos[1].Min != 1200 {
		t.Errorf("unexpected servos: %v", r.Servos)
	}
}
