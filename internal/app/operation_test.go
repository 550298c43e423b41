package app

import "testing"

func TestNewOperation(t *testing.T) {
	op := NewOperation("reservation add", `{"guest_name":"Dupont"}`)

	if op.Name != "reservation add" {
		t.Errorf("Name = %q, want %q", op.Name, "reservation add")
	}
	if op.Parameters != `{"guest_name":"Dupont"}` {
		t.Errorf("Parameters = %q, want the given payload", op.Parameters)
	}
	if op.Status != "success" {
		t.Errorf("Status = %q, want %q", op.Status, "success")
	}
	if op.Persisted() {
		t.Error("Persisted() = true for a fresh operation, want false")
	}
}

func TestOperationPersisted(t *testing.T) {
	op := NewOperation("task toggle", "{}")
	op.ID = 42
	if !op.Persisted() {
		t.Error("Persisted() = false after an id is assigned, want true")
	}
}
