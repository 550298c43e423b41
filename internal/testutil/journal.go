package testutil

import (
	"testing"

	"lelyo-go/internal/journal"
)

// NewTestJournal creates an in-memory journal with schema applied.
// The journal is automatically closed when the test completes.
func NewTestJournal(t *testing.T) *journal.Journal {
	t.Helper()

	j, err := journal.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}

	t.Cleanup(func() {
		j.Close()
	})

	return j
}
