package journal_test

import (
	"path/filepath"
	"testing"

	"lelyo-go/internal/config"
	"lelyo-go/internal/journal"
)

func TestJournal_BeginFinishRecent(t *testing.T) {
	j, err := journal.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer j.Close()

	first, err := j.Begin("reservation add", `{"guest_name":"Dupont"}`)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	second, err := j.Begin("task toggle", `{"id":3}`)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	if err := j.Finish(first, "success"); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if err := j.Finish(second, "error"); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Operation != "task toggle" {
		t.Errorf("entries[0].Operation = %q, want %q", entries[0].Operation, "task toggle")
	}
	if entries[0].Status != "error" {
		t.Errorf("entries[0].Status = %q, want %q", entries[0].Status, "error")
	}
	if entries[1].Operation != "reservation add" || entries[1].Status != "success" {
		t.Errorf("entries[1] = %+v, want the first operation with success", entries[1])
	}
	if !entries[0].FinishedAt.Valid {
		t.Error("entries[0].FinishedAt not set after Finish")
	}
}

func TestJournal_RecentLimit(t *testing.T) {
	j, err := journal.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer j.Close()

	for i := 0; i < 5; i++ {
		if _, err := j.Begin("property list", "{}"); err != nil {
			t.Fatalf("Begin() error = %v", err)
		}
	}

	entries, err := j.Recent(3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("len(entries) = %d, want 3", len(entries))
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		j, err := journal.NewFromConfig(config.JournalConfig{Type: "memory"})
		if err != nil {
			t.Fatalf("NewFromConfig() error = %v", err)
		}
		defer j.Close()
		if _, err := j.Begin("login", "{}"); err != nil {
			t.Errorf("Begin() error = %v", err)
		}
	})

	t.Run("sqlite creates the data directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "db")
		j, err := journal.NewFromConfig(config.JournalConfig{Type: "sqlite", DataDir: dir})
		if err != nil {
			t.Fatalf("NewFromConfig() error = %v", err)
		}
		defer j.Close()
		if _, err := j.Begin("login", "{}"); err != nil {
			t.Errorf("Begin() error = %v", err)
		}
	})

	t.Run("sqlite requires a data dir", func(t *testing.T) {
		if _, err := journal.NewFromConfig(config.JournalConfig{Type: "sqlite"}); err == nil {
			t.Error("expected error for missing data_dir")
		}
	})

	t.Run("unknown type fails", func(t *testing.T) {
		if _, err := journal.NewFromConfig(config.JournalConfig{Type: "postgres"}); err == nil {
			t.Error("expected error for unknown type")
		}
	})
}
