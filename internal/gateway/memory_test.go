package gateway_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lelyo-go/internal/config"
	"lelyo-go/internal/core"
	"lelyo-go/internal/gateway"
	"lelyo-go/internal/testutil"
)

func TestMemoryGateway_Login(t *testing.T) {
	g := gateway.NewMemoryGateway(testutil.FixedClock())

	t.Run("valid credentials return a token", func(t *testing.T) {
		var out map[string]string
		err := g.Post("/login", map[string]string{"email": "admin@host.com", "password": "admin"}, &out)
		if err != nil {
			t.Fatalf("Post(/login) error = %v", err)
		}
		if out["access_token"] == "" {
			t.Error("access_token is empty")
		}
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		err := g.Post("/login", map[string]string{"email": "admin@host.com", "password": "wrong"}, nil)
		var rerr *core.RequestError
		if !errors.As(err, &rerr) {
			t.Fatalf("error = %v, want *RequestError", err)
		}
		if rerr.Status != http.StatusUnauthorized {
			t.Errorf("Status = %d, want 401", rerr.Status)
		}
	})
}

func TestMemoryGateway_Routes(t *testing.T) {
	t.Run("unknown route is 404", func(t *testing.T) {
		g := gateway.NewMemoryGateway(testutil.FixedClock())
		err := g.Get("/nope", nil)
		var rerr *core.RequestError
		if !errors.As(err, &rerr) || rerr.Status != http.StatusNotFound {
			t.Errorf("error = %v, want 404 RequestError", err)
		}
	})

	t.Run("listings come back ordered by id", func(t *testing.T) {
		g := gateway.NewMemoryGateway(testutil.FixedClock())
		g.SeedProperty(core.Property{Name: "Villa Azur"})
		g.SeedProperty(core.Property{Name: "Chalet Blanc"})

		var props []core.Property
		if err := g.Get("/properties", &props); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if len(props) != 2 || props[0].ID >= props[1].ID {
			t.Errorf("props = %+v, want ascending ids", props)
		}
	})

	t.Run("delete of an unknown id is 404", func(t *testing.T) {
		g := gateway.NewMemoryGateway(testutil.FixedClock())
		err := g.Delete("/reservations/42")
		var rerr *core.RequestError
		if !errors.As(err, &rerr) || rerr.Status != http.StatusNotFound {
			t.Errorf("error = %v, want 404 RequestError", err)
		}
	})

	t.Run("put on a task preserves its status", func(t *testing.T) {
		g := gateway.NewMemoryGateway(testutil.FixedClock())
		seeded := g.SeedTask(core.Task{Title: "ménage", Status: core.TaskStatusDone, Date: "2024-06-10"})

		var updated core.Task
		body := map[string]any{"title": "grand ménage", "date": "2024-06-11", "status": core.TaskStatusPending}
		if err := g.Put(fmt.Sprintf("/tasks/%d", seeded.ID), body, &updated); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if updated.Title != "grand ménage" {
			t.Errorf("Title = %q, want the edited title", updated.Title)
		}
		if updated.Status != core.TaskStatusDone {
			t.Errorf("Status = %q, want %q preserved", updated.Status, core.TaskStatusDone)
		}
	})

	t.Run("post on tasks forces pending", func(t *testing.T) {
		g := gateway.NewMemoryGateway(testutil.FixedClock())
		var created core.Task
		body := map[string]any{"title": "ménage", "status": core.TaskStatusDone}
		if err := g.Post("/tasks", body, &created); err != nil {
			t.Fatalf("Post() error = %v", err)
		}
		if created.Status != core.TaskStatusPending {
			t.Errorf("Status = %q, want %q", created.Status, core.TaskStatusPending)
		}
	})
}

func TestMemoryGateway_Stats(t *testing.T) {
	// Fixed clock: today is 2024-06-15.
	g := gateway.NewMemoryGateway(testutil.FixedClock())
	// Three covered days inside the 30-day window.
	g.SeedReservation(core.Reservation{GuestName: "Dupont", StartDate: "2024-06-10", EndDate: "2024-06-12", PropertyID: 1})
	g.SeedTask(core.Task{Title: "ménage", Date: "2024-06-10", PropertyID: 1})

	var s core.StatsSnapshot
	if err := g.Get("/stats", &s); err != nil {
		t.Fatalf("Get(/stats) error = %v", err)
	}
	if s.Reservations != 1 {
		t.Errorf("Reservations = %d, want 1", s.Reservations)
	}
	if s.TasksTotal != 1 || s.TasksPending != 1 {
		t.Errorf("tasks = total %d pending %d, want 1/1", s.TasksTotal, s.TasksPending)
	}
	// 3 of 30 days covered.
	if s.OccupancyRate != "10%" {
		t.Errorf("OccupancyRate = %q, want 10%%", s.OccupancyRate)
	}

	t.Run("scope excludes other properties", func(t *testing.T) {
		var scoped core.StatsSnapshot
		if err := g.Get("/stats?property_id=2", &scoped); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if scoped.Reservations != 0 || scoped.TasksTotal != 0 {
			t.Errorf("scoped = %+v, want empty counts", scoped)
		}
		if scoped.OccupancyRate != "0%" {
			t.Errorf("OccupancyRate = %q, want 0%%", scoped.OccupancyRate)
		}
	})
}

func TestMemoryGateway_WeekSeries(t *testing.T) {
	g := gateway.NewMemoryGateway(testutil.FixedClock())
	// Stay covering 2024-06-14 and 2024-06-15.
	g.SeedReservation(core.Reservation{GuestName: "Dupont", StartDate: "2024-06-14", EndDate: "2024-06-15", PropertyID: 1})

	var points []core.WeekPoint
	if err := g.Get("/dashboard/reservations_week", &points); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("len(points) = %d, want 7", len(points))
	}
	if points[6].Date != "2024-06-15" {
		t.Errorf("last date = %q, want today", points[6].Date)
	}
	if points[5].Count != 1 || points[6].Count != 1 {
		t.Errorf("counts = %d/%d on the covered days, want 1/1", points[5].Count, points[6].Count)
	}
	if points[0].Count != 0 {
		t.Errorf("points[0].Count = %d, want 0 before the stay", points[0].Count)
	}
}

func TestMemoryGateway_Alerts(t *testing.T) {
	g := gateway.NewMemoryGateway(testutil.FixedClock())
	g.SeedTask(core.Task{Title: "overdue", Date: "2024-06-14", PropertyID: 1})
	g.SeedTask(core.Task{Title: "done late", Date: "2024-06-14", Status: core.TaskStatusDone, PropertyID: 1})
	g.SeedReservation(core.Reservation{GuestName: "Dupont", StartDate: "2024-06-16", EndDate: "2024-06-18"})

	var a core.AlertsSnapshot
	if err := g.Get("/dashboard/alerts", &a); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(a.LateTasks) != 1 || a.LateTasks[0].Title != "overdue" {
		t.Errorf("LateTasks = %+v, want only the pending overdue task", a.LateTasks)
	}
	if len(a.TomorrowReservations) != 1 || a.TomorrowReservations[0].GuestName != "Dupont" {
		t.Errorf("TomorrowReservations = %+v, want tomorrow's arrival", a.TomorrowReservations)
	}
}

func TestNewGatewayFromConfig(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		cfg := config.GatewayConfig{Type: "memory"}
		g, err := gateway.NewGatewayFromConfig(cfg, "", testutil.FixedClock())
		if err != nil {
			t.Fatalf("NewGatewayFromConfig() error = %v", err)
		}
		if _, ok := g.(*gateway.MemoryGateway); !ok {
			t.Errorf("gateway type = %T, want *MemoryGateway", g)
		}
	})

	t.Run("http requires a base url", func(t *testing.T) {
		cfg := config.GatewayConfig{Type: "http"}
		if _, err := gateway.NewGatewayFromConfig(cfg, "", testutil.FixedClock()); err == nil {
			t.Error("expected error for missing base_url")
		}
	})

	t.Run("unknown type fails", func(t *testing.T) {
		cfg := config.GatewayConfig{Type: "carrier-pigeon"}
		if _, err := gateway.NewGatewayFromConfig(cfg, "", testutil.FixedClock()); err == nil {
			t.Error("expected error for unknown type")
		}
	})
}
