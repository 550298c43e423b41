package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"lelyo-go/internal/core"
)

// MemoryGateway is an in-process stand-in for the remote authority. It
// implements the full route table over in-memory collections, recomputing
// the derived snapshots (stats, dashboard, alerts, series) on every read the
// way the real backend does. Useful for tests and for running the CLI
// without a server. Safe for concurrent use.
type MemoryGateway struct {
	mu    sync.Mutex
	clock core.Clock
	calls []string

	properties   map[int]core.Property
	reservations map[int]core.Reservation
	tasks        map[int]core.Task
	nextID       int

	email    string
	password string
	token    string
}

var _ core.Gateway = (*MemoryGateway)(nil)

// NewMemoryGateway creates an empty in-memory authority. The clock anchors
// "today" for the derived views.
func NewMemoryGateway(clock core.Clock) *MemoryGateway {
	return &MemoryGateway{
		clock:        clock,
		properties:   make(map[int]core.Property),
		reservations: make(map[int]core.Reservation),
		tasks:        make(map[int]core.Task),
		nextID:       1,
		email:        "admin@host.com",
		password:     "admin",
		token:        "memory-token",
	}
}

// Calls returns every request issued so far as "METHOD path" strings, in order.
func (g *MemoryGateway) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

// SeedProperty inserts a property directly, assigning an id.
func (g *MemoryGateway) SeedProperty(p core.Property) core.Property {
	g.mu.Lock()
	defer g.mu.Unlock()
	p.ID = g.nextID
	g.nextID++
	g.properties[p.ID] = p
	return p
}

// SeedReservation inserts a reservation directly, assigning an id.
func (g *MemoryGateway) SeedReservation(r core.Reservation) core.Reservation {
	g.mu.Lock()
	defer g.mu.Unlock()
	r.ID = g.nextID
	g.nextID++
	g.reservations[r.ID] = r
	return r
}

// SeedTask inserts a task directly, assigning an id. An empty status
// defaults to pending.
func (g *MemoryGateway) SeedTask(t core.Task) core.Task {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t.Status == "" {
		t.Status = core.TaskStatusPending
	}
	t.ID = g.nextID
	g.nextID++
	g.tasks[t.ID] = t
	return t
}

func (g *MemoryGateway) Get(path string, out any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record(http.MethodGet, path)

	u, err := url.Parse(path)
	if err != nil {
		return g.fail(http.MethodGet, path, http.StatusBadRequest)
	}
	scope := parseScope(u.Query())

	switch {
	case u.Path == "/properties":
		return respond(out, g.listProperties())
	case u.Path == "/reservations":
		return respond(out, g.listReservations(nil))
	case u.Path == "/tasks":
		return respond(out, g.listTasks(nil))
	case strings.HasPrefix(u.Path, "/tasks/by_property/"):
		id, ok := trailingID(u.Path, "/tasks/by_property/")
		if !ok {
			return g.fail(http.MethodGet, path, http.StatusNotFound)
		}
		return respond(out, g.listTasks(&id))
	case u.Path == "/stats":
		return respond(out, g.stats(scope))
	case u.Path == "/stats/reservations_over_time":
		return respond(out, g.series(scope, 7))
	case u.Path == "/dashboard":
		return respond(out, g.dashboard())
	case u.Path == "/dashboard/alerts":
		return respond(out, g.alerts())
	case u.Path == "/dashboard/reservations_week":
		return respond(out, g.series(nil, 7))
	}
	return g.fail(http.MethodGet, path, http.StatusNotFound)
}

func (g *MemoryGateway) Post(path string, body any, out any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record(http.MethodPost, path)

	switch path {
	case "/properties":
		var p core.Property
		if err := rebind(body, &p); err != nil {
			return g.fail(http.MethodPost, path, http.StatusUnprocessableEntity)
		}
		p.ID = g.nextID
		g.nextID++
		g.properties[p.ID] = p
		return respond(out, p)

	case "/reservations":
		var r core.Reservation
		if err := rebind(body, &r); err != nil {
			return g.fail(http.MethodPost, path, http.StatusUnprocessableEntity)
		}
		r.ID = g.nextID
		g.nextID++
		g.reservations[r.ID] = r
		return respond(out, r)

	case "/tasks":
		var t core.Task
		if err := rebind(body, &t); err != nil {
			return g.fail(http.MethodPost, path, http.StatusUnprocessableEntity)
		}
		// The authority ignores any client-supplied status on create.
		t.Status = core.TaskStatusPending
		t.ID = g.nextID
		g.nextID++
		g.tasks[t.ID] = t
		return respond(out, t)

	case "/login":
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := rebind(body, &creds); err != nil {
			return g.fail(http.MethodPost, path, http.StatusUnprocessableEntity)
		}
		if creds.Email != g.email || creds.Password != g.password {
			return g.fail(http.MethodPost, path, http.StatusUnauthorized)
		}
		return respond(out, map[string]string{"access_token": g.token})
	}
	return g.fail(http.MethodPost, path, http.StatusNotFound)
}

func (g *MemoryGateway) Put(path string, body any, out any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record(http.MethodPut, path)

	if id, ok := trailingID(path, "/reservations/"); ok {
		existing, found := g.reservations[id]
		if !found {
			return g.fail(http.MethodPut, path, http.StatusNotFound)
		}
		var r core.Reservation
		if err := rebind(body, &r); err != nil {
			return g.fail(http.MethodPut, path, http.StatusUnprocessableEntity)
		}
		r.ID = existing.ID
		g.reservations[id] = r
		return respond(out, r)
	}

	if id, ok := trailingID(path, "/tasks/"); ok {
		existing, found := g.tasks[id]
		if !found {
			return g.fail(http.MethodPut, path, http.StatusNotFound)
		}
		var t core.Task
		if err := rebind(body, &t); err != nil {
			return g.fail(http.MethodPut, path, http.StatusUnprocessableEntity)
		}
		t.ID = existing.ID
		// Content edits never move status.
		t.Status = existing.Status
		g.tasks[id] = t
		return respond(out, t)
	}
	return g.fail(http.MethodPut, path, http.StatusNotFound)
}

func (g *MemoryGateway) Patch(path string, body any, out any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record(http.MethodPatch, path)

	if strings.HasSuffix(path, "/toggle") {
		if id, ok := trailingID(strings.TrimSuffix(path, "/toggle"), "/tasks/"); ok {
			t, found := g.tasks[id]
			if !found {
				return g.fail(http.MethodPatch, path, http.StatusNotFound)
			}
			if t.Status == core.TaskStatusDone {
				t.Status = core.TaskStatusPending
			} else {
				t.Status = core.TaskStatusDone
			}
			g.tasks[id] = t
			return respond(out, t)
		}
	}
	return g.fail(http.MethodPatch, path, http.StatusNotFound)
}

func (g *MemoryGateway) Delete(path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record(http.MethodDelete, path)

	if id, ok := trailingID(path, "/properties/"); ok {
		if _, found := g.properties[id]; !found {
			return g.fail(http.MethodDelete, path, http.StatusNotFound)
		}
		delete(g.properties, id)
		return nil
	}
	if id, ok := trailingID(path, "/reservations/"); ok {
		if _, found := g.reservations[id]; !found {
			return g.fail(http.MethodDelete, path, http.StatusNotFound)
		}
		delete(g.reservations, id)
		return nil
	}
	if id, ok := trailingID(path, "/tasks/"); ok {
		if _, found := g.tasks[id]; !found {
			return g.fail(http.MethodDelete, path, http.StatusNotFound)
		}
		delete(g.tasks, id)
		return nil
	}
	return g.fail(http.MethodDelete, path, http.StatusNotFound)
}

func (g *MemoryGateway) Upload(path string, filename string, content io.Reader) (*core.UploadResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record(http.MethodPost, path)

	if path != "/upload" {
		return nil, g.fail(http.MethodPost, path, http.StatusNotFound)
	}
	if _, err := io.Copy(io.Discard, content); err != nil {
		return nil, &core.RequestError{Method: http.MethodPost, Path: path, Err: err}
	}
	return &core.UploadResult{URL: "/uploads/" + filename}, nil
}

// Derived views. Dates are compared as ISO strings, which order correctly.

func (g *MemoryGateway) stats(scope *int) core.StatsSnapshot {
	s := core.StatsSnapshot{}
	for _, r := range g.reservations {
		if scope == nil || r.PropertyID == *scope {
			s.Reservations++
		}
	}
	for _, t := range g.tasks {
		if scope != nil && t.PropertyID != *scope {
			continue
		}
		s.TasksTotal++
		if t.Done() {
			s.TasksDone++
		} else {
			s.TasksPending++
		}
	}

	// Occupancy: share of the last 30 days covered by at least one
	// in-scope reservation, pre-formatted as a percentage string.
	today := g.clock.Now()
	covered := 0
	for i := 29; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(core.DateLayout)
		if g.coveredOn(day, scope) {
			covered++
		}
	}
	s.OccupancyRate = fmt.Sprintf("%d%%", covered*100/30)
	return s
}

func (g *MemoryGateway) series(scope *int, days int) []core.WeekPoint {
	today := g.clock.Now()
	points := make([]core.WeekPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(core.DateLayout)
		count := 0
		for _, r := range g.reservations {
			if scope != nil && r.PropertyID != *scope {
				continue
			}
			if r.StartDate <= day && day <= r.EndDate {
				count++
			}
		}
		points = append(points, core.WeekPoint{Date: day, Count: count})
	}
	return points
}

func (g *MemoryGateway) dashboard() core.DashboardSnapshot {
	today := g.clock.Now().Format(core.DateLayout)
	d := core.DashboardSnapshot{TotalProperties: len(g.properties)}
	for _, r := range g.reservations {
		if r.StartDate <= today && today <= r.EndDate {
			d.TodayReservations++
		}
	}
	for _, t := range g.tasks {
		if t.Date == today {
			d.TodayTasks++
		}
	}
	return d
}

func (g *MemoryGateway) alerts() core.AlertsSnapshot {
	now := g.clock.Now()
	today := now.Format(core.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(core.DateLayout)

	a := core.AlertsSnapshot{LateTasks: []core.LateTask{}, TomorrowReservations: []core.Reservation{}}
	for _, t := range g.tasks {
		if !t.Done() && t.Date != "" && t.Date < today {
			a.LateTasks = append(a.LateTasks, core.LateTask{
				ID: t.ID, Title: t.Title, Date: t.Date, PropertyID: t.PropertyID,
			})
		}
	}
	for _, r := range g.reservations {
		if r.StartDate == tomorrow {
			a.TomorrowReservations = append(a.TomorrowReservations, r)
		}
	}
	sort.Slice(a.LateTasks, func(i, j int) bool { return a.LateTasks[i].ID < a.LateTasks[j].ID })
	sort.Slice(a.TomorrowReservations, func(i, j int) bool {
		return a.TomorrowReservations[i].ID < a.TomorrowReservations[j].ID
	})
	return a
}

func (g *MemoryGateway) coveredOn(day string, scope *int) bool {
	for _, r := range g.reservations {
		if scope != nil && r.PropertyID != *scope {
			continue
		}
		if r.StartDate <= day && day <= r.EndDate {
			return true
		}
	}
	return false
}

func (g *MemoryGateway) listProperties() []core.Property {
	out := make([]core.Property, 0, len(g.properties))
	for _, p := range g.properties {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *MemoryGateway) listReservations(scope *int) []core.Reservation {
	out := make([]core.Reservation, 0, len(g.reservations))
	for _, r := range g.reservations {
		if scope == nil || r.PropertyID == *scope {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *MemoryGateway) listTasks(scope *int) []core.Task {
	out := make([]core.Task, 0, len(g.tasks))
	for _, t := range g.tasks {
		if scope == nil || t.PropertyID == *scope {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *MemoryGateway) record(method, path string) {
	g.calls = append(g.calls, method+" "+path)
}

func (g *MemoryGateway) fail(method, path string, status int) error {
	return &core.RequestError{Method: method, Path: path, Status: status}
}

// respond serializes v through JSON into out, mirroring a wire round-trip.
func respond(out any, v any) error {
	if out == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// rebind decodes an arbitrary request body (struct or map) into dst the same
// way the real authority would parse the JSON payload.
func rebind(body any, dst any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func trailingID(path, prefix string) (int, bool) {
	if !strings.HasPrefix(path, prefix) {
		return 0, false
	}
	rest := strings.TrimPrefix(path, prefix)
	if strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

func parseScope(q url.Values) *int {
	raw := q.Get("property_id")
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &id
}
