package core

import "time"

// Task status values as the remote authority stores them.
const (
	TaskStatusPending = "à faire"
	TaskStatusDone    = "terminée"
)

// DateLayout is the wire format for all dates. The client performs no
// timezone normalization; dates are exchanged and compared as calendar days.
const DateLayout = "2006-01-02"

// Property is a managed rental unit. Identity is server-assigned and
// immutable; there is no edit flow, only create and delete.
type Property struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Reservation is a guest's booked stay at a property over a date range.
// StartDate and EndDate are ISO date strings as received from the authority.
type Reservation struct {
	ID         int    `json:"id"`
	GuestName  string `json:"guest_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	PropertyID int    `json:"property_id"`
}

// Task is a scheduled chore tied to a property and a date.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	PropertyID  int    `json:"property_id"`
}

// Done reports whether the task has been completed.
func (t Task) Done() bool { return t.Status == TaskStatusDone }

// CalendarEvent is a derived, non-persisted projection of a Reservation for
// timeline display. It carries a typed reference back to its origin rather
// than an opaque payload.
type CalendarEvent struct {
	ID          int
	Title       string
	Start       time.Time
	End         time.Time
	Reservation Reservation
}

// DashboardSnapshot holds the headline counters computed by the authority.
type DashboardSnapshot struct {
	TotalProperties   int `json:"total_properties"`
	TodayReservations int `json:"today_reservations"`
	TodayTasks        int `json:"today_tasks"`
}

// LateTask is an overdue pending task as reported in the alerts feed.
type LateTask struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	PropertyID int    `json:"property_id"`
}

// AlertsSnapshot holds the two dashboard alert lists.
type AlertsSnapshot struct {
	LateTasks            []LateTask    `json:"late_tasks"`
	TomorrowReservations []Reservation `json:"tomorrow_reservations"`
}

// StatsSnapshot is the summary block served by /stats, optionally scoped to
// one property. OccupancyRate is a pre-formatted string and is never parsed
// client-side.
type StatsSnapshot struct {
	Reservations  int    `json:"reservations"`
	TasksTotal    int    `json:"taches_total"`
	TasksDone     int    `json:"taches_terminees"`
	TasksPending  int    `json:"taches_a_faire"`
	OccupancyRate string `json:"occupation_taux"`
}

// WeekPoint is one day of a reservation time series, in chronological order.
type WeekPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
