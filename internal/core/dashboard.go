package core

import "fmt"

// DashboardAggregator reads the three dashboard feeds. Each fetch stands
// alone: a failure in one leaves the others usable.
type DashboardAggregator struct {
	gateway Gateway
	logger  Logger
}

func NewDashboardAggregator(gateway Gateway, logger Logger) *DashboardAggregator {
	return &DashboardAggregator{gateway: gateway, logger: logger}
}

// FetchSnapshot returns the headline counters.
func (a *DashboardAggregator) FetchSnapshot() (*DashboardSnapshot, error) {
	var out DashboardSnapshot
	if err := a.gateway.Get("/dashboard", &out); err != nil {
		return nil, fmt.Errorf("loading dashboard: %w", err)
	}
	return &out, nil
}

// FetchAlerts returns the overdue-task and next-day-reservation lists.
// Empty lists are returned as empty, never nil-collapsed away.
func (a *DashboardAggregator) FetchAlerts() (*AlertsSnapshot, error) {
	var out AlertsSnapshot
	if err := a.gateway.Get("/dashboard/alerts", &out); err != nil {
		return nil, fmt.Errorf("loading alerts: %w", err)
	}
	if out.LateTasks == nil {
		out.LateTasks = []LateTask{}
	}
	if out.TomorrowReservations == nil {
		out.TomorrowReservations = []Reservation{}
	}
	return &out, nil
}

// FetchWeekSeries returns the reservation counts for the current week.
func (a *DashboardAggregator) FetchWeekSeries() ([]WeekPoint, error) {
	var out []WeekPoint
	if err := a.gateway.Get("/dashboard/reservations_week", &out); err != nil {
		return nil, fmt.Errorf("loading week series: %w", err)
	}
	return out, nil
}

// DashboardView is the assembled dashboard page. Sections that failed to
// load are nil, with the failure kept alongside so the page can report it
// without blanking the rest.
type DashboardView struct {
	Snapshot *DashboardSnapshot
	Alerts   *AlertsSnapshot
	Week     []WeekPoint

	SnapshotErr error
	AlertsErr   error
	WeekErr     error
}

// FetchAll loads all three feeds with independent failure boundaries.
func (a *DashboardAggregator) FetchAll() DashboardView {
	var v DashboardView

	v.Snapshot, v.SnapshotErr = a.FetchSnapshot()
	if v.SnapshotErr != nil {
		a.logger.Warn("dashboard snapshot unavailable", "error", v.SnapshotErr)
	}

	v.Alerts, v.AlertsErr = a.FetchAlerts()
	if v.AlertsErr != nil {
		a.logger.Warn("dashboard alerts unavailable", "error", v.AlertsErr)
	}

	v.Week, v.WeekErr = a.FetchWeekSeries()
	if v.WeekErr != nil {
		a.logger.Warn("dashboard week series unavailable", "error", v.WeekErr)
	}

	return v
}
