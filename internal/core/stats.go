package core

import "fmt"

// StatsAggregator reads the summary counters and the reservation time series,
// optionally scoped to one property. Nothing is cached across selections;
// switching scope discards the previous snapshot.
type StatsAggregator struct {
	gateway Gateway
	logger  Logger
}

func NewStatsAggregator(gateway Gateway, logger Logger) *StatsAggregator {
	return &StatsAggregator{gateway: gateway, logger: logger}
}

// scopedPath appends the property_id query parameter when a scope is set.
// "All properties" is encoded as the absence of the parameter.
func scopedPath(base string, propertyID *int) string {
	if propertyID == nil {
		return base
	}
	return fmt.Sprintf("%s?property_id=%d", base, *propertyID)
}

// FetchStats returns the stats snapshot for the given scope.
func (a *StatsAggregator) FetchStats(propertyID *int) (*StatsSnapshot, error) {
	var out StatsSnapshot
	if err := a.gateway.Get(scopedPath("/stats", propertyID), &out); err != nil {
		return nil, fmt.Errorf("loading stats: %w", err)
	}
	return &out, nil
}

// FetchEvolution returns the reservations-over-time series for the scope,
// one point per day in chronological order.
func (a *StatsAggregator) FetchEvolution(propertyID *int) ([]WeekPoint, error) {
	var out []WeekPoint
	if err := a.gateway.Get(scopedPath("/stats/reservations_over_time", propertyID), &out); err != nil {
		return nil, fmt.Errorf("loading reservation evolution: %w", err)
	}
	return out, nil
}

// PieSlice is one wedge of the pending/completed task breakdown.
type PieSlice struct {
	Name  string
	Value int
}

// TaskBreakdown derives the two-slice pie data from a snapshot.
func TaskBreakdown(s StatsSnapshot) []PieSlice {
	return []PieSlice{
		{Name: "pending", Value: s.TasksPending},
		{Name: "completed", Value: s.TasksDone},
	}
}
