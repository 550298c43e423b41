package core

import (
	"fmt"
	"time"
)

// ReservationDraft is the modal form payload for creating or editing a
// reservation. Dates are ISO date strings; date ordering and overlap are not
// checked client-side — the authority accepts what it accepts.
type ReservationDraft struct {
	GuestName  string `json:"guest_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	PropertyID int    `json:"property_id"`
}

// ReservationController owns reservation CRUD and the calendar projection.
// It holds no authoritative state: every mutation is confirm-gated and
// followed by a fresh List, never an in-place patch.
type ReservationController struct {
	gateway Gateway
	confirm Confirmer
	logger  Logger
}

func NewReservationController(gateway Gateway, confirm Confirmer, logger Logger) *ReservationController {
	return &ReservationController{gateway: gateway, confirm: confirm, logger: logger}
}

// List fetches the full reservation collection.
func (c *ReservationController) List() ([]Reservation, error) {
	var out []Reservation
	if err := c.gateway.Get("/reservations", &out); err != nil {
		return nil, fmt.Errorf("loading reservations: %w", err)
	}
	return out, nil
}

// Create submits a new reservation after confirmation.
func (c *ReservationController) Create(d ReservationDraft) error {
	ok, err := c.confirm.Confirm("Create this reservation?")
	if err != nil {
		return fmt.Errorf("requesting confirmation: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	if err := c.gateway.Post("/reservations", d, nil); err != nil {
		return fmt.Errorf("saving reservation: %w", err)
	}
	c.logger.Info("reservation created", "guest", d.GuestName)
	return nil
}

// Update replaces an existing reservation after confirmation.
func (c *ReservationController) Update(id int, d ReservationDraft) error {
	ok, err := c.confirm.Confirm("Update this reservation?")
	if err != nil {
		return fmt.Errorf("requesting confirmation: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	if err := c.gateway.Put(fmt.Sprintf("/reservations/%d", id), d, nil); err != nil {
		return fmt.Errorf("saving reservation: %w", err)
	}
	c.logger.Info("reservation updated", "id", id)
	return nil
}

// Delete removes a reservation after confirmation.
func (c *ReservationController) Delete(id int) error {
	ok, err := c.confirm.Confirm("Delete this reservation?")
	if err != nil {
		return fmt.Errorf("requesting confirmation: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	if err := c.gateway.Delete(fmt.Sprintf("/reservations/%d", id)); err != nil {
		return fmt.Errorf("deleting reservation: %w", err)
	}
	c.logger.Info("reservation deleted", "id", id)
	return nil
}

// ToCalendarEvents projects reservations into calendar events. Pure and
// recomputed on every render; events are never persisted. A date that fails
// to parse projects as the zero time, matching the tolerant display behavior
// of the calendar.
func ToCalendarEvents(reservations []Reservation) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(reservations))
	for _, r := range reservations {
		start, _ := time.Parse(DateLayout, r.StartDate)
		end, _ := time.Parse(DateLayout, r.EndDate)
		events = append(events, CalendarEvent{
			ID:          r.ID,
			Title:       r.GuestName,
			Start:       start,
			End:         end,
			Reservation: r,
		})
	}
	return events
}

// ReservationSession models one editing workflow over the calendar:
// Idle → FormOpen{Create|Edit} → Idle, with a separate DetailsOpen state for
// the read-only event view. On a successful submit the form resets and the
// collection is refetched; on failure the draft is kept so the operator can
// resubmit.
type ReservationSession struct {
	controller *ReservationController

	state    SessionState
	mode     FormMode
	editID   int
	selected *Reservation

	Draft ReservationDraft
}

func NewReservationSession(controller *ReservationController) *ReservationSession {
	return &ReservationSession{controller: controller, state: SessionIdle}
}

// State returns the current workflow state.
func (s *ReservationSession) State() SessionState { return s.state }

// Mode returns the open form's mode. Only meaningful while the form is open.
func (s *ReservationSession) Mode() FormMode { return s.mode }

// Selected returns the reservation shown in the details view, or nil.
func (s *ReservationSession) Selected() *Reservation { return s.selected }

// BeginCreate opens an empty create form.
func (s *ReservationSession) BeginCreate() {
	s.state = SessionFormOpen
	s.mode = ModeCreate
	s.editID = 0
	s.Draft = ReservationDraft{}
}

// Select opens the details view for a calendar event's reservation.
func (s *ReservationSession) Select(r Reservation) {
	r2 := r
	s.selected = &r2
	s.state = SessionDetailsOpen
}

// BeginEdit moves from the details view to an edit form pre-populated from
// the selected reservation. No-op when nothing is selected.
func (s *ReservationSession) BeginEdit() {
	if s.selected == nil {
		return
	}
	s.Draft = ReservationDraft{
		GuestName:  s.selected.GuestName,
		StartDate:  s.selected.StartDate,
		EndDate:    s.selected.EndDate,
		PropertyID: s.selected.PropertyID,
	}
	s.mode = ModeEdit
	s.editID = s.selected.ID
	s.state = SessionFormOpen
}

// Submit runs the confirm-then-save path for the open form. On success the
// session resets and the fresh listing is returned; on decline or failure
// the form stays open with its draft intact.
func (s *ReservationSession) Submit() ([]Reservation, error) {
	if s.state != SessionFormOpen {
		return nil, fmt.Errorf("no form open")
	}

	var err error
	if s.mode == ModeEdit {
		err = s.controller.Update(s.editID, s.Draft)
	} else {
		err = s.controller.Create(s.Draft)
	}
	if err != nil {
		return nil, err
	}

	s.Cancel()
	return s.controller.List()
}

// DeleteSelected runs the confirm-then-delete path for the reservation in
// the details view, then refetches. The details view closes only on success.
func (s *ReservationSession) DeleteSelected() ([]Reservation, error) {
	if s.selected == nil {
		return nil, fmt.Errorf("no reservation selected")
	}
	if err := s.controller.Delete(s.selected.ID); err != nil {
		return nil, err
	}
	s.Cancel()
	return s.controller.List()
}

// Cancel resets the session to idle and clears the draft.
func (s *ReservationSession) Cancel() {
	s.state = SessionIdle
	s.selected = nil
	s.editID = 0
	s.Draft = ReservationDraft{}
}
