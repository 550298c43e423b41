package core

import "fmt"

// TaskDraft is the modal form payload for creating or editing a task.
// Status is absent on purpose: creates force it to pending, and edits never
// touch it — status only moves through Toggle.
type TaskDraft struct {
	Title       string
	Description string
	Date        string
	PropertyID  int
}

func (d TaskDraft) payload() map[string]any {
	return map[string]any{
		"title":       d.Title,
		"description": d.Description,
		"date":        d.Date,
		"status":      TaskStatusPending,
		"property_id": d.PropertyID,
	}
}

// TaskController owns task CRUD, property-scoped listing, and the status
// toggle workflow. Same confirm-before-mutate and refetch-after-mutate
// discipline as reservations.
type TaskController struct {
	gateway Gateway
	confirm Confirmer
	logger  Logger
}

func NewTaskController(gateway Gateway, confirm Confirmer, logger Logger) *TaskController {
	return &TaskController{gateway: gateway, confirm: confirm, logger: logger}
}

// List fetches tasks, hitting the property-scoped endpoint when a filter is
// set and the full collection otherwise.
func (c *TaskController) List(propertyFilter *int) ([]Task, error) {
	path := "/tasks"
	if propertyFilter != nil {
		path = fmt.Sprintf("/tasks/by_property/%d", *propertyFilter)
	}
	var out []Task
	if err := c.gateway.Get(path, &out); err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return out, nil
}

// Create submits a new task after confirmation, with status forced to pending.
func (c *TaskController) Create(d TaskDraft) error {
	ok, err := c.confirm.Confirm("Create this task?")
	if err != nil {
		return fmt.Errorf("requesting confirmation: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	if err := c.gateway.Post("/tasks", d.payload(), nil); err != nil {
		return fmt.Errorf("saving task: %w", err)
	}
	c.logger.Info("task created", "title", d.Title)
	return nil
}

// Update replaces a task's content after confirmation. The edit form is
// pre-populated from the already-listed row, not from a refetch.
func (c *TaskController) Update(id int, d TaskDraft) error {
	ok, err := c.confirm.Confirm("Update this task?")
	if err != nil {
		return fmt.Errorf("requesting confirmation: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	if err := c.gateway.Put(fmt.Sprintf("/tasks/%d", id), d.payload(), nil); err != nil {
		return fmt.Errorf("saving task: %w", err)
	}
	c.logger.Info("task updated", "id", id)
	return nil
}

// Delete removes a task after confirmation.
func (c *TaskController) Delete(id int) error {
	ok, err := c.confirm.Confirm("Delete this task?")
	if err != nil {
		return fmt.Errorf("requesting confirmation: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	if err := c.gateway.Delete(fmt.Sprintf("/tasks/%d", id)); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	c.logger.Info("task deleted", "id", id)
	return nil
}

// Toggle flips a task between pending and done. It is a dedicated operation
// carrying no payload beyond the id, kept separate from content edits so
// status transitions stay auditable.
func (c *TaskController) Toggle(id int) error {
	if err := c.gateway.Patch(fmt.Sprintf("/tasks/%d/toggle", id), map[string]any{}, nil); err != nil {
		return fmt.Errorf("toggling task: %w", err)
	}
	c.logger.Info("task toggled", "id", id)
	return nil
}

// TaskSession is the modal form workflow for tasks: Idle → FormOpen → Idle,
// resetting on success and keeping the draft on failure.
type TaskSession struct {
	controller *TaskController

	state  SessionState
	mode   FormMode
	editID int

	// Filter scopes every refetch issued by this session.
	Filter *int
	Draft  TaskDraft
}

func NewTaskSession(controller *TaskController) *TaskSession {
	return &TaskSession{controller: controller, state: SessionIdle}
}

func (s *TaskSession) State() SessionState { return s.state }
func (s *TaskSession) Mode() FormMode      { return s.mode }

// BeginCreate opens an empty create form.
func (s *TaskSession) BeginCreate() {
	s.state = SessionFormOpen
	s.mode = ModeCreate
	s.editID = 0
	s.Draft = TaskDraft{}
}

// BeginEdit opens an edit form pre-populated from the given row. The row's
// cached fields are trusted; no refetch happens here.
func (s *TaskSession) BeginEdit(t Task) {
	s.Draft = TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		PropertyID:  t.PropertyID,
	}
	s.mode = ModeEdit
	s.editID = t.ID
	s.state = SessionFormOpen
}

// Submit runs confirm-then-save for the open form and refetches on success.
func (s *TaskSession) Submit() ([]Task, error) {
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
	return s.controller.List(s.Filter)
}

// Cancel resets the session to idle and clears the draft. The property
// filter survives — it belongs to the page, not the form.
func (s *TaskSession) Cancel() {
	s.state = SessionIdle
	s.editID = 0
	s.Draft = TaskDraft{}
}
