package app

import (
	"fmt"
	"os"

	"lelyo-go/internal/config"
	"lelyo-go/internal/core"
	"lelyo-go/internal/credentials"
	"lelyo-go/internal/gateway"
	"lelyo-go/internal/journal"

	"github.com/google/uuid"
)

// App is the application layer between the CLI and the domain services.
// It constructs all dependencies from config and manages the journal and
// log file lifecycle on Close.
type App struct {
	cfg     *config.Config
	gw      core.Gateway
	creds   credentials.Store
	journal *journal.Journal
	op      *Operation
	logFile *os.File

	Properties   *core.PropertyRegistry
	Reservations *core.ReservationController
	Tasks        *core.TaskController
	Stats        *core.StatsAggregator
	Dashboard    *core.DashboardAggregator
}

// NewApp creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "CreateTask").
// confirm carries the operator's confirmation capability (terminal prompt,
// or a preset acceptance under --yes). The caller must call Close when done.
func NewApp(cfg *config.Config, operation string, confirm core.Confirmer) (*App, error) {
	creds, err := credentials.NewStoreFromConfig(cfg.Credentials)
	if err != nil {
		return nil, fmt.Errorf("creating credentials store: %w", err)
	}

	token, err := creds.Load()
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}

	gw, err := gateway.NewGatewayFromConfig(cfg.Gateway, token, core.RealClock{})
	if err != nil {
		return nil, fmt.Errorf("creating gateway: %w", err)
	}

	jnl, err := journal.NewFromConfig(cfg.Journal)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	opID := uuid.New().String()[:8]
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		jnl.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	log := &slogAdapter{l: logger}

	return &App{
		cfg:          cfg,
		gw:           gw,
		creds:        creds,
		journal:      jnl,
		op:           NewOperation(operation, ""),
		logFile:      logFile,
		Properties:   core.NewPropertyRegistry(gw, confirm, log),
		Reservations: core.NewReservationController(gw, confirm, log),
		Tasks:        core.NewTaskController(gw, confirm, log),
		Stats:        core.NewStatsAggregator(gw, log),
		Dashboard:    core.NewDashboardAggregator(gw, log),
	}, nil
}

// Gateway exposes the wired gateway for flows that sit outside the five
// services (login).
func (a *App) Gateway() core.Gateway { return a.gw }

// BeginMutation records the operation in the journal. Read-only commands
// never call this, so they leave no journal rows.
func (a *App) BeginMutation(parameters string) error {
	if a.op.Persisted() {
		return nil // already recorded
	}
	id, err := a.journal.Begin(a.op.Name, parameters)
	if err != nil {
		return fmt.Errorf("recording operation: %w", err)
	}
	a.op.ID = id
	a.op.Parameters = parameters
	return nil
}

// MarkFailed flags the recorded operation as failed. Harmless when the
// operation was never persisted.
func (a *App) MarkFailed() {
	a.op.Status = "error"
}

// MarkDeclined flags the recorded operation as declined at the confirmation
// gate. No gateway call was made.
func (a *App) MarkDeclined() {
	a.op.Status = "declined"
}

// History returns the most recent journal entries, newest first.
func (a *App) History(limit int) ([]journal.Entry, error) {
	return a.journal.Recent(limit)
}

// Login authenticates against the remote authority and stores the returned
// access token for subsequent invocations.
func (a *App) Login(email, password string) error {
	var res struct {
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := a.gw.Post("/login", body, &res); err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	if res.AccessToken == "" {
		return fmt.Errorf("login response carried no access token")
	}
	if err := a.creds.Save(res.AccessToken); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	return nil
}

// Logout discards the stored access token.
func (a *App) Logout() error {
	if err := a.creds.Clear(); err != nil {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	return nil
}

// Close finalizes the journal record for persisted operations and releases
// all resources.
func (a *App) Close() error {
	var firstErr error

	if a.op.Persisted() {
		if err := a.journal.Finish(a.op.ID, a.op.Status); err != nil {
			firstErr = fmt.Errorf("finishing operation: %w", err)
		}
	}

	if err := a.journal.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing journal: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
