package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lelyo-go/internal/app"
	"lelyo-go/internal/config"
	"lelyo-go/internal/core"
	"lelyo-go/internal/prompt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer a.Close().
// operation identifies the CLI command being run (e.g. "CreateTask").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation, confirmer())
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// confirmer returns the confirmation capability for this invocation:
// a terminal prompt, or a preset acceptance under --yes.
func confirmer() core.Confirmer {
	if assumeYes {
		return core.AcceptAll{}
	}
	return prompt.NewTerminalConfirmer(os.Stdin, os.Stdout)
}

// finish reports a mutation's outcome on the journal record and to the
// operator. A declined confirmation is not an error.
func finish(a *app.App, err error, doneMsg string) error {
	if errors.Is(err, core.ErrDeclined) {
		a.MarkDeclined()
		fmt.Println("Aborted.")
		return nil
	}
	if err != nil {
		a.MarkFailed()
		return err
	}
	fmt.Println(doneMsg)
	return nil
}

var assumeYes bool

var rootCmd = &cobra.Command{
	Use:   "lelyo",
	Short: "Property management dashboard CLI",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get application defaults
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// Generate a new operator ID
		operatorID := uuid.New().String()

		// Create config with defaults
		cfg := config.NewConfig(operatorID, defaults["base_dir"])

		// Initialize config file
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Operator ID: %s\n", operatorID)
		fmt.Printf("Base Dir:    %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Operator ID: %s\n", cfg.OperatorID)
		fmt.Printf("Base Dir:    %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:     %s\n", cfg.LogDir)
		fmt.Printf("Gateway:     %s (%s)\n", cfg.Gateway.Type, cfg.Gateway.BaseURL)
		fmt.Printf("Journal:     %s\n", cfg.Journal.Type)
		return nil
	},
}

// login / logout commands
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return fmt.Errorf("--email is required")
		}

		password, err := prompt.ReadPassword("Password: ")
		if err != nil {
			return err
		}

		a, err := newApp("Login")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Login(email, password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Println("Logged in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Logout")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

// property command
var propertyCmd = &cobra.Command{
	Use:   "property",
	Short: "Manage properties",
}

var propertyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListProperties")
		if err != nil {
			return err
		}
		defer a.Close()

		props, err := a.Properties.List()
		if err != nil {
			return err
		}

		if len(props) == 0 {
			fmt.Println("No properties.")
			return nil
		}
		for _, p := range props {
			fmt.Printf("#%-4d %-25s %s\n", p.ID, p.Name, p.Address)
		}
		return nil
	},
}

var propertyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a property",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		address, _ := cmd.Flags().GetString("address")
		description, _ := cmd.Flags().GetString("description")
		imagePath, _ := cmd.Flags().GetString("image")

		a, err := newApp("CreateProperty")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.BeginMutation(name); err != nil {
			return err
		}

		var image *core.ImageUpload
		if imagePath != "" {
			f, err := os.Open(imagePath)
			if err != nil {
				a.MarkFailed()
				return fmt.Errorf("opening image: %w", err)
			}
			defer f.Close()
			image = &core.ImageUpload{Filename: filepath.Base(imagePath), Content: f}
		}

		draft := core.PropertyDraft{Name: name, Address: address, Description: description}
		err = a.Properties.Create(draft, image)

		var verr *core.ValidationError
		if errors.As(err, &verr) {
			a.MarkFailed()
			for field, msg := range verr.Fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
			return fmt.Errorf("property draft rejected")
		}

		return finish(a, err, "Property created.")
	},
}

var propertyDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid property id: %s", args[0])
		}

		a, err := newApp("DeleteProperty")
		if err != nil {
			return err
		}
		defer a.Close()

		// The confirmation prompt names the property, so resolve it first.
		props, err := a.Properties.List()
		if err != nil {
			return err
		}
		name := core.ResolveName(props, id)

		if err := a.BeginMutation(args[0]); err != nil {
			return err
		}

		return finish(a, a.Properties.Delete(id, name), "Property deleted.")
	},
}

// reservation command
var reservationCmd = &cobra.Command{
	Use:   "reservation",
	Short: "Manage reservations",
}

var reservationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reservations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListReservations")
		if err != nil {
			return err
		}
		defer a.Close()

		reservations, err := a.Reservations.List()
		if err != nil {
			return err
		}
		props, err := a.Properties.List()
		if err != nil {
			return err
		}

		if len(reservations) == 0 {
			fmt.Println("No reservations.")
			return nil
		}
		for _, r := range reservations {
			fmt.Printf("#%-4d %s → %s  %-20s %s\n",
				r.ID, r.StartDate, r.EndDate, r.GuestName, core.ResolveName(props, r.PropertyID))
		}
		return nil
	},
}

var reservationCalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "View reservations as calendar events",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListReservations")
		if err != nil {
			return err
		}
		defer a.Close()

		reservations, err := a.Reservations.List()
		if err != nil {
			return err
		}

		events := core.ToCalendarEvents(reservations)
		if len(events) == 0 {
			fmt.Println("No events.")
			return nil
		}
		for _, e := range events {
			fmt.Printf("#%-4d %s → %s  %s\n",
				e.ID,
				e.Start.Format("2006-01-02"),
				e.End.Format("2006-01-02"),
				e.Title,
			)
		}
		return nil
	},
}

var reservationShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "View one reservation's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid reservation id: %s", args[0])
		}

		a, err := newApp("ShowReservation")
		if err != nil {
			return err
		}
		defer a.Close()

		reservations, err := a.Reservations.List()
		if err != nil {
			return err
		}
		props, err := a.Properties.List()
		if err != nil {
			return err
		}

		session := core.NewReservationSession(a.Reservations)
		for _, r := range reservations {
			if r.ID == id {
				session.Select(r)
				break
			}
		}
		selected := session.Selected()
		if selected == nil {
			return fmt.Errorf("reservation %d not found", id)
		}

		fmt.Printf("Guest:    %s\n", selected.GuestName)
		fmt.Printf("From:     %s\n", selected.StartDate)
		fmt.Printf("To:       %s\n", selected.EndDate)
		fmt.Printf("Property: %s\n", core.ResolveName(props, selected.PropertyID))
		return nil
	},
}

var reservationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a reservation",
	RunE: func(cmd *cobra.Command, args []string) error {
		guest, _ := cmd.Flags().GetString("guest")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		propertyID, _ := cmd.Flags().GetInt("property")

		a, err := newApp("CreateReservation")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.BeginMutation(guest); err != nil {
			return err
		}

		session := core.NewReservationSession(a.Reservations)
		session.BeginCreate()
		session.Draft = core.ReservationDraft{
			GuestName:  guest,
			StartDate:  start,
			EndDate:    end,
			PropertyID: propertyID,
		}

		fresh, err := session.Submit()
		if err != nil {
			return finish(a, err, "")
		}
		return finish(a, nil, fmt.Sprintf("Saved. %d reservation(s).", len(fresh)))
	},
}

var reservationUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Edit a reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid reservation id: %s", args[0])
		}

		a, err := newApp("UpdateReservation")
		if err != nil {
			return err
		}
		defer a.Close()

		reservations, err := a.Reservations.List()
		if err != nil {
			return err
		}

		session := core.NewReservationSession(a.Reservations)
		for _, r := range reservations {
			if r.ID == id {
				session.Select(r)
				break
			}
		}
		if session.Selected() == nil {
			return fmt.Errorf("reservation %d not found", id)
		}

		// Pre-populate from the selected reservation, then apply the
		// provided flags over it.
		session.BeginEdit()
		if cmd.Flags().Changed("guest") {
			session.Draft.GuestName, _ = cmd.Flags().GetString("guest")
		}
		if cmd.Flags().Changed("start") {
			session.Draft.StartDate, _ = cmd.Flags().GetString("start")
		}
		if cmd.Flags().Changed("end") {
			session.Draft.EndDate, _ = cmd.Flags().GetString("end")
		}
		if cmd.Flags().Changed("property") {
			session.Draft.PropertyID, _ = cmd.Flags().GetInt("property")
		}

		if err := a.BeginMutation(args[0]); err != nil {
			return err
		}

		_, err = session.Submit()
		return finish(a, err, "Reservation updated.")
	},
}

var reservationDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid reservation id: %s", args[0])
		}

		a, err := newApp("DeleteReservation")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.BeginMutation(args[0]); err != nil {
			return err
		}

		return finish(a, a.Reservations.Delete(id), "Reservation deleted.")
	},
}

// task command
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

// taskFilter reads the --property flag into the optional scope the task
// controller expects.
func taskFilter(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("property") {
		return nil
	}
	id, _ := cmd.Flags().GetInt("property")
	return &id
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListTasks")
		if err != nil {
			return err
		}
		defer a.Close()

		tasks, err := a.Tasks.List(taskFilter(cmd))
		if err != nil {
			return err
		}
		props, err := a.Properties.List()
		if err != nil {
			return err
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks.")
			return nil
		}
		for _, t := range tasks {
			marker := " "
			if t.Done() {
				marker = "x"
			}
			fmt.Printf("[%s] #%-4d %s  %-25s %s\n",
				marker, t.ID, t.Date, t.Title, core.ResolveName(props, t.PropertyID))
		}
		return nil
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		date, _ := cmd.Flags().GetString("date")
		propertyID, _ := cmd.Flags().GetInt("property")

		a, err := newApp("CreateTask")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.BeginMutation(title); err != nil {
			return err
		}

		session := core.NewTaskSession(a.Tasks)
		session.BeginCreate()
		session.Draft = core.TaskDraft{
			Title:       title,
			Description: description,
			Date:        date,
			PropertyID:  propertyID,
		}

		_, err = session.Submit()
		return finish(a, err, "Task created.")
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid task id: %s", args[0])
		}

		a, err := newApp("UpdateTask")
		if err != nil {
			return err
		}
		defer a.Close()

		tasks, err := a.Tasks.List(nil)
		if err != nil {
			return err
		}

		session := core.NewTaskSession(a.Tasks)
		found := false
		for _, t := range tasks {
			if t.ID == id {
				session.BeginEdit(t)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("task %d not found", id)
		}

		if cmd.Flags().Changed("title") {
			session.Draft.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			session.Draft.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("date") {
			session.Draft.Date, _ = cmd.Flags().GetString("date")
		}
		if cmd.Flags().Changed("property") {
			session.Draft.PropertyID, _ = cmd.Flags().GetInt("property")
		}

		if err := a.BeginMutation(args[0]); err != nil {
			return err
		}

		_, err = session.Submit()
		return finish(a, err, "Task updated.")
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid task id: %s", args[0])
		}

		a, err := newApp("DeleteTask")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.BeginMutation(args[0]); err != nil {
			return err
		}

		return finish(a, a.Tasks.Delete(id), "Task deleted.")
	},
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle ID",
	Short: "Flip a task between pending and done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid task id: %s", args[0])
		}

		a, err := newApp("ToggleTask")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.BeginMutation(args[0]); err != nil {
			return err
		}

		return finish(a, a.Tasks.Toggle(id), "Task toggled.")
	},
}

// stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		evolution, _ := cmd.Flags().GetBool("evolution")

		a, err := newApp("GetStats")
		if err != nil {
			return err
		}
		defer a.Close()

		scope := taskFilter(cmd)

		if evolution {
			series, err := a.Stats.FetchEvolution(scope)
			if err != nil {
				return err
			}
			for _, p := range series {
				fmt.Printf("%s  %d\n", p.Date, p.Count)
			}
			return nil
		}

		stats, err := a.Stats.FetchStats(scope)
		if err != nil {
			return err
		}

		fmt.Printf("Reservations: %d\n", stats.Reservations)
		fmt.Printf("Occupancy:    %s\n", stats.OccupancyRate)
		fmt.Printf("Tasks:        %d total\n", stats.TasksTotal)
		for _, slice := range core.TaskBreakdown(*stats) {
			fmt.Printf("  %-10s %d\n", slice.Name, slice.Value)
		}
		return nil
	},
}

// dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "View the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetDashboard")
		if err != nil {
			return err
		}
		defer a.Close()

		view := a.Dashboard.FetchAll()

		if view.SnapshotErr != nil {
			fmt.Printf("Overview unavailable: %v\n", view.SnapshotErr)
		} else {
			fmt.Printf("Properties:           %d\n", view.Snapshot.TotalProperties)
			fmt.Printf("Reservations today:   %d\n", view.Snapshot.TodayReservations)
			fmt.Printf("Tasks today:          %d\n", view.Snapshot.TodayTasks)
		}

		fmt.Println()
		if view.AlertsErr != nil {
			fmt.Printf("Alerts unavailable: %v\n", view.AlertsErr)
		} else {
			if len(view.Alerts.LateTasks) == 0 {
				fmt.Println("No late tasks.")
			} else {
				fmt.Println("Late tasks:")
				for _, t := range view.Alerts.LateTasks {
					fmt.Printf("  #%-4d %s  %s\n", t.ID, t.Date, t.Title)
				}
			}
			if len(view.Alerts.TomorrowReservations) == 0 {
				fmt.Println("No reservations tomorrow.")
			} else {
				fmt.Println("Arriving tomorrow:")
				for _, r := range view.Alerts.TomorrowReservations {
					fmt.Printf("  #%-4d %s  %s\n", r.ID, r.StartDate, r.GuestName)
				}
			}
		}

		fmt.Println()
		if view.WeekErr != nil {
			fmt.Printf("Week series unavailable: %v\n", view.WeekErr)
		} else {
			for _, p := range view.Week {
				fmt.Printf("%s  %d\n", p.Date, p.Count)
			}
		}
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recent operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("GetHistory")
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.History(limit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No operations recorded.")
			return nil
		}

		for _, e := range entries {
			duration := ""
			if e.FinishedAt.Valid {
				d := e.FinishedAt.Time.Sub(e.StartedAt)
				duration = d.Truncate(time.Millisecond).String()
			}
			fmt.Printf("#%d  %-20s  %s  %-10s  %s\n",
				e.ID,
				e.Operation,
				e.StartedAt.Format("2006-01-02 15:04:05"),
				e.Status,
				duration,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmation prompts")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// auth commands
	loginCmd.Flags().String("email", "", "Account email")

	// property subcommands
	propertyCmd.AddCommand(propertyListCmd)
	propertyCmd.AddCommand(propertyAddCmd)
	propertyAddCmd.Flags().String("name", "", "Property name")
	propertyAddCmd.Flags().String("address", "", "Property address")
	propertyAddCmd.Flags().String("description", "", "Property description")
	propertyAddCmd.Flags().String("image", "", "Image file to upload")
	propertyCmd.AddCommand(propertyDeleteCmd)

	// reservation subcommands
	reservationCmd.AddCommand(reservationListCmd)
	reservationCmd.AddCommand(reservationCalendarCmd)
	reservationCmd.AddCommand(reservationShowCmd)
	for _, c := range []*cobra.Command{reservationAddCmd, reservationUpdateCmd} {
		c.Flags().String("guest", "", "Guest name")
		c.Flags().String("start", "", "Start date (YYYY-MM-DD)")
		c.Flags().String("end", "", "End date (YYYY-MM-DD)")
		c.Flags().Int("property", 0, "Property id")
		reservationCmd.AddCommand(c)
	}
	reservationCmd.AddCommand(reservationDeleteCmd)

	// task subcommands
	taskListCmd.Flags().Int("property", 0, "Only tasks for this property")
	taskCmd.AddCommand(taskListCmd)
	for _, c := range []*cobra.Command{taskAddCmd, taskUpdateCmd} {
		c.Flags().String("title", "", "Task title")
		c.Flags().String("description", "", "Task description")
		c.Flags().String("date", "", "Task date (YYYY-MM-DD)")
		c.Flags().Int("property", 0, "Property id")
		taskCmd.AddCommand(c)
	}
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskToggleCmd)

	// stats flags
	statsCmd.Flags().Int("property", 0, "Scope to this property")
	statsCmd.Flags().Bool("evolution", false, "Show the reservations-over-time series")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(propertyCmd)
	rootCmd.AddCommand(reservationCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of operations to show")
}
