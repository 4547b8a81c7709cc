package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/prepsheet/prepsheet/internal/cli"
	"github.com/prepsheet/prepsheet/internal/logger"
	"github.com/prepsheet/prepsheet/internal/scheduler"
	"github.com/prepsheet/prepsheet/internal/storage"
	"github.com/prepsheet/prepsheet/internal/validation"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/prepsheet/prepsheet.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize prepsheet storage."`
	Generate cli.GenerateCmd `cmd:"" help:"Generate a study plan up to your exam date."`
	Day      cli.DayCmd      `cmd:"" help:"Show the timetable for a day."`
	Exams    cli.ExamsCmd    `cmd:"" help:"List supported exams and their subjects."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run diagnostics."`
	Plan     struct {
		List   cli.PlanListCmd   `cmd:"" help:"List saved plans."`
		Show   cli.PlanShowCmd   `cmd:"" help:"Show a full plan."`
		Delete cli.PlanDeleteCmd `cmd:"" help:"Delete a plan."`
	} `cmd:"" help:"Manage saved plans."`
	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a custom task to a plan."`
		Edit   cli.TaskEditCmd   `cmd:"" help:"Edit a task's activity text."`
		Toggle cli.TaskToggleCmd `cmd:"" help:"Toggle a task's completion."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task from a plan."`
	} `cmd:"" help:"Manage tasks within a plan."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("prepsheet"),
		kong.Description("Exam study-schedule generator"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:     store,
		Scheduler: scheduler.New(),
		Validator: validation.New(),
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
