package cli

import (
	"fmt"
	"time"

	"github.com/prepsheet/prepsheet/internal/backup"
	"github.com/prepsheet/prepsheet/internal/logger"
	"github.com/prepsheet/prepsheet/internal/models"
	"github.com/prepsheet/prepsheet/internal/scheduler"
	"github.com/prepsheet/prepsheet/internal/storage"
	"github.com/prepsheet/prepsheet/internal/validation"
)

type Context struct {
	Store     storage.Provider
	Scheduler *scheduler.Scheduler
	Validator *validation.Validator
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// resolveDate turns "today" or a YYYY-MM-DD string into a canonical date string.
func resolveDate(arg string) (string, error) {
	if arg == "" || arg == "today" {
		return time.Now().Format("2006-01-02"), nil
	}
	d, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return d.Format("2006-01-02"), nil
}

// resolvePlan fetches the plan with the given id, or the latest plan when the
// id is empty.
func resolvePlan(ctx *Context, planID string) (models.GeneratedPlan, error) {
	if planID != "" {
		return ctx.Store.GetPlan(planID)
	}
	plan, err := ctx.Store.LatestPlan()
	if err != nil {
		return models.GeneratedPlan{}, fmt.Errorf("no plan available, run 'prepsheet generate' first: %w", err)
	}
	return plan, nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func formatTask(task models.TimetableTask) string {
	marker := ""
	if task.IsCustom {
		marker = "  (custom)"
	}
	return fmt.Sprintf("%s %s–%s  %s%s", checkbox(task.IsCompleted), task.StartTime, task.EndTime, task.Activity, marker)
}
