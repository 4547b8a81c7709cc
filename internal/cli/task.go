package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/prepsheet/prepsheet/internal/models"
)

// Task subcommands mutate a stored plan's task list directly; none of them
// re-run the scheduler.

type TaskAddCmd struct {
	Activity string `arg:"" help:"Activity text."`
	Date     string `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	Start    string `short:"s" help:"Start time, e.g. '09:30 PM'." required:""`
	End      string `short:"e" help:"End time, e.g. '10:00 PM'." required:""`
	Category string `short:"c" help:"Category (study|meal|break|sleep|revision|other)." default:"other"`
	Plan     string `short:"p" help:"Plan id (defaults to the latest plan)."`
}

func (c *TaskAddCmd) Validate() error {
	switch models.TaskCategory(c.Category) {
	case models.CategoryStudy, models.CategoryMeal, models.CategoryBreak,
		models.CategorySleep, models.CategoryRevision, models.CategoryOther:
		return nil
	}
	return fmt.Errorf("invalid category: %s", c.Category)
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	plan, err := resolvePlan(ctx, c.Plan)
	if err != nil {
		return err
	}

	task := models.TimetableTask{
		ID:        uuid.New().String(),
		Date:      date,
		StartTime: c.Start,
		EndTime:   c.End,
		Activity:  c.Activity,
		Category:  models.TaskCategory(c.Category),
		IsCustom:  true,
	}
	if task.Category == models.CategoryStudy {
		task.SubjectLabel = c.Activity
	}

	if err := ctx.Store.AddTask(plan.ID, task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", c.Activity, task.ID)
	return nil
}

type TaskEditCmd struct {
	ID       string `arg:"" help:"Task id."`
	Activity string `arg:"" help:"New activity text."`
	Plan     string `short:"p" help:"Plan id (defaults to the latest plan)."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plan, err := resolvePlan(ctx, c.Plan)
	if err != nil {
		return err
	}

	for _, task := range plan.Tasks {
		if task.ID == c.ID {
			task.Activity = c.Activity
			if err := ctx.Store.UpdateTask(plan.ID, task); err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", c.ID)
			return nil
		}
	}

	return fmt.Errorf("task not found: %s", c.ID)
}

type TaskToggleCmd struct {
	ID   string `arg:"" help:"Task id."`
	Plan string `short:"p" help:"Plan id (defaults to the latest plan)."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plan, err := resolvePlan(ctx, c.Plan)
	if err != nil {
		return err
	}

	done, err := ctx.Store.ToggleTask(plan.ID, c.ID)
	if err != nil {
		return err
	}

	if done {
		fmt.Printf("Marked %s as completed\n", c.ID)
	} else {
		fmt.Printf("Marked %s as not completed\n", c.ID)
	}
	return nil
}

type TaskDeleteCmd struct {
	ID   string `arg:"" help:"Task id."`
	Plan string `short:"p" help:"Plan id (defaults to the latest plan)."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plan, err := resolvePlan(ctx, c.Plan)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteTask(plan.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task %s\n", c.ID)
	return nil
}
