package cli

import "fmt"

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
	Plan string `short:"p" help:"Plan id (defaults to the latest plan)."`
}

func (c *DayCmd) Run(ctx *Context) error {
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

	tasks := plan.TasksForDate(date)
	if len(tasks) == 0 {
		return fmt.Errorf("the plan for the %s exam does not cover %s", plan.ExamType, date)
	}

	fmt.Printf("Timetable for %s (exam on %s):\n\n", date, plan.ExamDate)
	for _, task := range tasks {
		fmt.Printf("  %s\n", formatTask(task))
	}

	return nil
}
