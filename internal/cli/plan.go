package cli

import "fmt"

type PlanListCmd struct{}

func (c *PlanListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plans, err := ctx.Store.ListPlans()
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println("No plans saved yet. Run 'prepsheet generate' to create one.")
		return nil
	}

	for _, plan := range plans {
		days := len(plan.Dates())
		fmt.Printf("%s  %-10s exam %s  %d day(s)  created %s\n",
			plan.ID, plan.ExamType, plan.ExamDate, days, plan.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

type PlanShowCmd struct {
	ID string `arg:"" help:"Plan id (defaults to the latest plan)." optional:""`
}

func (c *PlanShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plan, err := resolvePlan(ctx, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Plan %s: %s exam on %s\n", plan.ID, plan.ExamType, plan.ExamDate)
	if len(plan.FocusSubjectKeys) > 0 {
		fmt.Printf("Focus subjects: %v\n", plan.FocusSubjectKeys)
	}
	fmt.Println()

	for _, date := range plan.Dates() {
		printDay(plan, date)
		fmt.Println()
	}

	fmt.Println("Study tips:")
	for _, tip := range plan.Tips {
		fmt.Printf("  - %s\n", tip)
	}
	return nil
}

type PlanDeleteCmd struct {
	ID string `arg:"" help:"Plan id to delete."`
}

func (c *PlanDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeletePlan(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted plan %s\n", c.ID)
	return nil
}
