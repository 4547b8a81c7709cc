package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/prepsheet/prepsheet/internal/catalog"
	"github.com/prepsheet/prepsheet/internal/logger"
	"github.com/prepsheet/prepsheet/internal/models"
)

type GenerateCmd struct {
	Exam  string `short:"x" help:"Exam type (see 'prepsheet exams')."`
	Date  string `short:"d" help:"Exam date (YYYY-MM-DD)."`
	Focus string `short:"f" help:"Comma-separated focus subject keys."`
	Yes   bool   `short:"y" help:"Save without confirmation."`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	req := models.ScheduleRequest{
		ExamType: c.Exam,
		ExamDate: c.Date,
	}
	if c.Focus != "" {
		for _, key := range strings.Split(c.Focus, ",") {
			if key = strings.TrimSpace(key); key != "" {
				req.FocusSubjectKeys = append(req.FocusSubjectKeys, key)
			}
		}
	}

	// Fill in anything not given on the command line interactively.
	if req.ExamType == "" || req.ExamDate == "" {
		if err := promptExamAndDate(&req); err != nil {
			return err
		}
	}
	if len(req.FocusSubjectKeys) == 0 && c.Focus == "" {
		if err := promptFocusSubjects(&req); err != nil {
			return err
		}
	}

	result := ctx.Validator.ValidateRequest(req)
	if result.HasConflicts() {
		return fmt.Errorf("invalid request:\n%s", result.FormatReport())
	}

	subjects, err := catalog.Subjects(req.ExamType)
	if err != nil {
		return err
	}

	plan, err := ctx.Scheduler.BuildPlan(req, subjects)
	if err != nil {
		return err
	}

	dates := plan.Dates()
	fmt.Printf("Proposed plan: %s, %d day(s) until the exam on %s\n\n", req.ExamType, len(dates), plan.ExamDate)
	printDay(plan, dates[0])
	if len(dates) > 1 {
		fmt.Printf("\n... and %d more day(s) with the same structure.\n", len(dates)-1)
	}

	accept := c.Yes
	if !accept {
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Save this plan?").
				Value(&accept),
		))
		if err := confirm.Run(); err != nil {
			return err
		}
	}
	if !accept {
		fmt.Println("Plan discarded. Adjust your focus subjects and regenerate.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.SavePlan(plan); err != nil {
		return err
	}

	logger.Info("Plan generated", "plan", plan.ID, "exam", plan.ExamType, "days", len(dates))
	fmt.Printf("\nPlan saved (id %s). Run 'prepsheet day' to see today's timetable.\n", plan.ID)
	return nil
}

func promptExamAndDate(req *models.ScheduleRequest) error {
	var examOptions []huh.Option[string]
	for _, exam := range catalog.Exams() {
		examOptions = append(examOptions, huh.NewOption(exam.Name, exam.Key))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which exam are you preparing for?").
				Options(examOptions...).
				Value(&req.ExamType),
			huh.NewInput().
				Title("Exam date (YYYY-MM-DD)").
				Validate(func(s string) error {
					_, err := time.Parse("2006-01-02", s)
					if err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}).
				Value(&req.ExamDate),
		),
	)
	return form.Run()
}

func promptFocusSubjects(req *models.ScheduleRequest) error {
	subjects, err := catalog.Subjects(req.ExamType)
	if err != nil {
		return err
	}

	var subjectOptions []huh.Option[string]
	for _, s := range subjects {
		subjectOptions = append(subjectOptions, huh.NewOption(s.Label, s.Key))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Pick your focus subjects (they get the bigger share of study time)").
				Options(subjectOptions...).
				Value(&req.FocusSubjectKeys),
		),
	)
	return form.Run()
}

func printDay(plan models.GeneratedPlan, date string) {
	fmt.Printf("%s:\n", date)
	for _, task := range plan.TasksForDate(date) {
		fmt.Printf("  %s\n", formatTask(task))
	}
}
