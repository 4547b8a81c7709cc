package scheduler

import (
	"fmt"
	"time"

	"github.com/prepsheet/prepsheet/internal/models"
)

const studySlotsPerDay = 4

// templateSlot is one entry of the fixed daily template. Study slots leave
// Activity empty; the allocator fills them in.
type templateSlot struct {
	tag       string
	start     string
	end       string
	category  models.TaskCategory
	activity  string
	studySlot int // 0..3 for study slots, -1 otherwise
}

// dayTemplate is the fixed, non-configurable shape of every planned day:
// four allocator-driven study slots interleaved with meals, breaks, revision
// and sleep. Fourteen slots total; the sleep slot crosses midnight.
var dayTemplate = []templateSlot{
	{tag: "wake", start: "07:00 AM", end: "07:30 AM", category: models.CategoryOther, activity: "Wake Up & Hydrate", studySlot: -1},
	{tag: "breakfast", start: "07:30 AM", end: "08:30 AM", category: models.CategoryMeal, activity: "Breakfast", studySlot: -1},
	{tag: "study-1", start: "08:30 AM", end: "10:30 AM", category: models.CategoryStudy, studySlot: 0},
	{tag: "break", start: "10:30 AM", end: "11:00 AM", category: models.CategoryBreak, activity: "Short Break", studySlot: -1},
	{tag: "study-2", start: "11:00 AM", end: "01:00 PM", category: models.CategoryStudy, studySlot: 1},
	{tag: "lunch", start: "01:00 PM", end: "02:00 PM", category: models.CategoryMeal, activity: "Lunch", studySlot: -1},
	{tag: "study-3", start: "02:00 PM", end: "04:00 PM", category: models.CategoryStudy, studySlot: 2},
	{tag: "revision", start: "04:00 PM", end: "04:30 PM", category: models.CategoryRevision, activity: "Revise Morning Topics", studySlot: -1},
	{tag: "study-4", start: "04:30 PM", end: "06:00 PM", category: models.CategoryStudy, studySlot: 3},
	{tag: "exercise", start: "06:00 PM", end: "07:00 PM", category: models.CategoryOther, activity: "Exercise / Free Time", studySlot: -1},
	{tag: "dinner", start: "07:00 PM", end: "08:00 PM", category: models.CategoryMeal, activity: "Dinner", studySlot: -1},
	{tag: "light-study", start: "08:00 PM", end: "09:30 PM", category: models.CategoryRevision, activity: "Light Study / Mixed Revision", studySlot: -1},
	{tag: "planning", start: "09:30 PM", end: "10:30 PM", category: models.CategoryOther, activity: "Plan Next Day", studySlot: -1},
	{tag: "sleep", start: "10:30 PM", end: "07:00 AM", category: models.CategorySleep, activity: "Sleep", studySlot: -1},
}

// SlotsPerDay is the number of generated tasks per planned day.
const SlotsPerDay = 14

// GeneralRevisionLabel is rendered when the allocator has no subject to offer.
const GeneralRevisionLabel = "General Revision"

// buildDay produces the 14 tasks for one calendar date. Task ids come from the
// date plus the slot tag, so regenerating the same request yields identical
// ids. The rotation counter threads through the four study slots and gains one
// extra tick for the evening mixed-revision block, which makes the fourth
// slot's parity preference alternate across consecutive days.
func buildDay(date time.Time, focus, other, catalog []models.Subject, dayIndex, counter int) ([]models.TimetableTask, int) {
	dateStr := date.Format("2006-01-02")
	tasks := make([]models.TimetableTask, 0, len(dayTemplate))

	for _, slot := range dayTemplate {
		task := models.TimetableTask{
			ID:        fmt.Sprintf("%s-%s", dateStr, slot.tag),
			Date:      dateStr,
			StartTime: slot.start,
			EndTime:   slot.end,
			Activity:  slot.activity,
			Category:  slot.category,
		}

		if slot.studySlot >= 0 {
			var subject *models.Subject
			subject, counter = PickSubject(focus, other, catalog, dayIndex, slot.studySlot, counter)
			label := GeneralRevisionLabel
			if subject != nil {
				label = subject.Label
			}
			task.Activity = "Study: " + label
			task.SubjectLabel = label
		}

		if slot.tag == "light-study" {
			counter++
		}

		tasks = append(tasks, task)
	}

	return tasks, counter
}
