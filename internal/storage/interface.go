package storage

import "github.com/prepsheet/prepsheet/internal/models"

// Provider persists generated plans and supports the caller-side task
// mutations (toggle, edit, add, delete). Implementations are not safe for
// concurrent use by multiple processes sharing the same path.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Plans
	SavePlan(models.GeneratedPlan) error
	GetPlan(id string) (models.GeneratedPlan, error)
	LatestPlan() (models.GeneratedPlan, error)
	ListPlans() ([]models.GeneratedPlan, error)
	DeletePlan(id string) error

	// Task mutations on a stored plan's task list. None of these re-invoke
	// the scheduler; they operate on the list as saved.
	AddTask(planID string, task models.TimetableTask) error
	UpdateTask(planID string, task models.TimetableTask) error
	ToggleTask(planID, taskID string) (bool, error)
	DeleteTask(planID, taskID string) error

	// Utils
	GetConfigPath() string
}
