package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/prepsheet/prepsheet/internal/models"
)

type Store struct {
	Version  int                             `json:"version"`
	Plans    map[string]models.GeneratedPlan `json:"plans"`
	LatestID string                          `json:"latest_id,omitempty"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Plans:   make(map[string]models.GeneratedPlan),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'prepsheet init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Plans == nil {
		s.store.Plans = make(map[string]models.GeneratedPlan)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SavePlan(plan models.GeneratedPlan) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Plans[plan.ID] = plan
	s.store.LatestID = plan.ID
	return s.save()
}

func (s *JSONStore) GetPlan(id string) (models.GeneratedPlan, error) {
	if s.store == nil {
		return models.GeneratedPlan{}, fmt.Errorf("storage not loaded")
	}

	plan, ok := s.store.Plans[id]
	if !ok {
		return models.GeneratedPlan{}, fmt.Errorf("plan not found: %s", id)
	}

	return plan, nil
}

func (s *JSONStore) LatestPlan() (models.GeneratedPlan, error) {
	if s.store == nil {
		return models.GeneratedPlan{}, fmt.Errorf("storage not loaded")
	}

	if s.store.LatestID != "" {
		if plan, ok := s.store.Plans[s.store.LatestID]; ok {
			return plan, nil
		}
	}

	// Fall back to the newest plan by creation time.
	var latest models.GeneratedPlan
	found := false
	for _, plan := range s.store.Plans {
		if !found || plan.CreatedAt.After(latest.CreatedAt) {
			latest = plan
			found = true
		}
	}
	if !found {
		return models.GeneratedPlan{}, fmt.Errorf("no plans saved yet")
	}

	return latest, nil
}

func (s *JSONStore) ListPlans() ([]models.GeneratedPlan, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	plans := make([]models.GeneratedPlan, 0, len(s.store.Plans))
	for _, plan := range s.store.Plans {
		plans = append(plans, plan)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})

	return plans, nil
}

func (s *JSONStore) DeletePlan(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Plans[id]; !ok {
		return fmt.Errorf("plan not found: %s", id)
	}

	delete(s.store.Plans, id)
	if s.store.LatestID == id {
		s.store.LatestID = ""
	}
	return s.save()
}

func (s *JSONStore) AddTask(planID string, task models.TimetableTask) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	plan, ok := s.store.Plans[planID]
	if !ok {
		return fmt.Errorf("plan not found: %s", planID)
	}

	for _, t := range plan.Tasks {
		if t.ID == task.ID {
			return fmt.Errorf("task already exists: %s", task.ID)
		}
	}

	plan.Tasks = append(plan.Tasks, task)
	s.store.Plans[planID] = plan
	return s.save()
}

func (s *JSONStore) UpdateTask(planID string, task models.TimetableTask) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	plan, ok := s.store.Plans[planID]
	if !ok {
		return fmt.Errorf("plan not found: %s", planID)
	}

	for i, t := range plan.Tasks {
		if t.ID == task.ID {
			plan.Tasks[i] = task
			s.store.Plans[planID] = plan
			return s.save()
		}
	}

	return fmt.Errorf("task not found: %s", task.ID)
}

func (s *JSONStore) ToggleTask(planID, taskID string) (bool, error) {
	if s.store == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	plan, ok := s.store.Plans[planID]
	if !ok {
		return false, fmt.Errorf("plan not found: %s", planID)
	}

	for i, t := range plan.Tasks {
		if t.ID == taskID {
			plan.Tasks[i].IsCompleted = !t.IsCompleted
			s.store.Plans[planID] = plan
			return plan.Tasks[i].IsCompleted, s.save()
		}
	}

	return false, fmt.Errorf("task not found: %s", taskID)
}

func (s *JSONStore) DeleteTask(planID, taskID string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	plan, ok := s.store.Plans[planID]
	if !ok {
		return fmt.Errorf("plan not found: %s", planID)
	}

	for i, t := range plan.Tasks {
		if t.ID == taskID {
			plan.Tasks = append(plan.Tasks[:i], plan.Tasks[i+1:]...)
			s.store.Plans[planID] = plan
			return s.save()
		}
	}

	return fmt.Errorf("task not found: %s", taskID)
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple prepsheet processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
