package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/prepsheet/prepsheet/internal/models"
)

// schemaVersion is tracked through PRAGMA user_version.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS plans (
	id             TEXT PRIMARY KEY,
	exam_type      TEXT NOT NULL,
	exam_date      TEXT NOT NULL,
	focus_subjects TEXT NOT NULL,
	created_at     TEXT NOT NULL,
	tips           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id            TEXT NOT NULL,
	plan_id       TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
	date          TEXT NOT NULL,
	start_time    TEXT NOT NULL,
	end_time      TEXT NOT NULL,
	activity      TEXT NOT NULL,
	category      TEXT NOT NULL,
	subject_label TEXT NOT NULL DEFAULT '',
	is_completed  INTEGER NOT NULL DEFAULT 0,
	is_custom     INTEGER NOT NULL DEFAULT 0,
	position      INTEGER NOT NULL,
	PRIMARY KEY (plan_id, id)
);

CREATE INDEX IF NOT EXISTS idx_tasks_plan_date ON tasks(plan_id, date);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.ensureSchema()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'prepsheet init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", version, schemaVersion)
	}
	if version < schemaVersion {
		return s.ensureSchema()
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SavePlan(plan models.GeneratedPlan) error {
	focusJSON, err := json.Marshal(plan.FocusSubjectKeys)
	if err != nil {
		return fmt.Errorf("failed to marshal focus subjects: %w", err)
	}
	tipsJSON, err := json.Marshal(plan.Tips)
	if err != nil {
		return fmt.Errorf("failed to marshal tips: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO plans (id, exam_type, exam_date, focus_subjects, created_at, tips)
		VALUES (?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.ExamType, plan.ExamDate, string(focusJSON),
		plan.CreatedAt.UTC().Format(time.RFC3339Nano), string(tipsJSON),
	)
	if err != nil {
		return err
	}

	// Replace the task list wholesale; insertion order is preserved through
	// the position column.
	if _, err := tx.Exec("DELETE FROM tasks WHERE plan_id = ?", plan.ID); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (id, plan_id, date, start_time, end_time, activity, category,
		                   subject_label, is_completed, is_custom, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range plan.Tasks {
		_, err := stmt.Exec(t.ID, plan.ID, t.Date, t.StartTime, t.EndTime, t.Activity,
			string(t.Category), t.SubjectLabel, t.IsCompleted, t.IsCustom, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetPlan(id string) (models.GeneratedPlan, error) {
	row := s.db.QueryRow(
		"SELECT id, exam_type, exam_date, focus_subjects, created_at, tips FROM plans WHERE id = ?", id)
	plan, err := s.scanPlan(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.GeneratedPlan{}, fmt.Errorf("plan not found: %s", id)
		}
		return models.GeneratedPlan{}, err
	}

	plan.Tasks, err = s.loadTasks(plan.ID)
	if err != nil {
		return models.GeneratedPlan{}, err
	}

	return plan, nil
}

func (s *SQLiteStore) LatestPlan() (models.GeneratedPlan, error) {
	row := s.db.QueryRow(
		"SELECT id, exam_type, exam_date, focus_subjects, created_at, tips FROM plans ORDER BY created_at DESC LIMIT 1")
	plan, err := s.scanPlan(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.GeneratedPlan{}, fmt.Errorf("no plans saved yet")
		}
		return models.GeneratedPlan{}, err
	}

	plan.Tasks, err = s.loadTasks(plan.ID)
	if err != nil {
		return models.GeneratedPlan{}, err
	}

	return plan, nil
}

func (s *SQLiteStore) ListPlans() ([]models.GeneratedPlan, error) {
	rows, err := s.db.Query(
		"SELECT id, exam_type, exam_date, focus_subjects, created_at, tips FROM plans ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.GeneratedPlan
	for rows.Next() {
		plan, err := s.scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range plans {
		plans[i].Tasks, err = s.loadTasks(plans[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return plans, nil
}

func (s *SQLiteStore) DeletePlan(id string) error {
	res, err := s.db.Exec("DELETE FROM plans WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("plan not found: %s", id)
	}
	_, err = s.db.Exec("DELETE FROM tasks WHERE plan_id = ?", id)
	return err
}

func (s *SQLiteStore) AddTask(planID string, task models.TimetableTask) error {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM plans WHERE id = ?", planID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("plan not found: %s", planID)
	}

	var maxPos sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(position) FROM tasks WHERE plan_id = ?", planID).Scan(&maxPos); err != nil {
		return err
	}
	position := int64(0)
	if maxPos.Valid {
		position = maxPos.Int64 + 1
	}

	_, err = s.db.Exec(`
		INSERT INTO tasks (id, plan_id, date, start_time, end_time, activity, category,
		                   subject_label, is_completed, is_custom, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, planID, task.Date, task.StartTime, task.EndTime, task.Activity,
		string(task.Category), task.SubjectLabel, task.IsCompleted, task.IsCustom, position)
	return err
}

func (s *SQLiteStore) UpdateTask(planID string, task models.TimetableTask) error {
	res, err := s.db.Exec(`
		UPDATE tasks SET date = ?, start_time = ?, end_time = ?, activity = ?, category = ?,
		                 subject_label = ?, is_completed = ?, is_custom = ?
		WHERE plan_id = ? AND id = ?`,
		task.Date, task.StartTime, task.EndTime, task.Activity, string(task.Category),
		task.SubjectLabel, task.IsCompleted, task.IsCustom, planID, task.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("task not found: %s", task.ID)
	}
	return nil
}

func (s *SQLiteStore) ToggleTask(planID, taskID string) (bool, error) {
	var completed bool
	err := s.db.QueryRow(
		"SELECT is_completed FROM tasks WHERE plan_id = ? AND id = ?", planID, taskID).Scan(&completed)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, fmt.Errorf("task not found: %s", taskID)
		}
		return false, err
	}

	_, err = s.db.Exec(
		"UPDATE tasks SET is_completed = ? WHERE plan_id = ? AND id = ?", !completed, planID, taskID)
	if err != nil {
		return false, err
	}

	return !completed, nil
}

func (s *SQLiteStore) DeleteTask(planID, taskID string) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE plan_id = ? AND id = ?", planID, taskID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("task not found: %s", taskID)
	}
	return nil
}

// GetConfigPath returns the path to the underlying database file.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *SQLiteStore) scanPlan(row rowScanner) (models.GeneratedPlan, error) {
	var plan models.GeneratedPlan
	var focusJSON, createdAt, tipsJSON string

	if err := row.Scan(&plan.ID, &plan.ExamType, &plan.ExamDate, &focusJSON, &createdAt, &tipsJSON); err != nil {
		return models.GeneratedPlan{}, err
	}

	if err := json.Unmarshal([]byte(focusJSON), &plan.FocusSubjectKeys); err != nil {
		return models.GeneratedPlan{}, fmt.Errorf("failed to parse focus subjects: %w", err)
	}
	if err := json.Unmarshal([]byte(tipsJSON), &plan.Tips); err != nil {
		return models.GeneratedPlan{}, fmt.Errorf("failed to parse tips: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.GeneratedPlan{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	plan.CreatedAt = ts

	return plan, nil
}

func (s *SQLiteStore) loadTasks(planID string) ([]models.TimetableTask, error) {
	rows, err := s.db.Query(`
		SELECT id, date, start_time, end_time, activity, category, subject_label, is_completed, is_custom
		FROM tasks WHERE plan_id = ? ORDER BY position`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.TimetableTask
	for rows.Next() {
		var t models.TimetableTask
		var category string
		if err := rows.Scan(&t.ID, &t.Date, &t.StartTime, &t.EndTime, &t.Activity,
			&category, &t.SubjectLabel, &t.IsCompleted, &t.IsCustom); err != nil {
			return nil, err
		}
		t.Category = models.TaskCategory(category)
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}
