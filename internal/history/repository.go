package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one archived pipeline execution.
type Run struct {
	ID         string
	Meals      []string
	Groceries  []string
	RunCounter int
	CreatedAt  time.Time
}

// Repository handles persistence of run history.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new run-history repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save inserts a run record. A missing ID gets a fresh UUID and a zero
// CreatedAt gets the current time.
func (r *Repository) Save(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	meals, err := json.Marshal(run.Meals)
	if err != nil {
		return fmt.Errorf("failed to marshal meals: %w", err)
	}
	groceries, err := json.Marshal(run.Groceries)
	if err != nil {
		return fmt.Errorf("failed to marshal groceries: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO runs (id, meals, groceries, run_counter, created_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, string(meals), string(groceries), run.RunCounter, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}
	return nil
}

// ListRecent returns the most recent runs, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, meals, groceries, run_counter, created_at FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var meals, groceries string
		if err := rows.Scan(&run.ID, &meals, &groceries, &run.RunCounter, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		if err := json.Unmarshal([]byte(meals), &run.Meals); err != nil {
			return nil, fmt.Errorf("failed to unmarshal meals for run %s: %w", run.ID, err)
		}
		if err := json.Unmarshal([]byte(groceries), &run.Groceries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal groceries for run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
