package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"weekly-meal-planner/internal/database"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func TestSaveAndListRecent(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	older := &Run{
		Meals:      []string{"Tacos", "Chili"},
		Groceries:  []string{"Beans: $1.29", "Salsa: Not available"},
		RunCounter: 1,
		CreatedAt:  time.Now().UTC().Add(-time.Hour),
	}
	newer := &Run{
		Meals:      []string{"Curry", "Soup"},
		Groceries:  []string{"Rice: $2.49"},
		RunCounter: 2,
	}

	if err := repo.Save(ctx, older); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Save(ctx, newer); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if older.ID == "" || newer.ID == "" {
		t.Fatal("Expected IDs to be assigned on save")
	}

	runs, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != newer.ID {
		t.Errorf("Expected newest run first, got %s", runs[0].ID)
	}
	if runs[1].RunCounter != 1 || len(runs[1].Meals) != 2 {
		t.Errorf("Older run round-trip mismatch: %+v", runs[1])
	}
	if runs[1].Groceries[1] != "Salsa: Not available" {
		t.Errorf("Groceries round-trip mismatch: %v", runs[1].Groceries)
	}
}

func TestListRecentHonorsLimit(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	for i := 0; i < 5; i++ {
		run := &Run{
			Meals:      []string{"Meal"},
			Groceries:  []string{"Item"},
			RunCounter: i,
			CreatedAt:  time.Now().UTC().Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Save(ctx, run); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	runs, err := repo.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].RunCounter != 4 {
		t.Errorf("Expected newest run counter 4 first, got %d", runs[0].RunCounter)
	}
}
