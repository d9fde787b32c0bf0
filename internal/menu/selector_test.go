package menu

import (
	"errors"
	"math/rand"
	"testing"
)

func testCatalog(n int) []Meal {
	meals := make([]Meal, 0, n)
	names := []string{"Tacos", "Lasagna", "Stir Fry", "Chili", "Burgers", "Curry", "Pizza", "Soup"}
	for i := 0; i < n; i++ {
		meals = append(meals, Meal{
			Name:        names[i%len(names)],
			Ingredients: "salt, pepper",
			Image:       "https://img.test/" + names[i%len(names)],
		})
	}
	return meals
}

func TestSelectReturnsExactCount(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(1)))
	catalog := testCatalog(8)

	for count := 1; count <= len(catalog); count++ {
		selection, err := s.Select(catalog, nil, count)
		if err != nil {
			t.Fatalf("Select(count=%d) failed: %v", count, err)
		}
		if len(selection) != count {
			t.Errorf("Expected %d meals, got %d", count, len(selection))
		}
	}
}

func TestSelectExcludesLastWeek(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(2)))
	catalog := testCatalog(6)
	exclusions := []Meal{catalog[0], catalog[3]}

	selection, err := s.Select(catalog, exclusions, 4)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	// Pool size equals count, so the selection must be exactly the
	// remaining four meals, in some order.
	want := map[Meal]struct{}{
		catalog[1]: {}, catalog[2]: {}, catalog[4]: {}, catalog[5]: {},
	}
	if len(selection) != 4 {
		t.Fatalf("Expected 4 meals, got %d", len(selection))
	}
	for _, m := range selection {
		if _, ok := want[m]; !ok {
			t.Errorf("Selected excluded or unknown meal: %+v", m)
		}
		delete(want, m)
	}
	if len(want) != 0 {
		t.Errorf("Selection missed meals: %v", want)
	}
}

func TestSelectInsufficientCandidates(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(3)))
	catalog := testCatalog(5)

	_, err := s.Select(catalog, catalog[:3], 4)
	if !errors.Is(err, ErrInsufficientCandidates) {
		t.Fatalf("Expected ErrInsufficientCandidates, got %v", err)
	}
}

func TestSelectFullRecordEquality(t *testing.T) {
	s := NewSelector(rand.New(rand.NewSource(4)))
	catalog := []Meal{{Name: "Tacos", Ingredients: "beef, salsa", Image: "a.jpg"}}

	// An exclusion differing only in the image field does not exclude.
	drifted := []Meal{{Name: "Tacos", Ingredients: "beef, salsa", Image: "b.jpg"}}
	selection, err := s.Select(catalog, drifted, 1)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if selection[0] != catalog[0] {
		t.Errorf("Expected drifted record to remain eligible")
	}

	// An exact match does exclude.
	if _, err := s.Select(catalog, catalog, 1); !errors.Is(err, ErrInsufficientCandidates) {
		t.Fatalf("Expected ErrInsufficientCandidates for exact-match exclusion, got %v", err)
	}
}
