package grocery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadAisles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aisles.csv")
	content := "Ingredient,Aisle\nMilk,12\nBread,3\nGround Beef,7\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lookup, err := LoadAisles(path)
	if err != nil {
		t.Fatalf("LoadAisles failed: %v", err)
	}
	if lookup["Milk"] != 12 || lookup["Bread"] != 3 || lookup["Ground Beef"] != 7 {
		t.Errorf("Unexpected lookup contents: %v", lookup)
	}
}

func TestLoadAislesRejectsNonNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aisles.csv")
	if err := os.WriteFile(path, []byte("Ingredient,Aisle\nMilk,dairy\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAisles(path); err == nil {
		t.Fatal("Expected error for non-numeric aisle, got nil")
	}
}

func TestSortByAisleOrder(t *testing.T) {
	lookup := AisleLookup{"Bread": 3, "Ground Beef": 7, "Milk": 12}
	in := []string{"Milk", "Saffron", "Bread", "Anchovies", "Ground Beef"}

	got := SortByAisle(in, lookup)

	// Known ingredients ascend by aisle; unknowns sort last,
	// alphabetically.
	want := []string{"Bread", "Ground Beef", "Milk", "Anchovies", "Saffron"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestSortByAisleTieBreak(t *testing.T) {
	lookup := AisleLookup{"Yogurt": 5, "Butter": 5, "Cheese": 5}
	got := SortByAisle([]string{"Yogurt", "Cheese", "Butter"}, lookup)

	want := []string{"Butter", "Cheese", "Yogurt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestSortByAisleIsIdempotentAndPermutes(t *testing.T) {
	lookup := AisleLookup{"Bread": 3, "Milk": 12}
	in := []string{"Milk", "Saffron", "Bread"}

	once := SortByAisle(in, lookup)
	twice := SortByAisle(once, lookup)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Re-sorting changed the order: %v vs %v", once, twice)
	}

	if len(once) != len(in) {
		t.Fatalf("Output is not a permutation: %v", once)
	}
	seen := map[string]int{}
	for _, s := range in {
		seen[s]++
	}
	for _, s := range once {
		seen[s]--
	}
	for name, n := range seen {
		if n != 0 {
			t.Errorf("Element %q count mismatch after sort", name)
		}
	}

	// Input must not be mutated.
	if !reflect.DeepEqual(in, []string{"Milk", "Saffron", "Bread"}) {
		t.Errorf("SortByAisle mutated its input: %v", in)
	}
}
