package menu

import (
	"encoding/csv"
	"fmt"
	"os"
)

var header = []string{"Meal", "Ingredients", "Image"}

// Load reads a meal CSV file. The catalog and the last-week exclusion file
// share the same shape: a Meal,Ingredients,Image header followed by one row
// per meal.
func Load(path string) ([]Meal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open meal file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse meal file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("meal file %s is empty", path)
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, required := range header {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("meal file %s is missing column %q", path, required)
		}
	}

	meals := make([]Meal, 0, len(records)-1)
	for _, row := range records[1:] {
		meals = append(meals, Meal{
			Name:        row[cols["Meal"]],
			Ingredients: row[cols["Ingredients"]],
			Image:       row[cols["Image"]],
		})
	}
	return meals, nil
}

// Save overwrites path with the given meals. Used to persist this week's
// selection as the next run's exclusion set.
func Save(path string, meals []Meal) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create meal file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, m := range meals {
		if err := w.Write([]string{m.Name, m.Ingredients, m.Image}); err != nil {
			return fmt.Errorf("failed to write meal row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush meal file %s: %w", path, err)
	}
	return nil
}
