package grocery

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
)

// AisleLookup maps a title-cased ingredient name to its aisle number.
type AisleLookup map[string]int

// LoadAisles reads an Ingredient,Aisle CSV into a lookup table.
func LoadAisles(path string) (AisleLookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open aisle file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse aisle file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("aisle file %s is empty", path)
	}

	lookup := make(AisleLookup, len(records)-1)
	for _, row := range records[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("aisle file %s has a malformed row: %v", path, row)
		}
		aisle, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("aisle file %s has a non-numeric aisle for %q: %w", path, row[0], err)
		}
		lookup[row[0]] = aisle
	}
	return lookup, nil
}

// SortByAisle orders ingredients ascending by aisle number. Ingredients not
// present in the lookup sort after all known ones. Ties, including the
// whole unknown group, break alphabetically so the order is stable across
// runs.
func SortByAisle(ingredients []string, aisles AisleLookup) []string {
	out := make([]string, len(ingredients))
	copy(out, ingredients)

	aisleOf := func(name string) int {
		if n, ok := aisles[name]; ok {
			return n
		}
		return math.MaxInt
	}

	sort.Slice(out, func(i, j int) bool {
		ai, aj := aisleOf(out[i]), aisleOf(out[j])
		if ai != aj {
			return ai < aj
		}
		return out[i] < out[j]
	})
	return out
}
