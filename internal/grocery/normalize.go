package grocery

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weekly-meal-planner/internal/menu"
)

// Normalize extracts the ingredient set for a selection. Each meal's raw
// ingredient field is split on commas, trimmed and title-cased, then all
// tokens are unioned into a single deduplicated set. Empty or
// whitespace-only tokens survive as empty strings; the source data is
// taken as-is rather than silently repaired.
func Normalize(selection []menu.Meal) []string {
	caser := cases.Title(language.English)
	seen := make(map[string]struct{})
	var out []string
	for _, m := range selection {
		for _, token := range strings.Split(m.Ingredients, ",") {
			name := caser.String(strings.TrimSpace(token))
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
