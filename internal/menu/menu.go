package menu

// Meal is a single catalog row. Every field is an opaque string taken
// verbatim from the CSV, so two meals are equal only when all fields match.
type Meal struct {
	Name        string
	Ingredients string
	Image       string
}
