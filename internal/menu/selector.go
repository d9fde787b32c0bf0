package menu

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInsufficientCandidates is returned when the candidate pool is smaller
// than the requested selection size.
var ErrInsufficientCandidates = errors.New("not enough candidate meals")

// Selector draws weekly selections from a catalog.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a Selector. A nil rng gets a time-seeded source.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Select draws count meals uniformly at random, without replacement, from
// catalog minus exclusions. Exclusion matching is by full record: a meal is
// excluded only when every field matches an exclusion row exactly, so any
// field drift makes it eligible again.
func (s *Selector) Select(catalog, exclusions []Meal, count int) ([]Meal, error) {
	excluded := make(map[Meal]struct{}, len(exclusions))
	for _, m := range exclusions {
		excluded[m] = struct{}{}
	}

	candidates := make([]Meal, 0, len(catalog))
	for _, m := range catalog {
		if _, ok := excluded[m]; !ok {
			candidates = append(candidates, m)
		}
	}

	if len(candidates) < count {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientCandidates, len(candidates), count)
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:count], nil
}
