package grocery

import "fmt"

// Composer combines the static weekly grocery list with the biweekly
// alternate list, gated by the persisted run counter.
type Composer struct {
	static    []string
	alternate []string
	counter   *CounterStore
}

// NewComposer creates a Composer over already-loaded lists and a counter
// store.
func NewComposer(static, alternate []string, counter *CounterStore) *Composer {
	return &Composer{static: static, alternate: alternate, counter: counter}
}

// Compose returns the combined grocery list and the updated counter. The
// alternate list is included on odd counter values. The increment is
// flushed before returning, exactly once per call; a crash before the
// flush leaves the old value in place, so the increment is at-most-once.
func (c *Composer) Compose() ([]string, int, error) {
	count, err := c.counter.Load()
	if err != nil {
		return nil, 0, err
	}

	combined := make([]string, 0, len(c.static)+len(c.alternate))
	combined = append(combined, c.static...)
	if count%2 == 1 {
		combined = append(combined, c.alternate...)
	}

	next := count + 1
	if err := c.counter.Save(next); err != nil {
		return nil, 0, fmt.Errorf("failed to persist run counter: %w", err)
	}
	return combined, next, nil
}
