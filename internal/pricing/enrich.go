package pricing

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PriceUnavailable is the placeholder substituted for any failed lookup.
const PriceUnavailable = "Not available"

// EnrichedIngredient is one ingredient with its catalog data attached.
type EnrichedIngredient struct {
	Name  string
	Price string
	Image string
}

// OfferLookup is the catalog query the enricher fans out over.
type OfferLookup interface {
	Lookup(ctx context.Context, item string) (Offer, error)
}

// Enricher runs catalog lookups for an ordered ingredient list under a
// bounded worker pool.
type Enricher struct {
	client  OfferLookup
	workers int
	log     *zap.Logger
	rng     *rand.Rand
}

// NewEnricher creates an Enricher with the given concurrency cap. A nil
// rng gets a time-seeded source.
func NewEnricher(client OfferLookup, workers int, log *zap.Logger, rng *rand.Rand) *Enricher {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Enricher{client: client, workers: workers, log: log, rng: rng}
}

// Enrich looks up every ingredient concurrently, at most `workers` requests
// in flight at once. Results land in the slot matching the ingredient's
// input position, so the output order is the input order no matter which
// request finishes first. Each slot is written by exactly one goroutine.
//
// A failed lookup only affects its own slot: the ingredient gets the
// "Not available" placeholder and an empty image, and every other lookup
// proceeds untouched. There are no retries.
func (e *Enricher) Enrich(ctx context.Context, items []string) ([]EnrichedIngredient, []string) {
	results := make([]EnrichedIngredient, len(items))
	images := make([]string, len(items))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			offer, err := e.client.Lookup(ctx, item)
			if err != nil {
				e.log.Warn("ingredient lookup failed",
					zap.String("ingredient", item),
					zap.Error(err),
				)
				results[i] = EnrichedIngredient{Name: item, Price: PriceUnavailable}
				return nil
			}
			results[i] = EnrichedIngredient{Name: item, Price: offer.FormattedPrice, Image: offer.ImageHTML}
			images[i] = offer.ImageHTML
			return nil
		})
	}
	g.Wait()

	return results, images
}

// SampleImages draws up to max non-empty image snippets, without
// replacement, and joins them into a single markup blob. Fewer than max
// non-empty snippets means all of them are used.
func (e *Enricher) SampleImages(images []string, max int) string {
	nonEmpty := make([]string, 0, len(images))
	for _, img := range images {
		if img != "" {
			nonEmpty = append(nonEmpty, img)
		}
	}

	e.rng.Shuffle(len(nonEmpty), func(i, j int) {
		nonEmpty[i], nonEmpty[j] = nonEmpty[j], nonEmpty[i]
	})
	if len(nonEmpty) > max {
		nonEmpty = nonEmpty[:max]
	}
	return strings.Join(nonEmpty, " ")
}
