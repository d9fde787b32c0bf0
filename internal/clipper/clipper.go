package clipper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"weekly-meal-planner/internal/menu"
)

// Clipper imports recipe pages into the catalog CSV.
type Clipper struct {
	httpClient  *http.Client
	catalogPath string
	log         *zap.Logger
}

// NewClipper creates a Clipper that appends to the given catalog file.
func NewClipper(catalogPath string, log *zap.Logger) *Clipper {
	return &Clipper{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		catalogPath: catalogPath,
		log:         log,
	}
}

// Import fetches a recipe page, extracts its title, ingredient names and
// lead image, and appends the result as a new catalog row.
func (c *Clipper) Import(ctx context.Context, url string) (*menu.Meal, error) {
	doc, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	meal, err := extractMeal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract recipe from %s: %w", url, err)
	}

	catalog, err := menu.Load(c.catalogPath)
	if err != nil {
		return nil, err
	}
	catalog = append(catalog, *meal)
	if err := menu.Save(c.catalogPath, catalog); err != nil {
		return nil, err
	}

	c.log.Info("recipe imported",
		zap.String("meal", meal.Name),
		zap.String("source", url),
	)
	return meal, nil
}

func (c *Clipper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	// Remove noise before extraction.
	doc.Find("script, style, nav, footer, iframe").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})
	return doc, nil
}

func extractMeal(doc *goquery.Document) (*menu.Meal, error) {
	title := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return nil, fmt.Errorf("page has no usable title")
	}

	var ingredients []string
	doc.Find(`[class*="ingredient"] li, [id*="ingredient"] li`).Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			ingredients = append(ingredients, text)
		}
	})
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("page has no recognizable ingredient list")
	}

	image := strings.TrimSpace(doc.Find(`meta[property="og:image"]`).AttrOr("content", ""))

	return &menu.Meal{
		Name:        title,
		Ingredients: strings.Join(ingredients, ", "),
		Image:       image,
	}, nil
}
