package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"weekly-meal-planner/internal/clipper"
	"weekly-meal-planner/internal/config"
	"weekly-meal-planner/internal/grocery"
	"weekly-meal-planner/internal/history"
	"weekly-meal-planner/internal/mail"
	"weekly-meal-planner/internal/menu"
	"weekly-meal-planner/internal/pricing"
)

// Sender delivers the rendered weekly email.
type Sender interface {
	Send(subject, htmlBody string) error
}

// Notifier pushes a best-effort plain-text summary.
type Notifier interface {
	Notify(text string) error
}

// App holds the application's dependencies.
type App struct {
	cfg      *config.Config
	selector *menu.Selector
	enricher *pricing.Enricher
	mailer   Sender
	notifier Notifier
	history  *history.Repository
	clipper  *clipper.Clipper
	log      *zap.Logger
}

// NewApp creates and initializes a new App instance. The notifier and
// history repository may be nil; both are optional.
func NewApp(
	cfg *config.Config,
	selector *menu.Selector,
	enricher *pricing.Enricher,
	mailer Sender,
	notifier Notifier,
	historyRepo *history.Repository,
	recipeClipper *clipper.Clipper,
	log *zap.Logger,
) *App {
	return &App{
		cfg:      cfg,
		selector: selector,
		enricher: enricher,
		mailer:   mailer,
		notifier: notifier,
		history:  historyRepo,
		clipper:  recipeClipper,
		log:      log,
	}
}

// Run executes one weekly planning pass: select meals, persist them as the
// next run's exclusion set, build the aisle-sorted grocery list, enrich it
// with catalog prices and images, compose the additional lists, and send
// the email. Selection failures abort before any network activity.
func (a *App) Run(ctx context.Context) error {
	catalog, err := menu.Load(a.cfg.Data.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	lastWeek, err := menu.Load(a.cfg.Data.LastWeekPath)
	if err != nil {
		return fmt.Errorf("failed to load last week's meals: %w", err)
	}
	aisles, err := grocery.LoadAisles(a.cfg.Data.AislePath)
	if err != nil {
		return fmt.Errorf("failed to load aisle lookup: %w", err)
	}
	static, err := grocery.LoadLines(a.cfg.Data.WeeklyListPath)
	if err != nil {
		return fmt.Errorf("failed to load weekly grocery list: %w", err)
	}
	alternate, err := grocery.LoadLines(a.cfg.Data.BiweeklyListPath)
	if err != nil {
		return fmt.Errorf("failed to load biweekly grocery list: %w", err)
	}

	selection, err := a.selector.Select(catalog, lastWeek, a.cfg.Planner.MealCount)
	if err != nil {
		if errors.Is(err, menu.ErrInsufficientCandidates) {
			return fmt.Errorf("cannot plan this week: %w", err)
		}
		return err
	}

	if err := menu.Save(a.cfg.Data.LastWeekPath, selection); err != nil {
		return fmt.Errorf("failed to persist selection as exclusion set: %w", err)
	}

	if len(selection) == 0 {
		a.log.Info("no meals available to send")
		return nil
	}
	a.log.Info("meals selected", zap.Int("count", len(selection)))

	ingredients := grocery.Normalize(selection)
	ordered := grocery.SortByAisle(ingredients, aisles)

	enriched, imageSlots := a.enricher.Enrich(ctx, ordered)
	images := a.enricher.SampleImages(imageSlots, 4)
	a.log.Info("ingredients enriched", zap.Int("count", len(enriched)))

	composer := grocery.NewComposer(static, alternate, grocery.NewCounterStore(a.cfg.Data.CounterPath))
	additional, counter, err := composer.Compose()
	if err != nil {
		return fmt.Errorf("failed to compose grocery lists: %w", err)
	}

	body, err := mail.Render(selection, enriched, additional, images)
	if err != nil {
		return err
	}
	if err := a.mailer.Send(a.cfg.SMTP.Subject, body); err != nil {
		return fmt.Errorf("failed to send weekly email: %w", err)
	}
	a.log.Info("weekly email sent", zap.String("recipient", a.cfg.SMTP.Recipient))

	if a.notifier != nil {
		if err := a.notifier.Notify(planSummary(selection, len(enriched)+len(additional))); err != nil {
			a.log.Warn("telegram notification failed", zap.Error(err))
		}
	}

	if a.history != nil {
		if err := a.recordRun(ctx, selection, enriched, additional, counter); err != nil {
			a.log.Warn("failed to record run history", zap.Error(err))
		}
	}

	return nil
}

// Import clips a recipe page into the catalog.
func (a *App) Import(ctx context.Context, url string) error {
	meal, err := a.clipper.Import(ctx, url)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %q with ingredients: %s\n", meal.Name, meal.Ingredients)
	return nil
}

// History prints the most recent archived runs.
func (a *App) History(ctx context.Context, limit int) error {
	runs, err := a.history.ListRecent(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	for _, run := range runs {
		fmt.Printf("%s  run #%d  %s\n", run.CreatedAt.Format("2006-01-02 15:04"), run.RunCounter, strings.Join(run.Meals, ", "))
	}
	return nil
}

func (a *App) recordRun(ctx context.Context, selection []menu.Meal, enriched []pricing.EnrichedIngredient, additional []string, counter int) error {
	meals := make([]string, 0, len(selection))
	for _, m := range selection {
		meals = append(meals, m.Name)
	}
	groceries := make([]string, 0, len(enriched)+len(additional))
	for _, e := range enriched {
		groceries = append(groceries, fmt.Sprintf("%s: %s", e.Name, e.Price))
	}
	groceries = append(groceries, additional...)

	return a.history.Save(ctx, &history.Run{
		Meals:      meals,
		Groceries:  groceries,
		RunCounter: counter,
	})
}

func planSummary(selection []menu.Meal, itemCount int) string {
	var sb strings.Builder
	sb.WriteString("This week's menu:\n")
	for _, m := range selection {
		fmt.Fprintf(&sb, "- %s\n", m.Name)
	}
	fmt.Fprintf(&sb, "Grocery list: %d items. Details in your inbox.", itemCount)
	return sb.String()
}
