package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"weekly-meal-planner/internal/app"
	"weekly-meal-planner/internal/clipper"
	"weekly-meal-planner/internal/config"
	"weekly-meal-planner/internal/database"
	"weekly-meal-planner/internal/history"
	"weekly-meal-planner/internal/logging"
	"weekly-meal-planner/internal/mail"
	"weekly-meal-planner/internal/menu"
	"weekly-meal-planner/internal/pricing"
	"weekly-meal-planner/internal/scheduler"
	"weekly-meal-planner/internal/telegram"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		application, cleanup := buildApp(cfg, logger)
		defer cleanup()
		if err := application.Run(ctx); err != nil {
			logger.Fatal("run failed", zap.Error(err))
		}
	case "schedule":
		application, cleanup := buildApp(cfg, logger)
		defer cleanup()

		sched, err := scheduler.New(cfg.Schedule.Timezone, logger)
		if err != nil {
			logger.Fatal("scheduler init failed", zap.Error(err))
		}
		err = sched.Schedule(cfg.Schedule.Weekday, cfg.Schedule.At, func() {
			if err := application.Run(ctx); err != nil {
				logger.Error("scheduled run failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Fatal("scheduling failed", zap.Error(err))
		}
		sched.Start()
		defer sched.Stop()

		waitCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-waitCtx.Done()
		logger.Info("scheduler stopping")
	case "import":
		importCmd := flag.NewFlagSet("import", flag.ExitOnError)
		importCmd.Parse(os.Args[2:])
		if importCmd.NArg() != 1 {
			fmt.Println("Usage: weekly-meal-planner import <recipe-url>")
			os.Exit(1)
		}

		recipeClipper := clipper.NewClipper(cfg.Data.CatalogPath, logger)
		application := app.NewApp(cfg, nil, nil, nil, nil, nil, recipeClipper, logger)
		if err := application.Import(ctx, importCmd.Arg(0)); err != nil {
			logger.Fatal("import failed", zap.Error(err))
		}
	case "history":
		historyCmd := flag.NewFlagSet("history", flag.ExitOnError)
		limit := historyCmd.Int("n", 10, "Number of runs to show")
		historyCmd.Parse(os.Args[2:])

		db, err := database.NewDB(cfg.Data.HistoryDBPath)
		if err != nil {
			logger.Fatal("database init failed", zap.Error(err))
		}
		defer db.Close()

		application := app.NewApp(cfg, nil, nil, nil, nil, history.NewRepository(db.SQL), nil, logger)
		if err := application.History(ctx, *limit); err != nil {
			logger.Fatal("history failed", zap.Error(err))
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// buildApp wires the full pipeline for run and schedule.
func buildApp(cfg *config.Config, logger *zap.Logger) (*app.App, func()) {
	mailer, err := mail.NewMailer(cfg.SMTP)
	if err != nil {
		logger.Fatal("mailer init failed", zap.Error(err))
	}

	var notifier app.Notifier
	if cfg.Telegram.BotToken != "" {
		n, err := telegram.NewNotifier(cfg.Telegram, logger)
		if err != nil {
			logger.Fatal("telegram init failed", zap.Error(err))
		}
		notifier = n
	}

	db, err := database.NewDB(cfg.Data.HistoryDBPath)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selector := menu.NewSelector(rng)
	enricher := pricing.NewEnricher(pricing.NewClient(cfg.Pricing), cfg.Pricing.Workers, logger, nil)
	recipeClipper := clipper.NewClipper(cfg.Data.CatalogPath, logger)

	application := app.NewApp(
		cfg,
		selector,
		enricher,
		mailer,
		notifier,
		history.NewRepository(db.SQL),
		recipeClipper,
		logger,
	)
	return application, func() { db.Close() }
}

func printUsage() {
	fmt.Println("Usage: weekly-meal-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  run                Select meals, build the grocery list and send the email")
	fmt.Println("  schedule           Run the pipeline weekly on the configured schedule")
	fmt.Println("  import <url>       Clip a recipe page into the catalog")
	fmt.Println("  history -n N       Show the N most recent runs")
}
