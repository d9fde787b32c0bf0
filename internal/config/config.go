package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration for the application.
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	LogLevel string         `mapstructure:"log_level"`
}

// DataConfig locates the data files the planner reads and writes.
type DataConfig struct {
	CatalogPath      string `mapstructure:"catalog_path"`
	LastWeekPath     string `mapstructure:"last_week_path"`
	AislePath        string `mapstructure:"aisle_path"`
	WeeklyListPath   string `mapstructure:"weekly_list_path"`
	BiweeklyListPath string `mapstructure:"biweekly_list_path"`
	CounterPath      string `mapstructure:"counter_path"`
	HistoryDBPath    string `mapstructure:"history_db_path"`
}

// PlannerConfig controls meal selection.
type PlannerConfig struct {
	MealCount int `mapstructure:"meal_count"`
}

// PricingConfig controls the catalog enrichment lookups.
type PricingConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	MerchantReference string        `mapstructure:"merchant_reference"`
	Currency          string        `mapstructure:"currency"`
	Workers           int           `mapstructure:"workers"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// SMTPConfig holds the mail submission settings.
type SMTPConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Sender    string `mapstructure:"sender"`
	Password  string `mapstructure:"password"`
	Recipient string `mapstructure:"recipient"`
	Subject   string `mapstructure:"subject"`
}

// TelegramConfig holds the optional Telegram notification settings.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// ScheduleConfig controls the weekly cron trigger.
type ScheduleConfig struct {
	Timezone string `mapstructure:"timezone"`
	Weekday  string `mapstructure:"weekday"`
	At       string `mapstructure:"at"`
}

// Load builds the configuration from defaults, an optional .env file and
// environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MEALPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("smtp.sender", "SMTP_SENDER")
	v.BindEnv("smtp.password", "SMTP_PASSWORD")
	v.BindEnv("smtp.recipient", "SMTP_RECIPIENT")
	v.BindEnv("telegram.bot_token", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("telegram.chat_id", "TELEGRAM_CHAT_ID")
	v.BindEnv("log_level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.catalog_path", "data/full_menu.csv")
	v.SetDefault("data.last_week_path", "data/last_week_meals.csv")
	v.SetDefault("data.aisle_path", "data/aisle_numbers.csv")
	v.SetDefault("data.weekly_list_path", "data/weekly_grocery_list.txt")
	v.SetDefault("data.biweekly_list_path", "data/bi_weekly_grocery_list.txt")
	v.SetDefault("data.counter_path", "data/run_counter.txt")
	v.SetDefault("data.history_db_path", "data/history.db")

	v.SetDefault("planner.meal_count", 4)

	v.SetDefault("pricing.base_url", "https://api.aldi.us/v1")
	v.SetDefault("pricing.merchant_reference", "474-116")
	v.SetDefault("pricing.currency", "USD")
	v.SetDefault("pricing.workers", 30)
	v.SetDefault("pricing.timeout", "10s")

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 465)
	v.SetDefault("smtp.subject", "ILY Weekly Food Menu")

	v.SetDefault("schedule.timezone", "Local")
	v.SetDefault("schedule.weekday", "Monday")
	v.SetDefault("schedule.at", "08:00")

	v.SetDefault("log_level", "info")
}

func validate(cfg *Config) error {
	if cfg.Planner.MealCount <= 0 {
		return fmt.Errorf("planner meal count must be positive, got %d", cfg.Planner.MealCount)
	}
	if cfg.Pricing.Workers <= 0 {
		return fmt.Errorf("pricing workers must be positive, got %d", cfg.Pricing.Workers)
	}
	if cfg.Pricing.Timeout <= 0 {
		return fmt.Errorf("pricing timeout must be positive, got %s", cfg.Pricing.Timeout)
	}
	if cfg.Pricing.BaseURL == "" {
		return fmt.Errorf("pricing base URL is required")
	}
	return nil
}
