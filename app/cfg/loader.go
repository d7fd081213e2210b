package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version == "" {
		return "unknown"
	}
	return Version
}

type rawCfg struct {
	// Provider credentials
	APIKey    string `long:"api-key" env:"IDEALISTA_API_KEY" description:"Idealista API key"`
	APISecret string `long:"api-secret" env:"IDEALISTA_API_SECRET" description:"Idealista API secret"`

	// SMTP delivery
	SMTPHost        string `long:"smtp-host" env:"SMTP_HOST" default:"smtp.gmail.com" description:"SMTP server host"`
	SMTPPort        int    `long:"smtp-port" env:"SMTP_PORT" default:"587" description:"SMTP submission port"`
	SenderAddress   string `long:"sender" env:"GMAIL_SENDER_ADDRESS" description:"Digest sender email address"`
	ReceiverAddress string `long:"receiver" env:"GMAIL_RECEIVER_ADDRESS" description:"Digest recipient email address"`
	SMTPPassword    string `long:"smtp-password" env:"GMAIL_APP_PASSWORD" description:"SMTP application password"`

	// Paths
	DBPath      string `long:"db-path" env:"DB_PATH" default:"db.sqlite" description:"SQLite database file"`
	DataDir     string `long:"data-dir" env:"DATA_DIR" default:"data" description:"Directory for archived payload files"`
	ResultsPath string `long:"results-path" env:"RESULTS_PATH" default:"results" description:"Plain-text result log file"`
	ProfilePath string `long:"profile" env:"PROFILE_PATH" default:"profile.yml" description:"Search profile file"`

	// Run control
	SkipFetch  bool `long:"skip-fetch" env:"SKIP_FETCH" description:"Skip the fetch stage"`
	SkipIngest bool `long:"skip-ingest" env:"SKIP_INGEST" description:"Skip the ingest stage"`
	SkipNotify bool `long:"skip-notify" env:"SKIP_NOTIFY" description:"Skip the notify stage"`
	Email      bool `long:"email" env:"NOTIFY_EMAIL" description:"Deliver digest by email instead of appending to the result log"`
	Page       int  `long:"page" env:"SEARCH_PAGE" default:"1" description:"Result page to fetch"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Flathunt/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Europe/Rome)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		APIKey:          raw.APIKey,
		APISecret:       raw.APISecret,
		SMTPHost:        raw.SMTPHost,
		SMTPPort:        raw.SMTPPort,
		SenderAddress:   raw.SenderAddress,
		ReceiverAddress: raw.ReceiverAddress,
		SMTPPassword:    raw.SMTPPassword,
		DBPath:          raw.DBPath,
		DataDir:         raw.DataDir,
		ResultsPath:     raw.ResultsPath,
		ProfilePath:     raw.ProfilePath,
		SkipFetch:       raw.SkipFetch,
		SkipIngest:      raw.SkipIngest,
		SkipNotify:      raw.SkipNotify,
		Email:           raw.Email,
		Page:            raw.Page,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
