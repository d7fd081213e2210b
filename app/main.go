package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/flathunt/flathunt/app/cfg"
	"github.com/flathunt/flathunt/app/config"
	"github.com/flathunt/flathunt/app/database"
	"github.com/flathunt/flathunt/app/idealista"
	"github.com/flathunt/flathunt/app/ingest"
	"github.com/flathunt/flathunt/app/notify"
	"github.com/flathunt/flathunt/app/tasks"
)

func main() {
	// Credentials may live in a local .env file; a missing file is fine
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting flathunt run", "version", appCfg.Version)

	profile, err := config.NewLoader(appCfg.ProfilePath).Load()
	if err != nil {
		log.Fatalf("Failed to load search profile: %v", err)
	}

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Debug("Database ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	repo := database.NewListingRepository(db)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	client := idealista.NewClient(appCfg.APIKey, appCfg.APISecret, appCfg.UserAgent, httpClient)

	ingester := ingest.NewIngester(
		ingest.NewParser(),
		ingest.NewFilterer(profile.Ingest.ExcludeMarkers),
		repo)

	renderer := notify.NewRenderer(profile.Digest.ReferenceAddress)

	var notifier notify.Notifier
	channel := "file"
	if appCfg.Email {
		channel = "email"
		notifier = notify.NewEmailNotifier(renderer, notify.EmailSettings{
			Host:     appCfg.SMTPHost,
			Port:     appCfg.SMTPPort,
			Sender:   appCfg.SenderAddress,
			Receiver: appCfg.ReceiverAddress,
			Password: appCfg.SMTPPassword,
			Subject:  profile.Digest.Subject,
		})
	} else {
		notifier = notify.NewFileNotifier(renderer, appCfg.ResultsPath)
	}

	var taskList []tasks.TaskInterface
	if !appCfg.SkipFetch {
		taskList = append(taskList,
			tasks.NewFetchListingsTask(client, profile.Search, appCfg.Page, appCfg.DataDir))
	}
	if !appCfg.SkipIngest {
		taskList = append(taskList,
			tasks.NewIngestPayloadsTask(ingester, appCfg.DataDir))
	}
	if !appCfg.SkipNotify {
		taskList = append(taskList,
			tasks.NewSendDigestTask(repo, notifier, channel))
	}

	if len(taskList) == 0 {
		slog.Warn("All stages skipped, nothing to do")
		return
	}

	if err := tasks.NewRunner().Run(context.Background(), taskList); err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	slog.Info("Run complete")
}
