package main

import (
	"flag"
	"log"

	"edu_feedback_backend/internal/app"
	"edu_feedback_backend/internal/config"
	"edu_feedback_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}
	defer logger.Log.Sync()
	defer application.Close()

	// The engine is an in-process library; the binary exists to prove
	// the bootstrap path (config, store backend, seeds) end to end.
	log.Printf("engine initialized: %d campaigns, %d submissions, %d unread notifications",
		application.Analytics.TotalCampaigns(),
		application.Analytics.TotalSubmissions(),
		application.Notifications.UnreadCount(),
	)
}
