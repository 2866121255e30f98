package main

import (
	"log"

	"github.com/alkime/recap/internal/config"
	"github.com/alkime/recap/internal/content"
	"github.com/alkime/recap/internal/keyring"
	"github.com/alkime/recap/internal/logger"
	"github.com/alkime/recap/internal/mail"
	"github.com/alkime/recap/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logger.SetupLogger(cfg)

	logger.Info("Starting recap server",
		"env", cfg.Env,
		"port", cfg.Port,
		"provider", cfg.SummaryProvider,
	)

	// Keys come from the environment first, then the system keychain.
	providerKey, err := keyring.APIKeyFromServiceName(cfg.SummaryProvider)
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}
	apiKey, err := keyring.Resolve(providerKey, cfg.ProviderAPIKey())
	if err != nil {
		logger.Warn("No API key for summary provider; summarize requests will fail",
			"provider", cfg.SummaryProvider, "error", err)
	}

	summarizer, err := content.New(cfg.SummaryProvider, apiKey)
	if err != nil {
		logger.Error("Failed to create summarizer", "error", err)
		log.Fatalf("Fatal: %v", err)
	}

	if token, err := keyring.Resolve(keyring.Postmark, cfg.PostmarkServerToken); err == nil {
		cfg.PostmarkServerToken = token
	}

	var sender mail.Sender
	if cfg.UsePostmark() {
		sender, err = mail.NewPostmark(mail.PostmarkConfig{
			ServerToken:  cfg.PostmarkServerToken,
			AccountToken: cfg.PostmarkAccountToken,
			SenderEmail:  cfg.SenderEmail,
		})
		if err != nil {
			logger.Error("Failed to create Postmark sender", "error", err)
			log.Fatalf("Fatal: %v", err)
		}
	} else {
		logger.Info("Postmark not configured; writing mail to disk", "dir", cfg.MailOutDir)
		sender = mail.NewDevSender(cfg.MailOutDir)
	}

	srv := server.New(cfg, logger, summarizer, sender)
	if err := server.Run(srv); err != nil {
		logger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
