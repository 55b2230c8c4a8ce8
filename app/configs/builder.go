package configs

import (
	"fmt"
	"log"
	"time"

	"GoHumorAI/app/analysis"
	"GoHumorAI/app/clients"
	"GoHumorAI/app/models"
)

func (c *Config) BuildDispatcher() *analysis.Dispatcher {
	timeout := time.Duration(c.Limits.RequestTimeoutSeconds) * time.Second

	text := models.NewTextClient(models.Options{
		BaseURL:  c.Backends.Text.BaseURL,
		Endpoint: c.Backends.Text.Endpoint,
		Model:    c.Backends.Text.Model,
		APIKey:   c.Backends.Text.APIKey,
		Timeout:  timeout,
	})

	vision := models.NewVisionClient(models.Options{
		BaseURL:     c.Backends.Vision.BaseURL,
		Endpoint:    c.Backends.Vision.Endpoint,
		Model:       c.Backends.Vision.Model,
		APIKey:      c.Backends.Vision.APIKey,
		Timeout:     timeout,
		MaxAttempts: c.Limits.VisionAttempts,
		RetryPause:  time.Duration(c.Limits.RetryPauseSeconds) * time.Second,
	})

	return analysis.NewDispatcher(text, vision, analysis.Limits{
		MaxInputChars:  c.Limits.MaxInputChars,
		MaxOutputChars: c.Limits.MaxOutputChars,
	})
}

func (c *Config) InitializeClients(clientRegistry *clients.Registry, d *analysis.Dispatcher) error {
	if len(c.Clients) == 0 {
		log.Println("ℹ️ No clients configured")
		return nil
	}

	for _, clientCfg := range c.Clients {
		if !clientCfg.Enabled {
			log.Printf("⏭️ Client %s is disabled, skipping\n", clientCfg.Type)
			continue
		}

		log.Printf("🔌 Initializing %s client...\n", clientCfg.Type)
		client, err := clients.CreateClient(clientCfg)
		if err != nil {
			return fmt.Errorf("failed to create %s client: %w", clientCfg.Type, err)
		}

		if err := clientRegistry.Register(client, d); err != nil {
			return fmt.Errorf("failed to register %s client: %w", clientCfg.Type, err)
		}

		log.Printf("✅ %s client initialized\n", clientCfg.Type)
	}

	return nil
}
