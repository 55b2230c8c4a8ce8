package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"GoHumorAI/app/clients"
	"GoHumorAI/app/configs"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ No .env file found, using process environment")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("❌ Error loading configs: %v", err)
	}
	if err = cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	dispatcher := cfg.BuildDispatcher()

	registry := clients.NewRegistry()
	if err = cfg.InitializeClients(registry, dispatcher); err != nil {
		log.Fatalf("❌ Error initializing clients: %v", err)
	}
	defer registry.CloseAll()

	log.Println("✅ Humor analysis bot is running. Press Ctrl+C to stop.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("🛑 Shutting down...")
}
