package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	maxbot "github.com/max-messenger/max-bot-api-client-go"

	"github.com/SanyamDa/DeadelinesBot/internal/config"
	"github.com/SanyamDa/DeadelinesBot/internal/handlers"
	"github.com/SanyamDa/DeadelinesBot/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		log.Fatal("BOT_TOKEN environment variable is required")
	}

	cfg := loadConfig()

	api, err := maxbot.New(botToken)
	if err != nil {
		log.Fatalf("Failed to create bot API client: %v", err)
	}

	store := storage.NewFileStore(cfg.DeadlinesFile)
	handler := handlers.New(store)

	botCtx := context.Background()
	botInfo, err := api.Bots.GetBot(botCtx)
	if err != nil {
		log.Printf("Failed to get bot info: %v", err)
	} else {
		fmt.Printf("🤖 Bot: %s\n", botInfo.Name)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		exit := make(chan os.Signal, 1)
		signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
		<-exit
		fmt.Println("\n🛑 Shutting down bot...")
		cancel()
	}()

	fmt.Println("🚀 Starting to process updates...")

	for update := range api.GetUpdates(ctx) {
		handler.HandleUpdate(ctx, api, update)
	}

	fmt.Println("👋 Bot stopped")
}

// loadConfig reads the TOML config, falling back to defaults when the user
// config dir is unavailable or the file is unreadable.
func loadConfig() config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		log.Printf("No user config dir, using defaults: %v", err)
		return config.Config{DeadlinesFile: config.DefaultDataFileName}
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		log.Printf("Config %s unreadable, using defaults: %v", path, err)
	}
	return cfg
}
