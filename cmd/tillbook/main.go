package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tillbook-dev/tillbook/internal/commands"
	"github.com/tillbook-dev/tillbook/internal/logger"
)

func main() {
	// Optional .env for local overrides such as TILLBOOK_DB.
	_ = godotenv.Load()

	log := logger.New()
	if err := commands.NewRootCommand(log).Execute(); err != nil {
		os.Exit(1)
	}
}
