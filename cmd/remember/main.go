package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"vadimgribanov.com/remember/internal/config"
	"vadimgribanov.com/remember/internal/database"
	"vadimgribanov.com/remember/internal/repositories"
	"vadimgribanov.com/remember/internal/services"
	"vadimgribanov.com/remember/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("remember failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	if err := logging.SetupLogger(); err != nil {
		return err
	}

	if err := godotenv.Load(); err != nil {
		slog.DebugContext(ctx, "No .env file loaded", "error", err)
	}

	requestID := uuid.New().String()

	argv := os.Args[1:]
	if len(argv) < 2 {
		return emit(services.Error{Message: services.Usage})
	}
	slog.DebugContext(ctx, "Handling action", "action", argv[0], "agent_id", argv[1], "request_id", requestID)

	appConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	dbPath, err := appConfig.StorePath()
	if err != nil {
		return err
	}

	db, err := database.NewDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	memoryRepo := repositories.NewMemoryRepo(db)
	memoryService := services.NewMemoryService(memoryRepo)

	result, err := memoryService.Dispatch(argv)
	if err != nil {
		return err
	}

	return emit(result)
}

// emit writes the single JSON line that makes up the program's stdout.
// HTML escaping is off so payloads like "set requires <key> and <value>"
// reach the caller byte for byte.
func emit(result services.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
