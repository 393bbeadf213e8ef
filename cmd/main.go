package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gozar/app"
	"gozar/internal/common"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	application := app.NewApplication(
		common.WithLogger(logger),
		common.WithEnv(os.Getenv("APP_ENV")),
	)

	// Start with background context
	if err := application.Start(context.Background()); err != nil {
		logger.Fatal("failed to start application", zap.Error(err))
	}

	if application.Serving() {
		// Wait for shutdown signal
		sig := <-application.Done()
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	// Stop with timeout
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := application.Stop(stopCtx); err != nil {
		logger.Fatal("failed to stop application gracefully", zap.Error(err))
	}
}
