package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/polygongallery/certification/internal/api"
	"github.com/polygongallery/certification/internal/config"
	"github.com/polygongallery/certification/internal/gcp"
	"github.com/polygongallery/certification/internal/services"
)

func main() {
	// --- Set up structured logging ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("Critical error during server startup", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	firestoreClient, err := gcp.NewFirestoreClient(ctx, cfg.ProjectID)
	if err != nil {
		return err
	}
	defer firestoreClient.Close()

	uploader, err := gcp.NewUploader(ctx, cfg.Bucket)
	if err != nil {
		return err
	}
	defer uploader.Close()

	pinStore := services.NewFirestorePinStore(firestoreClient, cfg.PinCollection)
	paymentStore := services.NewFirestorePaymentStore(firestoreClient, cfg.PaymentCollection)
	submissionStore := services.NewFirestoreSubmissionStore(firestoreClient, cfg.SubmissionCollection)

	server := api.NewServer(
		cfg,
		services.NewPinService(pinStore),
		services.NewPaymentMethodService(paymentStore, uploader),
		services.NewSubmissionService(submissionStore, paymentStore, uploader, cfg.CertificationFee),
		services.NewReviewService(submissionStore),
	)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening.", "port", cfg.Port)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-shutdownCtx.Done():
		slog.Info("Shutdown signal received, draining connections.")
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(drainCtx); err != nil {
			return err
		}
	}
	return nil
}
