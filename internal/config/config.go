package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the server. Everything comes from the
// environment; a local .env file is loaded first when present.
type Config struct {
	Port       string
	ProjectID  string
	Bucket     string
	JWTSecret  string
	CORSOrigin string

	// Firestore collection names. The submissions collection is named
	// "artworks" for historical reasons and must stay that way to keep
	// reading documents written by earlier deployments.
	PinCollection        string
	PaymentCollection    string
	SubmissionCollection string

	// CertificationFee is the fixed USD fee recorded per artwork. It is a
	// constant of the business, not derived from the payment proof.
	CertificationFee int
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found. Using system environment variables.")
	}

	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID environment variable must be set")
	}
	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("STORAGE_BUCKET environment variable must be set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set")
	}

	fee, err := strconv.Atoi(getEnv("CERTIFICATION_FEE", "100"))
	if err != nil {
		return nil, fmt.Errorf("CERTIFICATION_FEE must be an integer: %w", err)
	}

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		ProjectID:            projectID,
		Bucket:               bucket,
		JWTSecret:            jwtSecret,
		CORSOrigin:           getEnv("CORS_ORIGIN", "*"),
		PinCollection:        getEnv("PIN_COLLECTION", "pin"),
		PaymentCollection:    getEnv("PAYMENT_COLLECTION", "payments"),
		SubmissionCollection: getEnv("SUBMISSION_COLLECTION", "artworks"),
		CertificationFee:     fee,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
