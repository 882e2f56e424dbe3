package services

import (
	"context"
	"errors"
	"time"

	"github.com/polygongallery/certification/internal/models"
)

// Store contracts for the hosted document database. Services depend on these
// narrow interfaces; the Firestore implementations live in firestore.go and
// tests substitute in-memory fakes.

var (
	// ErrNotFound reports a missing document or embedded record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPin reports a PIN mismatch.
	ErrInvalidPin = errors.New("incorrect PIN")
	// ErrPinLocked reports that PIN verification is refused until the
	// failure cooldown passes.
	ErrPinLocked = errors.New("too many failed attempts, try again later")
	// ErrValidation reports missing or malformed user input. The message
	// wrapped around it is safe to show to the client.
	ErrValidation = errors.New("validation failed")
)

// PinRecord is the stored dashboard credential: a bcrypt hash plus the
// consecutive-failure counter driving the verification backoff.
type PinRecord struct {
	Hash        string    `firestore:"hash"`
	Attempts    int       `firestore:"attempts"`
	LastFailure time.Time `firestore:"lastFailure,omitempty"`
}

// PinStore reads and writes the single shared credential record.
type PinStore interface {
	// Get returns the stored record, or found=false when no PIN has ever
	// been set.
	Get(ctx context.Context) (rec PinRecord, found bool, err error)
	Put(ctx context.Context, rec PinRecord) error
}

// PaymentStore is the staff-maintained registry of payment destinations.
type PaymentStore interface {
	List(ctx context.Context) ([]models.PaymentMethod, error)
	Get(ctx context.Context, id string) (models.PaymentMethod, error)
	Create(ctx context.Context, m models.PaymentMethod) (string, error)
	Update(ctx context.Context, m models.PaymentMethod) error
	Delete(ctx context.Context, id string) error
}

// SubmissionStore persists submissions and resolves the read-modify-write of
// a single artwork's status so callers never race on the parent document.
type SubmissionStore interface {
	Create(ctx context.Context, sub models.Submission) (string, error)
	ListAll(ctx context.Context) ([]models.Submission, error)
	// SetArtworkStatus locates the submission owning the artwork with the
	// given id and rewrites that entry's status in place. Returns
	// ErrNotFound when no submission contains the id.
	SetArtworkStatus(ctx context.Context, artworkID, status string) error
}
