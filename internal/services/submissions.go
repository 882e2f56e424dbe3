package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/polygongallery/certification/internal/models"
	"github.com/polygongallery/certification/internal/upload"
)

const proofTrackerKey = "proof"

// SubmissionService runs the certification submission flow: validate the
// form, upload the payment proof, fan out the artwork uploads, then persist
// exactly one submission document. Any upload or write failure rejects the
// whole batch; nothing partial is ever persisted.
type SubmissionService struct {
	store    SubmissionStore
	payments PaymentStore
	uploader upload.Uploader
	fee      int
	now      func() time.Time
}

func NewSubmissionService(store SubmissionStore, payments PaymentStore, uploader upload.Uploader, fee int) *SubmissionService {
	return &SubmissionService{
		store:    store,
		payments: payments,
		uploader: uploader,
		fee:      fee,
		now:      time.Now,
	}
}

// Submit validates and persists one submission. images maps each artwork
// draft's FilePart to its image blob; proof is the payment screenshot.
func (s *SubmissionService) Submit(ctx context.Context, payload models.SubmissionPayload, proof *upload.Blob, images map[string]upload.Blob) (*models.Submission, error) {
	if err := validateSubmission(payload, proof, images); err != nil {
		return nil, err
	}

	method, err := s.payments.Get(ctx, payload.PaymentMethodID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown payment method", ErrValidation)
		}
		return nil, err
	}

	logCtx := slog.With("artistEmail", payload.Artist.Email, "artworkCount", len(payload.Artworks))
	logCtx.Info("Starting submission upload batch.")

	tracker := upload.NewTracker()
	stamp := s.now().UnixMilli()

	// The proof goes up first, on its own; the artwork fan-out only starts
	// once the proof is stored.
	proofPath := fmt.Sprintf("payments_proofs/%s_%d", payload.Artist.Email, stamp)
	proofURL, err := s.uploader.Upload(ctx, proofPath, *proof, func(p float64) {
		tracker.Set(proofTrackerKey, p)
	})
	if err != nil {
		logCtx.Error("Proof upload failed.", "error", err)
		return nil, fmt.Errorf("failed to upload payment proof: %w", err)
	}
	logCtx.Info("Payment proof stored.", "batchPct", tracker.Overall())

	// The batch figure covers the artwork transfers only; the finished
	// proof must not inflate the mean.
	tracker.Reset()

	imageURLs, err := s.uploadArtworks(ctx, logCtx, payload, images, tracker, stamp)
	if err != nil {
		return nil, err
	}

	records := make([]models.ArtworkRecord, len(payload.Artworks))
	for i, draft := range payload.Artworks {
		records[i] = models.ArtworkRecord{
			ID:         uuid.NewString(),
			Title:      draft.Title,
			Medium:     draft.Medium,
			Dimensions: draft.Dimensions,
			Year:       draft.Year,
			ImageURL:   imageURLs[i],
			Status:     models.StatusPending,
		}
	}

	sub := models.Submission{
		Artist:   payload.Artist,
		Artworks: records,
		Payment: models.Payment{
			Method:   method,
			ProofURL: proofURL,
			Amount:   s.fee,
		},
	}

	id, err := s.store.Create(ctx, sub)
	if err != nil {
		logCtx.Error("Submission write failed after uploads.", "error", err)
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}
	sub.ID = id

	logCtx.Info("Submission persisted.", "submissionId", id)
	return &sub, nil
}

// uploadArtworks uploads every artwork image concurrently, feeding the shared
// batch tracker. A single failure fails the batch.
func (s *SubmissionService) uploadArtworks(ctx context.Context, logCtx *slog.Logger, payload models.SubmissionPayload, images map[string]upload.Blob, tracker *upload.Tracker, stamp int64) ([]string, error) {
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(10)

	urls := make([]string, len(payload.Artworks))
	for i, draft := range payload.Artworks {
		idx := i
		key := draft.FilePart
		blob := images[key]
		objectName := fmt.Sprintf("artworks/%s/%d_%d_%s", payload.Artist.Email, stamp, idx, blob.Filename)

		tracker.Set(key, 0)
		eg.Go(func() error {
			imageURL, err := s.uploader.Upload(gctx, objectName, blob, func(p float64) {
				tracker.Set(key, p)
			})
			if err != nil {
				return fmt.Errorf("artwork %d: %w", idx, err)
			}
			urls[idx] = imageURL
			logCtx.Info("Artwork image stored.", "gcsObject", objectName, "batchPct", tracker.Overall())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logCtx.Error("Artwork upload batch failed.", "error", err)
		return nil, fmt.Errorf("failed to upload artwork images: %w", err)
	}
	return urls, nil
}

// validateSubmission gates the flow the way the form does: one aggregated
// message, nothing persisted on failure.
func validateSubmission(payload models.SubmissionPayload, proof *upload.Blob, images map[string]upload.Blob) error {
	a := payload.Artist
	if a.FullName == "" || a.Email == "" || a.Country == "" {
		return fmt.Errorf("%w: please fill artist details: full name, email, country", ErrValidation)
	}
	if len(payload.Artworks) == 0 {
		return fmt.Errorf("%w: at least one artwork is required", ErrValidation)
	}
	for _, d := range payload.Artworks {
		_, hasFile := images[d.FilePart]
		if d.Title == "" || d.Medium == "" || d.Dimensions == "" || d.Year == "" || d.FilePart == "" || !hasFile {
			return fmt.Errorf("%w: please fill all artwork details and upload an image for each artwork", ErrValidation)
		}
	}
	if payload.PaymentMethodID == "" {
		return fmt.Errorf("%w: choose a payment method first", ErrValidation)
	}
	if proof == nil {
		return fmt.Errorf("%w: please upload proof of payment screenshot", ErrValidation)
	}
	return nil
}
