package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/polygongallery/certification/internal/models"
)

// ReviewService presents every submitted artwork as one flat reviewable list
// and applies per-artwork status decisions.
type ReviewService struct {
	store SubmissionStore
}

func NewReviewService(store SubmissionStore) *ReviewService {
	return &ReviewService{store: store}
}

// List fetches every submission, flattens each one's artworks into review
// rows and sorts them newest first. A missing creation timestamp sorts as
// oldest; a missing status reads as pending.
func (s *ReviewService) List(ctx context.Context) ([]models.ReviewRow, error) {
	subs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.ReviewRow, 0, len(subs))
	for _, sub := range subs {
		for _, art := range sub.Artworks {
			if art.Status == "" {
				art.Status = models.StatusPending
			}
			rows = append(rows, models.ReviewRow{
				ArtworkRecord: art,
				SubmissionID:  sub.ID,
				Artist:        sub.Artist,
				Payment:       sub.Payment,
				CreatedAt:     sub.CreatedAt,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

// SetStatus marks one artwork certified or disapproved and returns the
// re-fetched, re-flattened list. The store serializes the update against
// concurrent writers; repeating a decision is a no-op.
func (s *ReviewService) SetStatus(ctx context.Context, artworkID, status string) ([]models.ReviewRow, error) {
	if status != models.StatusCertified && status != models.StatusDisapproved {
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrValidation, models.StatusCertified, models.StatusDisapproved)
	}
	if err := s.store.SetArtworkStatus(ctx, artworkID, status); err != nil {
		return nil, err
	}
	slog.Info("Artwork status updated.", "artworkId", artworkID, "status", status)
	return s.List(ctx)
}
