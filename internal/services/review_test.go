package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polygongallery/certification/internal/models"
)

func seedSubmissions(t *testing.T) *memSubmissionStore {
	t.Helper()
	return &memSubmissionStore{
		subs: []models.Submission{
			{
				ID:     "sub-old",
				Artist: models.ArtistInfo{FullName: "Jane Doe", Email: "jane@x.com", Country: "Canada"},
				Artworks: []models.ArtworkRecord{
					{ID: "art-1", Title: "Sunset", Medium: "Oil", Dimensions: "50x50cm", Year: "2024", ImageURL: "https://blobs.test/a"},
					{ID: "art-2", Title: "Dawn", Medium: "Ink", Dimensions: "20x20cm", Year: "2023", ImageURL: "https://blobs.test/b", Status: models.StatusCertified},
				},
				Payment: models.Payment{
					Method:   models.PaymentMethod{Name: "USDT", Address: "0xabc", Network: "TRC20"},
					ProofURL: "https://blobs.test/proof",
					Amount:   100,
				},
				CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:     "sub-new",
				Artist: models.ArtistInfo{FullName: "Ann Lee", Email: "ann@y.com", Country: "France"},
				Artworks: []models.ArtworkRecord{
					{ID: "art-3", Title: "Night", Medium: "Acrylic", Dimensions: "30x40cm", Year: "2025", ImageURL: "https://blobs.test/c"},
				},
				CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				// Legacy document with no creation timestamp: sorts oldest.
				ID: "sub-undated",
				Artworks: []models.ArtworkRecord{
					{ID: "art-4", Title: "Untitled", Medium: "Pencil", Dimensions: "10x10cm", Year: "2020", ImageURL: "https://blobs.test/d"},
				},
			},
		},
	}
}

func TestReviewService_List_FlattensEveryArtwork(t *testing.T) {
	svc := NewReviewService(seedSubmissions(t))

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4, "N embedded artworks yield exactly N review rows")

	// Newest submission first, undated last.
	assert.Equal(t, "art-3", rows[0].ID)
	assert.Equal(t, "sub-new", rows[0].SubmissionID)
	assert.Equal(t, "art-4", rows[3].ID)

	byID := map[string]models.ReviewRow{}
	for _, r := range rows {
		byID[r.ID] = r
	}

	// Fields survive the flatten and a missing status reads as pending.
	sunset := byID["art-1"]
	assert.Equal(t, "Sunset", sunset.Title)
	assert.Equal(t, "Oil", sunset.Medium)
	assert.Equal(t, "50x50cm", sunset.Dimensions)
	assert.Equal(t, "2024", sunset.Year)
	assert.Equal(t, "https://blobs.test/a", sunset.ImageURL)
	assert.Equal(t, models.StatusPending, sunset.Status)
	assert.Equal(t, "Jane Doe", sunset.Artist.FullName)
	assert.Equal(t, "https://blobs.test/proof", sunset.Payment.ProofURL)

	assert.Equal(t, models.StatusCertified, byID["art-2"].Status)
}

func TestReviewService_SetStatus_Idempotent(t *testing.T) {
	store := seedSubmissions(t)
	svc := NewReviewService(store)

	before := make([]string, len(store.subs[0].Artworks))
	for i, a := range store.subs[0].Artworks {
		before[i] = a.ID
	}

	_, err := svc.SetStatus(context.Background(), "art-1", models.StatusCertified)
	require.NoError(t, err)
	rows, err := svc.SetStatus(context.Background(), "art-1", models.StatusCertified)
	require.NoError(t, err)

	// Still certified, no duplicates, sibling order untouched.
	require.Len(t, store.subs[0].Artworks, len(before))
	for i, a := range store.subs[0].Artworks {
		assert.Equal(t, before[i], a.ID)
	}
	count := 0
	for _, r := range rows {
		if r.ID == "art-1" {
			count++
			assert.Equal(t, models.StatusCertified, r.Status)
		}
	}
	assert.Equal(t, 1, count)
}

func TestReviewService_SetStatus_Revisable(t *testing.T) {
	store := seedSubmissions(t)
	svc := NewReviewService(store)

	_, err := svc.SetStatus(context.Background(), "art-1", models.StatusCertified)
	require.NoError(t, err)
	_, err = svc.SetStatus(context.Background(), "art-1", models.StatusDisapproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDisapproved, store.subs[0].Artworks[0].Status)
}

func TestReviewService_SetStatus_Rejections(t *testing.T) {
	svc := NewReviewService(seedSubmissions(t))

	_, err := svc.SetStatus(context.Background(), "art-1", "pending")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetStatus(context.Background(), "art-1", "approved")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetStatus(context.Background(), "art-missing", models.StatusCertified)
	assert.ErrorIs(t, err, ErrNotFound)
}
