package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/polygongallery/certification/internal/models"
	"github.com/polygongallery/certification/internal/upload"
)

// PaymentMethodService maintains the registry of accepted payment
// destinations. Every mutation answers with a committed re-read of the full
// list, never a locally patched one.
type PaymentMethodService struct {
	store    PaymentStore
	uploader upload.Uploader
	now      func() time.Time
}

func NewPaymentMethodService(store PaymentStore, uploader upload.Uploader) *PaymentMethodService {
	return &PaymentMethodService{store: store, uploader: uploader, now: time.Now}
}

// List returns all registered payment methods.
func (s *PaymentMethodService) List(ctx context.Context) ([]models.PaymentMethod, error) {
	return s.store.List(ctx)
}

// Create registers a new payment method, uploading the logo first when one
// is supplied, and returns the re-fetched list.
func (s *PaymentMethodService) Create(ctx context.Context, m models.PaymentMethod, logo *upload.Blob) ([]models.PaymentMethod, error) {
	if err := validateMethod(m); err != nil {
		return nil, err
	}
	if logo != nil {
		logoURL, err := s.uploadLogo(ctx, logo)
		if err != nil {
			return nil, err
		}
		m.LogoURL = logoURL
	}

	id, err := s.store.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	slog.Info("Payment method created.", "paymentMethodId", id, "name", m.Name)
	return s.store.List(ctx)
}

// Update rewrites an existing payment method. Without a new logo the prior
// logo URL is retained.
func (s *PaymentMethodService) Update(ctx context.Context, m models.PaymentMethod, logo *upload.Blob) ([]models.PaymentMethod, error) {
	if err := validateMethod(m); err != nil {
		return nil, err
	}
	existing, err := s.store.Get(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	m.LogoURL = existing.LogoURL
	if logo != nil {
		logoURL, err := s.uploadLogo(ctx, logo)
		if err != nil {
			return nil, err
		}
		m.LogoURL = logoURL
	}

	if err := s.store.Update(ctx, m); err != nil {
		return nil, err
	}
	slog.Info("Payment method updated.", "paymentMethodId", m.ID, "name", m.Name)
	return s.store.List(ctx)
}

// Delete removes a payment method and returns the re-fetched list. Past
// submissions keep their snapshotted copy of the method.
func (s *PaymentMethodService) Delete(ctx context.Context, id string) ([]models.PaymentMethod, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	slog.Info("Payment method deleted.", "paymentMethodId", id)
	return s.store.List(ctx)
}

// uploadLogo stores the logo under the original filename plus a timestamp so
// repeated uploads of the same file never collide.
func (s *PaymentMethodService) uploadLogo(ctx context.Context, logo *upload.Blob) (string, error) {
	objectName := fmt.Sprintf("payments/%s-%d", logo.Filename, s.now().UnixMilli())
	logoURL, err := s.uploader.Upload(ctx, objectName, *logo, nil)
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}
	return logoURL, nil
}

func validateMethod(m models.PaymentMethod) error {
	if m.Name == "" || m.Address == "" || m.Network == "" {
		return fmt.Errorf("%w: name, address and network are required", ErrValidation)
	}
	return nil
}
