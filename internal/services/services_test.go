package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/polygongallery/certification/internal/models"
	"github.com/polygongallery/certification/internal/upload"
)

// In-memory store fakes shared by the service tests.

type memPinStore struct {
	rec   PinRecord
	found bool
}

func (m *memPinStore) Get(context.Context) (PinRecord, bool, error) {
	return m.rec, m.found, nil
}

func (m *memPinStore) Put(_ context.Context, rec PinRecord) error {
	m.rec, m.found = rec, true
	return nil
}

type memPaymentStore struct {
	methods []models.PaymentMethod
	seq     int
}

func (m *memPaymentStore) List(context.Context) ([]models.PaymentMethod, error) {
	out := make([]models.PaymentMethod, len(m.methods))
	copy(out, m.methods)
	return out, nil
}

func (m *memPaymentStore) Get(_ context.Context, id string) (models.PaymentMethod, error) {
	for _, pm := range m.methods {
		if pm.ID == id {
			return pm, nil
		}
	}
	return models.PaymentMethod{}, ErrNotFound
}

func (m *memPaymentStore) Create(_ context.Context, pm models.PaymentMethod) (string, error) {
	m.seq++
	pm.ID = fmt.Sprintf("pm-%d", m.seq)
	m.methods = append(m.methods, pm)
	return pm.ID, nil
}

func (m *memPaymentStore) Update(_ context.Context, pm models.PaymentMethod) error {
	for i := range m.methods {
		if m.methods[i].ID == pm.ID {
			m.methods[i] = pm
			return nil
		}
	}
	return ErrNotFound
}

func (m *memPaymentStore) Delete(_ context.Context, id string) error {
	for i := range m.methods {
		if m.methods[i].ID == id {
			m.methods = append(m.methods[:i], m.methods[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type memSubmissionStore struct {
	subs []models.Submission
	seq  int
}

func (m *memSubmissionStore) Create(_ context.Context, sub models.Submission) (string, error) {
	m.seq++
	sub.ID = fmt.Sprintf("sub-%d", m.seq)
	m.subs = append(m.subs, sub)
	return sub.ID, nil
}

func (m *memSubmissionStore) ListAll(context.Context) ([]models.Submission, error) {
	out := make([]models.Submission, len(m.subs))
	copy(out, m.subs)
	return out, nil
}

func (m *memSubmissionStore) SetArtworkStatus(_ context.Context, artworkID, status string) error {
	for i := range m.subs {
		for j := range m.subs[i].Artworks {
			if m.subs[i].Artworks[j].ID == artworkID {
				m.subs[i].Artworks[j].Status = status
				return nil
			}
		}
	}
	return ErrNotFound
}

// fakeUploader records upload order and hands back deterministic URLs. When
// failOn is non-empty, any object name containing it fails the transfer.
// progressPcts overrides the percentages reported per transfer.
type fakeUploader struct {
	mu           sync.Mutex
	uploaded     []string
	failOn       string
	progressPcts []float64
}

func (f *fakeUploader) Upload(_ context.Context, objectName string, blob upload.Blob, onProgress func(float64)) (string, error) {
	if blob.Open != nil {
		src, err := blob.Open()
		if err != nil {
			return "", err
		}
		_, _ = io.Copy(io.Discard, src)
		src.Close()
	}
	if f.failOn != "" && strings.Contains(objectName, f.failOn) {
		return "", fmt.Errorf("transport failed for %s", objectName)
	}
	if onProgress != nil {
		pcts := f.progressPcts
		if pcts == nil {
			pcts = []float64{50, 100}
		}
		for _, p := range pcts {
			onProgress(p)
		}
	}
	f.mu.Lock()
	f.uploaded = append(f.uploaded, objectName)
	f.mu.Unlock()
	return "https://blobs.test/" + objectName, nil
}
