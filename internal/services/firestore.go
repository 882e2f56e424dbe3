package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/polygongallery/certification/internal/models"
)

// Firestore-backed implementations of the store interfaces. Collection names
// are injected so the historical names ("pin", "payments", "artworks") stay
// configurable.

const pinDocID = "password"

// FirestorePinStore keeps the shared credential in a single document.
type FirestorePinStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestorePinStore(client *firestore.Client, collection string) *FirestorePinStore {
	return &FirestorePinStore{client: client, collection: collection}
}

func (s *FirestorePinStore) Get(ctx context.Context) (PinRecord, bool, error) {
	snap, err := s.client.Collection(s.collection).Doc(pinDocID).Get(ctx)
	if snap != nil && !snap.Exists() {
		return PinRecord{}, false, nil
	}
	if err != nil {
		return PinRecord{}, false, fmt.Errorf("failed to read pin record: %w", err)
	}
	var rec PinRecord
	if err := snap.DataTo(&rec); err != nil {
		return PinRecord{}, false, fmt.Errorf("failed to decode pin record: %w", err)
	}
	return rec, true, nil
}

func (s *FirestorePinStore) Put(ctx context.Context, rec PinRecord) error {
	if _, err := s.client.Collection(s.collection).Doc(pinDocID).Set(ctx, rec); err != nil {
		return fmt.Errorf("failed to write pin record: %w", err)
	}
	return nil
}

// FirestorePaymentStore is the payment-method registry collection.
type FirestorePaymentStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestorePaymentStore(client *firestore.Client, collection string) *FirestorePaymentStore {
	return &FirestorePaymentStore{client: client, collection: collection}
}

func (s *FirestorePaymentStore) List(ctx context.Context) ([]models.PaymentMethod, error) {
	it := s.client.Collection(s.collection).Documents(ctx)
	var methods []models.PaymentMethod
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list payment methods: %w", err)
		}
		var m models.PaymentMethod
		if err := snap.DataTo(&m); err != nil {
			return nil, fmt.Errorf("failed to decode payment method %s: %w", snap.Ref.ID, err)
		}
		m.ID = snap.Ref.ID
		methods = append(methods, m)
	}
	return methods, nil
}

func (s *FirestorePaymentStore) Get(ctx context.Context, id string) (models.PaymentMethod, error) {
	snap, err := s.client.Collection(s.collection).Doc(id).Get(ctx)
	if snap != nil && !snap.Exists() {
		return models.PaymentMethod{}, ErrNotFound
	}
	if err != nil {
		return models.PaymentMethod{}, fmt.Errorf("failed to read payment method %s: %w", id, err)
	}
	var m models.PaymentMethod
	if err := snap.DataTo(&m); err != nil {
		return models.PaymentMethod{}, fmt.Errorf("failed to decode payment method %s: %w", id, err)
	}
	m.ID = snap.Ref.ID
	return m, nil
}

func (s *FirestorePaymentStore) Create(ctx context.Context, m models.PaymentMethod) (string, error) {
	ref, _, err := s.client.Collection(s.collection).Add(ctx, m)
	if err != nil {
		return "", fmt.Errorf("failed to create payment method: %w", err)
	}
	return ref.ID, nil
}

func (s *FirestorePaymentStore) Update(ctx context.Context, m models.PaymentMethod) error {
	if _, err := s.client.Collection(s.collection).Doc(m.ID).Set(ctx, m); err != nil {
		return fmt.Errorf("failed to update payment method %s: %w", m.ID, err)
	}
	return nil
}

func (s *FirestorePaymentStore) Delete(ctx context.Context, id string) error {
	if _, err := s.client.Collection(s.collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete payment method %s: %w", id, err)
	}
	return nil
}

// FirestoreSubmissionStore persists submissions and runs the status update
// inside a transaction, so the read-modify-write of the parent document is
// resolved by the store rather than racing clients. Concurrent writers
// serialize; the committed result is last-writer-wins at the operation level.
type FirestoreSubmissionStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreSubmissionStore(client *firestore.Client, collection string) *FirestoreSubmissionStore {
	return &FirestoreSubmissionStore{client: client, collection: collection}
}

func (s *FirestoreSubmissionStore) Create(ctx context.Context, sub models.Submission) (string, error) {
	// CreatedAt is zero here; the serverTimestamp tag makes the backend
	// assign the creation time.
	ref, _, err := s.client.Collection(s.collection).Add(ctx, sub)
	if err != nil {
		return "", fmt.Errorf("failed to create submission: %w", err)
	}
	return ref.ID, nil
}

func (s *FirestoreSubmissionStore) ListAll(ctx context.Context) ([]models.Submission, error) {
	it := s.client.Collection(s.collection).Documents(ctx)
	var subs []models.Submission
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list submissions: %w", err)
		}
		var sub models.Submission
		if err := snap.DataTo(&sub); err != nil {
			return nil, fmt.Errorf("failed to decode submission %s: %w", snap.Ref.ID, err)
		}
		sub.ID = snap.Ref.ID
		subs = append(subs, sub)
	}
	return subs, nil
}

func (s *FirestoreSubmissionStore) SetArtworkStatus(ctx context.Context, artworkID, status string) error {
	// Full scan inside the transaction: O(total submissions) per edit,
	// acceptable at the expected volume.
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.Documents(s.client.Collection(s.collection)).GetAll()
		if err != nil {
			return fmt.Errorf("failed to scan submissions: %w", err)
		}
		for _, snap := range snaps {
			var sub models.Submission
			if err := snap.DataTo(&sub); err != nil {
				return fmt.Errorf("failed to decode submission %s: %w", snap.Ref.ID, err)
			}
			for i := range sub.Artworks {
				if sub.Artworks[i].ID != artworkID {
					continue
				}
				sub.Artworks[i].Status = status
				return tx.Update(snap.Ref, []firestore.Update{
					{Path: "artworks", Value: sub.Artworks},
				})
			}
		}
		return ErrNotFound
	})
}
