package models

import "time"

// Review status values for an artwork record.
const (
	StatusPending     = "pending"
	StatusCertified   = "certified"
	StatusDisapproved = "disapproved"
)

// ArtistInfo identifies the submitting artist. All fields are required and
// the record is immutable once its submission is written.
type ArtistInfo struct {
	FullName string `firestore:"fullName" json:"fullName"`
	Email    string `firestore:"email" json:"email"`
	Country  string `firestore:"country" json:"country"`
}

// PaymentMethod is a staff-maintained payment destination. It is copied by
// value into each submission at submit time, so later edits to the registry
// never rewrite a past submission's recorded snapshot.
//
// The Firestore field for Network is "payment" and for LogoURL is "logo";
// those names predate this service and existing documents use them.
type PaymentMethod struct {
	ID      string `firestore:"-" json:"id"`
	Name    string `firestore:"name" json:"name"`
	Address string `firestore:"address" json:"address"`
	Network string `firestore:"payment" json:"network"`
	LogoURL string `firestore:"logo" json:"logoUrl,omitempty"`
}

// ArtworkRecord is one certifiable item embedded in a Submission. Every
// record is assigned a UUID when the submission is written; review status is
// mutated in place inside the parent document's array, never extracted to its
// own record.
type ArtworkRecord struct {
	ID         string `firestore:"id" json:"id"`
	Title      string `firestore:"title" json:"title"`
	Medium     string `firestore:"medium" json:"medium"`
	Dimensions string `firestore:"dimensions" json:"dimensions"`
	Year       string `firestore:"year" json:"year"`
	ImageURL   string `firestore:"imageUrl" json:"imageUrl"`
	Status     string `firestore:"status,omitempty" json:"status,omitempty"`
}

// Payment is the snapshot of how a submission was paid for. Amount is the
// fixed per-artwork certification fee at the time of submission.
type Payment struct {
	Method   PaymentMethod `firestore:"method" json:"method"`
	ProofURL string        `firestore:"proofUrl" json:"proofUrl"`
	Amount   int           `firestore:"amount" json:"amount"`
}

// Submission is the persisted document combining artist identity, one or
// more artwork records and payment evidence. CreatedAt is filled in by the
// server on write.
type Submission struct {
	ID        string          `firestore:"-" json:"id"`
	Artist    ArtistInfo      `firestore:"artist" json:"artist"`
	Artworks  []ArtworkRecord `firestore:"artworks" json:"artworks"`
	Payment   Payment         `firestore:"payment" json:"payment"`
	CreatedAt time.Time       `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// ReviewRow is one flattened artwork entry as presented to the review
// console, carrying back-references to the owning submission.
type ReviewRow struct {
	ArtworkRecord
	SubmissionID string     `json:"submissionId"`
	Artist       ArtistInfo `json:"artist"`
	Payment      Payment    `json:"payment"`
	CreatedAt    time.Time  `json:"createdAt"`
}
