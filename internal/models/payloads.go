package models

// These structs define the JSON payloads exchanged between the web client and
// the HTTP handlers.

// UnlockRequest carries the six-digit PIN entered on the lock screen.
type UnlockRequest struct {
	Pin string `json:"pin"`
}

// UnlockResponse returns the session token guarding the admin routes.
type UnlockResponse struct {
	Token string `json:"token"`
}

// ChangePinRequest rotates the dashboard PIN. The previous PIN must match the
// current effective value.
type ChangePinRequest struct {
	PreviousPin string `json:"previousPin"`
	NewPin      string `json:"newPin"`
}

// ArtworkDraft is the pre-submission metadata for one artwork entry. FilePart
// names the multipart form part carrying this entry's image.
type ArtworkDraft struct {
	Title      string `json:"title"`
	Medium     string `json:"medium"`
	Dimensions string `json:"dimensions"`
	Year       string `json:"year"`
	FilePart   string `json:"filePart"`
}

// SubmissionPayload is the JSON part of a multipart submission request. The
// proof image travels in the "proof" part and each artwork image in the part
// its draft names.
type SubmissionPayload struct {
	Artist          ArtistInfo     `json:"artist"`
	Artworks        []ArtworkDraft `json:"artworks"`
	PaymentMethodID string         `json:"paymentMethodId"`
}

// SubmissionResponse acknowledges a persisted submission.
type SubmissionResponse struct {
	SubmissionID string `json:"submissionId"`
	Note         string `json:"note"`
}

// StatusUpdateRequest sets an artwork's review status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
