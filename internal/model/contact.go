package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a single contact-form submission. The id and creation
// timestamp are assigned by the store; a record is never updated or deleted
// after it has been written.
//
// JSON field names ("_id", "createdAt") are part of the public admin contract
// and must not change.
type ContactMessage struct {
	ID        uuid.UUID `json:"_id" example:"7b2aab2e-4d1f-45b5-90c5-4d5d4db5ef11"`
	Name      string    `json:"name" example:"Jane Doe"`
	Email     string    `json:"email" example:"jane@example.com"`
	Message   string    `json:"message" example:"Hi, I saw your portfolio and ..."`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// SubmitContactRequest is the expected JSON body for the contact endpoint.
// All three fields are required; anything beyond presence is not validated
// server-side.
type SubmitContactRequest struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Message string `json:"message" example:"Hi, I saw your portfolio and ..."`
}

// SubmitField identifies a field of SubmitContactRequest in validation results.
type SubmitField string

const (
	FieldName    SubmitField = "name"
	FieldEmail   SubmitField = "email"
	FieldMessage SubmitField = "message"
)

// SubmitValidation is the outcome of the presence check on a submission.
// The wire contract reports a single fixed message either way, but the
// missing field is kept explicit so the check stays unambiguous and loggable.
type SubmitValidation struct {
	OK      bool
	Missing SubmitField
}

// ValidSubmission marks a request as having passed the presence check.
func ValidSubmission() SubmitValidation {
	return SubmitValidation{OK: true}
}

// MissingField marks a request as rejected because of an empty or absent field.
func MissingField(f SubmitField) SubmitValidation {
	return SubmitValidation{Missing: f}
}
