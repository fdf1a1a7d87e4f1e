package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactNotification is an outbox row describing a pending "new contact
// message" email to the site owner. It references the stored message so the
// message row itself stays immutable.
type ContactNotification struct {
	ID        uuid.UUID
	ContactID uuid.UUID
	CreatedAt time.Time
	Sent      bool
	SentAt    *time.Time

	// Denormalized message fields, selected alongside the outbox row so a
	// worker can render the email without a second query.
	Contact ContactMessage
}
