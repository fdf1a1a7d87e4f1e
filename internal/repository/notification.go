package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-back/internal/model"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// InsertNotification enqueues an owner notification for a stored message.
// Written inside the same transaction as the contact insert.
func (r *NotificationRepository) InsertNotification(ctx context.Context, ext RepoExtension, contactID uuid.UUID) error {
	if ext == nil {
		ext = r.db
	}

	const query = `
		INSERT INTO portfolio.contact_notifications (id, contact_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`

	if _, err := ext.Exec(ctx, query, uuid.New(), contactID); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

func (r *NotificationRepository) UpdateAsSent(ctx context.Context, ext RepoExtension, notificationID uuid.UUID) error {
	if ext == nil {
		ext = r.db
	}

	const query = `
		UPDATE portfolio.contact_notifications
		SET sent = true, sent_at = NOW()
		WHERE id = $1;
	`

	if _, err := ext.Exec(ctx, query, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification as sent: %w", err)
	}

	return nil
}

// SelectUnsentBatch returns pending notifications joined with their messages,
// oldest first, so the owner reads submissions in arrival order.
func (r *NotificationRepository) SelectUnsentBatch(ctx context.Context, ext RepoExtension, batchSize int) ([]model.ContactNotification, error) {
	if ext == nil {
		ext = r.db
	}

	const query = `
		SELECT n.id, n.contact_id, n.created_at, n.sent, n.sent_at,
		       c.id, c.name, c.email, c.message, c.created_at
		FROM portfolio.contact_notifications n
		JOIN portfolio.contact_messages c ON c.id = n.contact_id
		WHERE n.sent = false
		ORDER BY n.created_at
		LIMIT $1;
	`

	rows, err := ext.Query(ctx, query, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to select unsent notifications: %w", err)
	}

	defer rows.Close()

	var notifications []model.ContactNotification

	for rows.Next() {
		var n model.ContactNotification
		if err := rows.Scan(
			&n.ID,
			&n.ContactID,
			&n.CreatedAt,
			&n.Sent,
			&n.SentAt,
			&n.Contact.ID,
			&n.Contact.Name,
			&n.Contact.Email,
			&n.Contact.Message,
			&n.Contact.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}
