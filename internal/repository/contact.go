package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-back/internal/model"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

func (r *ContactRepository) Pool() *pgxpool.Pool {
	return r.db
}

// InsertContact appends a new message. The id is generated here; created_at
// comes from the database clock so ordering stays consistent across service
// instances sharing one store.
func (r *ContactRepository) InsertContact(ctx context.Context, ext RepoExtension, contact *model.ContactMessage) error {
	if ext == nil {
		ext = r.db
	}

	const query = `
		INSERT INTO portfolio.contact_messages (id, name, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;
	`

	contact.ID = uuid.New()

	if err := ext.QueryRow(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Message,
	).Scan(&contact.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}

	return nil
}

// SelectAllContacts returns every stored message, newest first. The id
// tiebreak keeps the order stable for rows created within the same clock tick.
func (r *ContactRepository) SelectAllContacts(ctx context.Context, ext RepoExtension) ([]model.ContactMessage, error) {
	if ext == nil {
		ext = r.db
	}

	const query = `
		SELECT id, name, email, message, created_at
		FROM portfolio.contact_messages
		ORDER BY created_at DESC, id;
	`

	rows, err := ext.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select contact messages: %w", err)
	}

	defer rows.Close()

	var contacts []model.ContactMessage

	for rows.Next() {
		var contact model.ContactMessage
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Message,
			&contact.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}

		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return contacts, nil
}
