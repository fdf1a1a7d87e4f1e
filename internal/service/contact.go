package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio-back/internal/model"
	"portfolio-back/internal/repository"
)

type ContactRepository interface {
	Pool() *pgxpool.Pool
	InsertContact(ctx context.Context, ext repository.RepoExtension, contact *model.ContactMessage) error
	SelectAllContacts(ctx context.Context, ext repository.RepoExtension) ([]model.ContactMessage, error)
}

type NotificationRepository interface {
	InsertNotification(ctx context.Context, ext repository.RepoExtension, contactID uuid.UUID) error
}

type ContactService struct {
	log              *zap.Logger
	contactRepo      ContactRepository
	notificationRepo NotificationRepository
	notifyEnabled    bool
}

func NewContactService(log *zap.Logger, contactRepo ContactRepository, notificationRepo NotificationRepository, notifyEnabled bool) *ContactService {
	return &ContactService{
		log:              log,
		contactRepo:      contactRepo,
		notificationRepo: notificationRepo,
		notifyEnabled:    notifyEnabled,
	}
}

// ValidateSubmission checks that every required field is present. Only
// presence is checked: no format or length limits, and whitespace-only values
// count as present, matching what the public form has always accepted.
func ValidateSubmission(req *model.SubmitContactRequest) model.SubmitValidation {
	if req.Name == "" {
		return model.MissingField(model.FieldName)
	}

	if req.Email == "" {
		return model.MissingField(model.FieldEmail)
	}

	if req.Message == "" {
		return model.MissingField(model.FieldMessage)
	}

	return model.ValidSubmission()
}

// Submit persists one new message per call. There is no deduplication:
// identical payloads produce distinct records. When notifications are enabled
// the outbox row is written in the same transaction, so a saved message is
// never silently unnotified.
func (s *ContactService) Submit(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessage, error) {
	contact := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if !s.notifyEnabled {
		if err := s.contactRepo.InsertContact(ctx, nil, contact); err != nil {
			return nil, fmt.Errorf("failed to insert contact: %w", err)
		}

		return contact, nil
	}

	tx, err := s.contactRepo.Pool().Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := s.contactRepo.InsertContact(ctx, tx, contact); err != nil {
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}

	if err := s.notificationRepo.InsertNotification(ctx, tx, contact.ID); err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	s.log.Debug("Contact message stored", zap.String("contact_id", contact.ID.String()))

	return contact, nil
}

// ListAll returns the whole collection, newest first. No pagination and no
// size cap; ordering comes from the store.
func (s *ContactService) ListAll(ctx context.Context) ([]model.ContactMessage, error) {
	contacts, err := s.contactRepo.SelectAllContacts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to select contacts: %w", err)
	}

	return contacts, nil
}
