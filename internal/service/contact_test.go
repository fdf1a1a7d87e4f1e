package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio-back/internal/model"
	"portfolio-back/internal/repository"
)

type mockContactRepo struct {
	insertFunc func(ctx context.Context, ext repository.RepoExtension, contact *model.ContactMessage) error
	selectFunc func(ctx context.Context, ext repository.RepoExtension) ([]model.ContactMessage, error)
}

func (m *mockContactRepo) Pool() *pgxpool.Pool {
	return nil
}

func (m *mockContactRepo) InsertContact(ctx context.Context, ext repository.RepoExtension, contact *model.ContactMessage) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, ext, contact)
	}

	contact.ID = uuid.New()

	return nil
}

func (m *mockContactRepo) SelectAllContacts(ctx context.Context, ext repository.RepoExtension) ([]model.ContactMessage, error) {
	if m.selectFunc != nil {
		return m.selectFunc(ctx, ext)
	}

	return nil, nil
}

type mockNotificationRepo struct {
	insertFunc func(ctx context.Context, ext repository.RepoExtension, contactID uuid.UUID) error
}

func (m *mockNotificationRepo) InsertNotification(ctx context.Context, ext repository.RepoExtension, contactID uuid.UUID) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, ext, contactID)
	}

	return nil
}

func TestValidateSubmission(t *testing.T) {
	cases := []struct {
		name    string
		req     model.SubmitContactRequest
		ok      bool
		missing model.SubmitField
	}{
		{
			name: "all present",
			req:  model.SubmitContactRequest{Name: "A", Email: "a@b.com", Message: "hi"},
			ok:   true,
		},
		{
			name:    "missing name",
			req:     model.SubmitContactRequest{Email: "a@b.com", Message: "hi"},
			missing: model.FieldName,
		},
		{
			name:    "missing email",
			req:     model.SubmitContactRequest{Name: "A", Message: "hi"},
			missing: model.FieldEmail,
		},
		{
			name:    "missing message",
			req:     model.SubmitContactRequest{Name: "A", Email: "a@b.com"},
			missing: model.FieldMessage,
		},
		{
			name:    "all missing reports name first",
			req:     model.SubmitContactRequest{},
			missing: model.FieldName,
		},
		{
			// Presence only: whitespace counts, as does any other content.
			name: "whitespace-only is present",
			req:  model.SubmitContactRequest{Name: " ", Email: "\t", Message: "  "},
			ok:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := ValidateSubmission(&tc.req)

			if v.OK != tc.ok {
				t.Fatalf("expected OK=%v, got %v", tc.ok, v.OK)
			}

			if !tc.ok && v.Missing != tc.missing {
				t.Errorf("expected missing field %q, got %q", tc.missing, v.Missing)
			}
		})
	}
}

func TestContactService_Submit(t *testing.T) {
	var inserted *model.ContactMessage
	repo := &mockContactRepo{
		insertFunc: func(ctx context.Context, ext repository.RepoExtension, contact *model.ContactMessage) error {
			contact.ID = uuid.New()
			inserted = contact
			return nil
		},
	}

	svc := NewContactService(zap.NewNop(), repo, &mockNotificationRepo{}, false)

	req := &model.SubmitContactRequest{
		Name:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Message: gofakeit.Sentence(10),
	}

	contact, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if inserted == nil {
		t.Fatal("expected the repository insert to run")
	}

	if contact.Name != req.Name || contact.Email != req.Email || contact.Message != req.Message {
		t.Errorf("stored record does not match the request: %+v", contact)
	}

	if contact.ID == uuid.Nil {
		t.Error("expected a store-assigned id")
	}
}

func TestContactService_Submit_StoreError(t *testing.T) {
	repo := &mockContactRepo{
		insertFunc: func(ctx context.Context, ext repository.RepoExtension, contact *model.ContactMessage) error {
			return errors.New("connection refused")
		},
	}

	svc := NewContactService(zap.NewNop(), repo, &mockNotificationRepo{}, false)

	if _, err := svc.Submit(context.Background(), &model.SubmitContactRequest{Name: "A", Email: "a@b.com", Message: "hi"}); err == nil {
		t.Fatal("expected an error when the store is unavailable")
	}
}

func TestContactService_Submit_EachCallInsertsOneRecord(t *testing.T) {
	var inserts int
	repo := &mockContactRepo{
		insertFunc: func(ctx context.Context, ext repository.RepoExtension, contact *model.ContactMessage) error {
			inserts++
			contact.ID = uuid.New()
			return nil
		},
	}

	svc := NewContactService(zap.NewNop(), repo, &mockNotificationRepo{}, false)

	req := &model.SubmitContactRequest{Name: "A", Email: "a@b.com", Message: "hi"}

	first, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}

	second, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}

	if inserts != 2 {
		t.Fatalf("expected 2 inserts, got %d", inserts)
	}

	if first.ID == second.ID {
		t.Error("identical payloads must still produce distinct records")
	}
}

// The service keeps no per-request state, so simultaneous submissions with
// different payloads must both land, each exactly once.
func TestContactService_Submit_ConcurrentDistinctPayloads(t *testing.T) {
	var mu sync.Mutex
	inserted := map[string]int{}

	repo := &mockContactRepo{
		insertFunc: func(ctx context.Context, ext repository.RepoExtension, contact *model.ContactMessage) error {
			mu.Lock()
			defer mu.Unlock()

			contact.ID = uuid.New()
			inserted[contact.Message]++

			return nil
		},
	}

	svc := NewContactService(zap.NewNop(), repo, &mockNotificationRepo{}, false)

	reqs := []*model.SubmitContactRequest{
		{Name: "A", Email: "a@b.com", Message: "first"},
		{Name: "B", Email: "b@b.com", Message: "second"},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(reqs))

	for i, req := range reqs {
		wg.Add(1)

		go func(i int, req *model.SubmitContactRequest) {
			defer wg.Done()
			_, errs[i] = svc.Submit(context.Background(), req)
		}(i, req)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent Submit %d failed: %v", i, err)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	if len(inserted) != len(reqs) {
		t.Fatalf("expected %d distinct records, got %d", len(reqs), len(inserted))
	}

	for msg, count := range inserted {
		if count != 1 {
			t.Errorf("payload %q inserted %d times, want exactly once", msg, count)
		}
	}
}

func TestContactService_ListAll(t *testing.T) {
	stored := []model.ContactMessage{
		{ID: uuid.New(), Name: "B"},
		{ID: uuid.New(), Name: "A"},
	}

	repo := &mockContactRepo{
		selectFunc: func(ctx context.Context, ext repository.RepoExtension) ([]model.ContactMessage, error) {
			return stored, nil
		},
	}

	svc := NewContactService(zap.NewNop(), repo, &mockNotificationRepo{}, false)

	contacts, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	if len(contacts) != len(stored) {
		t.Fatalf("expected %d records, got %d", len(stored), len(contacts))
	}

	// The service adds nothing on top of the store's ordering.
	if contacts[0].ID != stored[0].ID {
		t.Error("ListAll must preserve store order")
	}
}

func TestContactService_ListAll_StoreError(t *testing.T) {
	repo := &mockContactRepo{
		selectFunc: func(ctx context.Context, ext repository.RepoExtension) ([]model.ContactMessage, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewContactService(zap.NewNop(), repo, &mockNotificationRepo{}, false)

	if _, err := svc.ListAll(context.Background()); err == nil {
		t.Fatal("expected an error when the store is unavailable")
	}
}
