package notifier

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-back/internal/model"
	"portfolio-back/internal/repository"
)

type mockNotificationRepo struct {
	mu      sync.Mutex
	pending []model.ContactNotification
	sent    []uuid.UUID
}

func (m *mockNotificationRepo) SelectUnsentBatch(ctx context.Context, ext repository.RepoExtension, batchSize int) ([]model.ContactNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.pending)
	if n > batchSize {
		n = batchSize
	}

	batch := make([]model.ContactNotification, n)
	copy(batch, m.pending[:n])

	return batch, nil
}

func (m *mockNotificationRepo) UpdateAsSent(ctx context.Context, ext repository.RepoExtension, notificationID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Idempotent, like the real UPDATE: a second mark for the same id is a
	// no-op, so a re-polled notification cannot inflate the sent count.
	for i, n := range m.pending {
		if n.ID == notificationID {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			m.sent = append(m.sent, notificationID)
			break
		}
	}

	return nil
}

func (m *mockNotificationRepo) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}

type mockMailer struct {
	mu       sync.Mutex
	sendErr  error
	sent     []sentMail
	notifyCh chan struct{}

	// When set, SendHTML blocks here first, simulating a slow SMTP server.
	gate chan struct{}
}

type sentMail struct {
	to      string
	subject string
	tpl     string
	data    any
}

func (m *mockMailer) SendHTML(to, subject, htmlTpl string, data any) error {
	if m.gate != nil {
		<-m.gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sendErr != nil {
		return m.sendErr
	}

	m.sent = append(m.sent, sentMail{to: to, subject: subject, tpl: htmlTpl, data: data})

	if m.notifyCh != nil {
		select {
		case m.notifyCh <- struct{}{}:
		default:
		}
	}

	return nil
}

func (m *mockMailer) sentEmails() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}

func pendingNotification() model.ContactNotification {
	return model.ContactNotification{
		ID:        uuid.New(),
		ContactID: uuid.New(),
		CreatedAt: time.Now(),
		Contact: model.ContactMessage{
			ID:        uuid.New(),
			Name:      "A",
			Email:     "a@b.com",
			Message:   "hi",
			CreatedAt: time.Now(),
		},
	}
}

func TestDispatcher_SendAndMark(t *testing.T) {
	n := pendingNotification()
	repo := &mockNotificationRepo{pending: []model.ContactNotification{n}}
	mlr := &mockMailer{}

	d := NewDispatcher(zap.NewNop(), Config{Recipient: "owner@example.com"}, mlr, repo)

	if err := d.sendAndMark(context.Background(), n); err != nil {
		t.Fatalf("sendAndMark failed: %v", err)
	}

	if len(mlr.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(mlr.sent))
	}

	mail := mlr.sent[0]

	if mail.to != "owner@example.com" {
		t.Errorf("expected delivery to the configured recipient, got %q", mail.to)
	}

	if !strings.Contains(mail.subject, "A") {
		t.Errorf("expected the sender name in the subject, got %q", mail.subject)
	}

	if repo.sentCount() != 1 {
		t.Error("expected the notification to be marked sent")
	}
}

func TestDispatcher_SendFailureLeavesNotificationPending(t *testing.T) {
	n := pendingNotification()
	repo := &mockNotificationRepo{pending: []model.ContactNotification{n}}
	mlr := &mockMailer{sendErr: errors.New("smtp unreachable")}

	d := NewDispatcher(zap.NewNop(), Config{Recipient: "owner@example.com"}, mlr, repo)

	if err := d.sendAndMark(context.Background(), n); err == nil {
		t.Fatal("expected an error from a failed send")
	}

	if repo.sentCount() != 0 {
		t.Error("a failed send must not mark the notification as sent")
	}
}

// A notification handed to a worker stays unsent in the store until the email
// lands, so later polls keep selecting it. It must still be emailed once.
func TestDispatcher_SlowSendIsNotRequeued(t *testing.T) {
	repo := &mockNotificationRepo{
		pending: []model.ContactNotification{pendingNotification()},
	}
	mlr := &mockMailer{
		notifyCh: make(chan struct{}, 4),
		gate:     make(chan struct{}),
	}

	cfg := Config{
		Recipient:    "owner@example.com",
		WorkerCount:  1,
		PollInterval: 5 * time.Millisecond,
		BatchSize:    10,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	d := NewDispatcher(zap.NewNop(), cfg, mlr, repo)

	go func() {
		d.Run(ctx)
		close(done)
	}()

	// Let several polls run while the only worker is stuck in the send.
	time.Sleep(50 * time.Millisecond)
	close(mlr.gate)

	select {
	case <-mlr.notifyCh:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the send to complete")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop after cancellation")
	}

	if got := mlr.sentEmails(); got != 1 {
		t.Errorf("expected exactly 1 email for one pending notification, got %d", got)
	}

	if repo.sentCount() != 1 {
		t.Errorf("expected 1 notification marked sent, got %d", repo.sentCount())
	}
}

func TestDispatcher_RunDrainsOutbox(t *testing.T) {
	repo := &mockNotificationRepo{
		pending: []model.ContactNotification{
			pendingNotification(),
			pendingNotification(),
		},
	}
	mlr := &mockMailer{notifyCh: make(chan struct{}, 4)}

	cfg := Config{
		Recipient:    "owner@example.com",
		WorkerCount:  2,
		PollInterval: 5 * time.Millisecond,
		BatchSize:    10,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	d := NewDispatcher(zap.NewNop(), cfg, mlr, repo)

	go func() {
		d.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for sent := 0; sent < 2; {
		select {
		case <-mlr.notifyCh:
			sent++
		case <-deadline:
			t.Fatal("timed out waiting for the outbox to drain")
		}
	}

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop after cancellation")
	}

	if repo.sentCount() != 2 {
		t.Errorf("expected 2 notifications marked sent, got %d", repo.sentCount())
	}
}
