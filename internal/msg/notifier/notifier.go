package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-back/internal/model"
	"portfolio-back/internal/repository"
	"portfolio-back/pkg/mailer"
)

const batchSizeMultiply = 5

const subjectFormat = "New contact message from %s"

const emailTemplate = `
<h2>New contact message</h2>
<p><b>Name:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Received:</b> {{.ReceivedAt}}</p>
<hr>
<p style="white-space: pre-line">{{.Message}}</p>
`

type Repository interface {
	UpdateAsSent(ctx context.Context, ext repository.RepoExtension, notificationID uuid.UUID) error
	SelectUnsentBatch(ctx context.Context, ext repository.RepoExtension, batchSize int) ([]model.ContactNotification, error)
}

type Config struct {
	Recipient    string
	WorkerCount  int
	PollInterval time.Duration
	BatchSize    int
}

// Dispatcher drains the contact_notifications outbox and emails each pending
// message to the site owner. A send failure leaves the row unsent, so it is
// retried on a later poll; the submitting client never sees any of this.
type Dispatcher struct {
	l                *zap.Logger
	cfg              Config
	mlr              mailer.Mailer
	notificationRepo Repository

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewDispatcher(l *zap.Logger, cfg Config, mlr mailer.Mailer, notificationRepo Repository) *Dispatcher {
	return &Dispatcher{
		l:                l,
		cfg:              cfg,
		mlr:              mlr,
		notificationRepo: notificationRepo,
		inFlight:         make(map[uuid.UUID]struct{}),
	}
}

// claim reserves a notification id from enqueue until its worker finishes.
// A row that is still unsent in the database but already handed to a worker
// must not be queued again by a later poll.
func (d *Dispatcher) claim(id uuid.UUID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.inFlight[id]; ok {
		return false
	}

	d.inFlight[id] = struct{}{}

	return true
}

func (d *Dispatcher) release(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.inFlight, id)
}

func (d *Dispatcher) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	notificationPipe := make(chan model.ContactNotification, d.cfg.BatchSize*batchSizeMultiply)

	for i := 0; i < d.cfg.WorkerCount; i++ {
		go d.worker(ctx, i, notificationPipe)
	}

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.l.Info("Notification dispatcher stopped")
			close(notificationPipe)

			return
		case <-ticker.C:
			notifications, err := d.notificationRepo.SelectUnsentBatch(ctx, nil, d.cfg.BatchSize)
			if err != nil {
				d.l.Error("Failed to select unsent notifications", zap.Error(err))
				continue
			}

			for _, n := range notifications {
				if !d.claim(n.ID) {
					continue
				}

				// A full pipe must not hold the poll loop past cancellation.
				select {
				case notificationPipe <- n:
				case <-ctx.Done():
					d.release(n.ID)
				}
			}
		}
	}
}

func (d *Dispatcher) worker(ctx context.Context, id int, notificationPipe <-chan model.ContactNotification) {
	d.l.Info("Notifier worker started", zap.Int("id", id))

	for {
		select {
		case <-ctx.Done():
			d.l.Info("Notifier worker stopping", zap.Int("id", id))

			return
		case n, ok := <-notificationPipe:
			if !ok {
				d.l.Info("Notification channel closed", zap.Int("id", id))

				return
			}

			err := d.sendAndMark(ctx, n)
			d.release(n.ID)

			if err != nil {
				d.l.Error("Failed to send notification",
					zap.Error(err),
					zap.String("notification_id", n.ID.String()),
				)

				continue
			}

			d.l.Info("Notification sent",
				zap.String("notification_id", n.ID.String()),
				zap.String("contact_id", n.ContactID.String()),
			)
		}
	}
}

func (d *Dispatcher) sendAndMark(ctx context.Context, n model.ContactNotification) error {
	subject := fmt.Sprintf(subjectFormat, n.Contact.Name)

	data := map[string]any{
		"Name":       n.Contact.Name,
		"Email":      n.Contact.Email,
		"Message":    n.Contact.Message,
		"ReceivedAt": n.Contact.CreatedAt.Format(time.RFC1123),
	}

	if err := d.mlr.SendHTML(d.cfg.Recipient, subject, emailTemplate, data); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if err := d.notificationRepo.UpdateAsSent(ctx, nil, n.ID); err != nil {
		return fmt.Errorf("failed to update as sent: %w", err)
	}

	return nil
}
