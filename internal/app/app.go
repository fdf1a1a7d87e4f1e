package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio-back/internal/api/http/handler"
	"portfolio-back/internal/api/http/route"
	"portfolio-back/internal/apperrors"
	"portfolio-back/internal/config"
	"portfolio-back/internal/model"
	"portfolio-back/internal/msg/notifier"
	"portfolio-back/internal/repository"
	"portfolio-back/internal/service"
	"portfolio-back/pkg/mailer"
	"portfolio-back/pkg/postgres"
	"portfolio-back/pkg/server"
)

type ContactRepository interface {
	Pool() *pgxpool.Pool
	InsertContact(ctx context.Context, ext repository.RepoExtension, contact *model.ContactMessage) error
	SelectAllContacts(ctx context.Context, ext repository.RepoExtension) ([]model.ContactMessage, error)
}

type NotificationRepository interface {
	InsertNotification(ctx context.Context, ext repository.RepoExtension, contactID uuid.UUID) error
	UpdateAsSent(ctx context.Context, ext repository.RepoExtension, notificationID uuid.UUID) error
	SelectUnsentBatch(ctx context.Context, ext repository.RepoExtension, batchSize int) ([]model.ContactNotification, error)
}

type HealthRepository interface {
	IsOK() (bool, error)
	PingDB(ctx context.Context) error
}

type ContactService interface {
	Submit(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessage, error)
	ListAll(ctx context.Context) ([]model.ContactMessage, error)
}

type HealthService interface {
	IsOK() (bool, error)
	PingDB(ctx context.Context) error
}

type ContactHandler interface {
	Submit(c *gin.Context)
	AdminList(c *gin.Context)
}

type HealthHandler interface {
	Ping(c *gin.Context)
	Health(c *gin.Context)
}

type Dispatcher interface {
	Run(ctx context.Context)
}

type App struct {
	Cfg        *config.Config
	Log        *zap.Logger
	Handler    *Handler
	Service    *Service
	DB         postgres.Postgres
	Mailer     mailer.Mailer
	HTTPServer server.HTTPServer
	Notifier   Dispatcher
}

type Repository struct {
	ContactRepository      ContactRepository
	NotificationRepository NotificationRepository
	HealthRepository       HealthRepository
}

type Service struct {
	ContactService   ContactService
	HealthService    HealthService
	PasscodeVerifier service.PasscodeVerifier
}

type Handler struct {
	ContactHandler ContactHandler
	HealthHandler  HealthHandler
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	db, err := initDB(&cfg.Database)
	if err != nil {
		log.Error("Failed to initialize database", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	mlr := initMailer(log, &cfg.Mailer)

	repo := initRepository(log, db)

	svc := initService(log, cfg, repo)

	hdl := initHandler(log, svc)

	httpServer := initHTTPServer(log, cfg, hdl)

	dispatcher := initNotifier(log, &cfg.Notifier, mlr, repo)

	return &App{
		Cfg:        cfg,
		Log:        log,
		Handler:    hdl,
		Service:    svc,
		DB:         db,
		Mailer:     mlr,
		HTTPServer: httpServer,
		Notifier:   dispatcher,
	}, nil
}

func MustNew(cfg *config.Config, log *zap.Logger) *App {
	app, err := New(cfg, log)
	if err != nil {
		panic(err)
	}

	return app
}

func (a *App) Run(ctx context.Context) error {
	errs := make(chan error, 1)
	defer close(errs)

	go func() {
		if err := a.HTTPServer.Run(); err != nil {
			errs <- err
		}
	}()

	if a.Notifier != nil {
		go func() {
			a.Notifier.Run(ctx)
		}()
	}

	if err := <-errs; err != nil {
		return err
	}

	return nil
}

func (a *App) Shutdown() error {
	err := apperrors.ErrShutdown

	if srvErr := a.HTTPServer.Shutdown(); srvErr != nil {
		err = fmt.Errorf("%w, failed to shutdown http server: %w", err, srvErr)
	}

	a.Log.Debug("Http server shutdown")

	a.DB.Close()
	a.Log.Debug("Database closed")

	if !errors.Is(err, apperrors.ErrShutdown) {
		return err
	}

	return nil
}

func initDB(cfg *config.Database) (postgres.Postgres, error) {
	postgresCfg := &postgres.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		Name:     cfg.Name,
		SSLMode:  cfg.SSLMode,
		MaxConns: cfg.MaxConns,
		MinConns: cfg.MinConns,
		Migration: postgres.Migration{
			Path:      cfg.Migration.Path,
			AutoApply: cfg.Migration.AutoApply,
		},
	}

	db, err := postgres.New(postgresCfg)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func initMailer(log *zap.Logger, cfg *config.Mailer) mailer.Mailer {
	mailerCfg := &mailer.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
		UseTLS:   cfg.UseTLS,
	}

	mlr := mailer.New(mailerCfg)
	log.Debug("Mailer initialized")

	return mlr
}

func initRepository(log *zap.Logger, db postgres.Postgres) *Repository {
	contactRepo := repository.NewContactRepository(db.Pool())
	log.Debug("Contact repository initialized")

	notificationRepo := repository.NewNotificationRepository(db.Pool())
	log.Debug("Notification repository initialized")

	healthRepo := repository.NewHealthRepository(db.Pool())
	log.Debug("Health repository initialized")

	return &Repository{
		ContactRepository:      contactRepo,
		NotificationRepository: notificationRepo,
		HealthRepository:       healthRepo,
	}
}

func initService(log *zap.Logger, cfg *config.Config, repo *Repository) *Service {
	contactSvc := service.NewContactService(log, repo.ContactRepository, repo.NotificationRepository, cfg.Notifier.Enable)
	log.Debug("Contact service initialized")

	healthSvc := service.NewHealthService(log, repo.HealthRepository)
	log.Debug("Health service initialized")

	passcode := service.NewStaticPasscode(cfg.Admin.Passcode)
	if cfg.Admin.Passcode == "" {
		log.Warn("Admin passcode is not configured, the admin listing will reject every request")
	}

	return &Service{
		ContactService:   contactSvc,
		HealthService:    healthSvc,
		PasscodeVerifier: passcode,
	}
}

func initHandler(log *zap.Logger, svc *Service) *Handler {
	contactHandler := handler.NewContactHandler(log, svc.ContactService, svc.PasscodeVerifier)
	log.Debug("Contact handler initialized")

	healthHandler := handler.NewHealthHandler(log, svc.HealthService)
	log.Debug("Health handler initialized")

	return &Handler{
		ContactHandler: contactHandler,
		HealthHandler:  healthHandler,
	}
}

func initHTTPServer(log *zap.Logger, cfg *config.Config, hdl *Handler) server.HTTPServer {
	router := route.SetupRouter(
		log,
		cfg,
		hdl.HealthHandler,
		hdl.ContactHandler,
	)

	httpServer := server.NewHTTPServer(
		server.WithAddr(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		server.WithTimeout(cfg.HTTPServer.Timeout.Read, cfg.HTTPServer.Timeout.Write, cfg.HTTPServer.Timeout.Idle),
		server.WithHandler(router),
	)

	return httpServer
}

func initNotifier(log *zap.Logger, cfg *config.Notifier, mlr mailer.Mailer, repo *Repository) Dispatcher {
	if !cfg.Enable {
		log.Debug("Owner notifications disabled")
		return nil
	}

	notifierCfg := notifier.Config{
		Recipient:    cfg.Recipient,
		WorkerCount:  cfg.WorkerCount,
		PollInterval: cfg.PollInterval,
		BatchSize:    cfg.BatchSize,
	}

	dispatcher := notifier.NewDispatcher(log, notifierCfg, mlr, repo.NotificationRepository)
	log.Debug("Notification dispatcher initialized")

	return dispatcher
}
