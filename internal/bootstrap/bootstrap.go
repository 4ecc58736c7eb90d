package bootstrap

import (
	"context"
	"fmt"

	"github.com/hireloop/interview-service/internal/config"
	"github.com/hireloop/interview-service/internal/core/ports"
	"github.com/hireloop/interview-service/internal/core/usecase"
	"github.com/hireloop/interview-service/internal/infrastructure/ai/openai"
	"github.com/hireloop/interview-service/internal/infrastructure/mailer/smtp"
	"github.com/hireloop/interview-service/internal/infrastructure/repository/postgres"
	"github.com/hireloop/interview-service/internal/infrastructure/storage/localfs"
	"github.com/hireloop/interview-service/internal/infrastructure/storage/minio"
)

type App struct {
	Config config.Config

	Candidates    ports.CandidateService
	Interviews    ports.InterviewService
	Recordings    ports.RecordingService
	Evaluations   ports.EvaluationService
	Analytics     ports.AnalyticsService
	Notifications ports.NotificationService

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	candidateRepo := postgres.NewCandidateRepository(db)
	interviewRepo := postgres.NewInterviewRepository(db)
	recordingRepo := postgres.NewRecordingRepository(db)
	evaluationRepo := postgres.NewEvaluationRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	storage, err := newObjectStorage(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	aiClient := openai.New(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AITranscribeModel, cfg.AIEvalModel)
	transcriber := openai.NewTranscriber(aiClient)
	evaluator := openai.NewEvaluator(aiClient)

	mailer := smtp.New(smtp.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SMTPFrom,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})

	notificationUC := usecase.NewNotificationUseCase(notificationRepo, mailer)
	candidateUC := usecase.NewCandidateUseCase(candidateRepo)
	interviewUC := usecase.NewInterviewUseCase(interviewRepo, candidateRepo, notificationUC)
	recordingUC := usecase.NewRecordingUseCase(recordingRepo, interviewRepo, storage, transcriber)
	evaluationUC := usecase.NewEvaluationUseCase(evaluationRepo, interviewRepo, recordingRepo, evaluator)
	analyticsUC := usecase.NewAnalyticsUseCase(candidateRepo, interviewRepo, evaluationRepo)

	return &App{
		Config: cfg,

		Candidates:    candidateUC,
		Interviews:    interviewUC,
		Recordings:    recordingUC,
		Evaluations:   evaluationUC,
		Analytics:     analyticsUC,
		Notifications: notificationUC,

		closeFn: func() {
			_ = db.Close()
		},
	}, nil
}

func newObjectStorage(ctx context.Context, cfg config.Config) (ports.ObjectStorage, error) {
	switch cfg.StorageBackend {
	case "minio":
		return minio.New(ctx, minio.Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
	case "local":
		return localfs.New(cfg.StoragePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
