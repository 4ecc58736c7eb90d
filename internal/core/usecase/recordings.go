package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/interview-service/internal/core/domain"
	"github.com/hireloop/interview-service/internal/core/ports"
)

const backgroundTranscribeTimeout = 5 * time.Minute

type RecordingUseCase struct {
	repo        ports.RecordingRepository
	interviews  ports.InterviewRepository
	storage     ports.ObjectStorage
	transcriber ports.Transcriber
}

func NewRecordingUseCase(
	repo ports.RecordingRepository,
	interviews ports.InterviewRepository,
	storage ports.ObjectStorage,
	transcriber ports.Transcriber,
) *RecordingUseCase {
	return &RecordingUseCase{
		repo:        repo,
		interviews:  interviews,
		storage:     storage,
		transcriber: transcriber,
	}
}

// Upload stores the uploaded files, creates the recording row and, when an
// audio file is present, kicks off transcription in the background. A failed
// background transcription is logged and otherwise swallowed; the upload
// itself has already succeeded.
func (uc *RecordingUseCase) Upload(ctx context.Context, upload ports.RecordingUpload) (*domain.Recording, error) {
	if strings.TrimSpace(upload.InterviewID) == "" {
		return nil, fmt.Errorf("%w: interview_id is required", domain.ErrInvalidInput)
	}
	if upload.Video == nil && upload.Audio == nil {
		return nil, fmt.Errorf("%w: at least one of video or audio is required", domain.ErrInvalidInput)
	}

	if _, err := uc.interviews.GetByID(ctx, upload.InterviewID); err != nil {
		if domain.IsKind(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: interview %s does not exist", domain.ErrInvalidInput, upload.InterviewID)
		}
		return nil, fmt.Errorf("load interview: %w", err)
	}

	now := time.Now().UTC()
	rec := &domain.Recording{
		ID:          uuid.NewString(),
		InterviewID: upload.InterviewID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if upload.Video != nil {
		key := storageKey(rec.ID, "video", upload.Video.Filename)
		if err := uc.storage.Save(ctx, key, upload.Video.Data); err != nil {
			return nil, fmt.Errorf("save video: %w", err)
		}
		rec.VideoPath = key
		rec.FileSizeBytes = upload.Video.Size
	}
	if upload.Audio != nil {
		key := storageKey(rec.ID, "audio", upload.Audio.Filename)
		if err := uc.storage.Save(ctx, key, upload.Audio.Data); err != nil {
			return nil, fmt.Errorf("save audio: %w", err)
		}
		rec.AudioPath = key
		rec.FileSizeBytes = upload.Audio.Size
	}

	if err := uc.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create recording: %w", err)
	}

	if rec.AudioPath != "" {
		go uc.transcribeInBackground(rec.ID)
	}

	return rec, nil
}

func (uc *RecordingUseCase) transcribeInBackground(recordingID string) {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundTranscribeTimeout)
	defer cancel()

	if _, err := uc.Transcribe(ctx, recordingID); err != nil {
		slog.Error("background transcription failed",
			"recording_id", recordingID,
			"error", err,
		)
	}
}

func (uc *RecordingUseCase) Get(ctx context.Context, id string) (*domain.Recording, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *RecordingUseCase) List(ctx context.Context, interviewID string) ([]domain.Recording, error) {
	return uc.repo.List(ctx, interviewID)
}

// Transcribe runs speech-to-text on the recording's stored audio and persists
// the result. Unlike the implicit transcription during upload, failures here
// surface to the caller.
func (uc *RecordingUseCase) Transcribe(ctx context.Context, id string) (*domain.Recording, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.AudioPath == "" {
		return nil, fmt.Errorf("%w: recording %s has no audio file", domain.ErrInvalidInput, id)
	}

	audio, err := uc.storage.Open(ctx, rec.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("open stored audio: %w", err)
	}
	defer audio.Close()

	result, err := uc.transcriber.Transcribe(ctx, audio, rec.AudioPath, rec.FileSizeBytes)
	if err != nil {
		return nil, fmt.Errorf("transcribe audio: %w", err)
	}

	if err := uc.repo.SaveTranscription(ctx, rec.ID, result.Text, result.DurationSeconds); err != nil {
		return nil, fmt.Errorf("save transcription: %w", err)
	}

	rec.Transcription = result.Text
	rec.DurationSeconds = result.DurationSeconds
	rec.UpdatedAt = time.Now().UTC()
	return rec, nil
}

func storageKey(recordingID, kind, filename string) string {
	return fmt.Sprintf("%s_%s_%s", recordingID, kind, sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == "/" {
		return "recording.bin"
	}
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		return "recording.bin"
	}
	return base
}
