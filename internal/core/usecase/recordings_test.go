package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hireloop/interview-service/internal/core/domain"
	"github.com/hireloop/interview-service/internal/core/ports"
)

func filePart(name, body string) *ports.FilePart {
	return &ports.FilePart{Filename: name, Size: int64(len(body)), Data: bytes.NewBufferString(body)}
}

func recordingUpload(interviewID string, video, audio *ports.FilePart) ports.RecordingUpload {
	return ports.RecordingUpload{InterviewID: interviewID, Video: video, Audio: audio}
}

type recordingRepoFake struct {
	mu   sync.Mutex
	byID map[string]*domain.Recording

	listed      []domain.Recording
	savedText   string
	savedSec    int
	transcribed chan struct{}

	err error
}

func newRecordingRepoFake() *recordingRepoFake {
	return &recordingRepoFake{
		byID:        map[string]*domain.Recording{},
		transcribed: make(chan struct{}, 1),
	}
}

func (f *recordingRepoFake) Create(_ context.Context, rec *domain.Recording) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copyRec := *rec
	f.byID[rec.ID] = &copyRec
	return nil
}

func (f *recordingRepoFake) GetByID(_ context.Context, id string) (*domain.Recording, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("recording %s: %w", id, domain.ErrNotFound)
	}
	copyRec := *rec
	return &copyRec, nil
}

func (f *recordingRepoFake) List(context.Context, string) ([]domain.Recording, error) {
	return f.listed, f.err
}

func (f *recordingRepoFake) SaveTranscription(_ context.Context, id, text string, durationSeconds int) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	f.savedText = text
	f.savedSec = durationSeconds
	if rec, ok := f.byID[id]; ok {
		rec.Transcription = text
		rec.DurationSeconds = durationSeconds
	}
	f.mu.Unlock()
	select {
	case f.transcribed <- struct{}{}:
	default:
	}
	return nil
}

type storageFake struct {
	mu    sync.Mutex
	saved map[string]string
	err   error
}

func newStorageFake() *storageFake {
	return &storageFake{saved: map[string]string{}}
}

func (f *storageFake) Save(_ context.Context, key string, data io.Reader) error {
	if f.err != nil {
		return f.err
	}
	raw, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved[key] = string(raw)
	return nil
}

func (f *storageFake) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.saved[key]
	if !ok {
		return nil, fmt.Errorf("object %s: %w", key, domain.ErrNotFound)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

type transcriberFake struct {
	mu       sync.Mutex
	calls    int
	filename string
	size     int64
	result   domain.TranscriptionResult
	err      error
}

func (f *transcriberFake) Transcribe(_ context.Context, audio io.Reader, filename string, sizeBytes int64) (domain.TranscriptionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.filename = filename
	f.size = sizeBytes
	if f.err != nil {
		return domain.TranscriptionResult{}, f.err
	}
	_, _ = io.Copy(io.Discard, audio)
	return f.result, nil
}

func seedInterview(repo *interviewRepoFake) {
	repo.byID["int-1"] = &domain.Interview{
		ID:              "int-1",
		CandidateID:     "cand-1",
		ScheduledAt:     time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          domain.InterviewStatusScheduled,
		Type:            domain.InterviewTypeTechnical,
	}
}

func TestUploadRequiresInterviewID(t *testing.T) {
	uc := NewRecordingUseCase(newRecordingRepoFake(), newInterviewRepoFake(), newStorageFake(), &transcriberFake{})

	_, err := uc.Upload(context.Background(), recordingUpload(" ", nil, nil))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUploadRequiresAtLeastOneFile(t *testing.T) {
	interviews := newInterviewRepoFake()
	seedInterview(interviews)
	uc := NewRecordingUseCase(newRecordingRepoFake(), interviews, newStorageFake(), &transcriberFake{})

	_, err := uc.Upload(context.Background(), recordingUpload("int-1", nil, nil))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUploadUnknownInterview(t *testing.T) {
	uc := NewRecordingUseCase(newRecordingRepoFake(), newInterviewRepoFake(), newStorageFake(), &transcriberFake{})

	audio := filePart("call.wav", "audio-bytes")
	_, err := uc.Upload(context.Background(), recordingUpload("missing", nil, audio))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUploadStoresAudioAndTranscribesInBackground(t *testing.T) {
	interviews := newInterviewRepoFake()
	seedInterview(interviews)
	repo := newRecordingRepoFake()
	storage := newStorageFake()
	transcriber := &transcriberFake{result: domain.TranscriptionResult{Text: "hello world", DurationSeconds: 42}}
	uc := NewRecordingUseCase(repo, interviews, storage, transcriber)

	audio := filePart("my call.wav", "audio-bytes")
	rec, err := uc.Upload(context.Background(), recordingUpload("int-1", nil, audio))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if rec.AudioPath == "" {
		t.Fatalf("expected audio path set")
	}
	if !strings.HasSuffix(rec.AudioPath, "_audio_my_call.wav") {
		t.Fatalf("expected sanitized storage key, got %s", rec.AudioPath)
	}
	if rec.FileSizeBytes != int64(len("audio-bytes")) {
		t.Fatalf("expected file size %d, got %d", len("audio-bytes"), rec.FileSizeBytes)
	}
	if storage.saved[rec.AudioPath] != "audio-bytes" {
		t.Fatalf("expected stored audio body")
	}

	select {
	case <-repo.transcribed:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected background transcription to run")
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.savedText != "hello world" || repo.savedSec != 42 {
		t.Fatalf("expected saved transcription, got %q / %d", repo.savedText, repo.savedSec)
	}
}

func TestUploadVideoOnlySkipsTranscription(t *testing.T) {
	interviews := newInterviewRepoFake()
	seedInterview(interviews)
	repo := newRecordingRepoFake()
	transcriber := &transcriberFake{}
	uc := NewRecordingUseCase(repo, interviews, newStorageFake(), transcriber)

	video := filePart("panel.mp4", "video-bytes")
	rec, err := uc.Upload(context.Background(), recordingUpload("int-1", video, nil))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if rec.AudioPath != "" {
		t.Fatalf("expected no audio path, got %s", rec.AudioPath)
	}
	if rec.VideoPath == "" {
		t.Fatalf("expected video path set")
	}
	transcriber.mu.Lock()
	defer transcriber.mu.Unlock()
	if transcriber.calls != 0 {
		t.Fatalf("expected no transcription without audio, got %d calls", transcriber.calls)
	}
}

func TestTranscribeWithoutAudio(t *testing.T) {
	repo := newRecordingRepoFake()
	repo.byID["rec-1"] = &domain.Recording{ID: "rec-1", InterviewID: "int-1"}
	uc := NewRecordingUseCase(repo, newInterviewRepoFake(), newStorageFake(), &transcriberFake{})

	_, err := uc.Transcribe(context.Background(), "rec-1")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestTranscribeSavesResult(t *testing.T) {
	repo := newRecordingRepoFake()
	repo.byID["rec-1"] = &domain.Recording{
		ID:            "rec-1",
		InterviewID:   "int-1",
		AudioPath:     "rec-1_audio_call.wav",
		FileSizeBytes: 96000,
	}
	storage := newStorageFake()
	storage.saved["rec-1_audio_call.wav"] = "audio-bytes"
	transcriber := &transcriberFake{result: domain.TranscriptionResult{Text: "the interview text", DurationSeconds: 6}}
	uc := NewRecordingUseCase(repo, newInterviewRepoFake(), storage, transcriber)

	rec, err := uc.Transcribe(context.Background(), "rec-1")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if rec.Transcription != "the interview text" {
		t.Fatalf("expected transcription set, got %q", rec.Transcription)
	}
	if rec.DurationSeconds != 6 {
		t.Fatalf("expected duration 6, got %d", rec.DurationSeconds)
	}
	if transcriber.size != 96000 {
		t.Fatalf("expected file size passed through, got %d", transcriber.size)
	}
	if repo.savedText != "the interview text" {
		t.Fatalf("expected transcription persisted, got %q", repo.savedText)
	}
}

func TestTranscribeStorageFailureSurfaces(t *testing.T) {
	repo := newRecordingRepoFake()
	repo.byID["rec-1"] = &domain.Recording{ID: "rec-1", InterviewID: "int-1", AudioPath: "gone.wav"}
	uc := NewRecordingUseCase(repo, newInterviewRepoFake(), newStorageFake(), &transcriberFake{})

	_, err := uc.Transcribe(context.Background(), "rec-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "open stored audio") {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"my call.wav":      "my_call.wav",
		"../../etc/passwd": "passwd",
		"résumé.mp3":       "r_sum_.mp3",
		"":                 "recording.bin",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
