package openai

import (
	"context"
	"io"
	"path/filepath"

	"github.com/hireloop/interview-service/internal/core/domain"
)

// bytesPerSecondEstimate approximates uncompressed speech audio. The duration
// estimate is byte-count divided by this constant, not parsed media metadata.
const bytesPerSecondEstimate = 16000

type Transcriber struct {
	client *Client
}

func NewTranscriber(client *Client) *Transcriber {
	return &Transcriber{client: client}
}

func (t *Transcriber) Transcribe(ctx context.Context, audio io.Reader, filename string, sizeBytes int64) (domain.TranscriptionResult, error) {
	var response struct {
		Text string `json:"text"`
	}
	err := t.client.postMultipart(
		ctx,
		"/v1/audio/transcriptions",
		map[string]string{"model": t.client.transcribeModel},
		"file",
		filepath.Base(filename),
		audio,
		&response,
		"transcribe",
	)
	if err != nil {
		return domain.TranscriptionResult{}, err
	}

	return domain.TranscriptionResult{
		Text:            response.Text,
		DurationSeconds: int(sizeBytes / bytesPerSecondEstimate),
	}, nil
}
