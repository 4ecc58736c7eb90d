package domain

import "time"

type Recording struct {
	ID              string    `json:"id"`
	InterviewID     string    `json:"interview_id"`
	VideoPath       string    `json:"video_path,omitempty"`
	AudioPath       string    `json:"audio_path,omitempty"`
	Transcription   string    `json:"transcription,omitempty"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	FileSizeBytes   int64     `json:"file_size_bytes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Transcribed reports whether the recording already carries transcription text.
func (r *Recording) Transcribed() bool {
	return r.Transcription != ""
}

// TranscriptionResult is what the speech-to-text adapter returns. The duration
// is a coarse estimate derived from the audio byte count, not parsed media
// metadata.
type TranscriptionResult struct {
	Text            string
	DurationSeconds int
}
