package httpadapter

import (
	"errors"
	"net/http"

	"github.com/hireloop/interview-service/internal/core/ports"
)

// multipartMemoryLimit is the in-memory parse threshold; larger parts spill
// to temp files. The total request size is capped separately by
// MaxUploadBytes.
const multipartMemoryLimit = 32 << 20

func (rt *Router) uploadRecording(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "upload exceeds the 100MB limit"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed multipart form"})
		return
	}

	upload := ports.RecordingUpload{
		InterviewID: r.FormValue("interview_id"),
	}

	if file, header, err := r.FormFile("video"); err == nil {
		defer file.Close()
		upload.Video = &ports.FilePart{Filename: header.Filename, Size: header.Size, Data: file}
	}
	if file, header, err := r.FormFile("audio"); err == nil {
		defer file.Close()
		upload.Audio = &ports.FilePart{Filename: header.Filename, Size: header.Size, Data: file}
	}

	rec, err := rt.recordings.Upload(r.Context(), upload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (rt *Router) listRecordings(w http.ResponseWriter, r *http.Request) {
	recordings, err := rt.recordings.List(r.Context(), r.URL.Query().Get("interview_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordings)
}

func (rt *Router) getRecording(w http.ResponseWriter, r *http.Request) {
	rec, err := rt.recordings.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (rt *Router) transcribeRecording(w http.ResponseWriter, r *http.Request) {
	rec, err := rt.recordings.Transcribe(r.Context(), r.PathValue("id"))
	if err != nil {
		if rt.metrics != nil {
			rt.metrics.RecordTranscription(serviceName, "error")
		}
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordTranscription(serviceName, "ok")
	}
	writeJSON(w, http.StatusOK, rec)
}
