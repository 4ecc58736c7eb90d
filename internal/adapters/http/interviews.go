package httpadapter

import (
	"net/http"
	"time"

	"github.com/hireloop/interview-service/internal/core/domain"
)

func (rt *Router) createInterview(w http.ResponseWriter, r *http.Request) {
	var interview domain.Interview
	if err := decodeJSON(r, &interview); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	created, err := rt.interviews.Schedule(r.Context(), &interview)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (rt *Router) listInterviews(w http.ResponseWriter, r *http.Request) {
	filter := domain.InterviewFilter{
		CandidateID: r.URL.Query().Get("candidate_id"),
		Status:      domain.InterviewStatus(r.URL.Query().Get("status")),
		Limit:       queryInt(r, "limit"),
		Offset:      queryInt(r, "offset"),
	}

	interviews, err := rt.interviews.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interviews)
}

func (rt *Router) getInterview(w http.ResponseWriter, r *http.Request) {
	interview, err := rt.interviews.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interview)
}

func (rt *Router) updateInterview(w http.ResponseWriter, r *http.Request) {
	var patch domain.InterviewPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	updated, err := rt.interviews.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (rt *Router) upcomingInterviews(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse("2006-01-02", r.PathValue("date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	interviews, err := rt.interviews.Upcoming(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interviews)
}
