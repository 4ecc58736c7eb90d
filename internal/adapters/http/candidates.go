package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/hireloop/interview-service/internal/core/domain"
)

func (rt *Router) createCandidate(w http.ResponseWriter, r *http.Request) {
	var candidate domain.Candidate
	if err := decodeJSON(r, &candidate); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	created, err := rt.candidates.Create(r.Context(), &candidate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (rt *Router) listCandidates(w http.ResponseWriter, r *http.Request) {
	filter := domain.CandidateFilter{
		Status: domain.CandidateStatus(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	candidates, err := rt.candidates.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}

func (rt *Router) getCandidate(w http.ResponseWriter, r *http.Request) {
	candidate, err := rt.candidates.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

func (rt *Router) updateCandidate(w http.ResponseWriter, r *http.Request) {
	var patch domain.CandidatePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	updated, err := rt.candidates.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (rt *Router) deleteCandidate(w http.ResponseWriter, r *http.Request) {
	if err := rt.candidates.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, key string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
