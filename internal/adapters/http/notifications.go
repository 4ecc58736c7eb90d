package httpadapter

import (
	"net/http"

	"github.com/hireloop/interview-service/internal/core/domain"
)

func (rt *Router) createNotification(w http.ResponseWriter, r *http.Request) {
	var notification domain.Notification
	if err := decodeJSON(r, &notification); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	dispatched, err := rt.notifications.Dispatch(r.Context(), &notification)
	if err != nil {
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		state := "unsent"
		if dispatched.Sent {
			state = "sent"
		}
		rt.metrics.RecordNotification(serviceName, state)
	}
	writeJSON(w, http.StatusCreated, dispatched)
}

func (rt *Router) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := rt.notifications.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}
