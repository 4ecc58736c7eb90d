package httpadapter

import (
	"net/http"

	"github.com/hireloop/interview-service/internal/core/domain"
)

// Two-tier taxonomy: client errors (bad input, missing entity) and everything
// else as a 500 carrying the underlying message.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
