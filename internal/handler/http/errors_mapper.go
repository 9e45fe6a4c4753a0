package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-internal-auth/internal/auth"
	"github.com/MKhiriev/go-internal-auth/internal/utils"
	"github.com/MKhiriev/go-internal-auth/internal/validators"
)

var errorStatusMap = map[error]int{
	auth.ErrMissingToken:  http.StatusUnauthorized,
	auth.ErrTokenMismatch: http.StatusUnauthorized,

	ErrInvalidJSON: http.StatusBadRequest,

	validators.ErrEmptyMessage:    http.StatusBadRequest,
	validators.ErrMessageTooLong:  http.StatusBadRequest,
	validators.ErrInvalidEncoding: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with a [models.Result] body. Messages of server errors
// are replaced by the status text.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	}

	_, _ = utils.WriteResult(w, status, message)
}
