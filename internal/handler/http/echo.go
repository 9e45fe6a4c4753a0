package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-internal-auth/internal/auth"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/utils"
	"github.com/MKhiriev/go-internal-auth/models"
)

// echo reports what the callee observed about an internal call.
func (h *Handler) echo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EchoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding echo request")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Debug().Err(err).Msg("echo request failed validation")
		writeError(w, err)
		return
	}

	rule, ok := utils.GetCallRuleFromContext(r.Context())
	if !ok {
		rule = auth.RuleNone.String()
	}
	traceID, _ := utils.GetTraceIDFromContext(r.Context())

	resp := models.EchoResponse{
		Message:  req.Message,
		Method:   r.Method,
		Path:     r.URL.Path,
		Rule:     rule,
		CallerID: r.Header.Get(auth.UniqueCallIDHeader),
		TraceID:  traceID,
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing echo response")
	}
}
