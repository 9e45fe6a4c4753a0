// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-internal-auth/internal/auth"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/utils"
)

// internalAuth enforces the shared-secret handshake on protected paths.
//
// Requests outside the protected patterns pass untouched. For the rest the
// Guard classifies the request; calls that look internal must carry the
// expected token or are answered with 401 and a [models.Result] body. Calls
// that do not look internal proceed unauthenticated.
//
// On success the name of the classifier rule is stored in the request context
// under [utils.CallRuleCtxKey].
func (h *Handler) internalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.patterns.Match(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		classification, err := h.guard.Check(auth.DescribeRequest(r))
		if err != nil {
			log.Warn().Err(err).
				Stringer("rule", classification.Rule).
				Str("path", r.URL.Path).
				Msg("internal call rejected")
			writeError(w, err)
			return
		}

		if classification.Internal {
			log.Debug().Stringer("rule", classification.Rule).Msg("internal call verified")
			r = r.WithContext(utils.WithCallRule(r.Context(), classification.Rule.String()))
		}

		next.ServeHTTP(w, r)
	})
}
