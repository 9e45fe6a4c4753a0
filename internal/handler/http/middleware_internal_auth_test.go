// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-internal-auth/internal/auth"
	"github.com/MKhiriev/go-internal-auth/internal/mock"
	"github.com/MKhiriev/go-internal-auth/internal/utils"
)

func newAuthTestHandler(guard Guard, patterns ...string) *Handler {
	h := newTestHandler()
	h.guard = guard
	h.patterns = NewPathPatterns(patterns)
	return h
}

// runInternalAuth serves req through internalAuth and reports whether next
// ran together with the request next observed.
func runInternalAuth(h *Handler, req *http.Request) (*httptest.ResponseRecorder, *http.Request) {
	var seen *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	h.internalAuth(next).ServeHTTP(rr, req)
	return rr, seen
}

func TestInternalAuth_UnprotectedPathSkipsGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard := mock.NewMockGuard(ctrl)
	guard.EXPECT().Check(gomock.Any()).Times(0)

	h := newAuthTestHandler(guard, "/api/internal/**")
	rr, seen := runInternalAuth(h, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	_, ok := utils.GetCallRuleFromContext(seen.Context())
	assert.False(t, ok)
}

func TestInternalAuth_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "missing token", err: auth.ErrMissingToken, message: auth.ErrMissingToken.Error()},
		{name: "token mismatch", err: auth.ErrTokenMismatch, message: auth.ErrTokenMismatch.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			guard := mock.NewMockGuard(ctrl)
			guard.EXPECT().
				Check(gomock.Any()).
				Return(auth.Classification{Internal: true, Rule: auth.RuleUniqueCallID}, tt.err)

			h := newAuthTestHandler(guard, "/api/internal/**")
			req := httptest.NewRequest(http.MethodPost, "/api/internal/echo", nil)
			req.Header.Set(auth.UniqueCallIDHeader, "orders-service")

			rr, seen := runInternalAuth(h, req)

			assert.Nil(t, seen, "next must not run for a rejected call")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"code":401,"message":"`+tt.message+`"}`, rr.Body.String())
		})
	}
}

func TestInternalAuth_VerifiedInternalCallStoresRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard := mock.NewMockGuard(ctrl)
	guard.EXPECT().
		Check(gomock.Any()).
		DoAndReturn(func(d auth.RequestDescriptor) (auth.Classification, error) {
			assert.Equal(t, "/api/internal/echo", d.URL)
			assert.Equal(t, "orders-service", d.UniqueCallID())
			return auth.Classification{Internal: true, Rule: auth.RuleUniqueCallID}, nil
		})

	h := newAuthTestHandler(guard, "/api/internal/**")
	req := httptest.NewRequest(http.MethodPost, "/api/internal/echo", nil)
	req.Header.Set(auth.UniqueCallIDHeader, "orders-service")

	rr, seen := runInternalAuth(h, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	rule, ok := utils.GetCallRuleFromContext(seen.Context())
	assert.True(t, ok)
	assert.Equal(t, "unique_call_id", rule)
}

func TestInternalAuth_NonInternalCallPasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard := mock.NewMockGuard(ctrl)
	guard.EXPECT().Check(gomock.Any()).Return(auth.Classification{}, nil)

	h := newAuthTestHandler(guard, "/**")
	rr, seen := runInternalAuth(h, httptest.NewRequest(http.MethodPost, "/api/internal/echo", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	_, ok := utils.GetCallRuleFromContext(seen.Context())
	assert.False(t, ok)
}
