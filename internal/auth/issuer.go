// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Issuer stamps outgoing internal calls with the token header.
type Issuer struct {
	secret       *SharedSecret
	uniqueCallID string
}

// NewIssuer returns an Issuer bound to secret. When uniqueCallID is set (not
// blank and not [None]) the Issuer also sends it in [UniqueCallIDHeader].
func NewIssuer(secret *SharedSecret, uniqueCallID string) *Issuer {
	uniqueCallID = strings.TrimSpace(uniqueCallID)
	if uniqueCallID == None {
		uniqueCallID = ""
	}
	return &Issuer{secret: secret, uniqueCallID: uniqueCallID}
}

// Issue adds the token header to h unless it is already present; a header
// set explicitly by the caller is never overwritten. Nothing is added while
// the secret is disabled.
func (i *Issuer) Issue(h http.Header) {
	i.issue(h, nil)
}

// Middleware returns a resty request middleware that runs Issue on every
// request before it is sent. Headers set on the client with SetHeader count
// as explicit too: resty merges them into the request after this hook runs.
func (i *Issuer) Middleware() resty.RequestMiddleware {
	return func(c *resty.Client, r *resty.Request) error {
		var clientHeaders http.Header
		if c != nil {
			clientHeaders = c.Header
		}
		i.issue(r.Header, clientHeaders)
		return nil
	}
}

// issue sets the headers on h that neither h nor defaults already carry.
func (i *Issuer) issue(h, defaults http.Header) {
	if !i.secret.Enabled() {
		return
	}

	if !hasHeader(i.secret.HeaderName(), h, defaults) {
		h.Set(i.secret.HeaderName(), i.secret.Token())
	}

	if i.uniqueCallID != "" && !hasHeader(UniqueCallIDHeader, h, defaults) {
		h.Set(UniqueCallIDHeader, i.uniqueCallID)
	}
}

func hasHeader(name string, sets ...http.Header) bool {
	for _, h := range sets {
		if len(h.Values(name)) > 0 {
			return true
		}
	}
	return false
}
