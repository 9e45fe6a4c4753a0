// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "net/http"

// RequestDescriptor is the read-only view of an inbound request that the
// Classifier and the Verifier work on.
type RequestDescriptor struct {
	// URL is the raw request target. For proxy-form requests it is the
	// absolute URL, otherwise the path with query.
	URL string

	// Headers is the request header set. Lookups are canonicalised.
	Headers http.Header
}

// DescribeRequest builds a RequestDescriptor from an inbound request.
func DescribeRequest(r *http.Request) RequestDescriptor {
	target := r.RequestURI
	if target == "" && r.URL != nil {
		target = r.URL.String()
	}
	return RequestDescriptor{URL: target, Headers: r.Header}
}

// UniqueCallID returns the value of the unique call-id header, if any.
func (d RequestDescriptor) UniqueCallID() string {
	return d.Headers.Get(UniqueCallIDHeader)
}

func (d RequestDescriptor) has(name string) bool {
	return len(d.Headers.Values(name)) > 0
}
