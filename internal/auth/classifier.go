// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"strings"

	"github.com/MKhiriev/go-internal-auth/internal/logger"
)

// UniqueCallIDHeader is the well-known header an internal caller may set to
// mark a request as a service-to-service call.
const UniqueCallIDHeader = "X-Internal-Call-Id"

// registryURLPrefixes are the service registry instance endpoints.
var registryURLPrefixes = []string{
	"http://eureka-server/eureka/v2/instances/",
	"https://eureka-server/eureka/v2/instances/",
}

// proxyHeaders must all be present for the header-bundle rule to match.
var proxyHeaders = []string{
	"X-Application-Context",
	"X-Real-IP",
	"X-Forwarded-For",
	"Accept-Encoding",
}

// Rule names the heuristic that classified a request.
type Rule int

const (
	RuleNone Rule = iota
	RuleUniqueCallID
	RuleRegistryURL
	RuleProxyHeaders
)

func (r Rule) String() string {
	switch r {
	case RuleUniqueCallID:
		return "unique_call_id"
	case RuleRegistryURL:
		return "registry_url"
	case RuleProxyHeaders:
		return "proxy_headers"
	default:
		return "none"
	}
}

// Classification is the result of [Classifier.Classify]. Rule is for
// diagnostics only.
type Classification struct {
	Internal bool
	Rule     Rule
}

// Classifier decides whether a request is shaped like a call from the trusted
// internal client.
//
// All three signals can be forged by an outside caller that knows the
// convention. The classifier only decides whether the token check applies;
// a request it rejects is let through unauthenticated.
type Classifier struct {
	uniqueCallID string
	logger       *logger.Logger
}

// NewClassifier returns a Classifier. uniqueCallID is the configured call-id
// value; [None] or blank disables the unique-id rule. A nil log discards
// diagnostics.
func NewClassifier(uniqueCallID string, log *logger.Logger) *Classifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Classifier{uniqueCallID: strings.TrimSpace(uniqueCallID), logger: log}
}

// Classify evaluates the rules in order, first match wins:
//  1. the unique call-id header is present and a call-id value is configured;
//  2. the URL starts with a registry instance endpoint;
//  3. all proxy-injected headers are present.
//
// A blank URL or an empty header set is never internal. Classify is pure.
func (c *Classifier) Classify(d RequestDescriptor) Classification {
	if strings.TrimSpace(d.URL) == "" || len(d.Headers) == 0 {
		c.logger.Debug().Str("url", d.URL).Int("headers", len(d.Headers)).
			Msg("blank url or no headers, not an internal call")
		return Classification{}
	}

	rule := c.match(d)
	if rule != RuleNone {
		c.logger.Debug().Str("url", d.URL).Stringer("rule", rule).Msg("internal call detected")
		return Classification{Internal: true, Rule: rule}
	}

	return Classification{}
}

func (c *Classifier) match(d RequestDescriptor) Rule {
	if c.uniqueCallID != "" && c.uniqueCallID != None && d.has(UniqueCallIDHeader) {
		return RuleUniqueCallID
	}

	for _, prefix := range registryURLPrefixes {
		if strings.HasPrefix(d.URL, prefix) {
			return RuleRegistryURL
		}
	}

	for _, name := range proxyHeaders {
		if !d.has(name) {
			return RuleNone
		}
	}
	return RuleProxyHeaders
}
