package http

import (
	"path"
	"strings"

	"github.com/MKhiriev/go-internal-auth/internal/config"
)

// PathPatterns is the set of routes the internal auth middleware protects.
//
// Supported forms:
//
//	/api/orders          exact path
//	/api/*/status        "*" matches within one segment (path.Match syntax)
//	/api/internal/**     the prefix itself and everything below it
//	/**                  every path
type PathPatterns struct {
	patterns []string
}

// NewPathPatterns drops blank entries. An empty list, or one whose first
// entry is "NONE", yields an inactive set.
func NewPathPatterns(patterns []string) *PathPatterns {
	cleaned := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}

	if len(cleaned) == 0 || cleaned[0] == config.None {
		return &PathPatterns{}
	}

	return &PathPatterns{patterns: cleaned}
}

// Active reports whether at least one pattern is configured.
func (p *PathPatterns) Active() bool {
	return len(p.patterns) > 0
}

// List returns a copy of the configured patterns.
func (p *PathPatterns) List() []string {
	return append([]string(nil), p.patterns...)
}

// Match reports whether urlPath is protected. The path is cleaned first so
// that "//" or "/./" segments cannot step around a pattern.
func (p *PathPatterns) Match(urlPath string) bool {
	if !p.Active() {
		return false
	}

	if urlPath == "" {
		urlPath = "/"
	}
	urlPath = path.Clean(urlPath)

	for _, pattern := range p.patterns {
		if matchPattern(pattern, urlPath) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, urlPath string) bool {
	if pattern == "/**" {
		return true
	}

	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		head := leadingSegments(urlPath, strings.Count(prefix, "/"))
		matched, err := path.Match(prefix, head)
		return err == nil && matched
	}

	matched, err := path.Match(pattern, urlPath)
	return err == nil && matched
}

// leadingSegments returns the part of p made of its first n segments,
// e.g. leadingSegments("/api/internal/echo", 2) == "/api/internal".
func leadingSegments(p string, n int) string {
	count := 0
	for i := 0; i < len(p); i++ {
		if p[i] != '/' {
			continue
		}
		if count == n {
			return p[:i]
		}
		count++
	}
	return p
}
