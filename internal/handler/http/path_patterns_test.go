package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPathPatterns(t *testing.T) {
	tests := []struct {
		name       string
		input      []string
		wantActive bool
		wantList   []string
	}{
		{name: "nil", input: nil, wantActive: false, wantList: nil},
		{name: "only blanks", input: []string{"", "  "}, wantActive: false, wantList: nil},
		{name: "NONE first", input: []string{"NONE", "/api/internal/**"}, wantActive: false, wantList: nil},
		{name: "trimmed entries", input: []string{" /api/orders ", "", "/api/internal/**"}, wantActive: true, wantList: []string{"/api/orders", "/api/internal/**"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPathPatterns(tt.input)
			assert.Equal(t, tt.wantActive, p.Active())
			assert.Equal(t, tt.wantList, p.List())
		})
	}
}

func TestPathPatterns_Match(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{name: "exact hit", patterns: []string{"/api/orders"}, path: "/api/orders", want: true},
		{name: "exact miss on child", patterns: []string{"/api/orders"}, path: "/api/orders/1", want: false},
		{name: "star within segment", patterns: []string{"/api/*/status"}, path: "/api/orders/status", want: true},
		{name: "star does not cross segments", patterns: []string{"/api/*/status"}, path: "/api/a/b/status", want: false},
		{name: "double star prefix itself", patterns: []string{"/api/internal/**"}, path: "/api/internal", want: true},
		{name: "double star child", patterns: []string{"/api/internal/**"}, path: "/api/internal/echo", want: true},
		{name: "double star deep child", patterns: []string{"/api/internal/**"}, path: "/api/internal/a/b/c", want: true},
		{name: "double star sibling prefix", patterns: []string{"/api/internal/**"}, path: "/api/internalx", want: false},
		{name: "double star other tree", patterns: []string{"/api/internal/**"}, path: "/api/health", want: false},
		{name: "star inside double star prefix", patterns: []string{"/api/*/**"}, path: "/api/orders/1/items", want: true},
		{name: "everything", patterns: []string{"/**"}, path: "/api/health", want: true},
		{name: "everything root", patterns: []string{"/**"}, path: "/", want: true},
		{name: "duplicate slashes cleaned", patterns: []string{"/api/internal/**"}, path: "//api//internal/echo", want: true},
		{name: "dot segments cleaned", patterns: []string{"/api/internal/**"}, path: "/api/public/../internal/echo", want: true},
		{name: "second pattern matches", patterns: []string{"/api/orders", "/api/internal/**"}, path: "/api/internal/echo", want: true},
		{name: "inactive never matches", patterns: []string{"NONE"}, path: "/api/internal/echo", want: false},
		{name: "malformed pattern ignored", patterns: []string{"/api/[", "/api/orders"}, path: "/api/orders", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPathPatterns(tt.patterns).Match(tt.path))
		})
	}
}

func TestPathPatterns_ListIsCopy(t *testing.T) {
	p := NewPathPatterns([]string{"/api/orders"})

	list := p.List()
	list[0] = "/changed"

	assert.Equal(t, []string{"/api/orders"}, p.List())
}

func TestLeadingSegments(t *testing.T) {
	assert.Equal(t, "/api/internal", leadingSegments("/api/internal/echo", 2))
	assert.Equal(t, "/api", leadingSegments("/api/internal/echo", 1))
	assert.Equal(t, "/api/internal/echo", leadingSegments("/api/internal/echo", 5))
	assert.Equal(t, "", leadingSegments("/api", 0))
}
