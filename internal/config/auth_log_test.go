package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestAuth_MarshalZerologObject(t *testing.T) {
	tests := []struct {
		name        string
		auth        Auth
		contains    []string
		notContains []string
	}{
		{
			name: "secret is masked",
			auth: Auth{HeaderName: "X-Service-Auth", Token: "123455", PathPatterns: []string{"/api/internal/**"}, CallUniqueID: "orders-service"},
			contains: []string{
				`"enabled":true`,
				`"header_name":"X-Service-Auth"`,
				`"token":"******"`,
				`"path_patterns":["/api/internal/**"]`,
				`"call_unique_id":"orders-service"`,
			},
			notContains: []string{"123455"},
		},
		{
			name:     "unset secret stays NONE",
			auth:     Auth{HeaderName: None, Token: None, PathPatterns: []string{None}, CallUniqueID: None},
			contains: []string{`"enabled":false`, `"token":"NONE"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)
			l.Info().Object("auth", tt.auth).Msg("")

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
