// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const defaultAdapterTimeout = 15 * time.Second

// setDefaults fills every unset handshake field with "NONE" and gives the
// peer client a finite timeout.
func (cfg *StructuredConfig) setDefaults() {
	cfg.Auth.HeaderName = orNone(cfg.Auth.HeaderName)
	cfg.Auth.Token = secretOrNone(cfg.Auth.Token)
	cfg.Auth.CallUniqueID = orNone(cfg.Auth.CallUniqueID)
	cfg.Auth.PathPatterns = cleanList(cfg.Auth.PathPatterns)
	if len(cfg.Auth.PathPatterns) == 0 {
		cfg.Auth.PathPatterns = []string{None}
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}

// validate checks the invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	return cfg.Auth.validate()
}

func (a Auth) validate() error {
	if !a.Enabled() {
		return nil
	}
	if strings.ContainsAny(a.HeaderName, " \t:") {
		return fmt.Errorf("%w: header name %q is not a valid HTTP header name", ErrInvalidAuthConfigs, a.HeaderName)
	}
	if a.Token == None {
		return fmt.Errorf("%w: header %q is set but the token is not", ErrInvalidAuthConfigs, a.HeaderName)
	}
	return nil
}

func (s Server) validate() error {
	if strings.TrimSpace(s.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	return nil
}

func (a Adapter) validate() error {
	if strings.TrimSpace(a.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty peer address", ErrInvalidAdapterConfigs)
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	return nil
}

// secretOrNone keeps the secret byte for byte; only an unset value becomes
// "NONE". Peers hash the raw value, so trimming would change the token.
func secretOrNone(v string) string {
	if v == "" {
		return None
	}
	return v
}

func orNone(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return None
	}
	return v
}

// cleanList trims every entry and drops blanks.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// splitList splits a comma separated value into a clean list.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return cleanList(strings.Split(s, ","))
}
