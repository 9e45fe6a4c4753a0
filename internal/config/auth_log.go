package config

import "github.com/rs/zerolog"

const maskedSecret = "******"

// MarshalZerologObject logs the handshake settings. The secret itself is
// never written: a configured value is replaced by a fixed mask.
//
//	log.Info().Object("auth", cfg.Auth).Msg("internal auth configured")
func (a Auth) MarshalZerologObject(e *zerolog.Event) {
	token := a.Token
	if token != "" && token != None {
		token = maskedSecret
	}

	e.Bool("enabled", a.Enabled()).
		Str("header_name", a.HeaderName).
		Str("token", token).
		Strs("path_patterns", a.PathPatterns).
		Str("call_unique_id", a.CallUniqueID)
}
