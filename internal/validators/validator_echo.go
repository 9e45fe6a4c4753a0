package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-internal-auth/models"
)

// Field names accepted by [EchoValidator.Validate].
const (
	FieldMessage = "message"
)

// MaxEchoMessageLen is the largest message, in bytes, the echo route accepts.
const MaxEchoMessageLen = 1024

type EchoValidator struct {
}

func NewEchoValidator() Validator {
	return &EchoValidator{}
}

// Validate checks a [models.EchoRequest]. With no fields given every field
// is checked.
func (v *EchoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EchoRequest:
		return v.validateEchoRequest(ctx, value, fields...)
	case *models.EchoRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEchoRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EchoValidator) validateEchoRequest(ctx context.Context, req models.EchoRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(req.Message) == "" {
				return ErrEmptyMessage
			}
			if len(req.Message) > MaxEchoMessageLen {
				return fmt.Errorf("%w: %d bytes, limit %d", ErrMessageTooLong, len(req.Message), MaxEchoMessageLen)
			}
			if !utf8.ValidString(req.Message) {
				return ErrInvalidEncoding
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
