package config

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Redacted is what a non-empty Secret prints as on every generic output path
const Redacted = "[REDACTED]"

// Secret holds a sensitive string such as a signing key.
// The raw value is only available through Reveal; fmt, encoders and slog all
// see the redaction marker instead.
type Secret struct {
	// The pointer keeps reflection-based printers (fmt on unexported fields)
	// from reaching the value: they print an address instead.
	v *secretValue
}

type secretValue struct {
	raw string
}

// NewSecret wraps a raw value. An empty string yields the zero Secret.
func NewSecret(raw string) Secret {
	if raw == "" {
		return Secret{}
	}
	return Secret{v: &secretValue{raw: raw}}
}

// Reveal returns the raw secret value
func (s Secret) Reveal() string {
	if s.v == nil {
		return ""
	}
	return s.v.raw
}

// IsZero reports whether the secret is empty
func (s Secret) IsZero() bool {
	return s.v == nil || s.v.raw == ""
}

func (s Secret) redacted() string {
	if s.IsZero() {
		return ""
	}
	return Redacted
}

// String implements fmt.Stringer
func (s Secret) String() string {
	return s.redacted()
}

// GoString implements fmt.GoStringer
func (s Secret) GoString() string {
	return fmt.Sprintf("config.Secret(%q)", s.redacted())
}

// Format implements fmt.Formatter so that no verb bypasses redaction
func (s Secret) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		_, _ = f.Write([]byte(strconv.Quote(s.redacted())))
	case 'v':
		if f.Flag('#') {
			_, _ = f.Write([]byte(s.GoString()))
			return
		}
		_, _ = f.Write([]byte(s.redacted()))
	default:
		_, _ = f.Write([]byte(s.redacted()))
	}
}

// MarshalText implements encoding.TextMarshaler; JSON, YAML and TOML encoders
// all go through it.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(s.redacted()), nil
}

// LogValue implements slog.LogValuer
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.redacted())
}
