package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error with the error icon. Known configuration
// errors get a hint on how to fix them.
func FormatError(err error) string {
	msg := err.Error()
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	var hint string
	var unusable *config.UnusableNetworkProfileError
	var malformed *config.MalformedSecretsFileError
	var mismatch *config.ChainIDMismatchError
	switch {
	case errors.As(err, &unusable):
		hint = fmt.Sprintf("set the variables for network '%s' in the environment or a secrets file", unusable.Network)
	case errors.As(err, &malformed):
		hint = fmt.Sprintf("fix the syntax of %s", malformed.Path)
	case errors.As(err, &mismatch):
		hint = "check that the endpoint URL points at the right network"
	}

	out := color.New(color.FgRed).Sprintf("❌ %s", msg)
	if hint != "" {
		out += "\n" + color.New(color.Faint).Sprintf("   hint: %s", hint)
	}
	return out
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// orDash renders empty values as a dash
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatChainID renders an unspecified chain id as "any"
func formatChainID(id uint64) string {
	if id == 0 {
		return "any"
	}
	return fmt.Sprintf("%d", id)
}
