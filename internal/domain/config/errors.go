package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, matched with errors.Is against the typed errors below
var (
	// ErrMalformedSecretsFile is returned when a local secrets file exists but cannot be parsed
	ErrMalformedSecretsFile = errors.New("malformed secrets file")

	// ErrUnusableNetworkProfile is returned at point of use when a profile lacks an endpoint or keys
	ErrUnusableNetworkProfile = errors.New("unusable network profile")

	// ErrNetworkNotFound is returned when a network name is not configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrChainIDMismatch is returned when an endpoint serves a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")
)

// Parts of a profile reported by UnusableNetworkProfileError
const (
	MissingEndpoint    = "endpoint"
	MissingSigningKeys = "signing keys"
)

type MalformedSecretsFileError struct {
	Path string
	Err  error
}

func (e *MalformedSecretsFileError) Error() string {
	return fmt.Sprintf("malformed secrets file %s: %v", e.Path, e.Err)
}

func (e *MalformedSecretsFileError) Unwrap() error {
	return e.Err
}

func (e *MalformedSecretsFileError) Is(target error) bool {
	return target == ErrMalformedSecretsFile
}

type UnusableNetworkProfileError struct {
	Network string
	Missing []string
}

func (e *UnusableNetworkProfileError) Error() string {
	return fmt.Sprintf("network '%s' is not usable: missing %s", e.Network, strings.Join(e.Missing, " and "))
}

func (e *UnusableNetworkProfileError) Is(target error) bool {
	return target == ErrUnusableNetworkProfile
}

type NetworkNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NetworkNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("network '%s' is not configured", e.Name)
	}
	return fmt.Sprintf("network '%s' is not configured (did you mean: %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *NetworkNotFoundError) Is(target error) bool {
	return target == ErrNetworkNotFound
}

type ChainIDMismatchError struct {
	Network  string
	Expected uint64
	Actual   uint64
}

func (e *ChainIDMismatchError) Error() string {
	return fmt.Sprintf("chain ID mismatch for network '%s': expected %d, got %d", e.Network, e.Expected, e.Actual)
}

func (e *ChainIDMismatchError) Is(target error) bool {
	return target == ErrChainIDMismatch
}
