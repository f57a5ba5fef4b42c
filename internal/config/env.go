package config

import (
	"os"
	"strings"
)

// Environment is a read-only view of environment variables.
// The loader only ever sees an Environment; the process environment is
// captured once at the entry point via ProcessEnv.
type Environment interface {
	Lookup(key string) (string, bool)
}

// MapEnv is an explicit environment backed by a map
type MapEnv map[string]string

// Lookup implements Environment
func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// ProcessEnv reads the process environment
type ProcessEnv struct{}

// Lookup implements Environment
func (ProcessEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// LayeredEnv consults each layer in order; the first layer defining a key wins
type LayeredEnv []Environment

// Lookup implements Environment
func (l LayeredEnv) Lookup(key string) (string, bool) {
	for _, env := range l {
		if env == nil {
			continue
		}
		if v, ok := env.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// EnvFromList builds a MapEnv from KEY=VALUE entries such as os.Environ().
// Entries without '=' are ignored; later entries override earlier ones.
func EnvFromList(entries []string) MapEnv {
	env := make(MapEnv, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// expand substitutes ${VAR} and $VAR references; unset variables become ""
func expand(template string, env Environment) string {
	return os.Expand(template, func(key string) string {
		v, _ := env.Lookup(key)
		return v
	})
}
