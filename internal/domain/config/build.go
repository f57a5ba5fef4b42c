package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// NetworkProfile holds everything needed to operate against one network
type NetworkProfile struct {
	Name        string
	ChainID     uint64 // 0 when the definition leaves it unspecified
	EndpointURL string
	// SigningKeys are ordered; the first one is the default signer
	SigningKeys []Secret
}

// DefaultSigner returns the key used for transactions unless another is chosen
func (p NetworkProfile) DefaultSigner() (Secret, bool) {
	if len(p.SigningKeys) == 0 {
		return Secret{}, false
	}
	return p.SigningKeys[0], true
}

// Usable reports why the profile cannot be used for network operations.
// It is only called at point of use, never while loading.
func (p NetworkProfile) Usable() error {
	var missing []string
	if strings.TrimSpace(p.EndpointURL) == "" {
		missing = append(missing, MissingEndpoint)
	}
	if len(p.SigningKeys) == 0 {
		missing = append(missing, MissingSigningKeys)
	}
	if len(missing) > 0 {
		return &UnusableNetworkProfileError{Network: p.Name, Missing: missing}
	}
	return nil
}

// Clone returns a copy that shares no slices with p
func (p NetworkProfile) Clone() NetworkProfile {
	p.SigningKeys = slices.Clone(p.SigningKeys)
	return p
}

// LogValue implements slog.LogValuer
func (p NetworkProfile) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.Name),
		slog.Uint64("chain_id", p.ChainID),
		slog.Bool("endpoint_set", p.EndpointURL != ""),
		slog.Int("signing_keys", len(p.SigningKeys)),
	)
}

// BuildConfiguration is the record handed to the external build tool.
// It is built once at startup and never mutated; accessors return copies.
type BuildConfiguration struct {
	compilerVersion string
	networks        map[string]NetworkProfile
}

// NewBuildConfiguration copies profiles into a new immutable configuration.
// Each profile's Name is set to its key.
func NewBuildConfiguration(compilerVersion string, profiles map[string]NetworkProfile) *BuildConfiguration {
	networks := make(map[string]NetworkProfile, len(profiles))
	for name, profile := range profiles {
		profile = profile.Clone()
		profile.Name = name
		if profile.SigningKeys == nil {
			profile.SigningKeys = []Secret{}
		}
		networks[name] = profile
	}

	return &BuildConfiguration{
		compilerVersion: compilerVersion,
		networks:        networks,
	}
}

// CompilerVersion returns the compiler version the build tool should select
func (c *BuildConfiguration) CompilerVersion() string {
	return c.compilerVersion
}

// Network returns a copy of the named profile
func (c *BuildConfiguration) Network(name string) (NetworkProfile, bool) {
	profile, ok := c.networks[name]
	if !ok {
		return NetworkProfile{}, false
	}
	return profile.Clone(), true
}

// NetworkNames returns the configured network names in sorted order
func (c *BuildConfiguration) NetworkNames() []string {
	names := lo.Keys(c.networks)
	slices.Sort(names)
	return names
}

// Networks returns a copy of all profiles keyed by name
func (c *BuildConfiguration) Networks() map[string]NetworkProfile {
	return lo.MapValues(c.networks, func(p NetworkProfile, _ string) NetworkProfile {
		return p.Clone()
	})
}

// Len returns the number of configured networks
func (c *BuildConfiguration) Len() int {
	return len(c.networks)
}

func (c *BuildConfiguration) String() string {
	return fmt.Sprintf("compiler=%s networks=[%s]", c.compilerVersion, strings.Join(c.NetworkNames(), ","))
}

// LogValue implements slog.LogValuer
func (c *BuildConfiguration) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("compiler", c.compilerVersion)}
	for _, name := range c.NetworkNames() {
		attrs = append(attrs, slog.Any(name, c.networks[name]))
	}
	return slog.GroupValue(attrs...)
}
