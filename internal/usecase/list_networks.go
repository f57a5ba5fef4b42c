package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	CompilerVersion string
	Networks        []NetworkStatus
}

// NetworkStatus summarizes one network profile without exposing key material
type NetworkStatus struct {
	Name          string
	ChainID       uint64
	EndpointURL   string
	SigningKeys   int
	DefaultSigner *common.Address // nil when there is no key or it is invalid
	SignerError   error
	// UsableError is non-nil when the profile would fail at point of use
	UsableError error
}

// ListNetworks is a use case for listing configured networks
type ListNetworks struct {
	build   *config.BuildConfiguration
	signers SignerResolver
	log     *slog.Logger
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(build *config.BuildConfiguration, signers SignerResolver, log *slog.Logger) *ListNetworks {
	return &ListNetworks{
		build:   build,
		signers: signers,
		log:     log,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.build.NetworkNames()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		profile, _ := uc.build.Network(name)

		status := NetworkStatus{
			Name:        name,
			ChainID:     profile.ChainID,
			EndpointURL: profile.EndpointURL,
			SigningKeys: len(profile.SigningKeys),
			UsableError: profile.Usable(),
		}

		if key, ok := profile.DefaultSigner(); ok {
			address, err := uc.signers.SignerAddress(key)
			if err != nil {
				status.SignerError = err
			} else {
				status.DefaultSigner = &address
			}
		}

		uc.log.Debug("network status", "network", profile, "usable", status.UsableError == nil)
		networks = append(networks, status)
	}

	return &ListNetworksResult{
		CompilerVersion: uc.build.CompilerVersion(),
		Networks:        networks,
	}, nil
}
