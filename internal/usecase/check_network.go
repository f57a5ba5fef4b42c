package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// maxSuggestions caps the "did you mean" list for unknown networks
const maxSuggestions = 3

// CheckNetworkParams contains parameters for checking a network profile
type CheckNetworkParams struct {
	Network string
	// Offline skips contacting the endpoint
	Offline bool
}

// CheckNetworkResult contains the result of a successful check
type CheckNetworkResult struct {
	Network       string
	ChainID       uint64
	EndpointURL   string
	SigningKeys   int
	DefaultSigner common.Address
	// RemoteChainID is what the endpoint reported; zero when Offline
	RemoteChainID uint64
	Latency       time.Duration
	Offline       bool
}

// CheckNetwork verifies a network profile at point of use: endpoint and keys
// present, default key valid, endpoint serving the configured chain
type CheckNetwork struct {
	build    *config.BuildConfiguration
	signers  SignerResolver
	prober   ChainProber
	progress ProgressSink
	log      *slog.Logger
}

// NewCheckNetwork creates a new CheckNetwork use case
func NewCheckNetwork(
	build *config.BuildConfiguration,
	signers SignerResolver,
	prober ChainProber,
	progress ProgressSink,
	log *slog.Logger,
) *CheckNetwork {
	if progress == nil {
		progress = NopProgress{}
	}
	return &CheckNetwork{
		build:    build,
		signers:  signers,
		prober:   prober,
		progress: progress,
		log:      log,
	}
}

// Run executes the use case
func (uc *CheckNetwork) Run(ctx context.Context, params CheckNetworkParams) (*CheckNetworkResult, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageResolving, Message: fmt.Sprintf("Resolving network %s", params.Network)})

	profile, ok := uc.build.Network(params.Network)
	if !ok {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, &config.NetworkNotFoundError{
			Name:        params.Network,
			Suggestions: suggestNetworks(params.Network, uc.build.NetworkNames()),
		}
	}

	if err := profile.Usable(); err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageSigner, Message: "Deriving default signer"})

	key, _ := profile.DefaultSigner()
	signer, err := uc.signers.SignerAddress(key)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, fmt.Errorf("invalid default signing key for network '%s': %w", profile.Name, err)
	}

	result := &CheckNetworkResult{
		Network:       profile.Name,
		ChainID:       profile.ChainID,
		EndpointURL:   profile.EndpointURL,
		SigningKeys:   len(profile.SigningKeys),
		DefaultSigner: signer,
		Offline:       params.Offline,
	}

	if params.Offline {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return result, nil
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageProbing, Message: "Querying endpoint chain ID", Spinner: true})

	start := time.Now()
	remote, err := uc.prober.ChainID(ctx, profile.EndpointURL)
	result.Latency = time.Since(start)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, fmt.Errorf("failed to query chain ID for network '%s': %w", profile.Name, err)
	}
	result.RemoteChainID = remote

	uc.log.Debug("probed endpoint", "network", profile, "remote_chain_id", remote, "latency", result.Latency)

	// A profile without a chain id accepts whatever the endpoint serves
	if profile.ChainID != 0 && remote != profile.ChainID {
		return nil, &config.ChainIDMismatchError{
			Network:  profile.Name,
			Expected: profile.ChainID,
			Actual:   remote,
		}
	}

	return result, nil
}

// suggestNetworks returns the closest configured names to an unknown one
func suggestNetworks(name string, candidates []string) []string {
	matches := fuzzy.Find(name, candidates)
	names := lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	})
	if len(names) == 0 {
		// fuzzy matching needs every character in order; fall back to prefixes
		names = lo.Filter(candidates, func(c string, _ int) bool {
			return len(name) > 0 && len(c) > 0 && c[0] == name[0]
		})
	}
	if len(names) > maxSuggestions {
		names = names[:maxSuggestions]
	}
	return names
}
