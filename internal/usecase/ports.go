package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// SignerResolver derives the account address a signing key controls
type SignerResolver interface {
	SignerAddress(key config.Secret) (common.Address, error)
}

// ChainProber asks an RPC endpoint which chain it serves
type ChainProber interface {
	ChainID(ctx context.Context, endpoint string) (uint64, error)
}

// NetworkSelector handles interactive selection of networks
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, names []string, prompt string) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   CheckStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// CheckStage represents a stage of checking a network profile
type CheckStage string

const (
	StageResolving CheckStage = "Resolving"
	StageSigner    CheckStage = "Signer"
	StageProbing   CheckStage = "Probing"
	StageCompleted CheckStage = "Completed"
)
