package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// RPCProber queries RPC endpoints over JSON-RPC
type RPCProber struct {
	log *slog.Logger
}

// NewRPCProber creates a new RPC prober
func NewRPCProber(log *slog.Logger) *RPCProber {
	return &RPCProber{log: log}
}

// ChainID dials the endpoint and returns the chain ID it reports
func (p *RPCProber) ChainID(ctx context.Context, endpoint string) (uint64, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", maskURLError(err))
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", maskURLError(err))
	}

	p.log.Debug("endpoint reported chain ID", "chain_id", chainID.Uint64())

	return chainID.Uint64(), nil
}

// maskURLError masks the endpoint quoted by HTTP transport errors
func maskURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = config.MaskEndpoint(urlErr.URL)
	}
	return err
}

// Ensure the adapter implements the interface
var _ usecase.ChainProber = (*RPCProber)(nil)
