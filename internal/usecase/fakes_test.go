package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSigners maps raw keys to addresses
type fakeSigners map[string]common.Address

var errBadKey = errors.New("invalid key")

func (f fakeSigners) SignerAddress(key config.Secret) (common.Address, error) {
	addr, ok := f[key.Reveal()]
	if !ok {
		return common.Address{}, errBadKey
	}
	return addr, nil
}

// fakeProber returns a fixed chain id per endpoint
type fakeProber struct {
	chainIDs map[string]uint64
	err      error
	calls    []string
}

func (f *fakeProber) ChainID(ctx context.Context, endpoint string) (uint64, error) {
	f.calls = append(f.calls, endpoint)
	if f.err != nil {
		return 0, f.err
	}
	return f.chainIDs[endpoint], nil
}

// recordingSink records progress stages
type recordingSink struct {
	mu     sync.Mutex
	stages []CheckStage
}

func (r *recordingSink) OnProgress(ctx context.Context, event ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, event.Stage)
}

func (r *recordingSink) Info(string)  {}
func (r *recordingSink) Error(string) {}
