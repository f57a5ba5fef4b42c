package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/deploycfg/internal/adapters/blockchain"
	"github.com/trebuchet-org/deploycfg/internal/adapters/interactive"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewKeyDeriver,
	wire.Bind(new(usecase.SignerResolver), new(*blockchain.KeyDeriver)),

	blockchain.NewRPCProber,
	wire.Bind(new(usecase.ChainProber), new(*blockchain.RPCProber)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	InteractiveSet,
)
