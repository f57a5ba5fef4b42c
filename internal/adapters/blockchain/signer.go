package blockchain

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// KeyDeriver derives account addresses from raw secp256k1 private keys
type KeyDeriver struct{}

// NewKeyDeriver creates a new key deriver
func NewKeyDeriver() *KeyDeriver {
	return &KeyDeriver{}
}

// SignerAddress returns the address controlled by a hex private key, with or without 0x.
// Errors never include the key itself.
func (d *KeyDeriver) SignerAddress(key config.Secret) (common.Address, error) {
	if key.IsZero() {
		return common.Address{}, fmt.Errorf("empty private key")
	}

	privateKeyHex := strings.TrimPrefix(strings.TrimSpace(key.Reveal()), "0x")

	// Decode hex string
	privateKeyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return common.Address{}, fmt.Errorf("private key is not valid hex")
	}

	// Create private key from bytes
	privateKey, err := crypto.ToECDSA(privateKeyBytes)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to create private key: %w", err)
	}

	// Get address from private key
	publicKeyECDSA, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return common.Address{}, fmt.Errorf("failed to get public key")
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA), nil
}

// Ensure the adapter implements the interface
var _ usecase.SignerResolver = (*KeyDeriver)(nil)
