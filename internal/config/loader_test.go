package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// scenarioDefinition mirrors the built-in definition with generic variable names
func scenarioDefinition() *config.Definition {
	return &config.Definition{
		Compiler: config.CompilerDefinition{Version: "0.8.1"},
		Networks: map[string]config.NetworkDefinition{
			"rinkeby": {
				ChainID:  4,
				URL:      "${ENDPOINT_URL}",
				Accounts: []string{"${SIGNING_KEY}"},
			},
		},
	}
}

func revealAll(keys []config.Secret) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.Reveal())
	}
	return out
}

func TestLoad(t *testing.T) {
	t.Run("fully set environment", func(t *testing.T) {
		env := MapEnv{
			"ENDPOINT_URL": "https://node.example/abc",
			"SIGNING_KEY":  "0xdeadbeef",
		}

		cfg := Load(env, scenarioDefinition())

		rinkeby, ok := cfg.Network("rinkeby")
		require.True(t, ok)
		assert.Equal(t, "rinkeby", rinkeby.Name)
		assert.Equal(t, uint64(4), rinkeby.ChainID)
		assert.Equal(t, "https://node.example/abc", rinkeby.EndpointURL)
		assert.Equal(t, []string{"0xdeadbeef"}, revealAll(rinkeby.SigningKeys))
		assert.NoError(t, rinkeby.Usable())
	})

	t.Run("empty environment loads without error", func(t *testing.T) {
		cfg := Load(MapEnv{}, scenarioDefinition())

		rinkeby, ok := cfg.Network("rinkeby")
		require.True(t, ok)
		assert.Equal(t, uint64(4), rinkeby.ChainID)
		assert.Equal(t, "", rinkeby.EndpointURL)
		assert.Empty(t, rinkeby.SigningKeys)

		// Failure only surfaces at point of use
		assert.ErrorIs(t, rinkeby.Usable(), config.ErrUnusableNetworkProfile)
	})

	t.Run("endpoint unset, key set", func(t *testing.T) {
		cfg := Load(MapEnv{"SIGNING_KEY": "0xdeadbeef"}, scenarioDefinition())

		rinkeby, _ := cfg.Network("rinkeby")
		assert.Equal(t, "", rinkeby.EndpointURL)
		assert.Len(t, rinkeby.SigningKeys, 1)
	})

	t.Run("blank key is dropped", func(t *testing.T) {
		cfg := Load(MapEnv{"ENDPOINT_URL": "https://node.example/abc", "SIGNING_KEY": "   "}, scenarioDefinition())

		rinkeby, _ := cfg.Network("rinkeby")
		assert.Empty(t, rinkeby.SigningKeys)
	})

	t.Run("key order follows the definition", func(t *testing.T) {
		def := scenarioDefinition()
		def.Networks["rinkeby"] = config.NetworkDefinition{
			ChainID:  4,
			URL:      "${ENDPOINT_URL}",
			Accounts: []string{"${SECOND}", "${MISSING}", "${FIRST}", "0xliteral"},
		}

		cfg := Load(MapEnv{"FIRST": "0x01", "SECOND": "0x02"}, def)

		rinkeby, _ := cfg.Network("rinkeby")
		assert.Equal(t, []string{"0x02", "0x01", "0xliteral"}, revealAll(rinkeby.SigningKeys))

		signer, ok := rinkeby.DefaultSigner()
		require.True(t, ok)
		assert.Equal(t, "0x02", signer.Reveal())
	})

	t.Run("templates with surrounding text", func(t *testing.T) {
		def := scenarioDefinition()
		def.Networks["rinkeby"] = config.NetworkDefinition{
			ChainID: 4,
			URL:     "https://rinkeby.example/v3/${API_KEY}",
		}

		cfg := Load(MapEnv{"API_KEY": "abc"}, def)

		rinkeby, _ := cfg.Network("rinkeby")
		assert.Equal(t, "https://rinkeby.example/v3/abc", rinkeby.EndpointURL)
	})

	t.Run("nil definition uses builtin", func(t *testing.T) {
		cfg := Load(MapEnv{
			"QUICKNODE_API_KEY_URL": "https://node.example/abc",
			"RINKEBY_PRIVATE_KEY":   "0xdeadbeef",
		}, nil)

		assert.Equal(t, DefaultCompilerVersion, cfg.CompilerVersion())
		rinkeby, ok := cfg.Network("rinkeby")
		require.True(t, ok)
		assert.Equal(t, "https://node.example/abc", rinkeby.EndpointURL)
		assert.Equal(t, []string{"0xdeadbeef"}, revealAll(rinkeby.SigningKeys))
	})

	t.Run("nil environment behaves like an empty one", func(t *testing.T) {
		cfg := Load(nil, scenarioDefinition())
		rinkeby, _ := cfg.Network("rinkeby")
		assert.Empty(t, rinkeby.EndpointURL)
	})
}

func TestLoadCompilerVersionIsNeverExpanded(t *testing.T) {
	def := scenarioDefinition()

	envs := []MapEnv{
		{},
		{"ENDPOINT_URL": "https://node.example/abc", "SIGNING_KEY": "0x01"},
		{"COMPILER_VERSION": "0.9.0", "SOLC_VERSION": "0.9.0"},
	}
	for _, env := range envs {
		assert.Equal(t, "0.8.1", Load(env, def).CompilerVersion())
	}

	def.Compiler.Version = "${SOLC_VERSION}"
	assert.Equal(t, "${SOLC_VERSION}", Load(MapEnv{"SOLC_VERSION": "0.9.0"}, def).CompilerVersion())
}

func TestLoadIsIdempotent(t *testing.T) {
	env := MapEnv{
		"ENDPOINT_URL": "https://node.example/abc",
		"SIGNING_KEY":  "0xdeadbeef",
	}
	def := scenarioDefinition()

	first := Load(env, def)
	second := Load(env, def)

	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Networks(), second.Networks())
}

func TestLoadDoesNotRetainDefinition(t *testing.T) {
	def := scenarioDefinition()
	cfg := Load(MapEnv{"ENDPOINT_URL": "https://node.example/abc"}, def)

	def.Compiler.Version = "0.5.0"
	def.Networks["mainnet"] = config.NetworkDefinition{ChainID: 1}

	assert.Equal(t, "0.8.1", cfg.CompilerVersion())
	assert.Equal(t, []string{"rinkeby"}, cfg.NetworkNames())
}
