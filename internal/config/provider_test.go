package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, DefinitionFile, "")
	nested := filepath.Join(root, "contracts", "src")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Equal(t, root, FindProjectRoot(nested))
	assert.Equal(t, root, FindProjectRoot(root))

	// Without a definition file anywhere up the tree, start is the root
	bare := t.TempDir()
	assert.Equal(t, bare, FindProjectRoot(bare))
}

func TestSetupViper(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := SetupViper("/project", nil)

		assert.Equal(t, "/project", v.GetString("project_root"))
		assert.Equal(t, "info", v.GetString("log_level"))
		assert.Equal(t, 30*time.Second, v.GetDuration("timeout"))
		assert.False(t, v.GetBool("debug"))
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("DEPLOYCFG_NETWORK", "rinkeby")
		t.Setenv("DEPLOYCFG_LOG_LEVEL", "debug")

		v := SetupViper("/project", nil)

		assert.Equal(t, "rinkeby", v.GetString("network"))
		assert.Equal(t, "debug", v.GetString("log_level"))
	})

	t.Run("changed flags win", func(t *testing.T) {
		t.Setenv("DEPLOYCFG_NETWORK", "rinkeby")

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().StringP("network", "n", "", "")
		cmd.Flags().Bool("json", false, "")
		cmd.Flags().Bool("debug", false, "")
		require.NoError(t, cmd.ParseFlags([]string{"--network", "sepolia", "--json"}))

		v := SetupViper("/project", cmd)

		assert.Equal(t, "sepolia", v.GetString("network"))
		assert.True(t, v.GetBool("json"))
		assert.False(t, v.GetBool("debug"))
	})
}

func TestProvider(t *testing.T) {
	t.Run("builtin definition with secrets file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "QUICKNODE_API_KEY_URL=https://node.example/abc\nRINKEBY_PRIVATE_KEY=0xdeadbeef\n")

		v := SetupViper(dir, nil)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Equal(t, SourceBuiltin, cfg.DefinitionSource)
		assert.Equal(t, []string{filepath.Join(dir, ".env")}, cfg.SecretsFiles)
		assert.Equal(t, "0.8.1", cfg.Build.CompilerVersion())
		assert.Same(t, cfg.Build, ProvideBuildConfiguration(cfg))
		assert.Empty(t, cfg.UnsetVariables)

		rinkeby, ok := cfg.Build.Network("rinkeby")
		require.True(t, ok)
		assert.Equal(t, "https://node.example/abc", rinkeby.EndpointURL)
		assert.Equal(t, []string{"0xdeadbeef"}, revealAll(rinkeby.SigningKeys))
	})

	t.Run("process environment wins over secrets file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "QUICKNODE_API_KEY_URL=https://from-file.example\n")
		t.Setenv("QUICKNODE_API_KEY_URL", "https://from-process.example")

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)

		rinkeby, _ := cfg.Build.Network("rinkeby")
		assert.Equal(t, "https://from-process.example", rinkeby.EndpointURL)
	})

	t.Run("malformed secrets file is fatal", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "BAD-KEY=value\n")

		_, err := Provider(SetupViper(dir, nil))
		assert.ErrorIs(t, err, config.ErrMalformedSecretsFile)
	})

	t.Run("malformed definition is fatal", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, DefinitionFile, "[compiler\n")

		_, err := Provider(SetupViper(dir, nil))
		assert.Error(t, err)
	})

	t.Run("project definition file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, DefinitionFile, `
[compiler]
version = "0.8.24"

[networks.sepolia]
chain_id = 11155111
`)

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)
		assert.Equal(t, DefinitionFile, cfg.DefinitionSource)
		assert.Equal(t, "0.8.24", cfg.Build.CompilerVersion())
		assert.Equal(t, []string{"sepolia"}, cfg.Build.NetworkNames())
		assert.Equal(t, []string{"SEPOLIA_PRIVATE_KEY", "SEPOLIA_RPC_URL"}, cfg.UnsetVariables)
	})
}
