package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

func TestLoadSecretsFile(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		env, err := LoadSecretsFile(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)
		assert.Empty(t, env)
	})

	t.Run("key value pairs", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, ".env", `# rinkeby
QUICKNODE_API_KEY_URL=https://node.example/abc
export RINKEBY_PRIVATE_KEY="0xdeadbeef"
EMPTY=
`)

		env, err := LoadSecretsFile(path)
		require.NoError(t, err)
		assert.Equal(t, MapEnv{
			"QUICKNODE_API_KEY_URL": "https://node.example/abc",
			"RINKEBY_PRIVATE_KEY":   "0xdeadbeef",
			"EMPTY":                 "",
		}, env)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, ".env", "GOOD=1\nBAD-KEY=value\n")

		_, err := LoadSecretsFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrMalformedSecretsFile))

		var malformed *config.MalformedSecretsFileError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, path, malformed.Path)
	})
}

func TestLoadEnvironment(t *testing.T) {
	t.Run("no secrets files", func(t *testing.T) {
		env, files, err := LoadEnvironment(t.TempDir(), MapEnv{"A": "base"})
		require.NoError(t, err)
		assert.Empty(t, files)

		v, ok := env.Lookup("A")
		assert.True(t, ok)
		assert.Equal(t, "base", v)
	})

	t.Run("precedence", func(t *testing.T) {
		dir := t.TempDir()
		dotenv := writeFile(t, dir, ".env", "A=dotenv\nB=dotenv\nC=dotenv\n")
		local := writeFile(t, dir, ".env.local", "A=local\nB=local\n")

		env, files, err := LoadEnvironment(dir, MapEnv{"A": "process"})
		require.NoError(t, err)
		assert.Equal(t, []string{local, dotenv}, files)

		for key, want := range map[string]string{"A": "process", "B": "local", "C": "dotenv"} {
			v, ok := env.Lookup(key)
			assert.True(t, ok, key)
			assert.Equal(t, want, v, key)
		}

		_, ok := env.Lookup("D")
		assert.False(t, ok)
	})

	t.Run("malformed file aborts", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "BAD-KEY=value\n")

		_, _, err := LoadEnvironment(dir, MapEnv{})
		assert.ErrorIs(t, err, config.ErrMalformedSecretsFile)
	})

	t.Run("stat failure aborts", func(t *testing.T) {
		// A project root that is a file makes every secrets path ENOTDIR
		root := writeFile(t, t.TempDir(), "not-a-dir", "")

		_, _, err := LoadEnvironment(root, MapEnv{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to stat")
	})

	t.Run("unreadable file aborts", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root can read any file")
		}
		dir := t.TempDir()
		path := writeFile(t, dir, ".env", "A=1\n")
		require.NoError(t, os.Chmod(path, 0))

		_, files, err := LoadEnvironment(dir, MapEnv{})
		require.Error(t, err)
		assert.Empty(t, files)
	})

	t.Run("secrets file feeds the loader", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "QUICKNODE_API_KEY_URL=https://node.example/abc\nRINKEBY_PRIVATE_KEY=0xdeadbeef\n")

		env, _, err := LoadEnvironment(dir, MapEnv{})
		require.NoError(t, err)

		rinkeby, ok := Load(env, DefaultDefinition()).Network("rinkeby")
		require.True(t, ok)
		assert.Equal(t, "https://node.example/abc", rinkeby.EndpointURL)
		assert.Equal(t, []string{"0xdeadbeef"}, revealAll(rinkeby.SigningKeys))
	})
}
