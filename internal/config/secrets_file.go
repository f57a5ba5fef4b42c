package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// SecretsFiles lists the optional secrets files in a project, highest precedence first
var SecretsFiles = []string{".env.local", ".env"}

// LoadSecretsFile parses a KEY=VALUE secrets file.
// A missing file yields an empty environment; a file that exists but cannot
// be parsed yields a *config.MalformedSecretsFileError.
func LoadSecretsFile(path string) (MapEnv, error) {
	f, err := os.Open(path) //nolint:gosec // project-local path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return MapEnv{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, &config.MalformedSecretsFileError{Path: path, Err: err}
	}

	return MapEnv(values), nil
}

// LoadEnvironment layers base over the project's secrets files.
// It returns the combined environment and the files that were found.
func LoadEnvironment(projectRoot string, base Environment) (Environment, []string, error) {
	layers := LayeredEnv{base}
	var loaded []string

	for _, name := range SecretsFiles {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		values, err := LoadSecretsFile(path)
		if err != nil {
			return nil, nil, err
		}
		layers = append(layers, values)
		loaded = append(loaded, path)
	}

	return layers, loaded, nil
}
