// Package config loads an optional on-disk tuning file: the registry path,
// extra locked words, the entropy threshold and the blob length guard are
// all configurable there instead of only via flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Config holds every tunable the tokenizer accepts beyond the source file
// itself. A zero Config is valid: Load returns the defaults below when no
// file is present.
type Config struct {
	RegistryPath     string   `mapstructure:"registry_path"`
	ExtraLockedWords []string `mapstructure:"extra_locked_words"`
	EntropyThreshold float64  `mapstructure:"entropy_threshold"`
	BlobLengthGuard  int      `mapstructure:"blob_length_guard"`
}

// Default returns the built-in defaults, matching the package-level
// constants in internal/segment and internal/traverse.
func Default() Config {
	return Config{
		RegistryPath:     "nset_vocab.bin",
		EntropyThreshold: 5.0,
		BlobLengthGuard:  32,
	}
}

// Load reads path as JSON and decodes it onto Default() via mapstructure,
// so a config file only needs to set the fields it wants to override. A
// path that does not exist is not an error: Load returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, fmt.Errorf("config: build decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}
