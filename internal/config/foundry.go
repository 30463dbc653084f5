package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FoundryTOML is the part of foundry.toml this tool reads
type FoundryTOML struct {
	RpcEndpoints map[string]string `toml:"rpc_endpoints"`
}

// LoadRPCOverrides reads [rpc_endpoints] from foundry.toml and expands
// ${VAR} references. Only names of the static network table are returned.
// A missing foundry.toml yields no overrides.
func LoadRPCOverrides(projectRoot string) (map[string]string, error) {
	foundryPath := filepath.Join(projectRoot, "foundry.toml")

	var raw FoundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	overrides := make(map[string]string)
	for name, url := range raw.RpcEndpoints {
		if _, known := networkTable[name]; !known {
			continue
		}
		if expanded := os.ExpandEnv(url); expanded != "" {
			overrides[name] = expanded
		}
	}
	return overrides, nil
}
