package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
)

// Defaults
const (
	DefaultLedgerPath      = "addresses.json"
	DefaultScriptPath      = "scripts/Deploy.s.sol"
	DefaultCompilerVersion = "v0.8.20+commit.a1b79de6"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	overrides, err := LoadRPCOverrides(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		LedgerPath:      v.GetString("ledger"),
		ScriptPath:      v.GetString("script"),
		CompilerVersion: v.GetString("compiler_version"),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		Yes:             v.GetBool("yes"),
		UsePTY:          v.GetBool("pty"),
		Secrets: config.Secrets{
			PrivateKey:      v.GetString("private_key"),
			InfuraID:        v.GetString("infura_id"),
			EtherscanAPIKey: v.GetString("etherscan_api_key"),
		},
		RPCOverrides: overrides,
	}

	if !filepath.IsAbs(cfg.LedgerPath) {
		cfg.LedgerPath = filepath.Join(projectRoot, cfg.LedgerPath)
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find foundry.toml.
// Falls back to the current directory when none is found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "foundry.toml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// LoadDotEnv loads .env and .env.local from the project root. Variables
// already present in the environment win.
func LoadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	LoadDotEnv(projectRoot)

	v := viper.New()

	// Optional config file in the project root
	v.SetConfigName(".wpokt-deploy")
	v.SetConfigType("json")
	v.AddConfigPath(projectRoot)

	// DEPLOY_LEDGER, DEPLOY_COMPILER_VERSION, ...
	v.SetEnvPrefix("DEPLOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Secrets keep their conventional unprefixed names
	_ = v.BindEnv("private_key", config.EnvPrivateKey)
	_ = v.BindEnv("infura_id", config.EnvInfuraID)
	_ = v.BindEnv("etherscan_api_key", config.EnvEtherscanAPIKey)

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("ledger", DefaultLedgerPath)
	v.SetDefault("script", DefaultScriptPath)
	v.SetDefault("compiler_version", DefaultCompilerVersion)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("yes", false)
	v.SetDefault("pty", false)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		bindFlags(v, cmd.Flags())
		bindFlags(v, cmd.InheritedFlags())
	}

	return v
}

// bindFlags binds flags under their snake_case key
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})
}
