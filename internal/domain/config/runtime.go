package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is built once at startup and injected into adapters and use cases
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	LedgerPath  string // deployment ledger, relative paths are resolved against ProjectRoot
	ScriptPath  string // forge deploy script, relative to ProjectRoot

	// Verification settings
	CompilerVersion string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Yes            bool // skip the broadcast confirmation prompt
	UsePTY         bool // run forge through a pseudo-terminal

	// Environment sourced values
	Secrets      Secrets
	RPCOverrides map[string]string // network -> RPC URL from foundry.toml [rpc_endpoints]
}

// Network represents a resolved network profile
type Network struct {
	Name        string `json:"name"`
	ChainID     uint64 `json:"chainId"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
	SigningKey  string `json:"-"`
	Local       bool   `json:"local"` // disposable local chain, never verified
}

// SignerAddress derives the account that will broadcast the deployment
func (n *Network) SignerAddress() (common.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(n.SigningKey, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signing key for %s: %w", n.Name, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Secrets are the operator supplied credentials
type Secrets struct {
	PrivateKey      string
	InfuraID        string
	EtherscanAPIKey string
}

// Environment variables holding the secrets
const (
	EnvPrivateKey      = "PRIVATE_KEY"
	EnvInfuraID        = "INFURA_ID"
	EnvEtherscanAPIKey = "ETHERSCAN_API_KEY"
)

// Validate checks that every secret is present. Values are not inspected
// beyond presence.
func (s Secrets) Validate() error {
	switch {
	case strings.TrimSpace(s.PrivateKey) == "":
		return domain.MissingConfigurationErr{Key: EnvPrivateKey, Hint: "your private key"}
	case strings.TrimSpace(s.InfuraID) == "":
		return domain.MissingConfigurationErr{Key: EnvInfuraID, Hint: "your Infura ID"}
	case strings.TrimSpace(s.EtherscanAPIKey) == "":
		return domain.MissingConfigurationErr{Key: EnvEtherscanAPIKey, Hint: "your Etherscan API key"}
	}
	return nil
}

// NormalizedPrivateKey returns the private key with a 0x prefix
func (s Secrets) NormalizedPrivateKey() string {
	key := strings.TrimSpace(s.PrivateKey)
	if strings.HasPrefix(key, "0x") {
		return key
	}
	return "0x" + key
}
