package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
)

// Anvil defaults. The key is the first of anvil's publicly known dev
// accounts; anvil is a disposable local chain.
const (
	AnvilNetwork    = "anvil"
	AnvilRPCURL     = "http://localhost:8545"
	AnvilPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

// networkEntry is a row of the static network table
type networkEntry struct {
	chainID uint64
	local   bool
}

// networkTable lists every network a deployment may target
var networkTable = map[string]networkEntry{
	"mainnet":    {chainID: 1},
	"goerli":     {chainID: 5},
	"sepolia":    {chainID: 11155111},
	AnvilNetwork: {chainID: 31337, local: true},
}

// NetworkRegistry resolves network names to profiles
type NetworkRegistry struct {
	secrets   config.Secrets
	overrides map[string]string
}

// NewNetworkRegistry creates a registry over the static network table.
// overrides replaces the RPC URL of known networks.
func NewNetworkRegistry(secrets config.Secrets, overrides map[string]string) *NetworkRegistry {
	return &NetworkRegistry{
		secrets:   secrets,
		overrides: overrides,
	}
}

// ProvideNetworkRegistry creates a NetworkRegistry for Wire dependency injection
func ProvideNetworkRegistry(cfg *config.RuntimeConfig) *NetworkRegistry {
	return NewNetworkRegistry(cfg.Secrets, cfg.RPCOverrides)
}

// Names returns the supported network names, sorted
func (r *NetworkRegistry) Names() []string {
	names := lo.Keys(networkTable)
	slices.Sort(names)
	return names
}

// Resolve returns the profile for a network name
func (r *NetworkRegistry) Resolve(name string) (*config.Network, error) {
	entry, ok := networkTable[name]
	if !ok {
		return nil, domain.UnknownNetworkErr{
			Name:        name,
			Known:       r.Names(),
			Suggestions: r.suggest(name),
		}
	}

	network := &config.Network{
		Name:        name,
		ChainID:     entry.chainID,
		ExplorerURL: ExplorerURL(entry.chainID),
		Local:       entry.local,
	}

	if entry.local {
		network.RPCURL = AnvilRPCURL
		network.SigningKey = AnvilPrivateKey
	} else {
		network.RPCURL = fmt.Sprintf("https://%s.infura.io/v3/%s", name, r.secrets.InfuraID)
		network.SigningKey = r.secrets.NormalizedPrivateKey()
	}

	if url, ok := r.overrides[name]; ok && url != "" {
		network.RPCURL = url
	}

	return network, nil
}

// suggest returns close matches for a mistyped network name
func (r *NetworkRegistry) suggest(name string) []string {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	matches := fuzzy.Find(strings.ToLower(name), r.Names())
	if len(matches) == 0 {
		return nil
	}
	return lo.Map(matches, func(m fuzzy.Match, _ int) string { return m.Str })
}

// ExplorerURL returns the block explorer for a chain, if one is known
func ExplorerURL(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 5:
		return "https://goerli.etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	default:
		return ""
	}
}
