package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Check queries every endpoint for the chain id it serves
	Check bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents a network of the registry
type NetworkStatus struct {
	Name        string
	ChainID     uint64
	RPCURL      string
	ExplorerURL string
	Local       bool
	// Reachable is set when the endpoint answered with the expected chain id
	Reachable bool
	Error     error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	networks NetworkRegistry
	checker  ChainChecker
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(networks NetworkRegistry, checker ChainChecker) *ListNetworks {
	return &ListNetworks{
		networks: networks,
		checker:  checker,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.networks.Names()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{Name: name}

		info, err := uc.networks.Resolve(name)
		if err != nil {
			status.Error = err
		} else {
			status.ChainID = info.ChainID
			status.RPCURL = maskRPCURL(info.RPCURL)
			status.ExplorerURL = info.ExplorerURL
			status.Local = info.Local

			if params.Check {
				status.Reachable, status.Error = uc.check(ctx, info.RPCURL, info.ChainID)
			}
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}

func (uc *ListNetworks) check(ctx context.Context, rpcURL string, expected uint64) (bool, error) {
	chainID, err := uc.checker.ChainID(ctx, rpcURL)
	if err != nil {
		// Errors from the client may echo the URL
		return false, errors.New(strings.ReplaceAll(err.Error(), rpcURL, maskRPCURL(rpcURL)))
	}
	if chainID != expected {
		return false, fmt.Errorf("endpoint serves chain %d, expected %d", chainID, expected)
	}
	return true, nil
}

// maskRPCURL hides the project id at the end of hosted RPC URLs
func maskRPCURL(url string) string {
	idx := strings.LastIndex(url, "/v3/")
	if idx == -1 {
		return url
	}
	if len(url) == idx+len("/v3/") {
		return url + "<unset>"
	}
	return url[:idx+len("/v3/")] + "***"
}
