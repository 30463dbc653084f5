package verification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/forge"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// capturingRunner runs a command and returns its combined output
type capturingRunner interface {
	CombinedOutput(ctx context.Context, c forge.Command) (string, error)
}

// Verifier submits contracts to Etherscan through forge verify-contract
type Verifier struct {
	log         *slog.Logger
	runner      capturingRunner
	projectRoot string
	apiKey      string
}

// NewVerifier creates a new verifier
func NewVerifier(cfg *config.RuntimeConfig, runner *forge.Runner, log *slog.Logger) *Verifier {
	return &Verifier{
		log:         log.With("component", "Verifier"),
		runner:      runner,
		projectRoot: cfg.ProjectRoot,
		apiKey:      cfg.Secrets.EtherscanAPIKey,
	}
}

// Verify runs forge verify-contract and waits for the explorer result
func (v *Verifier) Verify(ctx context.Context, req usecase.VerificationRequest) error {
	cmd, err := v.buildCommand(req)
	if err != nil {
		return err
	}

	v.log.Debug("verifying contract", "contract", req.ContractName, "address", req.Address, "chainId", req.ChainID)
	output, err := v.runner.CombinedOutput(ctx, cmd)
	if isAlreadyVerified(output) {
		// Contract is already verified, not an error
		v.log.Debug("contract already verified", "contract", req.ContractName)
		return nil
	}
	return err
}

// buildCommand builds the forge verify-contract invocation
func (v *Verifier) buildCommand(req usecase.VerificationRequest) (forge.Command, error) {
	args := []string{
		"verify-contract",
		"--etherscan-api-key", v.apiKey,
		"--chain-id", fmt.Sprintf("%d", req.ChainID),
		"--compiler-version", req.CompilerVersion,
	}

	if req.ConstructorAddress != "" {
		encoded, err := EncodeAddressArgument(req.ConstructorAddress)
		if err != nil {
			return forge.Command{}, fmt.Errorf("failed to encode constructor args for %s: %w", req.ContractName, err)
		}
		args = append(args, "--constructor-args", encoded)
	}

	args = append(args, "--watch", req.Address, req.ContractName)

	return forge.Command{
		Name:   "forge",
		Args:   args,
		Dir:    v.projectRoot,
		Redact: []string{v.apiKey},
	}, nil
}

func isAlreadyVerified(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "already verified")
}

var _ usecase.ContractVerifier = (*Verifier)(nil)
