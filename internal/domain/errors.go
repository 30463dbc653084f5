package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for deployment runs
var (
	// ErrMissingConfiguration is returned when a required secret or setting is absent
	ErrMissingConfiguration = errors.New("missing configuration")

	// ErrUnknownNetwork is returned when a network name is not in the registry
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrExternalToolFailure is returned when an external command exits unsuccessfully
	ErrExternalToolFailure = errors.New("external tool failure")

	// ErrMissingContract is returned when the broadcast artifact lacks an expected contract
	ErrMissingContract = errors.New("missing contract")

	// ErrMalformedArtifact is returned when the broadcast artifact cannot be read or is incomplete
	ErrMalformedArtifact = errors.New("malformed broadcast artifact")

	// ErrVerificationFailed is returned when contract verification fails
	ErrVerificationFailed = errors.New("verification failed")

	// ErrDeploymentAborted is returned when the operator declines to broadcast
	ErrDeploymentAborted = errors.New("deployment aborted")

	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")
)

// MissingConfigurationErr names the environment variable that was not set.
type MissingConfigurationErr struct {
	Key  string
	Hint string
}

func (e MissingConfigurationErr) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: please set %s in the %s env var", ErrMissingConfiguration, e.Hint, e.Key)
	}
	return fmt.Sprintf("%s: %s is not set", ErrMissingConfiguration, e.Key)
}

func (e MissingConfigurationErr) Unwrap() error { return ErrMissingConfiguration }

// UnknownNetworkErr carries the requested name and the names that are supported.
type UnknownNetworkErr struct {
	Name        string
	Known       []string
	Suggestions []string
}

func (e UnknownNetworkErr) Error() string {
	var b strings.Builder
	if e.Name == "" {
		b.WriteString("please specify a target network")
	} else {
		fmt.Fprintf(&b, "%s %s", ErrUnknownNetwork, e.Name)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	fmt.Fprintf(&b, ", please specify one of %s", strings.Join(e.Known, ", "))
	return b.String()
}

func (e UnknownNetworkErr) Unwrap() error { return ErrUnknownNetwork }

// ToolError describes a failed external command invocation.
type ToolError struct {
	Command string
	Output  string
	Err     error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrExternalToolFailure, e.Command)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *ToolError) Unwrap() []error { return withCause(ErrExternalToolFailure, e.Err) }

// MissingContractErr lists the expected contracts the artifact did not create.
type MissingContractErr struct {
	Names []string
	Path  string
}

func (e MissingContractErr) Error() string {
	return fmt.Sprintf("%s: %s not found in %s (does the deploy script still create it?)",
		ErrMissingContract, strings.Join(e.Names, ", "), e.Path)
}

func (e MissingContractErr) Unwrap() error { return ErrMissingContract }

// MalformedArtifactErr points at the artifact field that could not be used.
type MalformedArtifactErr struct {
	Path   string
	Reason string
	Err    error
}

func (e MalformedArtifactErr) Error() string {
	msg := fmt.Sprintf("%s %s: %s", ErrMalformedArtifact, e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e MalformedArtifactErr) Unwrap() []error { return withCause(ErrMalformedArtifact, e.Err) }

// VerificationErr wraps a failed verification of a single contract. The
// contracts are already on chain when this happens.
type VerificationErr struct {
	Contract string
	Address  string
	Err      error
}

func (e VerificationErr) Error() string {
	return fmt.Sprintf("%s for %s at %s: %v (contracts are deployed, retry verification manually)",
		ErrVerificationFailed, e.Contract, e.Address, e.Err)
}

func (e VerificationErr) Unwrap() []error { return withCause(ErrVerificationFailed, e.Err) }

func withCause(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
