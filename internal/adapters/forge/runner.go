package forge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
)

// Command is an external command invocation
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string // added to the current environment
	// Redact lists values masked in logs and errors
	Redact []string
}

// String renders the command line with redacted values masked
func (c Command) String() string {
	line := strings.Join(append([]string{c.Name}, c.Args...), " ")
	for _, secret := range c.Redact {
		if secret != "" {
			line = strings.ReplaceAll(line, secret, "***")
		}
	}
	return line
}

func (c Command) redact(s string) string {
	for _, secret := range c.Redact {
		if secret != "" {
			s = strings.ReplaceAll(s, secret, "***")
		}
	}
	return s
}

// Runner executes external commands synchronously. There is no retry and no
// timeout: the call returns when the process exits.
type Runner struct {
	log    *slog.Logger
	usePTY bool
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a runner that inherits the process streams
func NewRunner(cfg *config.RuntimeConfig, log *slog.Logger) *Runner {
	return &Runner{
		log:    log.With("component", "Runner"),
		usePTY: cfg.UsePTY,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run executes the command with the caller's stdin/stdout/stderr. When the
// runner is configured for it the command gets a pseudo-terminal so that
// tools keep their coloured progress output.
func (r *Runner) Run(ctx context.Context, c Command) error {
	cmd := r.command(ctx, c)
	start := time.Now()
	r.log.Debug("running command", "cmd", c.String(), "dir", c.Dir, "pty", r.usePTY)

	var err error
	var captured bytes.Buffer
	if r.usePTY {
		err = r.runPTY(cmd, &captured)
	} else {
		cmd.Stdin = r.stdin
		cmd.Stdout = r.stdout
		cmd.Stderr = io.MultiWriter(r.stderr, &captured)
		err = cmd.Run()
	}

	if err != nil {
		r.log.Debug("command failed", "cmd", c.String(), "error", err, "duration", time.Since(start))
		return &domain.ToolError{
			Command: c.String(),
			Output:  c.redact(tail(captured.String(), 4096)),
			Err:     err,
		}
	}

	r.log.Debug("command completed", "cmd", c.String(), "duration", time.Since(start))
	return nil
}

// Output executes the command and returns its standard output
func (r *Runner) Output(ctx context.Context, c Command) (string, error) {
	cmd := r.command(ctx, c)
	r.log.Debug("capturing command output", "cmd", c.String(), "dir", c.Dir)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		output := stderr.String()
		if strings.TrimSpace(output) == "" {
			output = stdout.String()
		}
		return stdout.String(), &domain.ToolError{
			Command: c.String(),
			Output:  c.redact(output),
			Err:     err,
		}
	}

	return stdout.String(), nil
}

// CombinedOutput executes the command and returns stdout and stderr interleaved
func (r *Runner) CombinedOutput(ctx context.Context, c Command) (string, error) {
	cmd := r.command(ctx, c)
	r.log.Debug("capturing combined output", "cmd", c.String(), "dir", c.Dir)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), &domain.ToolError{
			Command: c.String(),
			Output:  c.redact(string(output)),
			Err:     err,
		}
	}
	return string(output), nil
}

func (r *Runner) command(ctx context.Context, c Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	return cmd
}

// runPTY runs the command attached to a pseudo-terminal, copying its output
// to stdout while keeping a copy for error reporting.
func (r *Runner) runPTY(cmd *exec.Cmd, captured *bytes.Buffer) error {
	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start pty: %w", err)
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	// Reading a pty whose child exited returns EIO on Linux
	if _, err := io.Copy(io.MultiWriter(r.stdout, captured), ptyFile); err != nil && !isPTYClosed(err) {
		r.log.Debug("pty copy ended", "error", err)
	}

	return cmd.Wait()
}

func isPTYClosed(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr)
}

// tail keeps the last n bytes of s
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
