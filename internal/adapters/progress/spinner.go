package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// SpinnerProgressReporter prints stage messages and shows a spinner while a
// step runs with captured output
type SpinnerProgressReporter struct {
	out          io.Writer
	spinner      *spinner.Spinner
	interactive  bool
	currentStage usecase.ExecutionStage
	stageStart   time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter(out io.Writer, interactive bool) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		out:         out,
		spinner:     s,
		interactive: interactive,
	}
}

// ProvideProgressSink creates the console progress sink for Wire dependency injection
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	return NewSpinnerProgressReporter(os.Stdout, !cfg.NonInteractive && !cfg.Debug)
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.currentStage {
		r.currentStage = event.Stage
		r.stageStart = time.Now()
	}

	if event.Stage == usecase.StageCompleted {
		r.stop()
		return
	}

	message := event.Message
	if event.Total > 0 {
		message = fmt.Sprintf("[%d/%d] %s", event.Current, event.Total, message)
	}

	if event.Spinner && r.interactive {
		r.spinner.Suffix = " " + message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	r.stop()
	if message != "" {
		color.New(color.Bold).Fprintf(r.out, "\n%s\n", message)
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.stop()
	color.New(color.FgGreen).Fprintf(r.out, "✓ %s\n", message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.stop()
	color.New(color.FgRed).Fprintf(r.out, "✗ %s\n", message)
}

func (r *SpinnerProgressReporter) stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
