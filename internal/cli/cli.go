// Package cli implements the qtexcirq command-line interface.
//
// Commands:
//   - render: lay out a circuit file and print its quantikz LaTeX block
//   - view:   interactive terminal preview with a layout-mode toggle
//   - run:    simulate a circuit and print sampled measurement counts
//
// Circuit descriptions are TOML files loaded through the core validating
// constructors. All commands support --verbose for debug-level logging;
// loggers travel on the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the qtexcirq CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "qtexcirq",
		Short:        "qtexcirq renders quantum circuits as quantikz diagrams",
		Long:         `qtexcirq lays out quantum-gate sequences into diagram columns (serially or greedily packed) and renders them as quantikz LaTeX, a terminal preview, or simulated measurement counts.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newRunCmd())

	return root.ExecuteContext(context.Background())
}

// newLogger creates a logger writing to w at the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached by withLogger, falling
// back to the package default so commands never nil-check.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

// writeOutput writes s to path, or to stdout when path is empty.
func writeOutput(path, s string) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, s)
		return err
	}
	return os.WriteFile(path, []byte(s+"\n"), 0o644)
}
