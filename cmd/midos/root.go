package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/midos"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

type globalFlags struct {
	logLevel string
	jsonLogs bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   "midos",
		Short: "Exact subgroup discovery over binary data",
		Long: `midos finds the K attribute conjunctions whose covered instances deviate
most from the class distribution of the whole dataset. The search is exact:
branches are cut only when their optimistic estimate cannot reach the
current top K.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.BoolVar(&g.jsonLogs, "json-logs", false, "Emit logs as JSON")

	root.AddCommand(newRunCmd(&g))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "midos", version)
		},
	}
}

// newLogger builds the run logger writing to w.
func newLogger(w io.Writer, g *globalFlags) (*midos.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(g.logLevel))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", g.logLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if g.jsonLogs {
		return midos.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return midos.NewLogger(slog.NewTextHandler(w, opts)), nil
}
