package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/quidome/epoch-rewrite-go/pkg/config"
	"github.com/quidome/epoch-rewrite-go/pkg/epoch"
	"github.com/quidome/epoch-rewrite-go/pkg/plan"
	"github.com/quidome/epoch-rewrite-go/pkg/rewrite"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

type options struct {
	format     string
	local      bool
	stringify  bool
	configPath string
	verbose    bool
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "epoch-rewrite",
		Short:        "Replace epoch timestamps in text with readable dates",
		Long:         "epoch-rewrite reads text from stdin, finds numbers that look like Unix timestamps in seconds, milliseconds or microseconds, and writes the text to stdout with those numbers replaced by date-time strings.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), opts)
			if err != nil {
				return err
			}

			stats, err := rewrite.Copy(cmd.OutOrStdout(), cmd.InOrStdin(), cfg.RenderOptions())
			if err != nil {
				if errors.Is(err, rewrite.ErrWrite) {
					// Reported, not escalated.
					cmd.PrintErrln(err)
					return nil
				}
				return err
			}

			if opts.verbose {
				cmd.PrintErrln(formatStats(stats))
			}
			return nil
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "strftime-style format string")
	rootCmd.PersistentFlags().BoolVarP(&opts.local, "local", "l", false, "display timestamps in local time")
	rootCmd.PersistentFlags().BoolVarP(&opts.stringify, "stringify", "s", false, "stringify the value, by wrapping with quotes")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file with default options (env "+config.EnvPath+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print a summary to stderr")

	rootCmd.AddCommand(newScanCmd(opts))

	return rootCmd
}

func newScanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List timestamp candidates found on stdin",
		Long:  "Scan stdin and print every 9 to 16 digit run with its byte offset, detected unit and rendering.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), opts)
			if err != nil {
				return err
			}

			input, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("%w: %w", rewrite.ErrRead, err)
			}

			operations := plan.Plan(string(input), cfg.RenderOptions())
			for _, op := range operations {
				unit := "rejected"
				if op.Action == plan.ActionReplace {
					unit = op.Unit.String()
				}
				cmd.Printf("%d\t%s\t%s\t%s\n", op.Candidate.Offset, op.Candidate.Text, unit, op.Rendered)
			}

			if opts.verbose {
				cmd.PrintErrln(formatStats(plan.Summary(operations)))
			}
			return nil
		},
	}
}

func resolveConfig(flags *pflag.FlagSet, opts *options) (config.Config, error) {
	return config.Resolve(opts.configPath, config.Overrides{
		Format:       opts.format,
		FormatSet:    flags.Changed("format"),
		Local:        opts.local,
		LocalSet:     flags.Changed("local"),
		Stringify:    opts.stringify,
		StringifySet: flags.Changed("stringify"),
	})
}

func formatStats(stats plan.Stats) string {
	units := make([]epoch.Unit, 0, len(stats.ByUnit))
	for u := range stats.ByUnit {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool { return units[i] < units[j] })

	parts := make([]string, 0, len(units))
	for _, u := range units {
		parts = append(parts, fmt.Sprintf("%s=%d", u, stats.ByUnit[u]))
	}

	line := fmt.Sprintf("found %d candidates, replaced %d, kept %d", stats.Candidates, stats.Replaced, stats.Kept)
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, ", ") + ")"
	}
	return line
}
