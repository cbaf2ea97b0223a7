// Package main provides the threshold-reporter CLI application.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/config"
	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/errors"
	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/observability"
	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/render"
	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/reporter"
	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/version"
)

// rootFlags holds the flags for the root command
type rootFlags struct {
	config    string
	threshold int
	items     []int
	format    string
	color     bool
	verbose   bool
}

// newRootCmd builds the command tree. Called once by main, and once per test.
func newRootCmd() *cobra.Command {
	var opts rootFlags

	rootCmd := &cobra.Command{
		Use:   "threshold-reporter [items...]",
		Short: "Report which items exceed a threshold",
		Long: `threshold-reporter compares each item with a threshold and prints
one line per item, in input order:

  Item <value> is greater than <threshold>
  Item <value> is not greater

Without arguments it reports the configured items (by default threshold 10
and items 5, 15, 8, 20, 3). Negative positional items need a leading "--":

  threshold-reporter -t 0 -- -2 4`,
		Version:      version.FullString(),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, &opts, args)
		},
	}

	rootCmd.Flags().StringVarP(&opts.config, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().IntVarP(&opts.threshold, "threshold", "t", config.DefaultThreshold, "Threshold items are compared with")
	rootCmd.Flags().IntSliceVar(&opts.items, "items", nil, "Comma-separated list of items")
	rootCmd.Flags().StringVar(&opts.format, "format", config.FormatText, "Output format (text, table)")
	rootCmd.Flags().BoolVar(&opts.color, "color", false, "Highlight items greater than the threshold")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging on stderr")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runReport(cmd *cobra.Command, opts *rootFlags, args []string) error {
	cfg, err := resolveConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	log, err := observability.NewLogger(cfg.Global.LogLevel)
	if err != nil {
		return errors.ConfigError("failed to initialize logger", err)
	}
	defer func() { _ = log.Sync() }()

	log.Debug("configuration resolved",
		observability.Int("threshold", cfg.Threshold),
		observability.Int("items", len(cfg.Items)),
		observability.String("format", cfg.Format),
	)

	out := cmd.OutOrStdout()
	r := reporter.New(cfg.Threshold,
		reporter.WithOutput(out),
		reporter.WithColor(cfg.Color),
		reporter.WithLogger(log),
	)

	switch strings.ToLower(cfg.Format) {
	case config.FormatTable:
		if err := render.Table(out, r.Threshold(), r.Report(cfg.Items)); err != nil {
			log.Error("table rendering failed", observability.Err(err))
			return err
		}
	default:
		r.Process(cfg.Items)
	}
	return nil
}

// resolveConfig merges file, environment and flags, in that order.
func resolveConfig(cmd *cobra.Command, opts *rootFlags, args []string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.config != "" {
		cfg, err = config.Load(opts.config)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if err := config.ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if opts.verbose {
		cfg.Global.LogLevel = "debug"
	}

	if flags.Changed("items") || len(args) > 0 {
		positional, err := parseItems(args)
		if err != nil {
			return nil, err
		}
		cfg.Items = append(append([]int{}, opts.items...), positional...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ValidationError("invalid options", err)
	}
	return cfg, nil
}

func parseItems(args []string) ([]int, error) {
	items := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.InputError(fmt.Sprintf("invalid item %q", field), err)
			}
			items = append(items, n)
		}
	}
	return items, nil
}
