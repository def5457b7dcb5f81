// Command methodmap composes Java feature directories and prints the
// canonical identity of every method and constructor, together with the
// feature that contributed it.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NickyBoy89/methodmap/fst"
	"github.com/NickyBoy89/methodmap/parsing"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}

type flags struct {
	configPath string
	format     string
	include    []string
	exclude    []string
	duplicates bool
	logLevel   string
	quiet      bool
}

func rootCmd(out io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "methodmap [Name=dir | dir]...",
		Short: "Map composed Java methods to the features that contribute them",
		Long: `methodmap loads feature directories in composition order and prints the
fully-qualified identity of every method and constructor they declare.

A class declared by several features is identified by the feature that
introduced it, while each method keeps the feature that contributed it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(f.logLevel, f.quiet); err != nil {
				return err
			}

			config, err := buildConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), config, out)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&f.format, "format", "f", FormatIdentity, "Output format (identity, jni, yaml)")
	cmd.Flags().StringSliceVar(&f.include, "include", nil, "Glob patterns of the sources to load (default "+parsing.DefaultInclude+")")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "Glob patterns of the sources to skip")
	cmd.Flags().BoolVar(&f.duplicates, "duplicates", false, "List signatures contributed by more than one feature")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Only log errors")

	return cmd
}

func setupLogging(level string, quiet bool) error {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if quiet {
		parsed = log.ErrorLevel
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(parsed)
	return nil
}

// buildConfig layers the command line over the config file. Feature arguments
// are appended to the features of the file.
func buildConfig(cmd *cobra.Command, f flags, args []string) (*Config, error) {
	config := DefaultConfig()
	if f.configPath != "" {
		loaded, err := LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	for _, arg := range args {
		feature := parsing.FeatureFromArg(arg)
		config.Features = append(config.Features, FeatureConfig{Name: feature.Name, Path: feature.Dir})
	}

	if cmd.Flags().Changed("format") {
		config.Format = f.format
	}
	if cmd.Flags().Changed("include") {
		config.Include = f.include
	}
	if cmd.Flags().Changed("exclude") {
		config.Exclude = f.exclude
	}
	if cmd.Flags().Changed("duplicates") {
		config.Duplicates = f.duplicates
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func run(ctx context.Context, config *Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var roots []*fst.NonTerminal
	for _, feature := range config.features() {
		root, err := parsing.LoadFeature(ctx, feature, config.loadOptions())
		if err != nil {
			return err
		}
		roots = append(roots, root)
	}

	bindings := bindMethods(roots)
	ids, err := identify(ctx, bindings)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"features": len(roots),
		"methods":  len(ids),
	}).Info("Identified methods")

	var dups map[string][]string
	if config.Duplicates {
		dups = duplicates(ids)
	}
	return writeReport(out, config.Format, ids, dups)
}
