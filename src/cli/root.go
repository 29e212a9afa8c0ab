// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/config"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/logger"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
)

// ErrScanFailed is returned when at least one host of a scan command failed.
var ErrScanFailed = errors.New("cli: scan failed")

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	debug      bool
}

// app carries what every command needs.
type app struct {
	global globalOptions
	log    logger.Logger
}

// Execute runs the root command with the process arguments.
//
// Parameters:
//   - ctx: Cancelled on SIGINT/SIGTERM, aborting pending waits
//   - version: Version string reported by --version
//   - log: Logger for diagnostics and capacity deferrals
//
// Returns:
//   - error: The first error of the executed command
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	a := &app{log: log}

	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "SSL Labs assessment client",
		Long:          "Run TLS assessments through the SSL Labs API and wait for their grades.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.global.configPath, "config", "c", "",
		fmt.Sprintf("config file (.json, .yaml, .yml), defaults to $%s", config.EnvConfigFile))
	rootCmd.PersistentFlags().BoolVar(&a.global.debug, "debug", false,
		fmt.Sprintf("log request parameters and response bodies (also $%s)", config.EnvDebug))

	rootCmd.AddCommand(
		a.infoCommand(),
		a.analyzeCommand(),
		a.scanCommand(),
		a.endpointCommand(),
		a.statusCodesCommand(),
		a.rootCertsCommand(),
	)

	return rootCmd
}

// loadConfig merges the config file, the environment and the --debug flag.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.global.configPath)
	if err != nil {
		return nil, err
	}
	if a.global.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func (a *app) newClient(cfg *config.Config) (*ssllabs.Client, error) {
	return ssllabs.NewClient(
		ssllabs.WithConfig(cfg),
		ssllabs.WithLogger(a.log),
	)
}

func (a *app) client() (*ssllabs.Client, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	return a.newClient(cfg)
}
