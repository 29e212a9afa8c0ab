// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/config"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/logger"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the version set by the last call to [Run].
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the process receives SIGINT or SIGTERM.
//
// Configuration is read from the file named by SSLLABS_CONFIG_FILE plus the
// SSLLABS_* environment overrides. Logs go to stderr as JSON and stay silent
// unless debug is enabled, leaving stdout to the protocol.
//
// Parameters:
//   - version: Version string reported to MCP clients
//
// Returns:
//   - error: Setup failure, transport failure, or the shutdown cause
func Run(version string) error {
	appVersion = version

	cfg, err := config.Load(os.Getenv(config.EnvConfigFile))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	s, err := NewServerBuilder().
		WithClient(client).
		WithVersion(version).
		WithEmbed(templates.MagicEmbed).
		WithDefaultTools().
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}

// newClient builds the assessment client shared by every tool.
func newClient(cfg *config.Config) (*ssllabs.Client, error) {
	silent := !cfg.Debug && os.Getenv(config.EnvDebug) == ""
	return ssllabs.NewClient(
		ssllabs.WithConfig(cfg),
		ssllabs.WithLogger(logger.NewJSONLogger(os.Stderr, silent)),
	)
}
