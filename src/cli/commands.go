// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/H0llyW00dzZ/ssllabs-scanner/src/internal/render"
	"github.com/H0llyW00dzZ/ssllabs-scanner/src/ssllabs"
)

// assessmentFlags mirror [ssllabs.Options]. Only flags the user changed are
// sent, so the library defaults still apply.
type assessmentFlags struct {
	startNew       bool
	fromCache      bool
	maxAge         int
	all            string
	publish        bool
	ignoreMismatch bool
}

func (f *assessmentFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.startNew, "start-new", false, "start a new assessment even if a cached one exists")
	fs.BoolVar(&f.fromCache, "from-cache", false, "accept a cached assessment")
	fs.IntVar(&f.maxAge, "max-age", 0, "maximum cached assessment age in hours (requires --from-cache)")
	fs.StringVar(&f.all, "all", "", "endpoint detail: on, off or done")
	fs.BoolVar(&f.publish, "publish", false, "publish results on the public scoreboard")
	fs.BoolVar(&f.ignoreMismatch, "ignore-mismatch", false, "proceed when the certificate does not match the host")
}

func (f *assessmentFlags) options(fs *pflag.FlagSet, host string) ssllabs.Options {
	opts := ssllabs.Options{Host: host}
	if fs.Changed("start-new") {
		opts.StartNew = ssllabs.Bool(f.startNew)
	}
	if fs.Changed("from-cache") {
		opts.FromCache = ssllabs.Bool(f.fromCache)
	}
	if fs.Changed("max-age") {
		opts.MaxAge = ssllabs.Int(f.maxAge)
	}
	if fs.Changed("all") {
		opts.All = strings.ToLower(f.all)
	}
	if fs.Changed("publish") {
		opts.Publish = ssllabs.Bool(f.publish)
	}
	if fs.Changed("ignore-mismatch") {
		opts.IgnoreMismatch = ssllabs.Bool(f.ignoreMismatch)
	}
	return opts
}

// outputFlags select how assessments are printed. The default is a tree.
type outputFlags struct {
	json  bool
	table bool
}

func (f *outputFlags) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.json, "json", "j", false, "print the raw JSON documents")
	fs.BoolVar(&f.table, "table", false, "print a markdown table")
}

func (a *app) infoCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show engine version and assessment capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			info, err := client.Info(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), render.InfoText(info))
			return err
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print JSON")
	return cmd
}

func (a *app) analyzeCommand() *cobra.Command {
	var (
		flags  assessmentFlags
		output outputFlags
	)
	cmd := &cobra.Command{
		Use:   "analyze HOST",
		Short: "Issue a single analyze call without waiting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			host, err := client.Analyze(cmd.Context(), flags.options(cmd.Flags(), args[0]))
			if err != nil {
				return err
			}
			return writeHost(cmd.OutOrStdout(), host, output)
		},
	}
	flags.register(cmd.Flags())
	output.register(cmd.Flags())
	return cmd
}

func (a *app) scanCommand() *cobra.Command {
	var (
		flags       assessmentFlags
		output      outputFlags
		parallel    int
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "scan HOST...",
		Short: "Assess hosts and wait for their grades",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			client, err := a.newClient(cfg)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				srv, err := startMetricsServer(metricsAddr)
				if err != nil {
					return err
				}
				a.log.Printf("Serving metrics on http://%s/metrics", srv.Addr())
				defer srv.Close()
			}

			opts := make([]ssllabs.Options, len(args))
			for i, host := range args {
				opts[i] = flags.options(cmd.Flags(), host)
			}

			outcomes := client.ScanMany(cmd.Context(), opts, parallel)
			if err := writeOutcomes(cmd.OutOrStdout(), outcomes, output); err != nil {
				return err
			}

			var failed []error
			for _, o := range outcomes {
				if o.Err != nil {
					failed = append(failed, fmt.Errorf("%s: %w", o.Host, o.Err))
				}
			}
			if len(failed) > 0 {
				return fmt.Errorf("%w: %d of %d hosts: %w", ErrScanFailed, len(failed), len(outcomes), errors.Join(failed...))
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	output.register(cmd.Flags())
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "maximum concurrent scans (default from config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while scanning")
	return cmd
}

func (a *app) endpointCommand() *cobra.Command {
	var fromCache bool
	cmd := &cobra.Command{
		Use:   "endpoint HOST IP",
		Short: "Show the details of one assessed endpoint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			opts := ssllabs.EndpointOptions{Host: args[0], S: args[1]}
			if cmd.Flags().Changed("from-cache") {
				opts.FromCache = ssllabs.Bool(fromCache)
			}
			endpoint, err := client.GetEndpointData(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), endpoint)
		},
	}
	cmd.Flags().BoolVar(&fromCache, "from-cache", false, "accept cached endpoint data")
	return cmd
}

func (a *app) statusCodesCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "status-codes",
		Short: "List known status detail codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			codes, err := client.GetStatusCodes(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), codes)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), render.StatusCodesTable(codes))
			return err
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print JSON")
	return cmd
}

func (a *app) rootCertsCommand() *cobra.Command {
	var (
		trustStore string
		raw        bool
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "root-certs",
		Short: "Show the root certificates of a trust store",
		Long:  "Show the root certificates of a trust store: 1 Mozilla, 2 Apple MacOS, 3 Android, 4 Java, 5 Windows.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ssllabs.ParseTrustStore(trustStore)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			if raw {
				text, err := client.GetRootCertsRaw(cmd.Context(), store)
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), text)
				return err
			}

			roots, err := client.GetRootCerts(cmd.Context(), store)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), roots)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), render.RootCertsTable(roots))
			return err
		},
	}
	cmd.Flags().StringVarP(&trustStore, "trust-store", "t", "1", "trust store number, 1 to 5")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the bundle text as served")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print JSON")
	return cmd
}
