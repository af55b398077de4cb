// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shades.
//
// go-shades is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the shades command tree around cfg
func NewRootCmd(cfg *Config) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "shades",
		Short: "shades - verifiable threshold secret sharing over GF(251)",
		Long: `shades splits secret polynomial coefficients into share pairs and
reconstructs them from any threshold of shares.

Every share carries two values: f(x) for the secret polynomial F and g(x)
for its companion G = -R*F. Reconstruction recovers both polynomials and
rejects the result when the constant and linear terms disagree on R,
which exposes forged or corrupted shares.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.load(v, cmd.ErrOrStderr())
		},
	}

	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "", "config file (YAML)")
	flags.StringP(flagOutput, "o", "text", "output format (text, json)")
	flags.BoolP(flagVerbose, "v", false, "verbose output")
	flags.String(flagDataDir, "", "directory for share set storage (default $HOME/.shades)")
	flags.String(flagStorage, "", "storage backend (file, memory)")
	flags.String(flagMetricsTextfile, "", "write Prometheus metrics to this file on exit")

	for name, env := range envBindings {
		_ = v.BindPFlag(name, flags.Lookup(name))
		_ = v.BindEnv(name, env)
	}

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd(cfg))
	rootCmd.AddCommand(newDistributeCmd(cfg))
	rootCmd.AddCommand(newRecoverCmd(cfg))
	rootCmd.AddCommand(newSetsCmd(cfg))

	return rootCmd
}

// Execute runs the root command against the process arguments
func Execute() error {
	cfg := NewConfig()
	err := run(NewRootCmd(cfg), cfg)
	if err != nil {
		handleError(cfg, err, os.Stderr)
	}
	return err
}

// run executes cmd and always releases cfg afterwards. A release failure
// after a command error is logged so the command error is the one returned.
func run(cmd *cobra.Command, cfg *Config) error {
	err := cmd.Execute()
	if cerr := cfg.Close(); cerr != nil {
		if err != nil {
			cfg.Logger().Error(cerr)
		} else {
			err = cerr
		}
	}
	return err
}

// handleError prints an error in the configured output format
func handleError(cfg *Config, err error, w io.Writer) {
	printer := NewPrinter(cfg.OutputFormat, w)
	if perr := printer.PrintError(err); perr != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
