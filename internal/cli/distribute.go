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

	"github.com/jeremyhahn/go-shades/pkg/shades"
	"github.com/jeremyhahn/go-shades/pkg/shareset"
	"github.com/spf13/cobra"
)

type distributeOptions struct {
	secret []int
	ratio  int
	shares int
	out    string
	noSave bool
}

func newDistributeCmd(cfg *Config) *cobra.Command {
	opts := &distributeOptions{}

	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Split secret coefficients into share pairs",
		Long: `Build the block F (the secret coefficients) and G = -R*F, then
evaluate both at x = 1..n. The threshold equals the number of
coefficients. The first two coefficients must be nonzero mod 251.`,
		Example: `  shades distribute --secret 3,5 --shares 4
  shades distribute --secret 7,11,13 --ratio 5 -n 5 --out shares.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistribute(cmd, cfg, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.secret, "secret", nil, "secret coefficients in ascending degree order")
	cmd.Flags().IntVar(&opts.ratio, "ratio", 0, "ratio R (default random in [1, 250])")
	cmd.Flags().IntVarP(&opts.shares, "shares", "n", 0, "number of shares (default from config)")
	cmd.Flags().StringVar(&opts.out, "out", "", "also write the share set to this YAML file")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "do not persist the share set to storage")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

func runDistribute(cmd *cobra.Command, cfg *Config, opts *distributeOptions) error {
	logger := cfg.Logger()

	var (
		block *shades.Block
		err   error
	)
	if cmd.Flags().Changed("ratio") {
		block, err = shades.NewBlock(opts.secret, opts.ratio)
	} else {
		block, err = shades.NewRandomBlock(opts.secret)
	}
	if err != nil {
		return fmt.Errorf("failed to build block: %w", err)
	}

	n := opts.shares
	if n == 0 {
		n = cfg.Settings.Scheme.Shares
	}
	store, err := shades.Distribute(block, n)
	if err != nil {
		return fmt.Errorf("failed to distribute: %w", err)
	}

	set := shareset.New(store, block.Threshold())
	logger.Debugf("distributed share set %s: k=%d n=%d", set.ID, set.Threshold, set.Total)

	if opts.out != "" {
		if err := set.WriteFile(opts.out); err != nil {
			return err
		}
		logger.Infof("wrote share set %s to %s", set.ID, opts.out)
	}

	if !opts.noSave {
		repo, err := cfg.Repository()
		if err != nil {
			return err
		}
		if err := repo.Save(set); err != nil {
			return fmt.Errorf("failed to save share set: %w", err)
		}
	}

	return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintShareSet(set)
}
