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

	"github.com/jeremyhahn/go-shades/pkg/validation"
	"github.com/spf13/cobra"
)

func newSetsCmd(cfg *Config) *cobra.Command {
	setsCmd := &cobra.Command{
		Use:   "sets",
		Short: "Manage stored share sets",
	}

	setsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored share set IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := cfg.Repository()
			if err != nil {
				return err
			}
			ids, err := repo.List()
			if err != nil {
				return fmt.Errorf("failed to list share sets: %w", err)
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintShareSetList(ids)
		},
	})

	setsCmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored share set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := cfg.Repository()
			if err != nil {
				return err
			}
			set, err := repo.Load(args[0])
			if err != nil {
				return err
			}
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintShareSet(set)
		},
	})

	setsCmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored share set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := cfg.Repository()
			if err != nil {
				return err
			}
			if err := repo.Delete(args[0]); err != nil {
				return err
			}
			cfg.Logger().Infof("deleted share set %s", validation.SanitizeForLog(args[0]))
			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintSuccess(fmt.Sprintf("Deleted share set %s", args[0]))
		},
	})

	return setsCmd
}
