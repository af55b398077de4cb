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
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-shades/pkg/shades"
	"github.com/jeremyhahn/go-shades/pkg/shareset"
	"github.com/spf13/cobra"
)

// ErrShareSource is returned when recover is not given exactly one source
// of shares.
var ErrShareSource = errors.New("exactly one of --file, --id or --x/--f/--g must be given")

// ErrUnknownAbscissa is returned when --use names an abscissa that holds no
// share.
var ErrUnknownAbscissa = errors.New("no share at requested abscissa")

type recoverOptions struct {
	file      string
	id        string
	xs        []int
	fs        []int
	gs        []int
	threshold int
	use       []int
}

func newRecoverCmd(cfg *Config) *cobra.Command {
	opts := &recoverOptions{}

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Reconstruct F and G from shares and check them for cheating",
		Long: `Interpolate the f and g values of the supplied shares, verify that
every share beyond the threshold agrees with the result, then check
that the constant and linear terms share the same ratio R.

Shares come from a YAML file, a stored share set, or inline lists.`,
		Example: `  shades recover --id 6f1c... --use 1,3
  shades recover --file shares.yaml
  shades recover --x 1,2,3 --f 8,13,18 --g 235,225,215 -k 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecover(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "read shares from a YAML share set file")
	cmd.Flags().StringVar(&opts.id, "id", "", "load a stored share set by ID")
	cmd.Flags().IntSliceVar(&opts.xs, "x", nil, "inline share abscissas")
	cmd.Flags().IntSliceVar(&opts.fs, "f", nil, "inline f values")
	cmd.Flags().IntSliceVar(&opts.gs, "g", nil, "inline g values")
	cmd.Flags().IntVarP(&opts.threshold, "threshold", "k", 0, "threshold (default from the share set or config)")
	cmd.Flags().IntSliceVar(&opts.use, "use", nil, "only use the shares at these abscissas")

	return cmd
}

func runRecover(cmd *cobra.Command, cfg *Config, opts *recoverOptions) error {
	store, setID, k, err := recoverSource(cfg, opts)
	if err != nil {
		return err
	}
	if opts.threshold != 0 {
		k = opts.threshold
	}

	session, err := shades.NewSession(store, shades.WithLogger(cfg.Logger()))
	if err != nil {
		return err
	}
	f, g, err := session.Reconstruct(k)
	if err != nil {
		return fmt.Errorf("reconstruction failed: %w", err)
	}
	r, _, err := shades.CheatingRatios(f, g)
	if err != nil {
		return err
	}

	cfg.Logger().Info("recovered shares",
		"session", session.ID(),
		"share_set", setID,
		"threshold", k,
		"shares", store.Len())

	return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintReconstruction(&Reconstruction{
		ShareSetID: setID,
		SessionID:  session.ID(),
		Threshold:  k,
		Shares:     store.Abscissas(),
		F:          f.Ints(),
		G:          g.Ints(),
		Ratio:      r.Int(),
	})
}

// recoverSource resolves the share store along with the share set ID and
// the default threshold that go with it.
func recoverSource(cfg *Config, opts *recoverOptions) (*shades.Store, string, int, error) {
	inline := len(opts.xs) > 0 || len(opts.fs) > 0 || len(opts.gs) > 0
	sources := 0
	for _, set := range []bool{opts.file != "", opts.id != "", inline} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, "", 0, ErrShareSource
	}

	if inline {
		store, err := shades.NewStore(opts.xs, opts.fs, opts.gs)
		if err != nil {
			return nil, "", 0, err
		}
		if len(opts.use) > 0 {
			if missing := missingAbscissas(store, opts.use); len(missing) > 0 {
				return nil, "", 0, fmt.Errorf("%w: %v", ErrUnknownAbscissa, missing)
			}
			store = store.Subset(opts.use)
		}
		return store, "", cfg.Settings.Scheme.Threshold, nil
	}

	var (
		set *shareset.ShareSet
		err error
	)
	if opts.file != "" {
		set, err = shareset.ReadFile(opts.file)
	} else {
		var repo *shareset.Repository
		if repo, err = cfg.Repository(); err == nil {
			set, err = repo.Load(opts.id)
		}
	}
	if err != nil {
		return nil, "", 0, err
	}

	if len(opts.use) > 0 {
		if set, err = set.Subset(opts.use); err != nil {
			return nil, "", 0, err
		}
	}
	store, err := set.Store()
	if err != nil {
		return nil, "", 0, err
	}
	return store, set.ID, set.Threshold, nil
}

func missingAbscissas(store *shades.Store, xs []int) []int {
	var missing []int
	for _, x := range xs {
		if _, ok := store.Pair(x); !ok {
			missing = append(missing, x)
		}
	}
	return missing
}
