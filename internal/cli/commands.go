package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/guardian/internal/verifier"
)

func newVerifyCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	var dishID string
	cmd := &cobra.Command{
		Use:   "verify --dish ID FILE...",
		Short: "Verify candidate recipe JSON files against a dish",
		Example: `  guardian verify --dish basque-cheesecake candidate.json
  guardian verify -d creme-brulee -f json a.json b.json`,
		Args: positional(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, outW, errW)
			if err != nil {
				return err
			}
			results, err := a.Verify(cmd.Context(), dishID, args)
			if err == nil {
				err = rejected(results)
			}
			return finish(a, err)
		},
	}
	cmd.Flags().StringVarP(&dishID, "dish", "d", "", "Dish identifier to verify against (see `guardian dishes`).")
	_ = cmd.MarkFlagRequired("dish")
	return cmd
}

// rejected turns per-file failures into one error carrying the most
// specific exit code.
func rejected(results []verifier.Result) error {
	var failed int
	var first error
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed++
		if first == nil {
			first = r.Err
		}
	}
	if failed == 0 {
		return nil
	}
	exitErr := exitFor(first)
	exitErr.Message = fmt.Sprintf("%d of %d submissions rejected", failed, len(results))
	if !errors.Is(first, verifier.ErrMalformedSubmission) && !errors.Is(first, verifier.ErrUnknownDish) {
		exitErr.Message += ": " + first.Error()
	}
	return exitErr
}

func newDishesCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "dishes",
		Short: "List the dish identifiers in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts, outW, errW)
			if err != nil {
				return err
			}
			return finish(a, a.ListDishes())
		},
	}
}

func newCatalogCommand(opts *options, outW, errW io.Writer) *cobra.Command {
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Work with catalog files",
	}
	catalog.AddCommand(&cobra.Command{
		Use:   "check PATH...",
		Short: "Validate catalog files without verifying anything",
		Args:  positional(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, outW, errW)
			if err != nil {
				return err
			}
			return finish(a, a.CheckCatalog(cmd.Context(), args))
		},
	})
	return catalog
}
