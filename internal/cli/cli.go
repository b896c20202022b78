package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/specialistvlad/guardian/internal/app"
)

type options struct {
	catalogPaths []string
	noCurated    bool
	weights      []string
	format       string
	noColor      bool
	metricsFile  string
	workers      int
	logFormat    string
	logLevel     string
}

func bindGlobalFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringArrayVarP(&opts.catalogPaths, "catalog", "c", nil, "Extra catalog file or directory (.hcl, .yaml, .yml). Repeatable.")
	flags.BoolVar(&opts.noCurated, "no-curated", false, "Do not load the embedded curated catalog.")
	flags.StringArrayVarP(&opts.weights, "weight", "w", nil, "Override a violation weight, e.g. wrong_order=40. Repeatable.")
	flags.StringVarP(&opts.format, "format", "f", "text", "Output format. Options: 'text' or 'json'.")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored text output.")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file when the command finishes.")
	flags.IntVar(&opts.workers, "workers", 0, "Concurrent verifications. 0 means one per CPU.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
}

// NewRootCommand builds the command tree. Results go to outW; logs and
// diagnostics go to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "guardian",
		Short: "Verify recipes against curated master recipes",
		Long: `Guardian checks a candidate recipe against the master recipe of a dish:
required ingredients, required techniques, their order, their temperature and
duration ranges, and which states each step can reach. Every violation costs
points from a score of 100.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	bindGlobalFlags(root.PersistentFlags(), opts)

	root.AddCommand(
		newVerifyCommand(opts, outW, errW),
		newDishesCommand(opts, outW, errW),
		newCatalogCommand(opts, outW, errW),
	)
	return root
}

// Execute runs the command line and returns an *ExitError on failure.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	if args == nil {
		// cobra reads os.Args when given nil.
		args = []string{}
	}
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		// Anything cobra rejects before a command runs is a usage problem.
		return usageError(err)
	}
	return nil
}

// newApp validates the flags and builds the application.
func newApp(opts *options, outW, errW io.Writer) (*app.App, error) {
	cfg, err := app.NewConfig(app.Config{
		CatalogPaths: opts.catalogPaths,
		NoCurated:    opts.noCurated,
		Weights:      opts.weights,
		Format:       strings.ToLower(opts.format),
		Color:        useColor(opts, outW),
		MetricsFile:  opts.metricsFile,
		Workers:      opts.workers,
		LogFormat:    strings.ToLower(opts.logFormat),
		LogLevel:     strings.ToLower(opts.logLevel),
	})
	if err != nil {
		return nil, usageError(err)
	}
	a, err := app.NewApp(outW, errW, cfg)
	if err != nil {
		return nil, &ExitError{Code: ExitFailure, Message: err.Error(), Err: err}
	}
	return a, nil
}

func useColor(opts *options, outW io.Writer) bool {
	if opts.noColor || color.NoColor {
		return false
	}
	f, ok := outW.(*os.File)
	return ok && f == os.Stdout
}

// finish flushes metrics and maps err onto an exit code.
func finish(a *app.App, err error) error {
	if closeErr := a.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err == nil {
		return nil
	}
	return exitFor(err)
}

func positional(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usageError(fmt.Errorf("%s: %w", cmd.CommandPath(), err))
		}
		return nil
	}
}
