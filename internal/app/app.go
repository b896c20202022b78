package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/specialistvlad/guardian/internal/catalog"
	"github.com/specialistvlad/guardian/internal/ctxlog"
	"github.com/specialistvlad/guardian/internal/report"
	"github.com/specialistvlad/guardian/internal/scoring"
	"github.com/specialistvlad/guardian/internal/telemetry"
	"github.com/specialistvlad/guardian/internal/verifier"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	config   *Config
	logger   *slog.Logger
	store    *catalog.Store
	verifier *verifier.Verifier
	service  verifier.Service
	registry *prometheus.Registry
	reporter *report.Reporter
}

// NewApp loads the catalog and wires the verifier. Results are written to
// outW and logs to logW. A catalog that fails to load is a startup error.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loadModel(ctx, !cfg.NoCurated, cfg.CatalogPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	store, err := catalog.Load(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	weights, err := scoring.DefaultWeights().Override(store.Weights())
	if err != nil {
		return nil, fmt.Errorf("catalog scoring block: %w", err)
	}
	overrides, err := scoring.ParseOverrides(cfg.Weights)
	if err != nil {
		return nil, err
	}
	if weights, err = weights.Override(overrides); err != nil {
		return nil, err
	}
	logger.Debug("Weight table resolved.", "weights", weights)

	v := verifier.New(store, verifier.WithWeights(weights))
	registry := prometheus.NewRegistry()

	return &App{
		config:   cfg,
		logger:   logger,
		store:    store,
		verifier: v,
		service:  telemetry.Observe(v, telemetry.NewMetrics(registry)),
		registry: registry,
		reporter: report.New(outW, cfg.Format, cfg.Color),
	}, nil
}

// Context returns ctx carrying the application's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Store returns the loaded catalog. This is primarily for testing.
func (a *App) Store() *catalog.Store {
	return a.store
}

// Weights returns the weight table in use.
func (a *App) Weights() scoring.Weights {
	return a.verifier.Weights()
}

// Close flushes metrics to the configured file, if any.
func (a *App) Close() error {
	if a.config.MetricsFile == "" {
		return nil
	}
	a.logger.Debug("Writing metrics.", "path", a.config.MetricsFile)
	return telemetry.WriteTextfile(a.config.MetricsFile, a.registry)
}
