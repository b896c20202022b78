package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/guardian/internal/catalog"
	"github.com/specialistvlad/guardian/internal/verifier"
)

// Verify checks every candidate file against dishID and renders the results.
// An unknown dish fails before any file is read. Per-file failures are part
// of the returned results.
func (a *App) Verify(ctx context.Context, dishID string, files []string) ([]verifier.Result, error) {
	ctx = a.Context(ctx)
	if _, err := a.store.Lookup(dishID); err != nil {
		return nil, err
	}

	reqs := make([]verifier.Request, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read candidate: %w", err)
		}
		reqs = append(reqs, verifier.Request{Name: f, DishID: dishID, Candidate: data})
	}
	a.logger.Info("Verifying candidates.", "dish", dishID, "files", len(reqs))

	results, err := verifier.VerifyBatch(ctx, a.service, reqs, a.config.Workers)
	if err != nil {
		return nil, err
	}
	if err := a.reporter.Results(results); err != nil {
		return nil, err
	}
	return results, nil
}

// ListDishes renders the catalog listing.
func (a *App) ListDishes() error {
	return a.reporter.Dishes(a.service.ListDishes())
}

// CheckCatalog loads paths on their own, without the embedded dataset, and
// reports the dishes they define. Any invalid file fails the check.
func (a *App) CheckCatalog(ctx context.Context, paths []string) error {
	ctx = a.Context(ctx)
	model, err := loadModel(ctx, false, paths)
	if err != nil {
		return err
	}
	store, err := catalog.Load(ctx, model)
	if err != nil {
		return err
	}
	if model.Scoring != nil {
		if _, err := a.Weights().Override(model.Scoring.Weights); err != nil {
			return fmt.Errorf("scoring block: %w", err)
		}
	}
	return a.reporter.CatalogSummary(store.ListDishes())
}
