package verifier

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/guardian/internal/ctxlog"
	"github.com/specialistvlad/guardian/internal/scoring"
)

// Request is one item of a batch. Name identifies the item in results, for
// example the file the candidate was read from.
type Request struct {
	Name      string
	DishID    string
	Candidate []byte
}

// Result pairs a request with its outcome. Exactly one of Report and Err is
// set.
type Result struct {
	Request Request
	Report  *scoring.Report
	Err     error
}

// VerifyBatch verifies every request with at most limit calls in flight;
// limit <= 0 means one per CPU. Per-item failures are reported in the
// results. The returned error is non-nil only when ctx is cancelled, which
// is checked before each item starts. Results keep request order.
func VerifyBatch(ctx context.Context, svc Service, reqs []Request, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Batch verification started.", "items", len(reqs), "limit", limit)

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			itemCtx := ctxlog.With(gctx, "item", req.Name)
			report, err := svc.VerifyJSON(itemCtx, req.DishID, req.Candidate)
			results[i] = Result{Request: req, Report: report, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	logger.Debug("Batch verification finished.", "items", len(reqs))
	return results, nil
}

// VerifyBatch runs the package-level VerifyBatch against v.
func (v *Verifier) VerifyBatch(ctx context.Context, reqs []Request, limit int) ([]Result, error) {
	return VerifyBatch(ctx, v, reqs, limit)
}
