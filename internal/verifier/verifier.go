package verifier

import (
	"context"
	"time"

	"github.com/specialistvlad/guardian/internal/builder"
	"github.com/specialistvlad/guardian/internal/catalog"
	"github.com/specialistvlad/guardian/internal/ctxlog"
	"github.com/specialistvlad/guardian/internal/evaluator"
	"github.com/specialistvlad/guardian/internal/recipe"
	"github.com/specialistvlad/guardian/internal/scoring"
)

// Service is the contract transports and decorators program against.
type Service interface {
	VerifyJSON(ctx context.Context, dishID string, candidate []byte) (*scoring.Report, error)
	ListDishes() []string
}

// Verifier is stateless apart from its read-only store and is safe for
// concurrent use.
type Verifier struct {
	store  *catalog.Store
	eval   *evaluator.Evaluator
	scorer *scoring.Scorer
}

var _ Service = (*Verifier)(nil)

type options struct {
	weights scoring.Weights
	policy  evaluator.QuantityPolicy
}

// Option configures a Verifier.
type Option func(*options)

// WithWeights replaces the default weight table.
func WithWeights(w scoring.Weights) Option {
	return func(o *options) { o.weights = w }
}

// WithQuantityPolicy installs a quantity tolerance policy.
func WithQuantityPolicy(p evaluator.QuantityPolicy) Option {
	return func(o *options) { o.policy = p }
}

// New creates a Verifier over store. A nil store behaves as an empty one.
func New(store *catalog.Store, opts ...Option) *Verifier {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if store == nil {
		store = catalog.Empty()
	}
	return &Verifier{
		store:  store,
		eval:   evaluator.New(evaluator.WithQuantityPolicy(o.policy)),
		scorer: scoring.NewScorer(o.weights),
	}
}

// Verify evaluates an already built candidate against dishID.
func (v *Verifier) Verify(ctx context.Context, dishID string, c *recipe.Candidate) (*scoring.Report, error) {
	logger := ctxlog.FromContext(ctx).With("dish", dishID)
	ctx = ctxlog.WithLogger(ctx, logger)

	master, err := v.store.Lookup(dishID)
	if err != nil {
		logger.Debug("Verification rejected.", "error", err)
		return nil, err
	}

	start := time.Now()
	violations := v.eval.Evaluate(ctx, c, master)
	report := v.scorer.Report(dishID, c, violations)
	logger.Debug("Verification finished.",
		"report_id", report.ID(),
		"score", report.Score(),
		"violations", len(violations),
		"duration", time.Since(start),
	)
	return report, nil
}

// VerifyJSON builds the candidate from its JSON submission and verifies it.
// The dish is looked up first so an unknown dish is reported even for a
// malformed submission.
func (v *Verifier) VerifyJSON(ctx context.Context, dishID string, candidate []byte) (*scoring.Report, error) {
	if _, err := v.store.Lookup(dishID); err != nil {
		return nil, err
	}
	c, err := builder.BuildJSON(ctx, candidate)
	if err != nil {
		return nil, err
	}
	return v.Verify(ctx, dishID, c)
}

// ListDishes returns the catalog's dish ids in lexicographic order.
func (v *Verifier) ListDishes() []string {
	return v.store.ListDishes()
}

// Weights returns the weight table in use.
func (v *Verifier) Weights() scoring.Weights {
	return v.scorer.Weights()
}
