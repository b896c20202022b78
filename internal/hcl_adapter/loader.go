package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/guardian/internal/config"
	"github.com/specialistvlad/guardian/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string { return []string{".hcl"} }

// Load parses one HCL document and translates every block it contains.
func (l *Loader) Load(ctx context.Context, name string, src []byte) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("file", name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("HCL loader started.")

	// A fresh parser per document keeps Load safe for concurrent use.
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	model := &config.Model{}
	for _, d := range root.Dishes {
		dish, err := translateDish(ctx, name, d)
		if err != nil {
			return nil, err
		}
		model.Dishes = append(model.Dishes, dish)
	}
	if root.Scoring != nil {
		scoring, err := translateScoring(ctx, root.Scoring)
		if err != nil {
			return nil, fmt.Errorf("in %s, scoring block: %w", name, err)
		}
		model.Scoring = scoring
	}

	logger.Debug("HCL loading complete.", "dishes", len(model.Dishes), "scoring", model.Scoring != nil)
	return model, nil
}
