// This file contains the go-cty based decoding of the attribute values that
// gohcl cannot map directly: parameter ranges with optional keys and the
// weight table.

package hcl_adapter

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/guardian/internal/config"
	"github.com/specialistvlad/guardian/internal/ctxlog"
)

// isExprDefined checks if an HCL expression was actually present in the
// source. gohcl populates omitted optional attributes with zero-width
// placeholder expressions, so a nil check alone is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}

// decodeRange reads `{ min = n, max = n, unit = "..." }`. Every key is
// optional, but at least one bound must be present.
func decodeRange(ctx context.Context, expr hcl.Expression, attrName string) (*config.Range, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid %s: %w", attrName, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsKnown() || !(val.Type().IsObjectType() || val.Type().IsMapType()) {
		return nil, fmt.Errorf("%s must be an object like { min = 0, max = 10 }, got %s", attrName, val.Type().FriendlyName())
	}

	out := &config.Range{}
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		key := k.AsString()
		switch key {
		case "min", "max":
			f, err := ctyToFloat(v)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", attrName, key, err)
			}
			if key == "min" {
				out.Min = &f
			} else {
				out.Max = &f
			}
		case "unit":
			s, err := convert.Convert(v, cty.String)
			if err != nil || s.IsNull() {
				return nil, fmt.Errorf("%s.unit must be a string", attrName)
			}
			out.Unit = s.AsString()
		default:
			return nil, fmt.Errorf("%s has unsupported key %q", attrName, key)
		}
	}
	if out.Min == nil && out.Max == nil {
		return nil, fmt.Errorf("%s must set at least one of min or max", attrName)
	}
	return out, nil
}

func ctyToFloat(v cty.Value) (float64, error) {
	num, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("must be a number: %w", err)
	}
	if num.IsNull() || !num.IsKnown() {
		return 0, fmt.Errorf("must be a known number")
	}
	var f float64
	if err := gocty.FromCtyValue(num, &f); err != nil {
		return 0, err
	}
	return f, nil
}

// decodeWeights reads the `weights` map. Values must be whole numbers.
func decodeWeights(ctx context.Context, expr hcl.Expression) (map[string]int, error) {
	if !isExprDefined(ctx, expr, "weights") {
		return map[string]int{}, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid weights: %w", diags)
	}
	m, err := convert.Convert(val, cty.Map(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("weights must be a map of numbers: %w", err)
	}

	out := make(map[string]int)
	if m.IsNull() {
		return out, nil
	}
	for it := m.ElementIterator(); it.Next(); {
		k, v := it.Element()
		if v.IsNull() {
			return nil, fmt.Errorf("weight %q is null", k.AsString())
		}
		bf := v.AsBigFloat()
		if !bf.IsInt() {
			return nil, fmt.Errorf("weight %q must be a whole number, got %s", k.AsString(), bf.Text('g', -1))
		}
		i, acc := bf.Int64()
		if acc != big.Exact {
			return nil, fmt.Errorf("weight %q is out of range", k.AsString())
		}
		out[k.AsString()] = int(i)
	}
	return out, nil
}
