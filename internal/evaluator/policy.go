package evaluator

import (
	"context"

	"github.com/specialistvlad/guardian/internal/recipe"
)

// QuantityPolicy judges the amount of an ingredient the candidate does list.
// It is consulted for every present ingredient, including those whose master
// entry declares a tolerance override, and its violations are appended to the
// ingredient check in master declaration order.
type QuantityPolicy interface {
	CheckQuantity(ctx context.Context, present recipe.Ingredient, required recipe.MasterIngredient) []Violation
}

// QuantityPolicyFunc adapts a plain function to QuantityPolicy.
type QuantityPolicyFunc func(ctx context.Context, present recipe.Ingredient, required recipe.MasterIngredient) []Violation

// CheckQuantity implements QuantityPolicy.
func (f QuantityPolicyFunc) CheckQuantity(ctx context.Context, present recipe.Ingredient, required recipe.MasterIngredient) []Violation {
	return f(ctx, present, required)
}

// IgnoreQuantities is the default policy. It never reports anything.
var IgnoreQuantities QuantityPolicy = QuantityPolicyFunc(func(context.Context, recipe.Ingredient, recipe.MasterIngredient) []Violation {
	return nil
})
