package kernel

import (
	"fmt"
	"math"

	"fleettrip/internal/pkg/errs"
	"fleettrip/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when using a Quantity that was not
// created via NewQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("Quantity must be created via NewQuantity")

// Quantity is a value object representing a non-negative amount in tons.
// It models both planned collection amounts and vehicle capacities.
// A zero quantity is valid: a line item may plan a zero pickup, and the
// strict positivity required for vehicle capacity is enforced by the
// Vehicle aggregate, not here.
type Quantity struct {
	tons  float64
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity from an amount in tons.
// Negative, NaN, and infinite values are rejected.
func NewQuantity(tons float64) (Quantity, error) {
	if math.IsNaN(tons) || math.IsInf(tons, 0) {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not a finite number", tons))
	}
	if tons < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is negative", tons))
	}

	return Quantity{tons: tons, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the Quantity was created via NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Tons returns the amount in tons.
func (q Quantity) Tons() float64 {
	return q.tons
}

// Add returns the sum of two quantities.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{tons: q.tons + other.tons, guard: guard.NewConstructorGuard()}
}

// GreaterThan reports whether q is strictly greater than other.
func (q Quantity) GreaterThan(other Quantity) bool {
	return q.tons > other.tons
}

// IsZero reports whether the quantity is exactly zero tons.
func (q Quantity) IsZero() bool {
	return q.tons == 0
}

// String implements fmt.Stringer.
func (q Quantity) String() string {
	return fmt.Sprintf("%gt", q.tons)
}
