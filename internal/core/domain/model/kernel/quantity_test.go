package kernel_test

import (
	"math"
	"testing"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		name    string
		tons    float64
		wantErr bool
	}{
		{"zero is valid", 0, false},
		{"positive is valid", 12.5, false},
		{"negative is rejected", -1, true},
		{"NaN is rejected", math.NaN(), true},
		{"positive infinity is rejected", math.Inf(1), true},
		{"negative infinity is rejected", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := kernel.NewQuantity(tt.tons)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			require.NoError(t, q.Validate())
			assert.InDelta(t, tt.tons, q.Tons(), 0)
		})
	}
}

func TestQuantity_Add(t *testing.T) {
	a, _ := kernel.NewQuantity(5)
	b, _ := kernel.NewQuantity(7)

	sum := a.Add(b)

	require.NoError(t, sum.Validate())
	assert.InDelta(t, 12.0, sum.Tons(), 0)
}

func TestQuantity_GreaterThan(t *testing.T) {
	capacity, _ := kernel.NewQuantity(12)
	within, _ := kernel.NewQuantity(12)
	over, _ := kernel.NewQuantity(13)

	assert.False(t, within.GreaterThan(capacity), "equal totals must not exceed capacity")
	assert.True(t, over.GreaterThan(capacity))
}

func TestQuantity_IsZero(t *testing.T) {
	zero, _ := kernel.NewQuantity(0)
	nonZero, _ := kernel.NewQuantity(0.1)

	assert.True(t, zero.IsZero())
	assert.False(t, nonZero.IsZero())
}

func TestQuantity_Validate(t *testing.T) {
	var zero kernel.Quantity
	require.Error(t, zero.Validate())
}
