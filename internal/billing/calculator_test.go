package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(qty, price string) LineItem {
	return LineItem{
		Kind:        KindService,
		Description: "work",
		Unit:        UnitHours,
		Quantity:    decimal.RequireFromString(qty),
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItem
		wantSubtotal string
		wantTax      string
		wantTotal    string
	}{
		{
			name:         "two items",
			items:        []LineItem{item("2", "50.00"), item("1", "19.99")},
			wantSubtotal: "119.99",
			wantTax:      "22.80",
			wantTotal:    "142.79",
		},
		{
			name:         "single free item",
			items:        []LineItem{item("1", "0")},
			wantSubtotal: "0.00",
			wantTax:      "0.00",
			wantTotal:    "0.00",
		},
		{
			name:         "tiny quantity at zero price is valid",
			items:        []LineItem{item("0.01", "0")},
			wantSubtotal: "0.00",
			wantTax:      "0.00",
			wantTotal:    "0.00",
		},
		{
			name:         "line total rounds half up before summation",
			items:        []LineItem{item("3", "0.335")},
			wantSubtotal: "1.01",
			wantTax:      "0.19",
			wantTotal:    "1.20",
		},
		{
			name:         "fractional hours",
			items:        []LineItem{item("1.5", "80.00"), item("0.25", "80.00")},
			wantSubtotal: "140.00",
			wantTax:      "26.60",
			wantTotal:    "166.60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTotals(tt.items)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubtotal, got.Subtotal.StringFixed(2), "subtotal")
			assert.Equal(t, tt.wantTax, got.TaxAmount.StringFixed(2), "tax")
			assert.Equal(t, tt.wantTotal, got.Total.StringFixed(2), "total")
			assert.True(t, got.Total.Equal(got.Subtotal.Add(got.TaxAmount)), "total = subtotal + tax")
			assert.Len(t, got.LineTotals, len(tt.items))
		})
	}
}

func TestComputeTotalsDeterministic(t *testing.T) {
	items := []LineItem{item("2", "50.00"), item("1", "19.99")}
	first, err := ComputeTotals(items)
	require.NoError(t, err)
	second, err := ComputeTotals(items)
	require.NoError(t, err)
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestComputeTotalsEmpty(t *testing.T) {
	_, err := ComputeTotals(nil)
	require.ErrorIs(t, err, ErrNoItems)
}

func TestComputeTotalsInvalidItems(t *testing.T) {
	tests := []struct {
		name      string
		items     []LineItem
		wantField string
		wantIndex int
	}{
		{"zero quantity", []LineItem{item("0", "10")}, "quantity", 0},
		{"negative quantity", []LineItem{item("-1", "10")}, "quantity", 0},
		{"negative price on second item", []LineItem{item("1", "10"), item("1", "-0.01")}, "unit_price", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotals(tt.items)
			var itemErr *ItemError
			require.ErrorAs(t, err, &itemErr)
			assert.Equal(t, tt.wantField, itemErr.Field)
			assert.Equal(t, tt.wantIndex, itemErr.Index)
		})
	}
}
