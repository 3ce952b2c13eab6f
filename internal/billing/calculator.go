// Package billing holds the invoice domain rules: line-item total
// computation and the status lifecycle. Everything in this package is pure;
// persistence lives in the services layer.
package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxRate is the value-added tax applied to every invoice subtotal. The 19%
// German standard rate is a constant of this design, not configuration.
var TaxRate = decimal.New(19, -2)

const (
	KindService = "service"
	KindProduct = "product"
)

const (
	UnitHours        = "hours"
	UnitPieces       = "pieces"
	UnitKilograms    = "kilograms"
	UnitMeters       = "meters"
	UnitSquareMeters = "square_meters"
)

// Kinds and Units enumerate the accepted line-item classifications.
var (
	Kinds = []string{KindService, KindProduct}
	Units = []string{UnitHours, UnitPieces, UnitKilograms, UnitMeters, UnitSquareMeters}
)

// ErrNoItems rejects invoices with an empty line-item list.
var ErrNoItems = errors.New("invoice requires at least one line item")

// ItemError reports an invalid value on a single line item.
type ItemError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("items[%d].%s: %s", e.Index, e.Field, e.Reason)
}

// LineItem is one billable row: quantity of a unit at a unit price.
type LineItem struct {
	Kind        string
	Description string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Totals carries the derived amounts for an invoice. LineTotals holds the
// per-item totals in input order.
type Totals struct {
	LineTotals []decimal.Decimal
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	Total      decimal.Decimal
}

// ComputeTotals derives subtotal, tax and total for a line-item sequence.
//
// Each line total is quantity x unit price rounded to two decimals half up;
// the subtotal sums the rounded line totals, tax is the subtotal times
// TaxRate rounded the same way, and total = subtotal + tax. The function is
// deterministic and has no side effects.
//
// Quantities must be strictly positive and unit prices non-negative; a
// quantity of 0.01 at price zero is a valid all-zero line, a negative value
// is an error, never clamped.
func ComputeTotals(items []LineItem) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, ErrNoItems
	}
	t := Totals{LineTotals: make([]decimal.Decimal, 0, len(items))}
	for i, item := range items {
		if item.Quantity.Sign() <= 0 {
			return Totals{}, &ItemError{Index: i, Field: "quantity", Reason: "must_be_positive"}
		}
		if item.UnitPrice.Sign() < 0 {
			return Totals{}, &ItemError{Index: i, Field: "unit_price", Reason: "must_not_be_negative"}
		}
		line := item.Quantity.Mul(item.UnitPrice).Round(2)
		t.LineTotals = append(t.LineTotals, line)
		t.Subtotal = t.Subtotal.Add(line)
	}
	t.TaxAmount = t.Subtotal.Mul(TaxRate).Round(2)
	t.Total = t.Subtotal.Add(t.TaxAmount)
	return t, nil
}

// ValidKind reports whether s is an accepted line-item kind.
func ValidKind(s string) bool {
	return s == KindService || s == KindProduct
}

// ValidUnit reports whether s is an accepted line-item unit.
func ValidUnit(s string) bool {
	for _, u := range Units {
		if s == u {
			return true
		}
	}
	return false
}
