package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount fixed to two decimal places. It crosses the
// wire as a plain JSON number (119.99, not "119.99") and is stored through
// database/sql as its decimal string.
type Money struct {
	decimal.Decimal
}

// MoneyFrom rounds d to two decimals, half up.
func MoneyFrom(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	d, err := decimal.NewFromString(strings.Trim(string(b), `"`))
	if err != nil {
		return fmt.Errorf("invalid money value %s: %w", b, err)
	}
	m.Decimal = d.Round(2)
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.Decimal.StringFixed(2), nil
}

func (m *Money) Scan(src any) error {
	return m.Decimal.Scan(src)
}

// Quantity is an exact decimal count or measure (hours, kilograms, ...).
// Unlike Money it keeps full precision and marshals without padding.
type Quantity struct {
	decimal.Decimal
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.Decimal.String()), nil
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	d, err := decimal.NewFromString(strings.Trim(string(b), `"`))
	if err != nil {
		return fmt.Errorf("invalid quantity %s: %w", b, err)
	}
	q.Decimal = d
	return nil
}

func (q Quantity) Value() (driver.Value, error) {
	return q.Decimal.String(), nil
}

func (q *Quantity) Scan(src any) error {
	return q.Decimal.Scan(src)
}

const dateLayout = "2006-01-02"

// Date is a calendar date without time-of-day. JSON and database
// representations are both ISO-8601 (YYYY-MM-DD).
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseDate(v[:min(len(v), len(dateLayout))])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}
