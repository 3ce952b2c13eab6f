// Package validation collects field-level checks into violation maps that
// feed straight into API error details.
package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Violations maps a field name to a short machine-readable reason code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// Email checks the minimal local@domain shape. Empty values are left to
// Required; uniqueness is the store's problem.
func Email(field, value string, v Violations) {
	if value == "" {
		return
	}
	at := strings.IndexByte(value, '@')
	if at <= 0 || at == len(value)-1 || strings.ContainsAny(value, " \t") {
		v[field] = "invalid_email"
	}
}

func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "invalid_value"
}

func Positive(field string, value decimal.Decimal, v Violations) {
	if value.Sign() <= 0 {
		v[field] = "must_be_positive"
	}
}

func NotNegative(field string, value decimal.Decimal, v Violations) {
	if value.Sign() < 0 {
		v[field] = "must_not_be_negative"
	}
}

// TimeOfDay checks the HH:MM wire format. Empty values pass.
func TimeOfDay(field, value string, v Violations) {
	if value == "" {
		return
	}
	if _, err := time.Parse("15:04", value); err != nil || len(value) != 5 {
		v[field] = "invalid_time"
	}
}
