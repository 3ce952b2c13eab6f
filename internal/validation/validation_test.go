package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "Acme", v)
	Required("email", "", v)
	Required("city", "   ", v)
	if v.Empty() {
		t.Fatalf("expected violations, got none")
	}
	if v["email"] != "required" || v["city"] != "required" {
		t.Fatalf("unexpected violations: %v", v)
	}
	if _, ok := v["name"]; ok {
		t.Fatalf("name should not be flagged: %v", v)
	}
}

func TestEmail(t *testing.T) {
	valid := []string{"a@b", "max.mustermann@example.de", "x+y@sub.domain.com"}
	invalid := []string{"@domain", "local@", "no-at-sign", "spa ce@domain"}
	for _, e := range valid {
		v := Violations{}
		Email("email", e, v)
		if !v.Empty() {
			t.Errorf("valid email %q flagged: %v", e, v)
		}
	}
	for _, e := range invalid {
		v := Violations{}
		Email("email", e, v)
		if v["email"] != "invalid_email" {
			t.Errorf("invalid email %q not flagged", e)
		}
	}
	// empty is Required's job
	v := Violations{}
	Email("email", "", v)
	if !v.Empty() {
		t.Errorf("empty email should not be flagged by Email: %v", v)
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"draft", "sent", "paid"}
	v := Violations{}
	OneOf("status", "sent", allowed, v)
	if !v.Empty() {
		t.Fatalf("sent should be allowed: %v", v)
	}
	OneOf("status", "final", allowed, v)
	if v["status"] != "invalid_value" {
		t.Fatalf("final should be rejected: %v", v)
	}
}

func TestDecimalChecks(t *testing.T) {
	v := Violations{}
	Positive("quantity", decimal.RequireFromString("0.01"), v)
	NotNegative("unit_price", decimal.Zero, v)
	if !v.Empty() {
		t.Fatalf("unexpected violations: %v", v)
	}
	Positive("quantity", decimal.Zero, v)
	NotNegative("unit_price", decimal.RequireFromString("-1"), v)
	if v["quantity"] != "must_be_positive" || v["unit_price"] != "must_not_be_negative" {
		t.Fatalf("unexpected violations: %v", v)
	}
}

func TestTimeOfDay(t *testing.T) {
	for _, ok := range []string{"", "09:30", "23:59", "00:00"} {
		v := Violations{}
		TimeOfDay("due_time", ok, v)
		if !v.Empty() {
			t.Errorf("%q should pass: %v", ok, v)
		}
	}
	for _, bad := range []string{"24:00", "9:30", "12:60", "noon", "12:34:56"} {
		v := Violations{}
		TimeOfDay("due_time", bad, v)
		if v["due_time"] != "invalid_time" {
			t.Errorf("%q should fail", bad)
		}
	}
}
