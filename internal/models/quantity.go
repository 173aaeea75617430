package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is an exact base-10 quantity that renders with the scale it was
// parsed with. decimal.Decimal keeps the parsed exponent internally but its
// String normalizes trailing zeros, so "1.50" would re-encode as "1.5";
// financial values must not be reformatted lossily, hence this wrapper.
type Quantity struct {
	decimal.Decimal
}

// ParseQuantity parses exact decimal text.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid decimal: %w", err)
	}
	return Quantity{d}, nil
}

// String renders the exact source text: fixed to the parsed scale when the
// value has decimal places, the plain rendering otherwise.
func (q Quantity) String() string {
	if exp := q.Exponent(); exp < 0 {
		return q.StringFixed(-exp)
	}
	return q.Decimal.String()
}

// MarshalJSON encodes the exact decimal text as a JSON string.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// UnmarshalJSON decodes a JSON string or bare number as exact decimal text.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseQuantity(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// Cmp orders quantities by mathematical value.
func (q Quantity) Cmp(other Quantity) int {
	return q.Decimal.Cmp(other.Decimal)
}
