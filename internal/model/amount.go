package model

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/spendtrack/spendtrack-go/internal/quickmath"
)

// ErrAmountNotSet is returned by Resolve when the amount field was absent.
var ErrAmountNotSet = errors.New("amount is not set")

// Amount is an expense amount that unmarshals from either a JSON number or a
// quick-entry expression string such as "12.50*3+4". Evaluation is deferred
// to Resolve so that a bad expression surfaces as a validation error rather
// than a generic decode failure.
type Amount struct {
	raw string
	set bool
}

// AmountFromFloat builds a resolved Amount, for tests and internal callers.
func AmountFromFloat(v float64) Amount {
	return Amount{raw: strconv.FormatFloat(v, 'f', -1, 64), set: true}
}

// AmountFromExpression builds an Amount holding an unevaluated expression.
func AmountFromExpression(expr string) Amount {
	return Amount{raw: expr, set: true}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Amount{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = Amount{}
			return nil
		}
		*a = Amount{raw: s, set: true}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount{raw: n.String(), set: true}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return json.Marshal(a.raw)
}

// IsSet reports whether the field was present and non-empty.
func (a Amount) IsSet() bool {
	return a.set
}

// Resolve evaluates the amount to a number. Plain decimal numbers pass
// through; everything else runs through the quick-entry evaluator.
func (a Amount) Resolve() (float64, error) {
	if !a.set {
		return 0, ErrAmountNotSet
	}

	if isPlainNumber(a.raw) {
		return strconv.ParseFloat(a.raw, 64)
	}

	return quickmath.Evaluate(a.raw)
}

// isPlainNumber reports whether s is digits and dots only. Forms that
// ParseFloat would otherwise accept, such as "NaN", "Inf" and exponents, fall
// through to the evaluator's character whitelist and are rejected there.
func isPlainNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
