// Package quickmath evaluates the arithmetic expressions accepted by the
// expense amount field, e.g. "12.50*3+4" or "(9.99+4.99)/2".
package quickmath

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidExpression = errors.New("invalid amount expression")
	ErrDivisionByZero    = errors.New("division by zero in amount expression")
	ErrNegativeResult    = errors.New("amount expression must not be negative")
)

// Evaluate computes the value of an arithmetic expression over decimal
// numbers with + - * /, unary minus, standard precedence and parentheses.
// Whitespace is ignored. Any other character, repeated operators, division by
// zero, or a negative or non-finite result yields an error.
func Evaluate(expr string) (float64, error) {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, expr)

	if clean == "" {
		return 0, ErrInvalidExpression
	}
	for _, r := range clean {
		if !strings.ContainsRune("0123456789.+-*/()", r) {
			return 0, ErrInvalidExpression
		}
	}
	for _, seq := range []string{"**", "++", "--"} {
		if strings.Contains(clean, seq) {
			return 0, ErrInvalidExpression
		}
	}

	p := &parser{input: clean}
	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, ErrInvalidExpression
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ErrInvalidExpression
	}
	if result < 0 {
		return 0, ErrNegativeResult
	}

	return result, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseExpr handles + and - (lowest precedence, left associative).
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			left /= right
		default:
			return left, nil
		}
	}
}

// parseFactor handles numbers, parenthesized sub-expressions and unary
// minus. A negated factor is fine mid-expression; a negative final result is
// still rejected by Evaluate.
func (p *parser) parseFactor() (float64, error) {
	if p.peek() == '-' {
		p.pos++
		value, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -value, nil
	}

	if p.peek() == '(' {
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, ErrInvalidExpression
		}
		p.pos++
		return value, nil
	}

	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		p.pos++
	}
	if start == p.pos {
		return 0, ErrInvalidExpression
	}

	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, ErrInvalidExpression
	}

	return value, nil
}
