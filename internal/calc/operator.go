package calc

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrInvalidSquareRoot = errors.New("invalid square root")
)

// Operator is one of the fixed operator keys. The zero value is OpAssign.
type Operator int

const (
	OpAssign Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpSqrt
	OpSquare
	OpPercent
	OpReciprocal
)

var operatorSymbols = [...]string{
	OpAssign:     "=",
	OpAdd:        "+",
	OpSubtract:   "-",
	OpMultiply:   "*",
	OpDivide:     "/",
	OpSqrt:       "√",
	OpSquare:     "x²",
	OpPercent:    "%",
	OpReciprocal: "1/x",
}

var operatorAliases = map[string]Operator{
	"sqrt":  OpSqrt,
	"sq":    OpSquare,
	"x^2":   OpSquare,
	"recip": OpReciprocal,
	"inv":   OpReciprocal,
	"×":     OpMultiply,
	"÷":     OpDivide,
}

// Operators lists every operator in key order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpSqrt, OpSquare, OpPercent, OpReciprocal, OpAssign}
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorSymbols) {
		return "?"
	}
	return operatorSymbols[o]
}

// ParseOperator accepts an operator symbol or one of its ASCII aliases.
func ParseOperator(s string) (Operator, bool) {
	s = strings.TrimSpace(s)
	for i, sym := range operatorSymbols {
		if s == sym {
			return Operator(i), true
		}
	}
	op, ok := operatorAliases[strings.ToLower(s)]
	return op, ok
}

// Apply computes result = f(result, operand) for op. On error the returned
// value is meaningless and must be discarded.
func Apply(op Operator, result, operand float64) (float64, error) {
	switch op {
	case OpAdd:
		return result + operand, nil
	case OpSubtract:
		return result - operand, nil
	case OpMultiply:
		return result * operand, nil
	case OpDivide:
		if operand == 0 {
			return 0, ErrDivisionByZero
		}
		return result / operand, nil
	case OpSqrt:
		if operand < 0 {
			return 0, ErrInvalidSquareRoot
		}
		return math.Sqrt(operand), nil
	case OpSquare:
		return operand * operand, nil
	case OpPercent:
		return result * (operand / 100), nil
	case OpReciprocal:
		if operand == 0 {
			return 0, ErrDivisionByZero
		}
		return 1 / operand, nil
	case OpAssign:
		return operand, nil
	}
	return result, nil
}
