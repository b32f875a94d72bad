package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		op      Operator
		result  float64
		operand float64
		want    float64
		err     error
	}{
		{"add", OpAdd, 2, 3, 5, nil},
		{"subtract", OpSubtract, 2, 3, -1, nil},
		{"multiply", OpMultiply, 2, 3, 6, nil},
		{"divide", OpDivide, 9, 3, 3, nil},
		{"divide by zero", OpDivide, 9, 0, 0, ErrDivisionByZero},
		{"sqrt ignores result", OpSqrt, 100, 9, 3, nil},
		{"sqrt zero", OpSqrt, 0, 0, 0, nil},
		{"sqrt negative", OpSqrt, 0, -4, 0, ErrInvalidSquareRoot},
		{"square", OpSquare, 100, -4, 16, nil},
		{"percent", OpPercent, 200, 15, 30, nil},
		{"reciprocal", OpReciprocal, 7, 4, 0.25, nil},
		{"reciprocal of zero", OpReciprocal, 7, 0, 0, ErrDivisionByZero},
		{"assign", OpAssign, 7, 42, 42, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(tc.op, tc.result, tc.operand)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestApplyDivideByZeroForAnyResult(t *testing.T) {
	t.Parallel()
	for _, r := range []float64{0, 1, -1, math.MaxFloat64, math.Inf(1)} {
		_, err := Apply(OpDivide, r, 0)
		require.ErrorIs(t, err, ErrDivisionByZero, "result %v", r)
	}
}

func TestParseOperator(t *testing.T) {
	t.Parallel()
	for _, op := range Operators() {
		got, ok := ParseOperator(op.String())
		require.True(t, ok, op.String())
		require.Equal(t, op, got)
	}
	got, ok := ParseOperator("SQRT")
	require.True(t, ok)
	require.Equal(t, OpSqrt, got)
	got, ok = ParseOperator("x^2")
	require.True(t, ok)
	require.Equal(t, OpSquare, got)
	_, ok = ParseOperator("mod")
	require.False(t, ok)
}

func TestEvaluatorCommitUsesPending(t *testing.T) {
	t.Parallel()
	var e Evaluator
	e, err := e.Commit(2)
	require.NoError(t, err)
	require.Equal(t, 2.0, e.Result)

	e.Pending = OpMultiply
	e, err = e.Commit(21)
	require.NoError(t, err)
	require.Equal(t, 42.0, e.Result)

	e.Pending = OpDivide
	failed, err := e.Commit(0)
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.Equal(t, 42.0, failed.Result)
}

func TestEvaluatorParenthesisRoundTrip(t *testing.T) {
	t.Parallel()
	// 10 - ( 2 + 3 ) leaves 5
	e := Evaluator{Result: 10, Pending: OpSubtract}
	e = e.Open()
	require.Equal(t, 1, e.Depth())
	require.Zero(t, e.Result)
	require.Equal(t, OpAssign, e.Pending)

	e, err := e.Commit(2)
	require.NoError(t, err)
	e.Pending = OpAdd
	e, err = e.Commit(3)
	require.NoError(t, err)

	e, ok, err := e.Close()
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, 0, e.Depth())
	require.Equal(t, 5.0, e.Result)
	require.Equal(t, OpSubtract, e.Pending)
}

func TestEvaluatorNestedParentheses(t *testing.T) {
	t.Parallel()
	// 2 * ( 3 + ( 4 * 5 ) ) = 46
	e := Evaluator{Result: 2, Pending: OpMultiply}
	e = e.Open()
	e, _ = e.Commit(3)
	e.Pending = OpAdd
	e = e.Open()
	e, _ = e.Commit(4)
	e.Pending = OpMultiply
	e, _ = e.Commit(5)
	require.Equal(t, 2, e.Depth())

	e, ok, err := e.Close()
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, 23.0, e.Result)
	require.Equal(t, OpAdd, e.Pending)

	e, ok, err = e.Close()
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, 46.0, e.Result)
	require.Equal(t, OpMultiply, e.Pending)
	require.Zero(t, e.Depth())
}

func TestEvaluatorCloseWithoutOpenIsNoop(t *testing.T) {
	t.Parallel()
	e := Evaluator{Result: 7, Pending: OpAdd}
	got, ok, err := e.Close()
	require.False(t, ok)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestEvaluatorCloseError(t *testing.T) {
	t.Parallel()
	// 1 / ( 4 - 4 )
	e := Evaluator{Result: 1, Pending: OpDivide}.Open()
	e, _ = e.Commit(4)
	e.Pending = OpSubtract
	e, _ = e.Commit(4)
	got, ok, err := e.Close()
	require.True(t, ok)
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.Equal(t, 1, got.Depth())
}

func TestEvaluatorOpenDoesNotAliasEarlierValues(t *testing.T) {
	t.Parallel()
	base := Evaluator{Result: 1, Pending: OpAdd}.Open()
	base.Result = 2
	base.Pending = OpAdd
	a := base.Open()
	b := base
	b.Result = 9
	b = b.Open()

	aOuter, _, err := a.Close()
	require.NoError(t, err)
	bOuter, _, err := b.Close()
	require.NoError(t, err)
	require.Equal(t, 2.0, aOuter.Result)
	require.Equal(t, 9.0, bOuter.Result)
}

func TestEvaluatorResetKeepsMemory(t *testing.T) {
	t.Parallel()
	e := Evaluator{Result: 3, Pending: OpAdd, Memory: 12}.Open()
	e = e.Reset()
	require.Equal(t, Evaluator{Pending: OpAssign, Memory: 12}, e)
	require.Zero(t, e.Depth())
}
