package calc

import "slices"

// frame is the outer context saved when a parenthesis opens.
type frame struct {
	result float64
	op     Operator
}

// Evaluator is the running arithmetic state. It is a value type: every
// method returns an updated copy and never mutates the receiver's stack.
type Evaluator struct {
	Result  float64
	Pending Operator
	Memory  float64

	frames []frame
}

// Commit applies the pending operator to operand.
func (e Evaluator) Commit(operand float64) (Evaluator, error) {
	r, err := Apply(e.Pending, e.Result, operand)
	if err != nil {
		return e, err
	}
	e.Result = r
	return e, nil
}

// Open saves the current result and pending operator and starts a fresh
// inner context.
func (e Evaluator) Open() Evaluator {
	// Clip forces append to copy so earlier values keep their own stack.
	e.frames = append(slices.Clip(e.frames), frame{result: e.Result, op: e.Pending})
	e.Result = 0
	e.Pending = OpAssign
	return e
}

// Close restores the outer context saved by the matching Open and folds
// the inner result into it with the restored pending operator. ok is false
// when no parenthesis is open, in which case e is returned unchanged.
func (e Evaluator) Close() (_ Evaluator, ok bool, err error) {
	if len(e.frames) == 0 {
		return e, false, nil
	}
	top := e.frames[len(e.frames)-1]
	outer := Evaluator{
		Result:  top.result,
		Pending: top.op,
		Memory:  e.Memory,
		frames:  e.frames[:len(e.frames)-1],
	}
	folded, err := outer.Commit(e.Result)
	if err != nil {
		return e, true, err
	}
	return folded, true, nil
}

// Depth is the number of open parentheses.
func (e Evaluator) Depth() int { return len(e.frames) }

// Reset clears the calculation state. Memory is kept.
func (e Evaluator) Reset() Evaluator {
	return Evaluator{Pending: OpAssign, Memory: e.Memory}
}
