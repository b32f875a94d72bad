package session

import (
	"strings"

	"github.com/jask/jaskcalc/internal/calc"
)

// ErrorText is displayed while the error latch is set.
const ErrorText = "Not applicable"

// State is everything the router needs between two tokens. The zero value
// is not ready for use; start from NewState.
type State struct {
	Eval    calc.Evaluator
	Latched bool
	Echo    string

	// Entry is the display buffer: digits being typed or the last formatted
	// result.
	Entry string

	// Fresh means the next digit replaces Entry instead of extending it.
	Fresh bool
}

func NewState() State {
	return State{Eval: calc.Evaluator{Pending: calc.OpAssign}, Entry: "0", Fresh: true}
}

// Effect describes what a step asks of its owner beyond the new state.
type Effect struct {
	Records      []Entry
	ClearHistory bool
	Err          error

	// Notice is set under PolicyReset when an arithmetic error discarded the
	// calculation.
	Notice string
}

// Step routes tok against s and returns the next state. It never touches
// anything outside its arguments.
func Step(opts Options, s State, tok Token) (State, Effect) {
	if s.Latched && tok.Kind != KindClearAll && tok.Kind != KindCancel {
		return s, Effect{}
	}
	switch tok.Kind {
	case KindDigit, KindPoint:
		return s.typeChar(tok), Effect{}
	case KindOpen:
		s.Eval = s.Eval.Open()
		s.Fresh = true
		s.Echo += " ( "
		return s, Effect{}
	case KindClose:
		return s.close(opts)
	case KindOperator:
		return s.operator(opts, tok.Op)
	case KindClearAll:
		return s.reset(), Effect{ClearHistory: true}
	case KindCancel:
		return s.reset(), Effect{}
	case KindBackspace:
		return s.backspace(), Effect{}
	case KindNegate:
		return s.negate(), Effect{}
	case KindMemory:
		return s.memory(tok.Mem)
	}
	return s, Effect{}
}

func (s State) typeChar(tok Token) State {
	ch := tok.String()
	if s.Fresh {
		s.Entry = ch
		s.Fresh = false
	} else {
		if tok.Kind == KindPoint && strings.Contains(s.Entry, ".") {
			return s
		}
		s.Entry += ch
	}
	s.Echo += ch
	return s
}

func (s State) operator(opts Options, op calc.Operator) (State, Effect) {
	var fx Effect
	if !s.Fresh {
		var ok bool
		if s, fx, ok = s.commit(opts, fx); !ok {
			return s, fx
		}
		s.Fresh = true
	}
	s.Eval.Pending = op
	if op == calc.OpAssign {
		if opts.Style == StyleExpression {
			fx.Records = append(fx.Records, Entry{
				Kind: EntryCalculation,
				Text: tidy(s.Echo + " = " + calc.Format(s.Eval.Result)),
			})
		}
		s.Echo = ""
		return s, fx
	}
	s.Echo += " " + op.String() + " "
	return s, fx
}

func (s State) close(opts Options) (State, Effect) {
	var fx Effect
	if s.Eval.Depth() == 0 {
		return s, fx
	}
	if !s.Fresh {
		var ok bool
		if s, fx, ok = s.commit(opts, fx); !ok {
			return s, fx
		}
	}
	inner := s.Eval.Result
	e, _, err := s.Eval.Close()
	if err != nil {
		return s.fail(opts, fx, err)
	}
	if opts.Style == StyleSteps {
		fx.Records = append(fx.Records, stepRecord(inner, e.Pending, e.Result))
	}
	s.Eval = e
	s.Entry = calc.Format(e.Result)
	s.Fresh = true
	s.Echo += " ) "
	return s, fx
}

// commit applies the pending operator to the displayed number.
func (s State) commit(opts Options, fx Effect) (State, Effect, bool) {
	operand := s.displayValue()
	e, err := s.Eval.Commit(operand)
	if err != nil {
		s, fx = s.fail(opts, fx, err)
		return s, fx, false
	}
	if opts.Style == StyleSteps {
		fx.Records = append(fx.Records, stepRecord(operand, e.Pending, e.Result))
	}
	s.Eval = e
	s.Entry = calc.Format(e.Result)
	return s, fx, true
}

func (s State) fail(opts Options, fx Effect, err error) (State, Effect) {
	fx.Err = err
	if opts.Policy == PolicyReset {
		fx.Notice = err.Error()
		return s.reset(), fx
	}
	s.Latched = true
	s.Entry = ErrorText
	return s, fx
}

func (s State) reset() State {
	return State{Eval: s.Eval.Reset(), Entry: "0", Fresh: true}
}

func (s State) backspace() State {
	if s.Fresh {
		return s
	}
	r := []rune(s.Entry)
	trimmed := string(r[:len(r)-1])
	if trimmed == "" || trimmed == "-" {
		s.Entry = "0"
		s.Fresh = true
		return s
	}
	s.Entry = trimmed
	return s
}

func (s State) negate() State {
	if s.Entry == "0" {
		return s
	}
	if rest, ok := strings.CutPrefix(s.Entry, "-"); ok {
		s.Entry = rest
	} else {
		s.Entry = "-" + s.Entry
	}
	return s
}

func (s State) memory(op MemoryOp) (State, Effect) {
	value := s.displayValue()
	var text string
	switch op {
	case MemoryClear:
		s.Eval.Memory = 0
		text = "Memory Cleared"
	case MemoryRecall:
		s.Entry = calc.Format(s.Eval.Memory)
		s.Fresh = false
		return s, Effect{Records: []Entry{{Kind: EntryMemory, Text: "Memory Recall: " + s.Entry}}}
	case MemoryAdd:
		s.Eval.Memory += value
		text = "Memory + " + calc.Format(value)
	case MemorySubtract:
		s.Eval.Memory -= value
		text = "Memory - " + calc.Format(value)
	case MemoryStore:
		s.Eval.Memory = value
		text = "Memory Store: " + calc.Format(value)
	default:
		return s, Effect{}
	}
	s.Fresh = true
	return s, Effect{Records: []Entry{{Kind: EntryMemory, Text: text}}}
}

// displayValue parses Entry. Entry only ever holds typed digits or Format
// output, so the zero fallback covers a lone "." and nothing else.
func (s State) displayValue() float64 {
	v, err := calc.ParseDisplay(s.Entry)
	if err != nil {
		return 0
	}
	return v
}

func stepRecord(operand float64, op calc.Operator, result float64) Entry {
	return Entry{
		Kind: EntryStep,
		Text: calc.Format(operand) + " " + op.String() + " = " + calc.Format(result),
	}
}

// tidy collapses the padding the echo accumulates around operators and
// parentheses.
func tidy(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
