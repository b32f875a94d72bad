package session

import "github.com/jask/jaskcalc/internal/calc"

// Kind classifies an input token.
type Kind int

const (
	KindDigit Kind = iota
	KindPoint
	KindOpen
	KindClose
	KindOperator
	KindClearAll // "C": calculation state and history
	KindCancel   // Escape: calculation state only
	KindBackspace
	KindNegate
	KindMemory
)

// MemoryOp is one of the memory register commands.
type MemoryOp int

const (
	MemoryClear MemoryOp = iota
	MemoryRecall
	MemoryAdd
	MemorySubtract
	MemoryStore
)

var memoryLabels = [...]string{
	MemoryClear:    "MC",
	MemoryRecall:   "MR",
	MemoryAdd:      "M+",
	MemorySubtract: "M-",
	MemoryStore:    "MS",
}

func (m MemoryOp) String() string {
	if m < 0 || int(m) >= len(memoryLabels) {
		return "M?"
	}
	return memoryLabels[m]
}

// Token is one discrete input from the presentation layer. Only the field
// matching Kind is meaningful.
type Token struct {
	Kind  Kind
	Digit byte
	Op    calc.Operator
	Mem   MemoryOp
}

func Digit(d byte) Token { return Token{Kind: KindDigit, Digit: d} }
func Point() Token { return Token{Kind: KindPoint} }
func Open() Token { return Token{Kind: KindOpen} }
func Close() Token { return Token{Kind: KindClose} }
func Operator(op calc.Operator) Token { return Token{Kind: KindOperator, Op: op} }
func Equals() Token { return Operator(calc.OpAssign) }
func ClearAll() Token { return Token{Kind: KindClearAll} }
func Cancel() Token { return Token{Kind: KindCancel} }
func Backspace() Token { return Token{Kind: KindBackspace} }
func Negate() Token { return Token{Kind: KindNegate} }
func Memory(op MemoryOp) Token { return Token{Kind: KindMemory, Mem: op} }

func (t Token) String() string {
	switch t.Kind {
	case KindDigit:
		return string(rune(t.Digit))
	case KindPoint:
		return "."
	case KindOpen:
		return "("
	case KindClose:
		return ")"
	case KindOperator:
		return t.Op.String()
	case KindClearAll:
		return "C"
	case KindCancel:
		return "esc"
	case KindBackspace:
		return "⌫"
	case KindNegate:
		return "±"
	case KindMemory:
		return t.Mem.String()
	}
	return "?"
}
