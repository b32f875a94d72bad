package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/session"
)

type Action string

const (
	actionToken Action = "token"
	actionTheme Action = "theme"
	actionHelp  Action = "help"
	actionQuit  Action = "quit"
)

// KeyBinding maps keys to an action. Token is only read for actionToken.
type KeyBinding struct {
	Action  Action
	Token   session.Token
	Binding key.Binding
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
}

// Resolve returns the first binding matching msg.
func (r *KeyRegistry) Resolve(msg tea.KeyMsg) (KeyBinding, bool) {
	for _, b := range r.bindings {
		if key.Matches(msg, b.Binding) {
			return b, true
		}
	}
	return KeyBinding{}, false
}

// Help lists the bindings that carry help text, in registration order.
func (r *KeyRegistry) Help() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.Binding.Help().Key != "" {
			out = append(out, b.Binding)
		}
	}
	return out
}

// ShortHelp implements help.KeyMap.
func (r *KeyRegistry) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range r.bindings {
		switch b.Action {
		case actionHelp, actionTheme, actionQuit:
			out = append(out, b.Binding)
		}
	}
	return out
}

// FullHelp implements help.KeyMap, in columns of five.
func (r *KeyRegistry) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for chunk := range slices.Chunk(r.Help(), 5) {
		cols = append(cols, chunk)
	}
	return cols
}

func tokenKey(tok session.Token, keys []string, help ...string) KeyBinding {
	opts := []key.BindingOpt{key.WithKeys(keys...)}
	if len(help) == 2 {
		opts = append(opts, key.WithHelp(help[0], help[1]))
	}
	return KeyBinding{Action: actionToken, Token: tok, Binding: key.NewBinding(opts...)}
}

func opKey(op calc.Operator, keys []string, help ...string) KeyBinding {
	return tokenKey(session.Operator(op), keys, help...)
}

// DefaultKeyBindings is the standard desk-calculator layout.
func DefaultKeyBindings() []KeyBinding {
	var b []KeyBinding
	for d := byte('0'); d <= '9'; d++ {
		if d == '0' {
			b = append(b, tokenKey(session.Digit(d), []string{"0"}, "0-9", "digits"))
			continue
		}
		b = append(b, tokenKey(session.Digit(d), []string{string(rune(d))}))
	}
	b = append(b,
		tokenKey(session.Point(), []string{".", ","}, ".", "point"),
		opKey(calc.OpAdd, []string{"+"}),
		opKey(calc.OpSubtract, []string{"-"}),
		opKey(calc.OpMultiply, []string{"*", "x"}),
		opKey(calc.OpDivide, []string{"/"}, "+-*/", "arithmetic"),
		opKey(calc.OpPercent, []string{"%"}, "%", "percent"),
		opKey(calc.OpSqrt, []string{"r"}, "r", "√"),
		opKey(calc.OpSquare, []string{"s"}, "s", "x²"),
		opKey(calc.OpReciprocal, []string{"i"}, "i", "1/x"),
		opKey(calc.OpAssign, []string{"enter", "="}, "enter", "="),
		tokenKey(session.Open(), []string{"("}),
		tokenKey(session.Close(), []string{")"}, "( )", "group"),
		tokenKey(session.Negate(), []string{"n"}, "n", "±"),
		tokenKey(session.Backspace(), []string{"backspace"}, "⌫", "delete digit"),
		tokenKey(session.Cancel(), []string{"esc"}, "esc", "clear"),
		tokenKey(session.ClearAll(), []string{"c", "C", "delete"}, "c", "clear all"),
		tokenKey(session.Memory(session.MemoryClear), []string{"ctrl+l"}, "^l", "MC"),
		tokenKey(session.Memory(session.MemoryRecall), []string{"ctrl+r"}, "^r", "MR"),
		tokenKey(session.Memory(session.MemoryAdd), []string{"ctrl+p"}, "^p", "M+"),
		tokenKey(session.Memory(session.MemorySubtract), []string{"ctrl+n"}, "^n", "M-"),
		tokenKey(session.Memory(session.MemoryStore), []string{"ctrl+s"}, "^s", "MS"),
		KeyBinding{Action: actionTheme, Binding: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme"))},
		KeyBinding{Action: actionHelp, Binding: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))},
		KeyBinding{Action: actionQuit, Binding: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))},
	)
	return b
}
