package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/jaskcalc/internal/calc"
)

// maxSuggestDistance bounds how far a typo may be from a known word before
// no suggestion is offered.
const maxSuggestDistance = 2

// UnknownTokenError reports input that names no token.
type UnknownTokenError struct {
	Input      string
	Suggestion string
}

func (e *UnknownTokenError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown token %q (did you mean %q?)", e.Input, e.Suggestion)
	}
	return fmt.Sprintf("unknown token %q", e.Input)
}

// words maps lower-cased spellings to tokens.
var words = buildWords()

func buildWords() map[string]Token {
	w := map[string]Token{
		".":     Point(),
		"(":     Open(),
		")":     Close(),
		"c":     ClearAll(),
		"ac":    ClearAll(),
		"clear": ClearAll(),
		"esc":   Cancel(),
		"ce":    Cancel(),
		"bs":    Backspace(),
		"⌫":     Backspace(),
		"±":     Negate(),
		"neg":   Negate(),
		"+/-":   Negate(),
		"sqrt":  Operator(calc.OpSqrt),
		"sq":    Operator(calc.OpSquare),
		"x^2":   Operator(calc.OpSquare),
		"recip": Operator(calc.OpReciprocal),
		"inv":   Operator(calc.OpReciprocal),
	}
	for d := byte('0'); d <= '9'; d++ {
		w[string(rune(d))] = Digit(d)
	}
	for _, op := range calc.Operators() {
		w[strings.ToLower(op.String())] = Operator(op)
	}
	for m := MemoryClear; m <= MemoryStore; m++ {
		w[strings.ToLower(m.String())] = Memory(m)
	}
	return w
}

// ParseToken resolves a single word, case-insensitively.
func ParseToken(s string) (Token, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if tok, ok := words[key]; ok {
		return tok, nil
	}
	return Token{}, &UnknownTokenError{Input: s, Suggestion: suggest(key)}
}

// Tokenize splits a line on whitespace. A field that is a known word becomes
// one token; a field built only from single-character tokens such as
// "12.5" or "(2+3)*4" becomes one token per character.
func Tokenize(line string) ([]Token, error) {
	var out []Token
	for _, field := range strings.Fields(line) {
		if tok, err := ParseToken(field); err == nil {
			out = append(out, tok)
			continue
		}
		split, ok := splitRunes(field)
		if !ok {
			return nil, &UnknownTokenError{Input: field, Suggestion: suggest(strings.ToLower(field))}
		}
		out = append(out, split...)
	}
	return out, nil
}

func splitRunes(field string) ([]Token, bool) {
	out := make([]Token, 0, len(field))
	for _, r := range field {
		tok, ok := words[string(r)]
		if !ok || tok.Kind == KindClearAll {
			return nil, false
		}
		out = append(out, tok)
	}
	return out, true
}

func suggest(input string) string {
	if input == "" {
		return ""
	}
	keys := make([]string, 0, len(words))
	for k := range words {
		if len(k) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	best, bestDist := "", maxSuggestDistance+1
	for _, k := range keys {
		if d := levenshtein.ComputeDistance(input, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
