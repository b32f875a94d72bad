package session

import (
	"fmt"
	"strings"
)

// Policy selects what an arithmetic error does to the session.
type Policy int

const (
	// PolicyLatch shows ErrorText and ignores everything but a clear.
	PolicyLatch Policy = iota
	// PolicyReset raises a one-shot notice and resets the calculation.
	PolicyReset
)

func (p Policy) String() string {
	if p == PolicyReset {
		return "reset"
	}
	return "latch"
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "latch":
		return PolicyLatch, nil
	case "reset", "dialog":
		return PolicyReset, nil
	}
	return 0, fmt.Errorf("unknown error policy %q", s)
}

// HistoryStyle selects which events produce history lines.
type HistoryStyle int

const (
	// StyleExpression records "<expression> = <result>" on every "=".
	StyleExpression HistoryStyle = iota
	// StyleSteps records "<operand> <op> = <result>" on every commit.
	StyleSteps
)

func (s HistoryStyle) String() string {
	if s == StyleSteps {
		return "steps"
	}
	return "expression"
}

func ParseHistoryStyle(s string) (HistoryStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "expression":
		return StyleExpression, nil
	case "steps", "step":
		return StyleSteps, nil
	}
	return 0, fmt.Errorf("unknown history style %q", s)
}

// DefaultHistoryLines is how many history entries Output surfaces.
const DefaultHistoryLines = 5

type Options struct {
	Policy       Policy
	Style        HistoryStyle
	HistoryLines int
}

func DefaultOptions() Options {
	return Options{HistoryLines: DefaultHistoryLines}
}

func (o Options) historyLines() int {
	if o.HistoryLines <= 0 {
		return DefaultHistoryLines
	}
	return o.HistoryLines
}
