package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Output is what the presentation layer renders after each token.
type Output struct {
	DisplayText  string
	HistoryLines []string
	ErrorActive  bool
	Expression   string
	Memory       float64
	HasMemory    bool
	Depth        int

	// Notice is a one-shot error message under PolicyReset.
	Notice string
}

// Session owns the state of one calculator and its history. Tokens must be
// delivered one at a time.
type Session struct {
	opts    Options
	state   State
	history History
	notice  string
	log     *slog.Logger
}

func New(opts Options, history History, logger *slog.Logger) *Session {
	if history == nil {
		history = NewLog()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{opts: opts, state: NewState(), history: history, log: logger}
}

// HandleToken is the single entry point for input.
func (s *Session) HandleToken(ctx context.Context, tok Token) error {
	next, fx := Step(s.opts, s.state, tok)
	s.log.Debug("token", "token", tok.String(), "display", next.Entry, "depth", next.Eval.Depth())
	s.state = next
	if fx.Err != nil {
		s.log.Warn("arithmetic error", "error", fx.Err, "policy", s.opts.Policy.String())
	}
	if fx.Notice != "" {
		s.notice = fx.Notice
	}
	if fx.ClearHistory {
		if err := s.history.Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
	}
	for _, rec := range fx.Records {
		if err := s.history.Append(ctx, rec); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
	}
	return nil
}

// HandleAll feeds tokens in order and stops at the first history failure.
func (s *Session) HandleAll(ctx context.Context, toks []Token) error {
	for _, tok := range toks {
		if err := s.HandleToken(ctx, tok); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) Output(ctx context.Context) (Output, error) {
	recent, err := s.history.Recent(ctx, s.opts.historyLines())
	if err != nil {
		return Output{}, fmt.Errorf("recent history: %w", err)
	}
	lines := make([]string, len(recent))
	for i, e := range recent {
		lines[i] = e.Text
	}
	return Output{
		DisplayText:  s.state.Entry,
		HistoryLines: lines,
		ErrorActive:  s.state.Latched,
		Notice:       s.notice,
		Expression:   tidy(s.state.Echo),
		Memory:       s.state.Eval.Memory,
		HasMemory:    s.state.Eval.Memory != 0,
		Depth:        s.state.Eval.Depth(),
	}, nil
}

func (s *Session) DismissNotice() { s.notice = "" }

func (s *Session) State() State { return s.state }

func (s *Session) Options() Options { return s.opts }

// Result is the running result of the evaluator.
func (s *Session) Result() float64 { return s.state.Eval.Result }
