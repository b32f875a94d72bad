package session

import "context"

type EntryKind string

const (
	EntryCalculation EntryKind = "calculation"
	EntryStep        EntryKind = "step"
	EntryMemory      EntryKind = "memory"
)

// Entry is one history line.
type Entry struct {
	Kind EntryKind
	Text string
}

// History is the append-only log of completed calculations and memory
// events. Recent returns at most n entries, oldest first.
type History interface {
	Append(ctx context.Context, e Entry) error
	Recent(ctx context.Context, n int) ([]Entry, error)
	Len(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

// Log is an in-process History backed by a slice.
type Log struct {
	entries []Entry
}

func NewLog() *Log { return &Log{} }

func (l *Log) Append(_ context.Context, e Entry) error {
	l.entries = append(l.entries, e)
	return nil
}

func (l *Log) Recent(_ context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	start := max(0, len(l.entries)-n)
	out := make([]Entry, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out, nil
}

func (l *Log) Len(context.Context) (int, error) { return len(l.entries), nil }

func (l *Log) Clear(context.Context) error {
	l.entries = nil
	return nil
}
