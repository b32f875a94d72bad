package journal

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/session"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s, err := Open(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreAppendRecent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)

	for i := 1; i <= 7; i++ {
		require.NoError(t, s.Append(ctx, session.Entry{Kind: session.EntryCalculation, Text: fmt.Sprintf("line %d", i)}))
	}
	n, err := s.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	recent, err := s.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	require.Equal(t, "line 3", recent[0].Text)
	require.Equal(t, "line 7", recent[4].Text)
	require.Equal(t, session.EntryCalculation, recent[0].Kind)

	none, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestStoreClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)
	require.NoError(t, s.Append(ctx, session.Entry{Kind: session.EntryMemory, Text: "Memory Cleared"}))
	require.NoError(t, s.Clear(ctx))
	n, err := s.Len(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestStoresAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a := openStore(t)
	b := openStore(t)
	require.NoError(t, a.Append(ctx, session.Entry{Kind: session.EntryCalculation, Text: "1 = 1"}))
	n, err := b.Len(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestStoreSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t)
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	for _, text := range []string{"2 + 2 = 4", "Memory Store: 4", "9 - 1 = 8", "Memory Cleared"} {
		kind := session.EntryCalculation
		if strings.HasPrefix(text, "Memory") {
			kind = session.EntryMemory
		}
		require.NoError(t, s.Append(ctx, session.Entry{Kind: kind, Text: text}))
	}

	got, err := s.Search(ctx, "Memory", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Memory Store: 4", got[0].Text)
	require.Equal(t, session.EntryMemory, got[0].Kind)
	require.NotEmpty(t, got[0].ID)
	require.NotEqual(t, got[0].ID, got[1].ID)
	require.Less(t, got[0].Seq, got[1].Seq)
	require.True(t, fixed.Equal(got[0].CreatedAt))

	got, err = s.Search(ctx, "=", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "2 + 2 = 4", got[0].Text)
}

func TestStoreBacksSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openStore(t)
	sess := session.New(session.DefaultOptions(), store, nil)
	toks, err := session.Tokenize("( 2 + 3 ) * 4 = 5 MS")
	require.NoError(t, err)
	require.NoError(t, sess.HandleAll(ctx, toks))

	out, err := sess.Output(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"( 2 + 3 ) * 4 = 20", "Memory Store: 5"}, out.HistoryLines)

	require.NoError(t, sess.HandleToken(ctx, session.ClearAll()))
	n, err := store.Len(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
