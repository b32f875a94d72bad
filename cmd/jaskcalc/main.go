package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/journal"
	"github.com/jask/jaskcalc/internal/session"
	"github.com/jask/jaskcalc/internal/tui"
)

// exitLatched is returned by eval mode when the expression ends in an error.
const exitLatched = 2

func main() {
	code, err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("jaskcalc: %v", err)
	}
	os.Exit(code)
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("jaskcalc", pflag.ContinueOnError)
	fs.StringP("eval", "e", "", "evaluate space separated tokens and print the result")
	fs.String("config", "", "config file (default ~/.config/jaskcalc/config.toml)")
	fs.String("policy", "", "error policy: latch or reset")
	fs.String("history-style", "", "history format: expression or steps")
	fs.Int("history-lines", 0, "history lines shown")
	fs.String("history", "", "history backend: sqlite or memory")
	fs.String("history-grep", "", "with --eval, print journal records containing this text")
	fs.String("theme", "", "theme: light, dark or blue")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	return fs
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	fs := newFlagSet()
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0, nil
		}
		return 0, err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return 0, err
	}
	opts, err := cfg.SessionOptions()
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}

	evalMode := fs.Changed("eval")
	grep, _ := fs.GetString("history-grep")
	if grep != "" && !evalMode {
		return 0, errors.New("--history-grep requires --eval")
	}

	logOut := io.Discard
	if evalMode {
		logOut = stderr
	}
	logger, closeLog, err := newLogger(cfg.Log, logOut)
	if err != nil {
		return 0, err
	}
	defer closeLog()

	var (
		history session.History
		store   *journal.Store
	)
	switch cfg.History.Backend {
	case config.BackendSQLite:
		store, err = journal.Open(ctx)
		if err != nil {
			return 0, fmt.Errorf("open journal: %w", err)
		}
		defer store.Close()
		history = store
	case config.BackendMemory:
		history = session.NewLog()
	default:
		return 0, fmt.Errorf("unknown history backend %q", cfg.History.Backend)
	}

	sess := session.New(opts, history, logger)

	if evalMode {
		line, _ := fs.GetString("eval")
		return evaluate(ctx, sess, store, line, grep, stdout, stderr)
	}

	logger.Info("starting tui", "theme", cfg.UI.Theme, "backend", cfg.History.Backend)
	p := tea.NewProgram(tui.New(ctx, cfg, config.Path(fs), sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return 0, fmt.Errorf("tui: %w", err)
	}
	return 0, nil
}

func evaluate(ctx context.Context, sess *session.Session, store *journal.Store, line, grep string, stdout, stderr io.Writer) (int, error) {
	toks, err := session.Tokenize(line)
	if err != nil {
		return 0, err
	}
	if err := sess.HandleAll(ctx, toks); err != nil {
		return 0, err
	}
	out, err := sess.Output(ctx)
	if err != nil {
		return 0, err
	}

	fmt.Fprintln(stdout, out.DisplayText)
	if out.Notice != "" {
		fmt.Fprintf(stderr, "notice: %s\n", out.Notice)
	}

	if grep != "" {
		if store == nil {
			return 0, errors.New("--history-grep needs the sqlite history backend")
		}
		recs, err := store.Search(ctx, grep, 0)
		if err != nil {
			return 0, err
		}
		for _, r := range recs {
			fmt.Fprintf(stdout, "%d\t%s\t%s\n", r.Seq, r.Kind, r.Text)
		}
	} else {
		for _, l := range out.HistoryLines {
			fmt.Fprintln(stdout, l)
		}
	}

	if out.ErrorActive {
		return exitLatched, nil
	}
	return 0, nil
}
