package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/session"
)

// App is the bubbletea model wrapping one calculator session.
type App struct {
	ctx     context.Context
	cfg     config.Config
	cfgPath string
	session *session.Session
	keys    *KeyRegistry
	help    help.Model

	out    session.Output
	theme  int
	width  int
	status string
}

type statusMsg string

type errMsg struct{ error }

// New builds the app. cfgPath is where theme changes are saved; an empty
// path keeps them in memory only.
func New(ctx context.Context, cfg config.Config, cfgPath string, sess *session.Session) *App {
	a := &App{
		ctx:     ctx,
		cfg:     cfg,
		cfgPath: cfgPath,
		session: sess,
		keys:    NewKeyRegistry(DefaultKeyBindings()),
		help:    help.New(),
		theme:   themeIndex(cfg.UI.Theme),
	}
	a.refresh()
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// any key closes the notice
	if a.out.Notice != "" {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.session.DismissNotice()
		a.refresh()
		return a, nil
	}

	b, ok := a.keys.Resolve(msg)
	if !ok {
		return a, nil
	}
	switch b.Action {
	case actionQuit:
		return a, tea.Quit
	case actionHelp:
		a.help.ShowAll = !a.help.ShowAll
	case actionTheme:
		a.theme = (a.theme + 1) % len(themes)
		a.cfg.UI.Theme = themes[a.theme].name
		return a, a.saveThemeCmd()
	case actionToken:
		a.status = ""
		if err := a.session.HandleToken(a.ctx, b.Token); err != nil {
			a.status = "error: " + err.Error()
		}
		a.refresh()
	}
	return a, nil
}

func (a *App) refresh() {
	out, err := a.session.Output(a.ctx)
	if err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.out = out
}

func (a *App) saveThemeCmd() tea.Cmd {
	cfg, path := a.cfg, a.cfgPath
	return func() tea.Msg {
		if path == "" {
			return statusMsg("theme " + cfg.UI.Theme)
		}
		if err := config.Save(path, cfg); err != nil {
			return errMsg{err}
		}
		return statusMsg("theme " + cfg.UI.Theme + " saved")
	}
}

// Output exposes the last rendered session output.
func (a *App) Output() session.Output { return a.out }

func (a *App) ThemeName() string { return themes[a.theme].name }
