package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo-cli/internal/model"
)

// Store is what the interactive session needs from persistence.
type Store interface {
	Load() ([]model.Record, error)
	Saver
}

// Options tune a session. Zero values are fine.
type Options struct {
	Logger *log.Logger
	Now    func() time.Time

	// ProgramOptions are appended after the alt screen option.
	ProgramOptions []tea.ProgramOption
}

// sessionModel adapts Editor to Bubble Tea's Model.
type sessionModel struct {
	editor        *Editor
	width, height int
}

// Run loads the todos and blocks until the user quits. Bubble Tea restores
// the terminal on every exit path, errors included.
func Run(store Store, opt Options) error {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	records, err := store.Load()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	logger.Debug("interactive session start", "todos", len(records))

	m := sessionModel{editor: NewEditor(records, store, opt.Now, logger)}
	progOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, opt.ProgramOptions...)
	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	logger.Debug("interactive session end")
	return nil
}

func (m sessionModel) Init() tea.Cmd { return nil }

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		// Bubble Tea only reports key presses, so nothing to filter here.
		if m.editor.HandleKey(msg) == Quit {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m sessionModel) View() string {
	return Render(m.editor.View(m.width, m.height))
}
