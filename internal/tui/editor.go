package tui

import (
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo-cli/internal/model"
)

// Mode is how the editor interprets the next key.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeNew
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeNew:
		return "new"
	case ModeCommand:
		return "command"
	}
	return "unknown"
}

// Outcome tells the session whether to keep running after a key.
type Outcome int

const (
	Continue Outcome = iota
	Quit
)

// Saver persists the whole list.
type Saver interface {
	Save(records []model.Record) error
}

// Editor is the modal state machine driving the interactive view.
// It is the only thing that mutates its List.
type Editor struct {
	list    *List
	mode    Mode
	command string // non-empty only in ModeCommand
	status  string // last write error, cleared on the next key

	pending int // index of the unsaved record created by "o"

	now   func() time.Time
	saver Saver
	log   *log.Logger
}

// NewEditor starts in normal mode with the first record selected.
func NewEditor(records []model.Record, saver Saver, now func() time.Time, logger *log.Logger) *Editor {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Editor{
		list:    NewList(records),
		mode:    ModeNormal,
		pending: noSelection,
		now:     now,
		saver:   saver,
		log:     logger,
	}
}

func (e *Editor) Mode() Mode      { return e.mode }
func (e *Editor) Command() string { return e.command }
func (e *Editor) Status() string  { return e.status }
func (e *Editor) List() *List     { return e.list }

// HandleKey applies one key press.
func (e *Editor) HandleKey(msg tea.KeyMsg) Outcome {
	// Fast typing can arrive as one message; treat it as separate presses.
	if msg.Type == tea.KeyRunes && !msg.Paste && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			one := msg
			one.Runes = []rune{r}
			if e.HandleKey(one) == Quit {
				return Quit
			}
		}
		return Continue
	}

	e.status = ""
	switch e.mode {
	case ModeNormal:
		e.handleNormal(msg)
	case ModeInsert, ModeNew:
		e.handleEdit(msg)
	case ModeCommand:
		return e.handleCommand(msg)
	}
	return Continue
}

func (e *Editor) handleNormal(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Insert):
		e.mode = ModeInsert
	case key.Matches(msg, keys.New):
		e.pending = e.list.InsertAfterSelected(model.Record{Timestamp: e.now()})
		e.mode = ModeNew
	case key.Matches(msg, keys.Command):
		e.command = ""
		e.mode = ModeCommand
	case key.Matches(msg, keys.Down):
		e.list.SelectNext()
	case key.Matches(msg, keys.Up):
		e.list.SelectPrevious()
	case key.Matches(msg, keys.Top):
		e.list.SelectFirst()
	case key.Matches(msg, keys.Bottom):
		e.list.SelectLast()
	case key.Matches(msg, keys.Done):
		if r, ok := e.list.RemoveSelected(); ok {
			e.log.Debug("resolved todo", "description", r.Description)
		}
	}
}

func (e *Editor) handleEdit(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if text, ok := typed(msg); ok {
			e.list.MutateSelectedDescription(func(s string) string { return s + text })
		}
	case tea.KeyBackspace, tea.KeyCtrlH:
		e.list.MutateSelectedDescription(trimLastRune)
	case tea.KeyEnter:
		e.toNormal()
	case tea.KeyEsc:
		if e.mode == ModeNew {
			e.list.Remove(e.pending)
		}
		e.toNormal()
	}
}

func (e *Editor) handleCommand(msg tea.KeyMsg) Outcome {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if text, ok := typed(msg); ok {
			e.command += text
		}
	case tea.KeyBackspace, tea.KeyCtrlH:
		e.command = trimLastRune(e.command)
	case tea.KeyEsc:
		e.toNormal()
	case tea.KeyEnter:
		cmd := e.command
		e.toNormal()
		switch cmd {
		case "q":
			return Quit
		case "w":
			e.write()
		case "wq":
			if e.write() {
				return Quit
			}
		default:
			e.log.Debug("ignored command", "command", cmd)
		}
	}
	return Continue
}

func (e *Editor) toNormal() {
	e.mode = ModeNormal
	e.command = ""
	e.pending = noSelection
}

func (e *Editor) write() bool {
	records := e.list.Records()
	if err := e.saver.Save(records); err != nil {
		e.status = "write failed: " + err.Error()
		e.log.Error("write failed", "err", err)
		return false
	}
	e.log.Debug("wrote todos", "count", len(records))
	return true
}

// View snapshots what Render needs.
func (e *Editor) View(width, height int) View {
	sel, ok := e.list.Selected()
	if !ok {
		sel = noSelection
	}
	return View{
		Records:  e.list.Records(),
		Selected: sel,
		Mode:     e.mode,
		Command:  e.command,
		Status:   e.status,
		Width:    width,
		Height:   height,
	}
}

// typed returns the printable text carried by a key press.
func typed(msg tea.KeyMsg) (string, bool) {
	if msg.Alt {
		return "", false
	}
	if msg.Type == tea.KeySpace {
		return " ", true
	}
	text := model.CleanDescription(string(msg.Runes))
	return text, text != ""
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
