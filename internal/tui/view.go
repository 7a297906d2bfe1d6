package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/todo-cli/internal/model"
)

const (
	title        = "Todo-cli Interactive mode"
	titleHeight  = 3
	statusHeight = 1

	defaultWidth  = 80
	defaultHeight = 24
)

// View is everything Render draws from.
type View struct {
	Records  []model.Record
	Selected int // -1 when nothing is selected
	Mode     Mode
	Command  string
	Status   string
	Width    int
	Height   int
}

// Render lays out the title, the list and the status line top to bottom.
// It has no side effects.
func Render(v View) string {
	if v.Width <= 0 {
		v.Width = defaultWidth
	}
	if v.Height <= 0 {
		v.Height = defaultHeight
	}
	listHeight := v.Height - titleHeight - statusHeight
	if listHeight < 1 {
		listHeight = 1
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderTitle(v.Mode, v.Width),
		renderList(v, listHeight),
		renderStatus(v),
	)
}

func renderTitle(mode Mode, width int) string {
	// border and padding take two columns each side
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	head := runewidth.Truncate(title, inner, "…")
	line := titleStyle.Render(head)

	if room := inner - runewidth.StringWidth(head) - 2; room > 0 {
		h := help.New()
		h.Width = room
		if hints := h.ShortHelpView(keys.shortHelp(mode)); hints != "" {
			line += "  " + hints
		}
	}
	return titleBoxStyle.Width(inner + 2).Render(line)
}

func renderList(v View, height int) string {
	lines := make([]string, 0, height)
	if len(v.Records) == 0 {
		lines = append(lines, mutedStyle.Render("  No todos. Press o to add one."))
	}

	offset := 0
	if v.Selected >= height {
		offset = v.Selected - height + 1
	}
	editing := v.Mode == ModeInsert || v.Mode == ModeNew
	for i := offset; i < len(v.Records) && len(lines) < height; i++ {
		desc := runewidth.Truncate(v.Records[i].Description, v.Width-3, "…")
		if i != v.Selected {
			lines = append(lines, "  "+desc)
			continue
		}
		if editing {
			desc += cursorStyle.Render(" ")
		}
		lines = append(lines, selectedStyle.Render("> ")+titleStyle.Render(desc))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderStatus(v View) string {
	head := runewidth.Truncate(statusText(v.Mode, v.Command), v.Width, "…")
	if v.Status == "" {
		return statusStyle.Width(v.Width).Render(head)
	}
	rest := runewidth.Truncate("  "+v.Status, v.Width-runewidth.StringWidth(head), "…")
	return statusStyle.Render(head) + errorStyle.Render(rest)
}

func statusText(mode Mode, command string) string {
	switch mode {
	case ModeInsert:
		return "[INS]"
	case ModeNew:
		return "[NEW]"
	case ModeCommand:
		return ":" + command
	default:
		return "[NOR]"
	}
}
