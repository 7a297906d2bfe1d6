package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) []string {
	return strings.Split(ansiRegexp.ReplaceAllString(s, ""), "\n")
}

func TestRenderRegions(t *testing.T) {
	v := View{
		Records:  records("buy milk", "call mum"),
		Selected: 1,
		Mode:     ModeNormal,
		Width:    60,
		Height:   10,
	}
	lines := plain(Render(v))
	require.Len(t, lines, 10)

	assert.Contains(t, lines[1], "Todo-cli Interactive mode")
	assert.Equal(t, "  buy milk", strings.TrimRight(lines[3], " "))
	assert.Equal(t, "> call mum", strings.TrimRight(lines[4], " "))
	assert.Equal(t, "[NOR]", strings.TrimSpace(lines[9]))
	for _, l := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(l), 60, "line %q too wide", l)
	}
}

func TestRenderStatusPerMode(t *testing.T) {
	tests := []struct {
		mode    Mode
		command string
		want    string
	}{
		{ModeNormal, "", "[NOR]"},
		{ModeInsert, "", "[INS]"},
		{ModeNew, "", "[NEW]"},
		{ModeCommand, "wq", ":wq"},
		{ModeCommand, "", ":"},
	}
	for _, tt := range tests {
		lines := plain(Render(View{Records: records("a"), Mode: tt.mode, Command: tt.command, Width: 40, Height: 6}))
		assert.Equal(t, tt.want, strings.TrimSpace(lines[len(lines)-1]), "mode %s", tt.mode)
	}
}

func TestRenderStatusMessage(t *testing.T) {
	lines := plain(Render(View{Mode: ModeNormal, Selected: -1, Status: "write failed: disk full", Width: 40, Height: 6}))
	assert.Contains(t, lines[len(lines)-1], "[NOR]  write failed")
}

func TestRenderHidesTimestamps(t *testing.T) {
	out := strings.Join(plain(Render(View{Records: records("a"), Width: 40, Height: 6})), "\n")
	assert.NotContains(t, out, "2024")
}

func TestRenderEmptyList(t *testing.T) {
	lines := plain(Render(View{Selected: -1, Width: 40, Height: 6}))
	require.Len(t, lines, 6)
	assert.Contains(t, lines[3], "No todos")
}

func TestRenderScrollsToSelection(t *testing.T) {
	descs := make([]string, 20)
	for i := range descs {
		descs[i] = strings.Repeat(string(rune('a'+i)), 3)
	}
	lines := plain(Render(View{Records: records(descs...), Selected: 15, Width: 40, Height: 8}))
	require.Len(t, lines, 8)
	// four list rows, selection on the last one
	assert.Equal(t, "> ppp", strings.TrimRight(lines[6], " "))
	assert.Equal(t, "  mmm", strings.TrimRight(lines[3], " "))
}

func TestRenderTruncatesLongRows(t *testing.T) {
	long := strings.Repeat("x", 200)
	lines := plain(Render(View{Records: records(long), Selected: -1, Width: 30, Height: 6}))
	assert.LessOrEqual(t, runewidth.StringWidth(lines[3]), 30)
	assert.True(t, strings.HasSuffix(strings.TrimRight(lines[3], " "), "…"))
}

func TestRenderDefaultsSize(t *testing.T) {
	lines := plain(Render(View{Selected: -1}))
	assert.Len(t, lines, defaultHeight)
}

func TestRenderIsPure(t *testing.T) {
	v := View{Records: records("a", "b"), Selected: 0, Mode: ModeInsert, Width: 40, Height: 6}
	assert.Equal(t, Render(v), Render(v))
	assert.Equal(t, []string{"a", "b"}, descriptions(v.Records))
}
