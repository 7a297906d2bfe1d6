package ui

import "strings"

// Theme is the palette used by the one-shot commands.
type Theme struct {
	Muted, Success, Error, Stamp string
}

var current = classic()

func classic() Theme {
	return Theme{
		Muted: fgGray, Success: fgGreen,
		Error: fgRed, Stamp: fgYellow,
	}
}

// SetTheme switches palette; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Muted: fgGray, Success: "\033[92m",
			Error: fgRed, Stamp: "\033[95m", // bright magenta
		}
	case "mono":
		disableColor = true
		current = Theme{}
	default:
		current = classic()
	}
}

func Current() Theme { return current }

// Dim is used for secondary text such as hints.
func Dim(s string) string { return C(dim, s) }
