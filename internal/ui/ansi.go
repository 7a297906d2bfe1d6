package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	reset = "\033[0m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func decorated() bool {
	return !disableColor && (forceColor || isTTY())
}

// C wraps s in color when stdout is a terminal (or colour is forced).
func C(color, s string) string {
	if color == "" || !decorated() {
		return s
	}
	return color + s + reset
}

// mark prefixes msg with sym only when output is decorated, so piped
// output stays plain.
func mark(sym, msg string) string {
	if !decorated() {
		return msg
	}
	return sym + " " + msg
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(current.Success, mark(symCheck, msg))) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(current.Error, mark(symCross, msg))) }
