// Package ui holds the pterm styling helpers shared by stride's commands
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// DarkTheme switches the helpers to the light variants of each colour so
// they stay legible on dark terminals.
var DarkTheme = true

type palette struct {
	dark  func(a ...any) string
	light func(a ...any) string
}

func (p palette) paint(a any) string {
	if DarkTheme {
		return p.dark(a)
	}

	return p.light(a)
}

var (
	green   = palette{pterm.LightGreen, pterm.Green}
	cyan    = palette{pterm.LightCyan, pterm.Cyan}
	magenta = palette{pterm.LightMagenta, pterm.Magenta}
	yellow  = palette{pterm.LightYellow, pterm.Yellow}
	red     = palette{pterm.LightRed, pterm.Red}
	white   = palette{pterm.LightWhite, pterm.Black}
)

func Green(a any) string { return green.paint(a) }

func Cyan(a any) string { return cyan.paint(a) }

func Magenta(a any) string { return magenta.paint(a) }

func Yellow(a any) string { return yellow.paint(a) }

func Red(a any) string { return red.paint(a) }

func Highlight(a any) string { return white.paint(a) }

// Segment colours a segment label by its type name (warmup, run, walk,
// cooldown).
func Segment(kind string, a any) string {
	switch kind {
	case "run":
		return Green(a)
	case "walk":
		return Cyan(a)
	case "warmup", "cooldown":
		return Magenta(a)
	}

	return fmt.Sprint(a)
}

// PrintTable renders data as a boxed table. The first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
