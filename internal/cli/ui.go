package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// printKeyValue prints a labeled value in an aligned column.
func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(fmt.Sprint(value)))
}

// printFile prints a written output path.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printStats prints vertex, edge and face counts on one dim line.
func printStats(w io.Writer, vertices, edges, faces int) {
	line := fmt.Sprintf("%d vertices · %d edges", vertices, edges)
	if faces >= 0 {
		line += fmt.Sprintf(" · %d faces", faces)
	}
	fmt.Fprintln(w, "  "+styleDim.Render(line))
}
