package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

var (
	styleOnce   sync.Once
	headerStyle lipgloss.Style
	dimStyle    lipgloss.Style
)

var colorDisabled bool

// DisableColor suppresses all ANSI styling regardless of terminal state.
func DisableColor() {
	colorDisabled = true
}

func styles() (lipgloss.Style, lipgloss.Style) {
	styleOnce.Do(func() {
		headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
		dimStyle = lipgloss.NewStyle().Faint(true)
	})
	return headerStyle, dimStyle
}

// Header styles a section header for interactive output.
func Header(text string) string {
	if !ansiEnabled() {
		return text
	}
	header, _ := styles()
	return header.Render(text)
}

// Dim styles secondary text for interactive output.
func Dim(text string) string {
	if !ansiEnabled() {
		return text
	}
	_, dim := styles()
	return dim.Render(text)
}

// HighlightID returns an ID with its unique prefix highlighted.
func HighlightID(id string, prefixLen int) string {
	if id == "" {
		return id
	}
	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}
	if !ansiEnabled() {
		return id
	}

	prefix := id[:prefixLen]
	suffix := id[prefixLen:]
	return ansiBold + ansiCyan + prefix + ansiReset + suffix
}

func ansiEnabled() bool {
	if colorDisabled {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
