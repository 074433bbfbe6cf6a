// Package console renders CLI output: located errors with source context,
// status messages and tables. Styling is applied only when stdout is a
// terminal.
package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ErrorPosition is a 1-based location in a source file. A zero Line means
// the location is unknown.
type ErrorPosition struct {
	File   string
	Line   int
	Column int
}

// CompilerError is a located diagnostic
type CompilerError struct {
	Position ErrorPosition
	Type     string // "error", "warning", "info"
	Message  string
	Context  []string // source lines shown under the message
	// ContextStart is the line number of Context[0]. When zero the context is
	// assumed to be centered on Position.Line.
	ContextStart int
	Hint         string
}

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	filePathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2"))

	highlightStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FF5555")).
			Foreground(lipgloss.Color("#282A36"))

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#50FA7B"))
)

var severities = map[string]lipgloss.Style{
	"error":   errorStyle,
	"warning": warningStyle,
	"info":    infoStyle,
}

func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// ToRelativePath shortens an absolute path to one relative to the working
// directory. Other paths are returned unchanged.
func ToRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}

// FormatLocation renders file:line:column in the form editors recognize. The
// column is omitted when unknown and the line when that is unknown too.
func FormatLocation(pos ErrorPosition) string {
	loc := ToRelativePath(pos.File)
	if pos.Line > 0 {
		loc += ":" + strconv.Itoa(pos.Line)
		if pos.Column > 0 {
			loc += ":" + strconv.Itoa(pos.Column)
		}
	}
	return loc
}

// FormatError renders err in the style of a compiler diagnostic
func FormatError(err CompilerError) string {
	var out strings.Builder

	severity := err.Type
	style, ok := severities[severity]
	if !ok {
		severity, style = "error", errorStyle
	}

	if err.Position.File != "" {
		out.WriteString(applyStyle(filePathStyle, FormatLocation(err.Position)+":"))
		out.WriteString(" ")
	}
	out.WriteString(applyStyle(style, severity+":"))
	out.WriteString(" ")
	out.WriteString(err.Message)
	out.WriteString("\n")

	if len(err.Context) > 0 && err.Position.Line > 0 {
		out.WriteString(renderContext(err))
	}

	if err.Hint != "" {
		out.WriteString("\n")
		out.WriteString(applyStyle(hintStyle, "hint: "))
		out.WriteString(err.Hint)
		out.WriteString("\n")
	}
	return out.String()
}

func renderContext(err CompilerError) string {
	var out strings.Builder

	first := err.ContextStart
	if first == 0 {
		first = err.Position.Line - len(err.Context)/2
	}
	width := len(strconv.Itoa(first + len(err.Context) - 1))

	for i, line := range err.Context {
		n := first + i
		if n < 1 {
			continue
		}
		out.WriteString(applyStyle(lineNumberStyle, fmt.Sprintf("%*d", width, n)))
		out.WriteString(" | ")

		if n != err.Position.Line {
			out.WriteString(applyStyle(sourceStyle, line))
			out.WriteString("\n")
			continue
		}

		col := err.Position.Column
		if col > 0 && col <= len(line) {
			out.WriteString(applyStyle(sourceStyle, line[:col-1]))
			out.WriteString(applyStyle(highlightStyle, line[col-1:col]))
			out.WriteString(applyStyle(sourceStyle, line[col:]))
		} else {
			out.WriteString(applyStyle(highlightStyle, line))
		}
		out.WriteString("\n")

		if col > 0 {
			out.WriteString(strings.Repeat(" ", width+3+col-1))
			out.WriteString(applyStyle(errorStyle, "^"))
			out.WriteString("\n")
		}
	}
	return out.String()
}

// SourceContext returns up to radius lines either side of line from src,
// and the line number of the first one
func SourceContext(src []byte, line, radius int) ([]string, int) {
	if line < 1 || len(src) == 0 {
		return nil, 0
	}
	lines := strings.Split(strings.TrimRight(string(src), "\n"), "\n")
	if line > len(lines) {
		line = len(lines)
	}
	start := max(1, line-radius)
	end := min(len(lines), line+radius)
	ctx := make([]string, 0, end-start+1)
	for _, l := range lines[start-1 : end] {
		ctx = append(ctx, strings.TrimRight(l, "\r"))
	}
	return ctx, start
}
