package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/mdwexpr/core/error"
	"github.com/msto63/mdwexpr/expr"
	mdwparser "github.com/msto63/mdwexpr/expr/parser"
)

// Color palette
var (
	colorError   = lipgloss.Color("#EF4444") // Red
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorAccent  = lipgloss.Color("#06B6D4") // Cyan
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	locationStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	gutterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

// renderDiagnostic formats err against source with the offending line and
// a caret under the failing column:
//
//	error[EXPR_SYNTAX]: failed to parse expression
//	  --> line 1, column 4
//	   |
//	 1 | 1 +
//	   |    ^ expected expression but found end of input
func renderDiagnostic(source string, err error) string {
	var b strings.Builder

	code := mdwerror.GetCode(err)
	headline := err.Error()
	detail := ""
	mdwErr, isMdw := err.(*mdwerror.Error)
	if isMdw {
		headline = mdwErr.Message()
	}
	if pe, ok := mdwparser.AsParseError(err); ok {
		detail = pe.Message
	} else if isMdw {
		if found, ok := mdwErr.Detail("found"); ok {
			detail = fmt.Sprintf("unexpected %v", found)
		}
	}

	b.WriteString(errorStyle.Render(fmt.Sprintf("error[%s]:", code)))
	b.WriteString(" " + headline + "\n")

	_, line, column, ok := expr.Position(err)
	if !ok {
		if detail != "" {
			b.WriteString("  " + detail + "\n")
		}
		return b.String()
	}

	lines := strings.Split(source, "\n")
	text := ""
	if line-1 < len(lines) {
		text = strings.TrimRight(lines[line-1], "\r")
	}
	number := fmt.Sprintf("%d", line)
	pad := strings.Repeat(" ", len(number))

	if detail == "" {
		detail = "unexpected input"
	}

	b.WriteString(locationStyle.Render(fmt.Sprintf("%s--> line %d, column %d", pad, line, column)) + "\n")
	b.WriteString(gutterStyle.Render(pad+" |") + "\n")
	b.WriteString(gutterStyle.Render(number+" |") + " " + text + "\n")
	b.WriteString(gutterStyle.Render(pad+" |") + " " + caretIndent(text, column) + caretStyle.Render("^ "+detail) + "\n")

	return b.String()
}

// caretIndent returns whitespace reaching the given 1-based column of text,
// keeping tabs so the caret lines up
func caretIndent(text string, column int) string {
	var b strings.Builder
	i := 1
	for _, r := range text {
		if i >= column {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		i++
	}
	for ; i < column; i++ {
		b.WriteRune(' ')
	}
	return b.String()
}
