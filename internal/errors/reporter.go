package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorReporter handles consistent error formatting
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders a syntax error with rustc-like styling:
//
//	error[E0150]: expected SEMICOLON, found IDENTIFIER `y`
//	   --> main.lm:1:11
//	    │
//	  1 │ var x = 5 y
//	    │           ^
func (er *ErrorReporter) Format(err *SyntaxError) string {
	var result strings.Builder

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0150]: message
	result.WriteString(fmt.Sprintf("%s[%s]: %s\n", red("error"), err.Code(), err.Message))

	lineNumberWidth := er.getLineNumberWidth(err.Location.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	// Location line: --> filename:line:column
	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, err.Location.Line, err.Location.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	// Line before, when there is one
	if err.Location.Line > 1 && err.Location.Line-1 <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, err.Location.Line-1)),
			dim("│"),
			strings.TrimSuffix(er.lines[err.Location.Line-2], "\r")))
	}

	// Offending line and marker
	lineContent := er.lineContent(err)
	result.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", lineNumberWidth, err.Location.Line)),
		dim("│"),
		lineContent))
	result.WriteString(fmt.Sprintf("%s %s %s\n",
		indent, dim("│"), er.createMarker(err.Location.Column, err.Length)))

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func (er *ErrorReporter) lineContent(err *SyntaxError) string {
	if er.source != "" && err.Location.Line > 0 && err.Location.Line <= len(er.lines) {
		return strings.TrimSuffix(er.lines[err.Location.Line-1], "\r")
	}
	return err.SourceLine
}

// createMarker creates the underline marker for errors
func (er *ErrorReporter) createMarker(column, length int) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	return spaces + markerColor(strings.Repeat("^", length))
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
