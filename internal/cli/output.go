package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/sms/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// colorEnabled is set from terminal detection but can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green wraps s for success messages.
func Green(s string) string { return colorize(colorGreen, s) }

// Red wraps s for error messages.
func Red(s string) string { return colorize(colorRed, s) }

// Gray wraps s for secondary text.
func Gray(s string) string { return colorize(colorGray, s) }

// Bold wraps s for headers.
func Bold(s string) string { return colorize(colorBold, s) }

// DefaultMaxNameWidth caps the name and course columns in listings.
const DefaultMaxNameWidth = 40

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{maxWidths: make(map[int]int)}
}

// SetMaxWidth caps the visible width of a column; longer cells are truncated.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
// The last column is not padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(t.colWidths)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			}
			parts = append(parts, col)
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// StudentTable builds a table of students with a header row.
func StudentTable(students []model.Student) *Table {
	t := NewTable()
	t.SetMaxWidth(1, DefaultMaxNameWidth)
	t.SetMaxWidth(3, DefaultMaxNameWidth)
	t.AddRow(Bold("ROLL"), Bold("NAME"), Bold("AGE"), Bold("COURSE"))
	for _, s := range students {
		t.AddRow(s.RollNumber, s.Name, strconv.Itoa(s.Age), s.Course)
	}
	return t
}

// WriteStudent writes s as a labeled block followed by a separator line.
func WriteStudent(w io.Writer, s model.Student) {
	fmt.Fprintf(w, "Roll No  : %s\n", s.RollNumber)
	fmt.Fprintf(w, "Name     : %s\n", s.Name)
	fmt.Fprintf(w, "Age      : %d\n", s.Age)
	fmt.Fprintf(w, "Course   : %s\n", s.Course)
	fmt.Fprintln(w, Gray("---------------------------"))
}

// Truncate returns s cut to maxWidth visible characters, ending in "..."
// when it was shortened. ANSI escape codes do not count toward the width,
// and a reset is appended if any were kept.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	ellipsis := "..."
	limit := maxWidth - len(ellipsis)
	if limit < 0 {
		limit = maxWidth
		ellipsis = ""
	}

	var b strings.Builder
	visible := 0
	inEscape := false
	hasAnsi := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
			hasAnsi = true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
		case visible < limit:
			b.WriteRune(r)
			visible++
		}
	}

	b.WriteString(ellipsis)
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the number of runes in s outside ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}
