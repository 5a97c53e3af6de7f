// Package ui renders CLI output: status lines and result tables.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/satishbabariya/rowset-go/runtime/driver"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	nullColor    = color.New(color.Faint)
	headerColor  = color.New(color.Bold)
)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	successColor.Printf("✓ "+format+"\n", args...)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

// PrintInfo prints an informational message
func PrintInfo(format string, args ...interface{}) {
	infoColor.Printf(format+"\n", args...)
}

// PrintResult renders a raw result handle as an aligned table. NULL
// cells render dimmed.
func PrintResult(res driver.Result, columns []string) {
	nfields := res.Nfields()
	ntuples := res.Ntuples()

	widths := make([]int, nfields)
	for col := 0; col < nfields; col++ {
		if col < len(columns) {
			widths[col] = len(columns[col])
		}
		for row := 0; row < ntuples; row++ {
			if w := len(cellText(res.Cell(row, col))); w > widths[col] {
				widths[col] = w
			}
		}
	}

	if len(columns) > 0 {
		parts := make([]string, nfields)
		for col := 0; col < nfields; col++ {
			name := ""
			if col < len(columns) {
				name = columns[col]
			}
			parts[col] = pad(name, widths[col])
		}
		headerColor.Println(strings.Join(parts, " | "))

		rule := make([]string, nfields)
		for col := range rule {
			rule[col] = strings.Repeat("-", widths[col])
		}
		fmt.Println(strings.Join(rule, "-+-"))
	}

	for row := 0; row < ntuples; row++ {
		parts := make([]string, nfields)
		for col := 0; col < nfields; col++ {
			cell := res.Cell(row, col)
			text := pad(cellText(cell), widths[col])
			if cell.Null {
				text = nullColor.Sprint(text)
			}
			parts[col] = text
		}
		fmt.Println(strings.Join(parts, " | "))
	}
}

func cellText(cell driver.Cell) string {
	if cell.Null {
		return "NULL"
	}
	return string(cell.Value)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
