package truthtable

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	trueCell  = color.New(color.FgGreen)
	falseCell = color.New(color.FgRed)
)

// Render writes the table as aligned text: one column per discovered name,
// then one result column per equation, headed by its infix form. Result
// cells are colored when w is a terminal.
func (t *Table) Render(w io.Writer) {
	colored := useColor(w)
	headers := make([]string, 0, len(t.names)+len(t.nodes))
	headers = append(headers, t.names...)
	for _, n := range t.nodes {
		headers = append(headers, n.String())
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	writeRow(w, headers, widths)
	rule := make([]string, len(headers))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	writeRow(w, rule, widths)
	for _, row := range t.Enumerate() {
		cells := make([]string, 0, len(headers))
		for i, v := range row.Assignment {
			cells = append(cells, pad(bit(v), widths[i]))
		}
		for j, r := range row.Results {
			cell := pad(bit(r), widths[len(row.Assignment)+j])
			if colored {
				if r {
					cell = trueCell.Sprint(cell)
				} else {
					cell = falseCell.Sprint(cell)
				}
			}
			cells = append(cells, cell)
		}
		fmt.Fprintln(w, strings.Join(cells, " | "))
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = pad(c, widths[i])
	}
	fmt.Fprintln(w, strings.Join(padded, " | "))
}

func pad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func useColor(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
