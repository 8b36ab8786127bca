package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const defaultPrecision = 2

// Format implements fmt.Formatter.
//
// %v and %s print a boxed grid with columns aligned on a common width and
// two decimals; a precision such as %.4v overrides the decimals.
func (m *Matrix) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
	default:
		fmt.Fprintf(f, "%%!%c(matrix=%dx%d)", verb, m.rows, m.cols)
		return
	}

	prec, ok := f.Precision()
	if !ok {
		prec = defaultPrecision
	}
	_, _ = io.WriteString(f, m.render(prec))
}

// String renders m with the default precision.
func (m *Matrix) String() string {
	return m.render(defaultPrecision)
}

func (m *Matrix) render(prec int) string {
	cells := make([]string, 0, m.Len())
	width := 0
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			s := strconv.FormatFloat(float64(m.At(y, x)), 'f', prec, 32)
			if !strings.HasPrefix(s, "-") {
				s = " " + s
			}
			width = max(width, len(s))
			cells = append(cells, s)
		}
	}

	lineLen := m.cols*(width+2) + 1
	border := " " + strings.Repeat("-", lineLen) + " \n"

	var b strings.Builder
	b.Grow((lineLen + 4) * (m.rows + 2))
	b.WriteString(border)
	for y := 0; y < m.rows; y++ {
		b.WriteString("| ")
		for x := 0; x < m.cols; x++ {
			s := cells[y*m.cols+x]
			b.WriteString(strings.Repeat(" ", width-len(s)))
			b.WriteString(s)
			b.WriteString("  ")
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
