package matvec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatOptions configures the fixed-point rendering of matrices and
// vectors.
//
// Fields:
//   - Open / Close  — delimiters wrapping each rendered row.
//   - Separator     — placed (plus one space) between entries.
//   - Offset        — spaces prepended to every output line.
//   - Precision     — digits after the decimal point.
//
// Entries are right-aligned on a shared field width derived from the widest
// integer part in the container, so columns line up visually.
type FormatOptions struct {
	Open      string
	Close     string
	Separator string
	Offset    int
	Precision int
}

// DefaultFormatOptions returns the canonical rendering configuration:
// square brackets, comma separator, no offset, precision 5.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Open: "[", Close: "]", Separator: ",", Offset: 0, Precision: 5}
}

// Format renders the matrix with the given options, one row per line.
func (A *Matrix) Format(opts FormatOptions) string {
	width := fieldWidth(A.data, opts.Precision)
	sep := opts.Separator + " "
	pad := strings.Repeat(" ", opts.Offset)

	var b strings.Builder
	for i := 0; i < A.rows; i++ {
		if i == 0 {
			b.WriteString(pad + opts.Open)
		} else {
			b.WriteString(pad + " ")
		}
		b.WriteString(opts.Open)
		for j := 0; j < A.cols; j++ {
			if j > 0 {
				b.WriteString(sep)
			}
			b.WriteString(formatEntry(A.data[i*A.cols+j], width, opts.Precision))
		}
		b.WriteString(opts.Close)
		if i == A.rows-1 {
			b.WriteString(opts.Close)
		} else {
			b.WriteString(opts.Separator + "\n")
		}
	}

	return b.String()
}

// String renders the matrix with DefaultFormatOptions.
func (A *Matrix) String() string { return A.Format(DefaultFormatOptions()) }

// Format renders the vector with the given options: row vectors on a single
// line, column vectors one entry per line.
func (v *Vector) Format(opts FormatOptions) string {
	width := fieldWidth(v.data, opts.Precision)
	pad := strings.Repeat(" ", opts.Offset)

	if v.orient == Row {
		entries := make([]string, len(v.data))
		for i, x := range v.data {
			entries[i] = formatEntry(x, width, opts.Precision)
		}

		return pad + opts.Open + strings.Join(entries, opts.Separator+" ") + opts.Close
	}

	lines := make([]string, len(v.data))
	for i, x := range v.data {
		lines[i] = pad + opts.Open + formatEntry(x, width, opts.Precision) + opts.Close
	}

	return strings.Join(lines, "\n")
}

// String renders the vector with DefaultFormatOptions.
func (v *Vector) String() string { return v.Format(DefaultFormatOptions()) }

// fieldWidth returns the shared field width: the widest integer part
// (sign included) plus the decimal point plus precision digits.
func fieldWidth(data []float64, precision int) int {
	intWidth := 1
	for _, x := range data {
		w := len(strconv.FormatFloat(math.Floor(x), 'f', 0, 64))
		if w > intWidth {
			intWidth = w
		}
	}

	return intWidth + 1 + precision
}

// formatEntry renders one entry right-aligned on the shared width.
func formatEntry(x float64, width, precision int) string {
	return fmt.Sprintf("%*.*f", width, precision, x)
}
