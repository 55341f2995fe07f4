package plotpy

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// num formats v as the shortest Python literal that round-trips.
func num(v float64) string {
	switch {
	case math.IsNaN(v):
		return "np.nan"
	case math.IsInf(v, 1):
		return "np.inf"
	case math.IsInf(v, -1):
		return "-np.inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// numList formats values as a bare Python list, e.g. [0.5,1,2].
func numList(values []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(num(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// strList formats values as a list of quoted Python strings.
func strList(values []string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(quote(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// quote returns s as a plain single-quoted Python string.
func quote(s string) string {
	s = norm.NFC.String(s)
	if strings.ContainsAny(s, "'\\\n\r\x00") {
		return strconv.Quote(s)
	}
	return "'" + s + "'"
}

// rawString returns s as a Python raw string so that TeX markup such as
// $\alpha$ reaches matplotlib untouched. Text that cannot be expressed as a
// raw literal falls back to an escaped one.
func rawString(s string) string {
	s = norm.NFC.String(s)
	if strings.ContainsAny(s, "\n\r\x00") || strings.HasSuffix(s, `\`) {
		return strconv.Quote(s)
	}
	switch {
	case !strings.Contains(s, "'"):
		return "r'" + s + "'"
	case !strings.Contains(s, `"`):
		return `r"` + s + `"`
	}
	return strconv.Quote(s)
}

// writeVector appends name=[...] to b.
func writeVector(b *buffer, name string, values []float64) {
	b.writef("%s=%s\n", name, numList(values))
}

// writeMatrix appends name=np.array([[...],...],dtype=float) to b. Each row
// is written on its own, so ragged input still produces valid text; shape
// checks belong to the caller.
func writeMatrix(b *buffer, name string, rows [][]float64) {
	b.write(name)
	b.write("=np.array([")
	for i, row := range rows {
		if i > 0 {
			b.write(",")
		}
		b.write(numList(row))
	}
	b.write("],dtype=float)\n")
}

// checkGrid verifies that every grid is non-empty and has the shape of the
// first one.
func checkGrid(grids ...[][]float64) error {
	if len(grids) == 0 || len(grids[0]) == 0 || len(grids[0][0]) == 0 {
		return ErrEmptyGrid
	}
	rows, cols := len(grids[0]), len(grids[0][0])
	for _, g := range grids {
		if len(g) != rows {
			return ErrGridShape
		}
		for _, row := range g {
			if len(row) != cols {
				return ErrGridShape
			}
		}
	}
	return nil
}
