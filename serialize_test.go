package plotpy

import (
	"errors"
	"math"
	"testing"
)

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{-1, "-1"},
		{0, "0"},
		{0.1, "0.1"},
		{2.5, "2.5"},
		{1e21, "1e+21"},
		{1e-7, "1e-07"},
		{math.NaN(), "np.nan"},
		{math.Inf(1), "np.inf"},
		{math.Inf(-1), "-np.inf"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLists(t *testing.T) {
	if got, want := numList([]float64{0.5, 1, -2}), "[0.5,1,-2]"; got != want {
		t.Errorf("numList() = %q, want %q", got, want)
	}
	if got, want := numList(nil), "[]"; got != want {
		t.Errorf("numList(nil) = %q, want %q", got, want)
	}
	if got, want := strList([]string{"red", "#00ff00"}), "['red','#00ff00']"; got != want {
		t.Errorf("strList() = %q, want %q", got, want)
	}
	if got, want := strList([]string{"it's"}), `["it's"]`; got != want {
		t.Errorf("strList() = %q, want %q", got, want)
	}
	if got, want := strList([]string{"a\x00b"}), `["a\x00b"]`; got != want {
		t.Errorf("strList() = %q, want %q", got, want)
	}
}

func TestRawString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "x-label", "r'x-label'"},
		{"tex", `$\alpha$`, `r'$\alpha$'`},
		{"single quote", "it's", `r"it's"`},
		{"both quotes", `a'b"c`, `"a'b\"c"`},
		{"newline", "a\nb", `"a\nb"`},
		{"trailing backslash", `C:\`, `"C:\\"`},
		{"nul", "a\x00b", `"a\x00b"`},
		{"normalized", "e\u0301", "r'\u00e9'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rawString(tt.in); got != tt.want {
				t.Errorf("rawString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteVector(t *testing.T) {
	var b buffer
	writeVector(&b, "v", []float64{1, 2.5, 3})
	if got, want := b.String(), "v=[1,2.5,3]\n"; got != want {
		t.Errorf("writeVector() = %q, want %q", got, want)
	}
}

func TestWriteMatrix(t *testing.T) {
	var b buffer
	writeMatrix(&b, "x", [][]float64{{1, 2}, {3, 4}})
	if got, want := b.String(), "x=np.array([[1,2],[3,4]],dtype=float)\n"; got != want {
		t.Errorf("writeMatrix() = %q, want %q", got, want)
	}
}

func TestWriteMatrixRagged(t *testing.T) {
	var b buffer
	writeMatrix(&b, "m", [][]float64{{1}, {2, 3}})
	if got, want := b.String(), "m=np.array([[1],[2,3]],dtype=float)\n"; got != want {
		t.Errorf("writeMatrix() = %q, want %q", got, want)
	}
}

func TestCheckGrid(t *testing.T) {
	square := [][]float64{{1, 2}, {3, 4}}
	tests := []struct {
		name  string
		grids [][][]float64
		want  error
	}{
		{"equal", [][][]float64{square, square, square}, nil},
		{"no rows", [][][]float64{{}, square, square}, ErrEmptyGrid},
		{"no columns", [][][]float64{{{}}, square, square}, ErrEmptyGrid},
		{"row count", [][][]float64{square, {{1, 2}}, square}, ErrGridShape},
		{"ragged", [][][]float64{square, square, {{1, 2}, {3}}}, ErrGridShape},
		{"ragged first", [][][]float64{{{1, 2}, {3}}, {{1, 2}, {3}}, {{1, 2}, {3}}}, ErrGridShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkGrid(tt.grids...); !errors.Is(err, tt.want) {
				t.Errorf("checkGrid() = %v, want %v", err, tt.want)
			}
		})
	}
}
