package figfile

import "github.com/hashicorp/hcl/v2"

// File is the decoded content of a figure description file.
type File struct {
	Figure   *Figure    `hcl:"figure,block"`
	Contours []*Contour `hcl:"contour,block"`
}

// Figure holds figure-wide directives.
type Figure struct {
	Output   string    `hcl:"output,optional"`
	Equal    bool      `hcl:"equal,optional"`
	HideAxes bool      `hcl:"hide_axes,optional"`
	Range    []float64 `hcl:"range,optional"`
	XLabel   string    `hcl:"xlabel,optional"`
	YLabel   string    `hcl:"ylabel,optional"`
	Grid     bool      `hcl:"grid,optional"`
	Title    string    `hcl:"title,optional"`
	XNTicks  *int      `hcl:"xnticks,optional"`
	YNTicks  *int      `hcl:"ynticks,optional"`
	HGap     *float64  `hcl:"hgap,optional"`
	VGap     *float64  `hcl:"vgap,optional"`
}

// Contour describes one contour entity and its data.
type Contour struct {
	Name string `hcl:"name,label"`

	// Kind is "full" (default), "filled" or "lines".
	Kind string `hcl:"kind,optional"`

	Colors            []string  `hcl:"colors,optional"`
	Levels            []float64 `hcl:"levels,optional"`
	Colormap          int       `hcl:"colormap,optional"`
	ColormapName      string    `hcl:"colormap_name,optional"`
	NumberFormat      string    `hcl:"number_format,optional"`
	NoLines           bool      `hcl:"no_lines,optional"`
	NoLabels          bool      `hcl:"no_labels,optional"`
	NoInline          bool      `hcl:"no_inline,optional"`
	NoColorbar        bool      `hcl:"no_colorbar,optional"`
	ColorbarLabel     string    `hcl:"colorbar_label,optional"`
	Selected          *float64  `hcl:"selected,optional"`
	SelectedColor     string    `hcl:"selected_color,optional"`
	SelectedLinewidth *float64  `hcl:"selected_linewidth,optional"`

	// Subplot is {rows, cols, index}; the panel is activated before drawing.
	Subplot []int `hcl:"subplot,optional"`

	// Axis directives for the contour's own panel, written right after it.
	Equal bool      `hcl:"equal,optional"`
	Range []float64 `hcl:"range,optional"`
	Title string    `hcl:"title,optional"`

	Grid *Grid          `hcl:"grid,block"`
	X    [][]float64    `hcl:"x,optional"`
	Y    [][]float64    `hcl:"y,optional"`
	Z    hcl.Expression `hcl:"z"`
}

// Grid generates a regular mesh of NX columns by NY rows.
type Grid struct {
	XMin float64 `hcl:"xmin"`
	XMax float64 `hcl:"xmax"`
	NX   int     `hcl:"nx"`
	YMin float64 `hcl:"ymin"`
	YMax float64 `hcl:"ymax"`
	NY   int     `hcl:"ny"`
}
