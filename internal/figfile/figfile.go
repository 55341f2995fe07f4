package figfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/gogpu/plotpy"
)

// Load reads and decodes the figure file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("figfile: read %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes figure file source. filename is used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("figfile: parse %s: %w", filename, diags)
	}

	var file File
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("figfile: decode %s: %w", filename, diags)
	}
	for _, c := range file.Contours {
		if missing(c.Z) {
			return nil, fmt.Errorf("figfile: decode %s: contour %q: missing required argument \"z\"", filename, c.Name)
		}
	}

	plotpy.Logger().Debug("figfile: loaded", "file", filename, "contours", len(file.Contours))
	return &file, nil
}

// missing reports whether expr stands for an absent attribute. gohcl fills
// absent hcl.Expression fields with a static null.
func missing(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	v, diags := expr.Value(nil)
	return !diags.HasErrors() && v.IsNull()
}

// Output returns the output path named by the figure block, or "".
func (f *File) Output() string {
	if f.Figure == nil {
		return ""
	}
	return f.Figure.Output
}

// Build draws every contour and applies the figure directives to a new
// plot created with opts.
func (f *File) Build(opts ...plotpy.Option) (*plotpy.Plot, error) {
	plt := plotpy.NewPlot(opts...)
	for _, c := range f.Contours {
		if err := c.addTo(plt); err != nil {
			return nil, fmt.Errorf("figfile: contour %q: %w", c.Name, err)
		}
	}
	if f.Figure != nil {
		if err := f.Figure.applyTo(plt); err != nil {
			return nil, fmt.Errorf("figfile: figure: %w", err)
		}
	}
	return plt, nil
}

func (c *Contour) addTo(plt *plotpy.Plot) error {
	x, y, z, err := c.data()
	if err != nil {
		return err
	}

	if len(c.Subplot) > 0 {
		if len(c.Subplot) != 3 {
			return fmt.Errorf("subplot needs {rows, cols, index}, got %d values", len(c.Subplot))
		}
		plt.Subplot(c.Subplot[0], c.Subplot[1], c.Subplot[2])
	}

	contour := c.entity()
	switch c.Kind {
	case "", "full":
		err = contour.Draw(x, y, z)
	case "filled":
		err = contour.DrawFilled(x, y, z)
	case "lines":
		err = contour.DrawLines(x, y, z)
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}
	if err != nil {
		return err
	}
	plt.Add(contour)
	return c.applyAxes(plt)
}

// applyAxes sets the axis directives of the panel the contour was drawn in.
func (c *Contour) applyAxes(plt *plotpy.Plot) error {
	if c.Equal {
		plt.Equal()
	}
	if c.Range != nil {
		if len(c.Range) != 4 {
			return fmt.Errorf("range needs {xmin, xmax, ymin, ymax}, got %d values", len(c.Range))
		}
		plt.RangeFromArray([4]float64(c.Range))
	}
	if c.Title != "" {
		plt.Title(c.Title)
	}
	return nil
}

func (c *Contour) entity() *plotpy.Contour {
	contour := plotpy.NewContour()
	contour.Colors = c.Colors
	contour.Levels = c.Levels
	contour.ColormapIndex = c.Colormap
	contour.ColormapName = c.ColormapName
	contour.NumberFormat = c.NumberFormat
	contour.NoLines = c.NoLines
	contour.NoLabels = c.NoLabels
	contour.NoInline = c.NoInline
	contour.NoColorbar = c.NoColorbar
	contour.ColorbarLabel = c.ColorbarLabel
	contour.SelectedColor = c.SelectedColor
	if c.Selected != nil {
		contour.SelectedValue = *c.Selected
	}
	if c.SelectedLinewidth != nil {
		contour.SelectedLinewidth = *c.SelectedLinewidth
	}
	return contour
}

// data returns the grids of the contour, generating x and y from the grid
// block when there is one.
func (c *Contour) data() (x, y, z [][]float64, err error) {
	if c.Grid != nil {
		if c.X != nil || c.Y != nil {
			return nil, nil, nil, errors.New("x and y cannot be combined with a grid block")
		}
		x, y, err = meshgrid(c.Grid)
		if err != nil {
			return nil, nil, nil, err
		}
		z, err = evalOnGrid(c.Z, x, y)
		return x, y, z, err
	}

	if c.X == nil || c.Y == nil {
		return nil, nil, nil, errors.New("x and y are required without a grid block")
	}
	z, err = evalMatrix(c.Z)
	return c.X, c.Y, z, err
}

func (fig *Figure) applyTo(plt *plotpy.Plot) error {
	if fig.HGap != nil && fig.VGap != nil {
		plt.SubplotGap(*fig.HGap, *fig.VGap)
	} else if fig.HGap != nil {
		plt.SubplotHorizontalGap(*fig.HGap)
	} else if fig.VGap != nil {
		plt.SubplotVerticalGap(*fig.VGap)
	}
	if fig.Equal {
		plt.Equal()
	}
	if fig.Range != nil {
		if len(fig.Range) != 4 {
			return fmt.Errorf("range needs {xmin, xmax, ymin, ymax}, got %d values", len(fig.Range))
		}
		plt.RangeFromArray([4]float64(fig.Range))
	}
	if fig.XNTicks != nil {
		plt.XNTicks(*fig.XNTicks)
	}
	if fig.YNTicks != nil {
		plt.YNTicks(*fig.YNTicks)
	}
	switch {
	case fig.Grid:
		plt.GridAndLabels(fig.XLabel, fig.YLabel)
	default:
		if fig.XLabel != "" {
			plt.XLabel(fig.XLabel)
		}
		if fig.YLabel != "" {
			plt.YLabel(fig.YLabel)
		}
	}
	if fig.Title != "" {
		plt.Title(fig.Title)
	}
	if fig.HideAxes {
		plt.HideAxes()
	}
	return nil
}
