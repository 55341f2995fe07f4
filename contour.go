package plotpy

import "strings"

// Colormaps lists the matplotlib colormaps selected by Contour.ColormapIndex.
var Colormaps = []string{"bwr", "RdBu", "hsv", "jet", "terrain", "pink", "Greys"}

// Contour generates filled and line contour plots.
//
// Configuration is plain fields, read afresh by every draw call, so a
// Contour may be drawn several times with different settings in between.
type Contour struct {
	// Colors sets explicit band colors. Empty means use the colormap.
	Colors []string

	// Levels sets explicit thresholds. Empty lets matplotlib choose.
	Levels []float64

	// ColormapIndex selects an entry of Colormaps (wrapping around).
	ColormapIndex int

	// ColormapName overrides ColormapIndex when set.
	ColormapName string

	// NumberFormat is the printf-style format of line labels; empty means %g.
	NumberFormat string

	NoLines    bool // no lines on top of the filled contour
	NoLabels   bool // no labels on lines
	NoInline   bool // labels are not drawn inline
	NoColorbar bool // no colorbar

	// ColorbarLabel is the caption of the colorbar.
	ColorbarLabel string

	// SelectedValue is the level drawn highlighted when SelectedColor is set.
	SelectedValue float64

	// SelectedColor is the color of the highlighted level. Empty disables it.
	SelectedColor string

	// SelectedLinewidth is the linewidth of the highlighted level.
	SelectedLinewidth float64

	buffer buffer
}

// NewContour returns a Contour with default settings and an empty buffer.
func NewContour() *Contour {
	return &Contour{SelectedLinewidth: 2}
}

// DrawFilled appends a filled contour of z over the grid (x, y). All three
// grids must have the same rectangular shape.
func (c *Contour) DrawFilled(x, y, z [][]float64) error {
	if err := c.writeData(x, y, z); err != nil {
		return err
	}
	c.buffer.writef("plt.contourf(x,y,z%s)\n", c.options())
	return nil
}

// Draw appends the complete contour figure: filled bands plus, depending on
// the configuration, lines, labels, a colorbar and the selected level.
func (c *Contour) Draw(x, y, z [][]float64) error {
	if err := c.writeData(x, y, z); err != nil {
		return err
	}
	opt := c.options()
	if len(c.Colors) == 0 {
		opt += c.cmapOption()
	}
	c.buffer.writef("cf=plt.contourf(x,y,z%s)\n", opt)
	if !c.NoLines {
		c.buffer.write("cl=plt.contour(x,y,z,colors=['k'],levels=cf.levels)\n")
		if !c.NoLabels {
			c.writeLabels("cl")
		}
	}
	if !c.NoColorbar {
		c.buffer.write("cb=plt.colorbar(cf)\n")
		if c.ColorbarLabel != "" {
			c.buffer.writef("cb.ax.set_ylabel(%s)\n", rawString(c.ColorbarLabel))
		}
	}
	c.writeSelected()
	return nil
}

// DrawLines appends contour lines of z over the grid (x, y), labeled unless
// NoLabels is set.
func (c *Contour) DrawLines(x, y, z [][]float64) error {
	if err := c.writeData(x, y, z); err != nil {
		return err
	}
	opt := c.options()
	if len(c.Colors) == 0 {
		opt += c.cmapOption()
	}
	c.buffer.writef("cl=plt.contour(x,y,z%s)\n", opt)
	if !c.NoLabels {
		c.writeLabels("cl")
	}
	c.writeSelected()
	return nil
}

// Buffer implements GraphMaker.
func (c *Contour) Buffer() string {
	return c.buffer.String()
}

func (c *Contour) writeData(x, y, z [][]float64) error {
	if err := checkGrid(x, y, z); err != nil {
		return err
	}
	writeMatrix(&c.buffer, "x", x)
	writeMatrix(&c.buffer, "y", y)
	writeMatrix(&c.buffer, "z", z)
	return nil
}

func (c *Contour) writeLabels(handle string) {
	inline := "True"
	if c.NoInline {
		inline = "False"
	}
	format := c.NumberFormat
	if format == "" {
		format = "%g"
	}
	c.buffer.writef("plt.clabel(%s,inline=%s,fmt=%s)\n", handle, inline, quote(format))
}

func (c *Contour) writeSelected() {
	if c.SelectedColor == "" {
		return
	}
	c.buffer.writef("plt.contour(x,y,z,levels=[%s],colors=[%s],linewidths=[%s])\n",
		num(c.SelectedValue), quote(c.SelectedColor), num(c.SelectedLinewidth))
}

// options returns the options clause for the drawing call. Empty fields
// contribute nothing.
func (c *Contour) options() string {
	var opt strings.Builder
	if len(c.Colors) > 0 {
		opt.WriteString(",colors=")
		opt.WriteString(strList(c.Colors))
	}
	if len(c.Levels) > 0 {
		opt.WriteString(",levels=")
		opt.WriteString(numList(c.Levels))
	}
	return opt.String()
}

func (c *Contour) cmapOption() string {
	name := c.ColormapName
	if name == "" {
		i := c.ColormapIndex % len(Colormaps)
		if i < 0 {
			i += len(Colormaps)
		}
		name = Colormaps[i]
	}
	return ",cmap=plt.get_cmap(" + quote(name) + ")"
}
