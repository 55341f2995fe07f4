package plotpy

import (
	"github.com/gogpu/plotpy/renderer"
	"github.com/gogpu/plotpy/renderer/python"
)

// DefaultScriptHeader is placed before the accumulated commands in every
// script written by Plot.
const DefaultScriptHeader = `import matplotlib
matplotlib.use('Agg')
import matplotlib.pyplot as plt
import matplotlib.ticker as tck
import numpy as np
EXTRA_ARTISTS = []
`

// Plot composes graph entities and figure directives into one script and
// saves it through a renderer.
//
// Directives are appended in call order; later ones override earlier ones
// when the script runs. A Plot is not safe for concurrent use.
//
//	plt := plotpy.NewPlot()
//	plt.Equal()
//	plt.Range(-1, 1, 0, 2)
//	plt.GridAndLabels("x-label", "y-label")
type Plot struct {
	buffer   buffer
	renderer renderer.Renderer
	header   string
}

// NewPlot creates a Plot with an empty buffer. Without options the Python
// renderer is used.
func NewPlot(opts ...Option) *Plot {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = python.New()
	}
	return &Plot{
		renderer: o.renderer,
		header:   o.header,
	}
}

// Add appends a copy of the entity's current buffer. Later draw calls on
// the entity do not affect what was already added.
func (p *Plot) Add(g GraphMaker) {
	p.buffer.write(g.Buffer())
}

// Buffer returns the commands accumulated so far, without the header.
// It also makes a Plot usable as a GraphMaker.
func (p *Plot) Buffer() string {
	return p.buffer.String()
}

// Script returns the header followed by the accumulated commands.
func (p *Plot) Script() string {
	return p.header + p.buffer.String()
}

// Subplot activates panel index of a row x col grid. Indices start at one.
func (p *Plot) Subplot(row, col, index int) {
	p.buffer.writef("plt.subplot(%d,%d,%d)\n", row, col, index)
}

// SubplotHorizontalGap sets the horizontal gap between subplots.
func (p *Plot) SubplotHorizontalGap(value float64) {
	p.buffer.writef("plt.subplots_adjust(hspace=%s)\n", num(value))
}

// SubplotVerticalGap sets the vertical gap between subplots.
func (p *Plot) SubplotVerticalGap(value float64) {
	p.buffer.writef("plt.subplots_adjust(wspace=%s)\n", num(value))
}

// SubplotGap sets both gaps between subplots.
func (p *Plot) SubplotGap(horizontal, vertical float64) {
	p.buffer.writef("plt.subplots_adjust(hspace=%s,wspace=%s)\n", num(horizontal), num(vertical))
}

// Equal sets the same scale for both axes.
func (p *Plot) Equal() {
	p.buffer.write("plt.axis('equal')\n")
}

// HideAxes hides the axes.
func (p *Plot) HideAxes() {
	p.buffer.write("plt.axis('off')\n")
}

// Range sets the axes limits.
func (p *Plot) Range(xmin, xmax, ymin, ymax float64) {
	p.buffer.writef("plt.axis([%s,%s,%s,%s])\n", num(xmin), num(xmax), num(ymin), num(ymax))
}

// RangeFromArray sets the axes limits from {xmin, xmax, ymin, ymax}.
func (p *Plot) RangeFromArray(lims [4]float64) {
	p.Range(lims[0], lims[1], lims[2], lims[3])
}

// Xmin sets the minimum x, keeping the other limits.
func (p *Plot) Xmin(xmin float64) {
	p.buffer.writef("plt.axis([%s,plt.axis()[1],plt.axis()[2],plt.axis()[3]])\n", num(xmin))
}

// Xmax sets the maximum x, keeping the other limits.
func (p *Plot) Xmax(xmax float64) {
	p.buffer.writef("plt.axis([plt.axis()[0],%s,plt.axis()[2],plt.axis()[3]])\n", num(xmax))
}

// Ymin sets the minimum y, keeping the other limits.
func (p *Plot) Ymin(ymin float64) {
	p.buffer.writef("plt.axis([plt.axis()[0],plt.axis()[1],%s,plt.axis()[3]])\n", num(ymin))
}

// Ymax sets the maximum y, keeping the other limits.
func (p *Plot) Ymax(ymax float64) {
	p.buffer.writef("plt.axis([plt.axis()[0],plt.axis()[1],plt.axis()[2],%s])\n", num(ymax))
}

// XRange sets the x limits.
func (p *Plot) XRange(xmin, xmax float64) {
	p.buffer.writef("plt.axis([%s,%s,plt.axis()[2],plt.axis()[3]])\n", num(xmin), num(xmax))
}

// YRange sets the y limits.
func (p *Plot) YRange(ymin, ymax float64) {
	p.buffer.writef("plt.axis([plt.axis()[0],plt.axis()[1],%s,%s])\n", num(ymin), num(ymax))
}

// XNTicks sets the maximum number of ticks along x. Zero removes them.
func (p *Plot) XNTicks(n int) {
	p.nticks("x", n)
}

// YNTicks sets the maximum number of ticks along y. Zero removes them.
func (p *Plot) YNTicks(n int) {
	p.nticks("y", n)
}

func (p *Plot) nticks(axis string, n int) {
	if n == 0 {
		p.buffer.writef("plt.gca().get_%saxis().set_ticks([])\n", axis)
		return
	}
	p.buffer.writef("plt.gca().get_%saxis().set_major_locator(tck.MaxNLocator(%d))\n", axis, n)
}

// XLabel sets the x-axis label.
func (p *Plot) XLabel(label string) {
	p.buffer.writef("plt.xlabel(%s)\n", rawString(label))
}

// YLabel sets the y-axis label.
func (p *Plot) YLabel(label string) {
	p.buffer.writef("plt.ylabel(%s)\n", rawString(label))
}

// Labels sets both axis labels.
func (p *Plot) Labels(xlabel, ylabel string) {
	p.XLabel(xlabel)
	p.YLabel(ylabel)
}

// GridAndLabels draws a dashed grid and sets both axis labels.
func (p *Plot) GridAndLabels(xlabel, ylabel string) {
	p.buffer.write("plt.grid(linestyle='--',color='grey',zorder=-1000)\n")
	p.Labels(xlabel, ylabel)
}

// Title sets the title of the current axes.
func (p *Plot) Title(title string) {
	p.buffer.writef("plt.title(%s)\n", rawString(title))
}

// ClearCurrentFigure clears the current figure.
func (p *Plot) ClearCurrentFigure() {
	p.buffer.write("plt.clf()\n")
}
