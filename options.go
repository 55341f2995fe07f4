package plotpy

import "github.com/gogpu/plotpy/renderer"

// Option configures a Plot during creation.
//
// Example:
//
//	// Default Python renderer
//	plt := plotpy.NewPlot()
//
//	// Custom renderer (dependency injection)
//	plt := plotpy.NewPlot(plotpy.WithRenderer(myRenderer))
type Option func(*plotOptions)

// plotOptions holds optional configuration for Plot creation.
type plotOptions struct {
	renderer renderer.Renderer
	header   string
}

// defaultOptions returns the default plot options.
func defaultOptions() plotOptions {
	return plotOptions{
		renderer: nil, // Will be set to the Python renderer if nil
		header:   DefaultScriptHeader,
	}
}

// WithRenderer sets the renderer used by Save.
//
// Example:
//
//	r, _ := renderer.New("python3")
//	plt := plotpy.NewPlot(plotpy.WithRenderer(r))
func WithRenderer(r renderer.Renderer) Option {
	return func(o *plotOptions) {
		o.renderer = r
	}
}

// WithScriptHeader replaces DefaultScriptHeader, for example to select a
// matplotlib style or backend. The header must define plt, np, tck and
// EXTRA_ARTISTS if the generated commands use them.
func WithScriptHeader(header string) Option {
	return func(o *plotOptions) {
		o.header = header
	}
}
