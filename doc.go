// Package plotpy builds matplotlib figures from Go.
//
// # Overview
//
// Each drawable entity, such as a Contour, accumulates the Python commands
// that draw it in its own buffer. A Plot collects entity buffers together
// with figure-wide directives (axes, labels, subplots) and, on Save, hands
// the complete script to an external renderer process that writes the
// image. plotpy performs no rasterization itself.
//
// # Quick Start
//
//	contour := plotpy.NewContour()
//	contour.Colors = []string{"#f00", "#0f0", "#00f"}
//	if err := contour.DrawFilled(x, y, z); err != nil {
//	    return err
//	}
//
//	plt := plotpy.NewPlot()
//	plt.Add(contour)
//	plt.Equal()
//	plt.GridAndLabels("x", "y")
//	if _, err := plt.Save("/tmp/plotpy/contour.svg"); err != nil {
//	    return err
//	}
//
// # Files
//
// Saving to dir/name.ext writes dir/name.py, the script that was run. If
// the renderer prints anything, the output goes to dir/name.log and Save
// returns a *RenderError.
//
// # Renderers
//
// The default renderer runs python3 (see package renderer/python). Use
// WithRenderer to supply another implementation of renderer.Renderer.
//
// # Concurrency
//
// Plots and entities own independent buffers. Different plots may be built
// on different goroutines; a single plot or entity must not be used
// concurrently.
package plotpy

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
