// Package renderer defines how a generated figure script is turned into an
// image file.
//
// A Renderer is an external collaborator: it receives the path of a script
// written by plotpy, executes it in a fresh process and reports everything
// the process printed. plotpy treats any printed output as a failure and
// preserves it in a log file next to the figure.
//
// # Registration
//
// Renderers are registered by name using the database/sql driver pattern.
// The built-in Python renderer registers itself as "python3":
//
//	import _ "github.com/gogpu/plotpy/renderer/python"
//
//	r, err := renderer.New("python3")
//
// Custom renderers register from their init functions:
//
//	func init() {
//	    renderer.Register("octave", func() renderer.Renderer {
//	        return NewOctave()
//	    })
//	}
//
// Tests usually skip the registry and pass a Func directly.
package renderer
