package renderer

import "fmt"

// Renderer executes a figure script.
type Renderer interface {
	// Render runs the script at scriptPath with dir as the working directory
	// and returns the combined stdout and stderr of the run.
	//
	// A nil error with non-empty output still means the render failed; the
	// caller decides that. A non-nil *ExitError means the process ran and
	// exited unsuccessfully. Any other error means the renderer could not
	// be run at all.
	Render(scriptPath, dir string) (string, error)
}

// Func adapts an ordinary function to the Renderer interface.
type Func func(scriptPath, dir string) (string, error)

// Render calls f(scriptPath, dir).
func (f Func) Render(scriptPath, dir string) (string, error) {
	return f(scriptPath, dir)
}

// ExitError reports that the renderer process ran but exited with a
// non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("renderer: exit status %d", e.Code)
}
