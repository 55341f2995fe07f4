// Package python provides the built-in renderer for plotpy scripts. It runs
// a Python interpreter with matplotlib as a fresh process for every figure.
//
// Importing the package registers the renderer as "python3":
//
//	import _ "github.com/gogpu/plotpy/renderer/python"
//
//	r, _ := renderer.New("python3")
//
// Or create it directly to choose the interpreter:
//
//	r := python.New()
//	r.Interpreter = "/opt/venv/bin/python"
package python

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/gogpu/plotpy/renderer"
)

// Name is the registry name of the Python renderer.
const Name = "python3"

// DefaultInterpreter is looked up in PATH when Renderer.Interpreter is empty.
const DefaultInterpreter = "python3"

func init() {
	renderer.Register(Name, func() renderer.Renderer {
		return New()
	})
}

// Renderer runs figure scripts with a Python interpreter.
type Renderer struct {
	// Interpreter is the program to execute. Empty means DefaultInterpreter.
	Interpreter string

	// Args are passed to the interpreter before the script path.
	Args []string

	// Env holds extra KEY=value entries appended to the parent environment.
	Env []string
}

// New returns a Renderer that uses DefaultInterpreter.
func New() *Renderer {
	return &Renderer{Interpreter: DefaultInterpreter}
}

// Render runs the interpreter on scriptPath inside dir and waits for it to
// exit. The returned text is the combined stdout and stderr of the process.
func (r *Renderer) Render(scriptPath, dir string) (string, error) {
	interp := r.Interpreter
	if interp == "" {
		interp = DefaultInterpreter
	}

	args := make([]string, 0, len(r.Args)+1)
	args = append(args, r.Args...)
	args = append(args, scriptPath)

	cmd := exec.Command(interp, args...)
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	log := renderer.Logger()
	log.Debug("python: running script", "interpreter", interp, "script", scriptPath, "dir", dir)

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debug("python: interpreter exited", "code", exitErr.ExitCode(), "output_bytes", len(out))
			return string(out), &renderer.ExitError{Code: exitErr.ExitCode()}
		}
		return string(out), fmt.Errorf("python: run %s: %w", interp, err)
	}

	log.Debug("python: interpreter finished", "output_bytes", len(out))
	return string(out), nil
}
