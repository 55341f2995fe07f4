package python

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/plotpy/renderer"
)

// shellRenderer returns a Renderer that runs scripts with sh, so the
// subprocess handling can be tested without Python installed.
func shellRenderer(t *testing.T) *Renderer {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return &Renderer{Interpreter: sh}
}

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "fig.py")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestRegistered(t *testing.T) {
	if !renderer.IsRegistered(Name) {
		t.Fatalf("%q renderer is not registered", Name)
	}
	r, err := renderer.New(Name)
	if err != nil {
		t.Fatalf("renderer.New(%q) error = %v", Name, err)
	}
	p, ok := r.(*Renderer)
	if !ok {
		t.Fatalf("renderer.New(%q) returned %T, want *Renderer", Name, r)
	}
	if p.Interpreter != DefaultInterpreter {
		t.Errorf("Interpreter = %q, want %q", p.Interpreter, DefaultInterpreter)
	}
}

func TestRenderSilentSuccess(t *testing.T) {
	r := shellRenderer(t)
	dir := t.TempDir()
	script := writeScript(t, dir, "touch out.png\n")

	out, err := r.Render(script, dir)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "" {
		t.Errorf("Render() output = %q, want empty", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.png")); err != nil {
		t.Errorf("script did not run in dir: %v", err)
	}
}

func TestRenderCapturesCombinedOutput(t *testing.T) {
	r := shellRenderer(t)
	dir := t.TempDir()
	script := writeScript(t, dir, "echo to-stdout\necho to-stderr 1>&2\n")

	out, err := r.Render(script, dir)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"to-stdout", "to-stderr"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output = %q, want it to contain %q", out, want)
		}
	}
}

func TestRenderExitStatus(t *testing.T) {
	r := shellRenderer(t)
	dir := t.TempDir()
	script := writeScript(t, dir, "echo Traceback\nexit 3\n")

	out, err := r.Render(script, dir)
	var exitErr *renderer.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Render() error = %v, want *renderer.ExitError", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("exit code = %d, want 3", exitErr.Code)
	}
	if !strings.Contains(out, "Traceback") {
		t.Errorf("Render() output = %q, want it to contain Traceback", out)
	}
}

func TestRenderEnvAndArgs(t *testing.T) {
	r := shellRenderer(t)
	r.Args = []string{"-e"}
	r.Env = []string{"PLOTPY_TEST_VALUE=42"}
	dir := t.TempDir()
	script := writeScript(t, dir, "echo \"$PLOTPY_TEST_VALUE\"\n")

	out, err := r.Render(script, dir)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.TrimSpace(out) != "42" {
		t.Errorf("Render() output = %q, want 42", out)
	}
}

func TestRenderMissingInterpreter(t *testing.T) {
	r := &Renderer{Interpreter: filepath.Join(t.TempDir(), "no-such-python")}

	_, err := r.Render("fig.py", t.TempDir())
	if err == nil {
		t.Fatal("Render() error = nil, want start failure")
	}
	var exitErr *renderer.ExitError
	if errors.As(err, &exitErr) {
		t.Errorf("Render() error = %v, want a start failure, not an exit status", err)
	}
}
