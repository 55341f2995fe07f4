package plotpy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/plotpy/renderer"
)

// Save renders the figure to path and returns its absolute location.
//
// The script is written next to the figure with a .py extension and run by
// the plot's renderer. Any renderer output is a failure: it is stored in a
// .log file next to the figure and a *RenderError is returned. File system
// problems are returned as wrapped I/O errors that never match
// ErrRendererFailed.
//
// A path ending in .py or .log is rejected with ErrFigurePath.
//
// Save does not modify the plot; it may be called repeatedly.
func (p *Plot) Save(path string) (string, error) {
	figPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("plotpy: resolve path: %w", err)
	}
	switch strings.ToLower(filepath.Ext(figPath)) {
	case ".py", ".log":
		return "", fmt.Errorf("%w: %s", ErrFigurePath, figPath)
	}
	dir := filepath.Dir(figPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("plotpy: create output directory: %w", err)
	}

	stem := strings.TrimSuffix(figPath, filepath.Ext(figPath))
	scriptPath := stem + ".py"
	logPath := stem + ".log"

	script := p.Script() + saveDirective(figPath)
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		return "", fmt.Errorf("plotpy: write script: %w", err)
	}

	log := Logger()
	log.Debug("plotpy: script written", "path", scriptPath, "bytes", len(script))

	output, err := p.renderer.Render(scriptPath, dir)
	if err != nil {
		var exitErr *renderer.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("plotpy: run renderer: %w", err)
		}
		if output == "" {
			output = exitErr.Error() + "\n"
		}
	}

	if output != "" {
		if err := os.WriteFile(logPath, []byte(output), 0o644); err != nil {
			return "", fmt.Errorf("plotpy: write log file: %w", err)
		}
		log.Warn("plotpy: renderer failed", "figure", figPath, "log", logPath)
		return "", &RenderError{LogPath: logPath}
	}

	if err := os.Remove(logPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("plotpy: remove stale log file: %w", err)
	}

	log.Info("plotpy: figure saved", "path", figPath)
	return figPath, nil
}

// saveDirective is the statement that persists the figure to path.
func saveDirective(path string) string {
	return "\nfn=" + rawString(path) +
		"\nplt.savefig(fn, bbox_inches='tight', bbox_extra_artists=EXTRA_ARTISTS)\n"
}
