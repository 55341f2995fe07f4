package plotpy

import "errors"

// Serialization errors, reported by draw calls before anything is rendered.
var (
	// ErrEmptyGrid is returned when grid data has no rows or no columns.
	ErrEmptyGrid = errors.New("plotpy: empty grid")

	// ErrGridShape is returned when the x, y and z grids of a draw call do
	// not share the same rectangular shape.
	ErrGridShape = errors.New("plotpy: grids must have the same rectangular shape")
)

// ErrFigurePath is returned by Save when the figure path would collide with
// the script or log file written next to it.
var ErrFigurePath = errors.New("plotpy: figure path must not end in .py or .log")

// ErrRendererFailed is matched by every *RenderError.
var ErrRendererFailed = errors.New("plotpy: renderer failed")

// RenderError reports that the renderer ran and printed diagnostics. The
// diagnostics themselves are in the file at LogPath.
type RenderError struct {
	LogPath string
}

func (e *RenderError) Error() string {
	return "plotpy: renderer failed; please see the log file " + e.LogPath
}

// Is reports whether target is ErrRendererFailed.
func (e *RenderError) Is(target error) bool {
	return target == ErrRendererFailed
}
