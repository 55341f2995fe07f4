// Command plotpy renders figure description files with matplotlib.
//
// Usage:
//
//	plotpy [flags] figure.hcl
//
// The output path comes from -o, then from the figure block's output
// attribute, then from the input name with a .png extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"

	"github.com/gogpu/plotpy"
	"github.com/gogpu/plotpy/internal/figfile"
	"github.com/gogpu/plotpy/internal/imageinfo"
	"github.com/gogpu/plotpy/renderer"
	"github.com/gogpu/plotpy/renderer/python"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("plotpy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output    = fs.String("o", "", "output figure path")
		rendName  = fs.String("renderer", python.Name, "renderer name ("+strings.Join(renderer.Names(), ", ")+")")
		interp    = fs.String("python", "", "python interpreter for the python3 renderer")
		printFlag = fs.Bool("print", false, "print the generated script to stdout")
		dryRun    = fs.Bool("n", false, "do not render; only print the script with -print")
		logLevel  = fs.String("log-level", "info", "log level: debug, info, warn, error")
		logFormat = fs.String("log-format", "text", "log format: text or json")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("plotpy: expected exactly one figure file")
	}
	input := fs.Arg(0)

	plotpy.SetLogger(newLogger(*logLevel, *logFormat, stderr))
	log := plotpy.Logger()

	r, err := renderer.New(*rendName)
	if err != nil {
		return err
	}
	if p, ok := r.(*python.Renderer); ok && *interp != "" {
		p.Interpreter = *interp
	}

	file, err := figfile.Load(input)
	if err != nil {
		return err
	}
	plt, err := file.Build(plotpy.WithRenderer(r))
	if err != nil {
		return err
	}

	if *printFlag {
		if err := printScript(stdout, plt.Script()); err != nil {
			return err
		}
	}
	if *dryRun {
		return nil
	}

	target := outputPath(*output, file.Output(), input)
	saved, err := plt.Save(target)
	if err != nil {
		var renderErr *plotpy.RenderError
		if errors.As(err, &renderErr) {
			return fmt.Errorf("plotpy: %s failed; see %s", *rendName, renderErr.LogPath)
		}
		return err
	}

	info, err := imageinfo.Inspect(saved)
	if err != nil {
		log.Warn("cannot inspect figure", "path", saved, "error", err)
		fmt.Fprintf(stdout, "saved %s\n", saved)
		return nil
	}
	log.Debug("figure inspected", "path", saved, "format", info.Format, "width", info.Width, "height", info.Height)
	fmt.Fprintf(stdout, "saved %s (%s)\n", saved, info)
	return nil
}

// outputPath picks the figure path from the flag, the file, or the input
// name. Relative paths from the file are resolved against its directory.
func outputPath(flagValue, fileValue, input string) string {
	switch {
	case flagValue != "":
		return flagValue
	case fileValue != "":
		if filepath.IsAbs(fileValue) {
			return fileValue
		}
		return filepath.Join(filepath.Dir(input), fileValue)
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
}

// printScript writes script to w, highlighted when w is a terminal.
func printScript(w io.Writer, script string) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return quick.Highlight(w, script, "python", "terminal256", "monokai")
	}
	_, err := io.WriteString(w, script)
	return err
}

// newLogger creates a slog.Logger writing to w at the given level and format.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
