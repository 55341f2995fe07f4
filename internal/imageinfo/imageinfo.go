// Package imageinfo reports the format and size of rendered figures without
// decoding their pixels.
package imageinfo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Inspection errors.
var (
	// ErrUnsupportedFormat is returned when the file is not a known image format.
	ErrUnsupportedFormat = errors.New("imageinfo: unsupported format")

	// ErrEmptyData is returned when the file is empty.
	ErrEmptyData = errors.New("imageinfo: empty data")
)

// Info describes an image file.
type Info struct {
	// Format is the registered format name: png, jpeg, gif, bmp, tiff, webp
	// or svg.
	Format string

	// Width and Height are in pixels for raster formats and in the
	// document's own units for SVG, rounded to the nearest integer.
	Width, Height int
}

func (i Info) String() string {
	return fmt.Sprintf("%s %dx%d", i.Format, i.Width, i.Height)
}

// Inspect reads the header of the image at path. Files with an .svg
// extension are read as SVG documents; everything else is sniffed.
func Inspect(path string) (Info, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Info{}, fmt.Errorf("imageinfo: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return Info{}, fmt.Errorf("imageinfo: stat file: %w", err)
	}
	if st.Size() == 0 {
		return Info{}, ErrEmptyData
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return DecodeSVG(f)
	}
	return Decode(f)
}

// Decode reads a raster image header from r, auto-detecting the format.
func Decode(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Info{}, ErrUnsupportedFormat
		}
		return Info{}, fmt.Errorf("imageinfo: decode: %w", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// DecodeSVG reads the size of an SVG document from its root element. The
// width and height attributes win over the viewBox.
func DecodeSVG(r io.Reader) (Info, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return Info{}, ErrUnsupportedFormat
		}
		if err != nil {
			return Info{}, fmt.Errorf("imageinfo: decode SVG: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "svg" {
			return Info{}, ErrUnsupportedFormat
		}
		return svgInfo(start), nil
	}
}

func svgInfo(root xml.StartElement) Info {
	info := Info{Format: "svg"}
	var width, height, viewBox string
	for _, attr := range root.Attr {
		switch attr.Name.Local {
		case "width":
			width = attr.Value
		case "height":
			height = attr.Value
		case "viewBox":
			viewBox = attr.Value
		}
	}
	if fields := strings.Fields(strings.ReplaceAll(viewBox, ",", " ")); len(fields) == 4 {
		info.Width = parseLength(fields[2])
		info.Height = parseLength(fields[3])
	}
	if w := parseLength(width); w > 0 {
		info.Width = w
	}
	if h := parseLength(height); h > 0 {
		info.Height = h
	}
	return info
}

// parseLength parses an SVG length such as "460.8pt", ignoring the unit.
// Percentages and malformed values yield zero.
func parseLength(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, "%") {
		return 0
	}
	end := len(s)
	for end > 0 && (s[end-1] < '0' || s[end-1] > '9') && s[end-1] != '.' {
		end--
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return int(math.Round(v))
}
