package render

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/taigrr/tinyrender/pkg/tga"
)

// ErrUnknownFormat is returned when an image format or file extension is not
// one of the supported encoders.
var ErrUnknownFormat = errors.New("unknown image format")

// Image formats accepted by Encode.
const (
	FormatTGA  = "tga"
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// EncodeOptions tune the output encoders. A nil *EncodeOptions uses the
// defaults.
type EncodeOptions struct {
	// RLE run-length encodes TGA output.
	RLE bool
}

// FormatFromPath maps a file extension to an image format name.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		return FormatTGA, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Encode writes the framebuffer to w in the given format. The rows are
// written in memory order: call FlipVertical first for a bottom-left origin.
func (fb *Framebuffer) Encode(w io.Writer, format string, opts *EncodeOptions) error {
	img := fb.ToImage()
	switch format {
	case FormatTGA:
		var o tga.Options
		if opts != nil {
			o.RLE = opts.RLE
		}
		return tga.Encode(w, img, &o)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save writes the framebuffer to path, choosing the encoder from the file
// extension.
func (fb *Framebuffer) Save(path string, opts *EncodeOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := fb.Encode(f, format, opts); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}

	Logger().Debug("image saved", "path", path, "format", format,
		"width", fb.width, "height", fb.height)
	return nil
}
