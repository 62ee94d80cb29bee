// tinyrender - minimal software rasterizer
// Renders a triangle mesh with flat shading into an image file, or previews
// it in the terminal.
//
// Usage:
//
//	tinyrender [options] [model.obj|model.glb]
//
// Without a model a built-in UV sphere is rendered. Supported outputs are
// .tga (default), .png, .bmp and .tif/.tiff.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/taigrr/tinyrender/pkg/math3d"
	"github.com/taigrr/tinyrender/pkg/models"
	"github.com/taigrr/tinyrender/pkg/render"
)

var (
	outPath   = flag.String("o", "output.tga", "Output image path (.tga, .png, .bmp, .tif)")
	width     = flag.Int("width", 800, "Image width in pixels")
	height    = flag.Int("height", 800, "Image height in pixels")
	lightDir  = flag.String("light", "0,0,-1", "Light direction (X,Y,Z)")
	baseColor = flag.String("color", "255,255,255", "Base color (R,G,B)")
	bgColor   = flag.String("bg", "0,0,0", "Background color (R,G,B)")
	modeName  = flag.String("mode", "flat", "Render mode: flat or wireframe")
	fit       = flag.Bool("fit", false, "Center and scale the model into [-1,1] before rendering")
	axes      = flag.Bool("axes", false, "Overlay the screen X and Y axes through the origin")
	rle       = flag.Bool("rle", true, "Run-length encode TGA output")
	preview   = flag.Bool("preview", false, "Show an interactive terminal preview instead of writing a file")
	targetFPS = flag.Int("fps", 30, "Preview target FPS")
	verbose   = flag.Bool("v", false, "Log pipeline statistics to stderr")
)

// renderMode selects the pass run over the mesh.
type renderMode int

const (
	modeFlat renderMode = iota
	modeWireframe
)

func parseMode(s string) (renderMode, error) {
	switch s {
	case "flat":
		return modeFlat, nil
	case "wireframe":
		return modeWireframe, nil
	}
	return 0, fmt.Errorf("unknown mode %q (use flat or wireframe)", s)
}

// config is the validated form of the command line.
type config struct {
	width, height int
	light         math3d.Vec3
	base, bg      render.Color
	mode          renderMode
	fit           bool
	axes          bool
	rle           bool
	fps           int
}

func parseConfig() (config, error) {
	cfg := config{
		width:  *width,
		height: *height,
		fit:    *fit,
		axes:   *axes,
		rle:    *rle,
		fps:    *targetFPS,
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, fmt.Errorf("invalid image size %dx%d", cfg.width, cfg.height)
	}
	if cfg.fps <= 0 {
		return cfg, fmt.Errorf("invalid fps %d", cfg.fps)
	}

	var err error
	if cfg.light, err = parseLight(*lightDir); err != nil {
		return cfg, err
	}
	if cfg.base, err = render.ParseRGB(*baseColor); err != nil {
		return cfg, err
	}
	if cfg.bg, err = render.ParseRGB(*bgColor); err != nil {
		return cfg, err
	}
	if cfg.mode, err = parseMode(*modeName); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseLight parses "X,Y,Z" and normalizes the result.
func parseLight(s string) (math3d.Vec3, error) {
	var v math3d.Vec3
	if _, err := fmt.Sscanf(s, "%g,%g,%g", &v.X, &v.Y, &v.Z); err != nil {
		return v, fmt.Errorf("parse light %q: %w", s, err)
	}
	if v.Len() == 0 {
		return v, errors.New("light direction must be non-zero")
	}
	return v.Normalize(), nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tinyrender - minimal software rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tinyrender [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model a built-in sphere is rendered.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nPreview controls:\n")
		fmt.Fprintf(os.Stderr, "  A/D, Left/Right - Spin around Y\n")
		fmt.Fprintf(os.Stderr, "  W/S, Up/Down    - Tilt around X\n")
		fmt.Fprintf(os.Stderr, "  X               - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  R               - Reset rotation\n")
		fmt.Fprintf(os.Stderr, "  Q/Esc           - Quit\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadMesh loads the model at path, or the built-in sphere when path is
// empty.
func loadMesh(path string) (*models.Mesh, error) {
	if path == "" {
		return models.NewUVSphere(24, 48), nil
	}
	mesh, err := models.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return mesh, nil
}

// drawMesh runs the configured pass over mesh.
func drawMesh(r *render.Rasterizer, mesh render.MeshSource, cfg config) {
	switch cfg.mode {
	case modeWireframe:
		r.DrawMeshWireframe(mesh, cfg.base)
	default:
		r.DrawMeshFlat(mesh, cfg.base, cfg.light)
	}
	if cfg.axes {
		r.DrawAxes()
	}
}

// renderImage draws mesh into a new framebuffer and flips it to a top-left
// origin, ready for encoding.
func renderImage(mesh render.MeshSource, cfg config) (*render.Framebuffer, render.DrawStats) {
	fb := render.NewFramebuffer(cfg.width, cfg.height)
	fb.Clear(cfg.bg)
	r := render.NewRasterizer(fb)
	drawMesh(r, mesh, cfg)
	fb.FlipVertical()
	return fb, r.Stats
}

func run(modelPath string) error {
	cfg, err := parseConfig()
	if err != nil {
		return err
	}

	mesh, err := loadMesh(modelPath)
	if err != nil {
		return err
	}
	name := mesh.Name
	if modelPath != "" {
		name = filepath.Base(modelPath)
	}
	fmt.Fprintf(os.Stderr, "Loaded: %s (%d vertices, %d triangles)\n", name, mesh.VertexCount(), mesh.FaceCount())

	if cfg.fit {
		mesh.FitUnitCube()
	}

	if *preview {
		return runPreview(mesh, cfg)
	}

	fb, stats := renderImage(mesh, cfg)
	if err := fb.Save(*outPath, &render.EncodeOptions{RLE: cfg.rle}); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%dx%d, %d drawn, %d culled)\n",
		*outPath, cfg.width, cfg.height, stats.Drawn, stats.Culled)
	return nil
}
