package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/tinyrender/pkg/math3d"
	"github.com/taigrr/tinyrender/pkg/models"
	"github.com/taigrr/tinyrender/pkg/render"
)

// spinImpulse is the velocity in radians per frame added by one key press.
const spinImpulse = 0.05

// previewer owns the state of the terminal preview between frames.
type previewer struct {
	mesh     *models.Mesh
	cfg      config
	rotation *spinState
	fb       *render.Framebuffer
}

func newPreviewer(mesh *models.Mesh, cfg config, cols, rows int) *previewer {
	p := &previewer{
		mesh:     mesh,
		cfg:      cfg,
		rotation: newSpinState(cfg.fps),
	}
	p.resize(cols, rows)
	return p
}

// resize reallocates the framebuffer to cover cols×rows terminal cells.
func (p *previewer) resize(cols, rows int) {
	w, h := render.TerminalFramebufferSize(cols, rows)
	p.fb = render.NewFramebuffer(w, h)
}

// handleKey applies a key press and reports whether the preview should quit.
func (p *previewer) handleKey(ev uv.KeyPressEvent) bool {
	switch {
	case ev.MatchString("q", "esc", "ctrl+c"):
		return true
	case ev.MatchString("a", "left"):
		p.rotation.push(0, -spinImpulse)
	case ev.MatchString("d", "right"):
		p.rotation.push(0, spinImpulse)
	case ev.MatchString("w", "up"):
		p.rotation.push(-spinImpulse, 0)
	case ev.MatchString("s", "down"):
		p.rotation.push(spinImpulse, 0)
	case ev.MatchString("r"):
		p.rotation.reset()
	case ev.MatchString("x"):
		if p.cfg.mode == modeWireframe {
			p.cfg.mode = modeFlat
		} else {
			p.cfg.mode = modeWireframe
		}
	}
	return false
}

// renderFrame draws the rotated mesh into the framebuffer, top row first.
func (p *previewer) renderFrame() render.DrawStats {
	transform := math3d.RotateX(p.rotation.pitch.angle).
		Mul(math3d.RotateY(p.rotation.yaw.angle))

	// Rotate a copy so the loaded geometry never drifts.
	posed := p.mesh.Clone()
	posed.Transform(transform)

	p.fb.Clear(p.cfg.bg)
	r := render.NewRasterizer(p.fb)
	drawMesh(r, posed, p.cfg)
	p.fb.FlipVertical()
	return r.Stats
}

func runPreview(mesh *models.Mesh, cfg config) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(cols, rows); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := newPreviewer(mesh, cfg, cols, rows)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-term.Events():
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				term.Erase()
				if err := term.Resize(ev.Width, ev.Height); err != nil {
					return fmt.Errorf("resize terminal: %w", err)
				}
				p.resize(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				if p.handleKey(ev) {
					return nil
				}
			}

		case <-ticker.C:
			p.rotation.step()
			p.renderFrame()
			p.fb.Draw(term, term.Bounds())
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
