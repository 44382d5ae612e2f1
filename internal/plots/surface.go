package plots

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/KaramelBytes/eda-cli/internal/utils"
)

// DPI of every rendered image.
const DPI = 100

// ErrBackend is returned by Probe when the raster backend cannot draw.
var ErrBackend = errors.New("plotting backend unavailable")

// surface is a raster canvas owned by exactly one image. It is created by
// render and dropped when render returns, so no drawing state leaks from
// one image into the next.
type surface struct {
	canvas *vgimg.Canvas
	dc     draw.Canvas
}

func newSurface(w, h vg.Length) *surface {
	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	return &surface{canvas: c, dc: draw.New(c)}
}

func (s *surface) encode(w io.Writer) error {
	if _, err := (vgimg.PngCanvas{Canvas: s.canvas}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// render paints onto a fresh w x h surface and writes it to path as PNG.
// The file is only replaced once encoding has fully succeeded.
func render(path string, w, h vg.Length, paint func(dc draw.Canvas)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render %s: %v", path, r)
		}
	}()
	s := newSurface(w, h)
	paint(s.dc)
	var buf bytes.Buffer
	if err := s.encode(&buf); err != nil {
		return err
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Probe draws a small titled line plot through the PNG backend and discards
// it. Font loading and rasterization failures surface here, before any
// input is read.
func Probe() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrBackend, r)
		}
	}()
	p := plot.New()
	p.Title.Text = "probe"
	l, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	p.Add(l)
	s := newSurface(vg.Inch, vg.Inch)
	p.Draw(s.dc)
	if err := s.encode(io.Discard); err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return nil
}
