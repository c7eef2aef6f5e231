// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a CPU-based hexgrid.Surface that renders to
// an *image.RGBA. It is the default backend for offline rendering and
// for verifying draw output pixel by pixel in tests.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/hexgrid"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Example:
//
//	s := raster.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	renderer.DrawGrid(s, exposed, ws, color.Gray{Y: 96})
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given
// dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface backed by an existing
// image. The surface renders into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		img:    img,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawLines implements hexgrid.Surface, rasterizing each segment with
// an integer Bresenham walk. Grid segments are short and either
// axis-aligned or diagonal, so no anti-aliasing is applied.
func (s *ImageSurface) DrawLines(lines []hexgrid.Line, c color.Color) {
	if s.closed {
		return
	}
	rgba := toRGBA(c)
	for _, l := range lines {
		s.line(l.From.X, l.From.Y, l.To.X, l.To.Y, rgba)
	}
}

// FillPolygon implements hexgrid.Surface with a scanline fill. The
// renderer only emits convex outlines, so each scanline holds a
// single span.
func (s *ImageSurface) FillPolygon(pts []hexgrid.Point, c color.Color) {
	if s.closed || len(pts) < 3 {
		return
	}
	rgba := toRGBA(c)

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	minY = max(minY, 0)
	maxY = min(maxY, s.height-1)

	for y := minY; y <= maxY; y++ {
		left, right, any := polygonSpan(pts, float64(y)+0.5)
		if !any {
			continue
		}
		for x := max(left, 0); x <= min(right, s.width-1); x++ {
			s.set(x, y, rgba)
		}
	}
}

// DrawCell implements hexgrid.Surface. The cell must carry pixel
// content via hexgrid.ImageCell; cells without it are skipped with a
// warning. Content whose bounds differ from the requested size is
// scaled with nearest-neighbor resampling.
func (s *ImageSurface) DrawCell(cell hexgrid.Cell, pos hexgrid.Point, size hexgrid.Size) {
	if s.closed || size.Empty() {
		return
	}
	ic, ok := cell.(hexgrid.ImageCell)
	if !ok {
		hexgrid.Logger().Warn("cell without pixel content on raster surface",
			"pos", pos)
		return
	}
	src := ic.Image()
	if src == nil {
		return
	}

	// Bottom-left anchored: the content covers size pixels up and
	// right from pos.
	dst := image.Rect(pos.X, pos.Y-size.H, pos.X+size.W, pos.Y)
	xdraw.NearestNeighbor.Scale(s.img, dst, src, src.Bounds(), xdraw.Over, nil)
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(result.Pix, s.img.Pix)
	return result
}

// Image returns the underlying image.RGBA. This is a direct
// reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// WritePNG encodes the current surface contents as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// Close releases resources associated with the surface. Close is
// idempotent; after Close the surface draws nothing.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	return nil
}

// line rasterizes a segment with the Bresenham midpoint walk.
func (s *ImageSurface) line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// set writes one pixel, source-over.
func (s *ImageSurface) set(x, y int, c color.RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	if c.A == 255 {
		idx := s.img.PixOffset(x, y)
		s.img.Pix[idx+0] = c.R
		s.img.Pix[idx+1] = c.G
		s.img.Pix[idx+2] = c.B
		s.img.Pix[idx+3] = c.A
		return
	}
	draw.Draw(s.img, image.Rect(x, y, x+1, y+1), image.NewUniform(c), image.Point{}, draw.Over)
}

// polygonSpan intersects a horizontal scanline with a convex outline
// and returns the covered integer pixel span.
func polygonSpan(pts []hexgrid.Point, y float64) (left, right int, any bool) {
	lo, hi := 0.0, 0.0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		if a.Y == b.Y {
			// Horizontal or degenerate edge; its endpoints are
			// covered by the adjacent edges.
			continue
		}
		ay, by := float64(a.Y), float64(b.Y)
		if (y < ay && y < by) || (y > ay && y > by) {
			continue
		}
		t := (y - ay) / (by - ay)
		x := float64(a.X) + t*float64(b.X-a.X)
		if !any {
			lo, hi = x, x
			any = true
			continue
		}
		lo = min(lo, x)
		hi = max(hi, x)
	}
	if !any {
		return 0, 0, false
	}
	return int(lo + 0.5), int(hi - 0.5), lo <= hi
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Verify ImageSurface implements the Surface interface.
var _ hexgrid.Surface = (*ImageSurface)(nil)
