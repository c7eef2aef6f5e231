// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitengine provides a hexgrid.Surface backed by an
// *ebiten.Image, for drawing grids and layers inside an Ebitengine
// game loop.
//
// The surface holds a reference to its target image; retarget it each
// frame with SetTarget when drawing directly to the screen.
package ebitengine

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/hexgrid"
)

// Surface renders hexgrid draw calls onto an *ebiten.Image.
//
// Surface is not safe for concurrent use; Ebitengine draw calls must
// stay on the game's draw goroutine anyway.
type Surface struct {
	target *ebiten.Image

	// white is the 1x1 source image for DrawTriangles; vertex colors
	// carry the actual fill color.
	white *ebiten.Image

	// Reused vertex and index buffers for polygon fills.
	vs []ebiten.Vertex
	is []uint16

	// cells caches GPU uploads of cell content, keyed by the source
	// image. Entries live until Reset.
	cells map[image.Image]*ebiten.Image
}

// NewSurface creates a Surface drawing onto target.
func NewSurface(target *ebiten.Image) *Surface {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	return &Surface{
		target: target,
		white:  white,
		vs:     make([]ebiten.Vertex, 0, 18),
		is:     make([]uint16, 0, 18),
		cells:  make(map[image.Image]*ebiten.Image),
	}
}

// SetTarget redirects subsequent draws to a new image. Call this each
// frame when the surface draws directly to the screen image.
func (s *Surface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Target returns the current target image.
func (s *Surface) Target() *ebiten.Image {
	return s.target
}

// DrawLines implements hexgrid.Surface, stroking each segment with a
// one pixel wide line.
func (s *Surface) DrawLines(lines []hexgrid.Line, c color.Color) {
	if s.target == nil {
		return
	}
	for _, l := range lines {
		vector.StrokeLine(s.target,
			float32(l.From.X), float32(l.From.Y),
			float32(l.To.X), float32(l.To.Y),
			1, c, false)
	}
}

// FillPolygon implements hexgrid.Surface, tessellating the outline
// into triangles and drawing them in one call.
func (s *Surface) FillPolygon(pts []hexgrid.Point, c color.Color) {
	if s.target == nil || len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])

	r, g, b, a := c.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff
	for i := range s.vs {
		s.vs[i].ColorR = cr
		s.vs[i].ColorG = cg
		s.vs[i].ColorB = cb
		s.vs[i].ColorA = ca
	}

	s.target.DrawTriangles(s.vs, s.is, s.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawCell implements hexgrid.Surface. The cell must carry pixel
// content via hexgrid.ImageCell; cells without it are skipped with a
// warning. Uploaded content is cached per source image.
func (s *Surface) DrawCell(cell hexgrid.Cell, pos hexgrid.Point, size hexgrid.Size) {
	if s.target == nil || size.Empty() {
		return
	}
	ic, ok := cell.(hexgrid.ImageCell)
	if !ok {
		hexgrid.Logger().Warn("cell without pixel content on ebitengine surface",
			"pos", pos)
		return
	}
	src := ic.Image()
	if src == nil {
		return
	}

	img, ok := s.cells[src]
	if !ok {
		img = ebiten.NewImageFromImage(src)
		s.cells[src] = img
		hexgrid.Logger().Debug("uploaded cell content",
			"bounds", src.Bounds(), "cached", len(s.cells))
	}

	bounds := img.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(
		float64(size.W)/float64(bounds.Dx()),
		float64(size.H)/float64(bounds.Dy()),
	)
	// Bottom-left anchored: content extends size pixels up from pos.
	op.GeoM.Translate(float64(pos.X), float64(pos.Y-size.H))
	s.target.DrawImage(img, &op)
}

// Reset drops all cached cell uploads. Call it when the set of cell
// images changes wholesale, for example on a map switch.
func (s *Surface) Reset() {
	for src, img := range s.cells {
		img.Deallocate()
		delete(s.cells, src)
	}
}

// Verify Surface implements the Surface interface.
var _ hexgrid.Surface = (*Surface)(nil)
