// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording provides a hexgrid.Surface that records drawing
// operations as typed command structures instead of rasterizing them.
//
// A recorded command stream can be inspected (testing, debugging) or
// replayed against any other Surface, which enables export paths that
// consume the renderer's output without a pixel target. Commands are
// typed structs rather than a serialized format so they stay
// inspectable and debuggable.
//
// # Example
//
//	rec := recording.NewRecorder()
//	renderer.DrawGrid(rec, exposed, ws, color.Gray{Y: 128})
//	r := rec.Finish()
//
//	// Replay to a pixel backend
//	r.Playback(rasterSurface)
package recording

import (
	"image/color"

	"github.com/gogpu/hexgrid"
)

// CommandType identifies the type of a command. Each command type
// corresponds to one Surface primitive.
type CommandType uint8

const (
	// CmdDrawLines draws a batch of line segments.
	CmdDrawLines CommandType = iota
	// CmdFillPolygon fills a convex polygon.
	CmdFillPolygon
	// CmdDrawCell blits a cell's content.
	CmdDrawCell
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawLines:   "DrawLines",
	CmdFillPolygon: "FillPolygon",
	CmdDrawCell:    "DrawCell",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// DrawLinesCommand draws a batch of line segments in one color.
type DrawLinesCommand struct {
	// Lines holds the segments; the Recorder stores its own copy.
	Lines []hexgrid.Line
	// Color is the line color.
	Color color.Color
}

// Type implements Command.
func (DrawLinesCommand) Type() CommandType { return CmdDrawLines }

// FillPolygonCommand fills a convex polygon.
type FillPolygonCommand struct {
	// Points holds the outline vertices; the Recorder stores its own copy.
	Points []hexgrid.Point
	// Color is the fill color.
	Color color.Color
}

// Type implements Command.
func (FillPolygonCommand) Type() CommandType { return CmdFillPolygon }

// DrawCellCommand blits a cell's content, bottom-left anchored.
type DrawCellCommand struct {
	// Cell is the cell whose content is drawn.
	Cell hexgrid.Cell
	// Pos is the bottom-left anchor in screen coordinates.
	Pos hexgrid.Point
	// Size is the drawn extent in pixels.
	Size hexgrid.Size
}

// Type implements Command.
func (DrawCellCommand) Type() CommandType { return CmdDrawCell }
