// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image/color"

	"github.com/gogpu/hexgrid"
)

// Recorder captures drawing operations as commands. It implements
// hexgrid.Surface, so any draw entry point can target it directly.
// Use Finish to obtain an immutable Recording that can be inspected
// or replayed.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 256),
	}
}

// DrawLines implements hexgrid.Surface. The line slice is copied.
func (r *Recorder) DrawLines(lines []hexgrid.Line, c color.Color) {
	if len(lines) == 0 {
		return
	}
	stored := make([]hexgrid.Line, len(lines))
	copy(stored, lines)
	r.commands = append(r.commands, DrawLinesCommand{Lines: stored, Color: c})
}

// FillPolygon implements hexgrid.Surface. The vertex slice is copied.
func (r *Recorder) FillPolygon(pts []hexgrid.Point, c color.Color) {
	if len(pts) == 0 {
		return
	}
	stored := make([]hexgrid.Point, len(pts))
	copy(stored, pts)
	r.commands = append(r.commands, FillPolygonCommand{Points: stored, Color: c})
}

// DrawCell implements hexgrid.Surface.
func (r *Recorder) DrawCell(cell hexgrid.Cell, pos hexgrid.Point, size hexgrid.Size) {
	r.commands = append(r.commands, DrawCellCommand{Cell: cell, Pos: pos, Size: size})
}

// Finish returns an immutable Recording containing all recorded
// commands. After calling Finish, the Recorder should not be used
// again.
func (r *Recorder) Finish() *Recording {
	return &Recording{commands: r.commands}
}

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	commands []Command
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Commands returns the recorded command stream in draw order. The
// returned slice is shared; callers must not modify it.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recorded commands, in order, against another
// surface.
func (r *Recording) Playback(s hexgrid.Surface) {
	hexgrid.Logger().Debug("replaying recording", "commands", len(r.commands))
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case DrawLinesCommand:
			s.DrawLines(c.Lines, c.Color)
		case FillPolygonCommand:
			s.FillPolygon(c.Points, c.Color)
		case DrawCellCommand:
			s.DrawCell(c.Cell, c.Pos, c.Size)
		}
	}
}

// Verify Recorder implements the Surface interface.
var _ hexgrid.Surface = (*Recorder)(nil)
