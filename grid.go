package hexgrid

import "image/color"

// DrawGrid emits the hexagon edge segments visible inside the exposed
// pixel rectangle. Interior tiles contribute their three upper edges;
// the grid's first and last rows and columns additionally contribute
// their outer edges so the drawn boundary is fully enclosed.
func (r *Renderer) DrawGrid(s Surface, exposed Rect, ws Workspace, c color.Color) {
	if exposed.Empty() {
		return
	}

	p := newRenderParams(r.cfg, ws)

	startTile := drawOrigin(r, p, exposed, ws)
	startTile.X = max(0, startTile.X)
	startTile.Y = max(0, startTile.Y)

	startPos := r.TileToScreen(float64(startTile.X), float64(startTile.Y), ws)

	oct := p.octagon()
	lines := make([]Line, 0, 8)

	if p.staggerX {
		// Column shifting is applied per column in the loop, so
		// un-apply it from the start position here.
		if p.doStaggerX(startTile.X) {
			startPos.Y -= p.rowHeight
		}

		cols := newLineWalk(startTile, startPos,
			Pt(1, 0), Pt(p.columnWidth, 0),
			true, exposed.Max.X, ws.Width, false)

		for colTile, colPos, ok := cols.next(); ok; colTile, colPos, ok = cols.next() {
			rowStart := colPos
			if p.doStaggerX(colTile.X) {
				rowStart.Y += p.rowHeight
			}
			staggered := p.doStaggerX(colTile.X)

			rows := newLineWalk(colTile, rowStart,
				Pt(0, 1), Pt(0, p.tileHeight+p.sideLengthY),
				false, exposed.Max.Y, ws.Height, false)

			for tile, pos, ok := rows.next(); ok; tile, pos, ok = rows.next() {
				lines = append(lines,
					Ln(pos.Add(oct[1]), pos.Add(oct[2])),
					Ln(pos.Add(oct[2]), pos.Add(oct[3])),
					Ln(pos.Add(oct[3]), pos.Add(oct[4])))

				lastRow := tile.Y == ws.Height-1
				lastColumn := tile.X == ws.Width-1
				bottomLeft := tile.X == 0 || (lastRow && staggered)
				bottomRight := lastColumn || (lastRow && staggered)

				if bottomRight {
					lines = append(lines, Ln(pos.Add(oct[5]), pos.Add(oct[6])))
				}
				if lastRow {
					lines = append(lines, Ln(pos.Add(oct[6]), pos.Add(oct[7])))
				}
				if bottomLeft {
					lines = append(lines, Ln(pos.Add(oct[7]), pos.Add(oct[0])))
				}

				s.DrawLines(lines, c)
				lines = lines[:0]
			}
		}
	} else {
		// Row shifting is applied per row in the loop, so un-apply it
		// from the start position here.
		if p.doStaggerY(startTile.Y) {
			startPos.X -= p.columnWidth
		}

		rows := newLineWalk(startTile, startPos,
			Pt(0, 1), Pt(0, p.rowHeight),
			false, exposed.Max.Y, ws.Height, false)

		for rowTile, rowPos, ok := rows.next(); ok; rowTile, rowPos, ok = rows.next() {
			colStart := rowPos
			if p.doStaggerY(rowTile.Y) {
				colStart.X += p.columnWidth
			}
			staggered := p.doStaggerY(rowTile.Y)

			cols := newLineWalk(rowTile, colStart,
				Pt(1, 0), Pt(p.tileWidth+p.sideLengthX, 0),
				true, exposed.Max.X, ws.Width, false)

			for tile, pos, ok := cols.next(); ok; tile, pos, ok = cols.next() {
				lines = append(lines,
					Ln(pos.Add(oct[0]), pos.Add(oct[1])),
					Ln(pos.Add(oct[1]), pos.Add(oct[2])),
					Ln(pos.Add(oct[3]), pos.Add(oct[4])))

				lastRow := tile.Y == ws.Height-1
				lastColumn := tile.X == ws.Width-1
				bottomLeft := lastRow || (tile.X == 0 && !staggered)
				bottomRight := lastRow || (lastColumn && staggered)

				if lastColumn {
					lines = append(lines, Ln(pos.Add(oct[4]), pos.Add(oct[5])))
				}
				if bottomRight {
					lines = append(lines, Ln(pos.Add(oct[5]), pos.Add(oct[6])))
				}
				if bottomLeft {
					lines = append(lines, Ln(pos.Add(oct[7]), pos.Add(oct[0])))
				}

				s.DrawLines(lines, c)
				lines = lines[:0]
			}
		}
	}
}
