// Command hexview is an interactive viewer for staggered hexagonal
// grids. It renders a demo map and lets you flip through the stagger
// configurations while hovering tiles with the mouse.
//
// Keys:
//
//	A      toggle stagger axis
//	P      toggle stagger parity
//	O      toggle orientation (hexagonal / staggered)
//	-, =   shrink / grow the hexagon side length
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/hexgrid"
	"github.com/gogpu/hexgrid/backend/ebitengine"
)

var (
	flagWidth  = flag.Int("width", 12, "map width in tiles")
	flagHeight = flag.Int("height", 10, "map height in tiles")
	flagTile   = flag.Int("tile", 48, "tile size in pixels")
	flagSide   = flag.Int("side", 24, "hexagon side length in pixels")
	flagV      = flag.Bool("v", false, "log debug output to stderr")
)

const (
	screenWidth  = 960
	screenHeight = 720
)

// cell is a demo map cell with solid-color pixel content.
type cell struct {
	img *image.RGBA
}

func (c *cell) Empty() bool           { return c == nil || c.img == nil }
func (c *cell) Image() image.Image    { return c.img }
func (c *cell) Size() hexgrid.Size    { return hexgrid.Sz(c.img.Rect.Dx(), c.img.Rect.Dy()) }
func newCell(w, h int, col color.RGBA) *cell {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
	return &cell{img: img}
}

// layer is a demo tile layer with a checkered palette and a few holes.
type layer struct {
	width, height int
	cells         []*cell
}

func newLayer(width, height, tile int) *layer {
	palette := []color.RGBA{
		{0x2d, 0x6a, 0x4f, 0xff},
		{0x40, 0x91, 0x6c, 0xff},
		{0x74, 0xc6, 0x9d, 0xff},
	}
	l := &layer{
		width:  width,
		height: height,
		cells:  make([]*cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x*7+y*3)%11 == 0 {
				continue // leave a hole
			}
			l.cells[y*width+x] = newCell(tile, tile, palette[(x+y)%len(palette)])
		}
	}
	return l
}

func (l *layer) Bounds() hexgrid.Rect    { return hexgrid.Rc(0, 0, l.width, l.height) }
func (l *layer) Position() hexgrid.Point { return hexgrid.Pt(0, 0) }
func (l *layer) Width() int              { return l.width }
func (l *layer) Height() int             { return l.height }

func (l *layer) CellAt(tile hexgrid.Point) hexgrid.Cell {
	c := l.cells[tile.Y*l.width+tile.X]
	if c == nil {
		return nil
	}
	return c
}

// viewer is the ebiten game loop around one renderer configuration.
type viewer struct {
	cfg     hexgrid.StaggerConfig
	ws      hexgrid.Workspace
	layer   *layer
	surface *ebitengine.Surface

	// off is the offscreen grid image, recreated when the grid's pixel
	// size changes.
	off *ebiten.Image

	offset hexgrid.Point
	hover  hexgrid.Point
}

func newViewer() *viewer {
	v := &viewer{
		cfg: hexgrid.StaggerConfig{
			Orientation: hexgrid.OrientationHexagonal,
			Axis:        hexgrid.StaggerX,
			Parity:      hexgrid.StaggerOdd,
			SideLength:  *flagSide,
		},
		ws: hexgrid.Workspace{
			Width:      *flagWidth,
			Height:     *flagHeight,
			TileWidth:  *flagTile,
			TileHeight: *flagTile,
		},
		layer:  newLayer(*flagWidth, *flagHeight, *flagTile),
		offset: hexgrid.Pt(40, 60),
	}
	v.surface = ebitengine.NewSurface(nil)
	return v
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if v.cfg.Axis == hexgrid.StaggerX {
			v.cfg.Axis = hexgrid.StaggerY
		} else {
			v.cfg.Axis = hexgrid.StaggerX
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if v.cfg.Parity == hexgrid.StaggerOdd {
			v.cfg.Parity = hexgrid.StaggerEven
		} else {
			v.cfg.Parity = hexgrid.StaggerOdd
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if v.cfg.Orientation == hexgrid.OrientationHexagonal {
			v.cfg.Orientation = hexgrid.OrientationStaggered
		} else {
			v.cfg.Orientation = hexgrid.OrientationHexagonal
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && v.cfg.SideLength > 0 {
		v.cfg.SideLength -= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && v.cfg.SideLength < v.ws.TileWidth {
		v.cfg.SideLength += 2
	}

	r := hexgrid.New(v.cfg)
	mx, my := ebiten.CursorPosition()
	v.hover = r.ScreenToTile(float64(mx-v.offset.X), float64(my-v.offset.Y), v.ws)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x14, 0x1a, 0xff})

	r := hexgrid.New(v.cfg)
	size := r.GridSize(v.ws)

	// Render in grid pixel coordinates into an offscreen image, then
	// place it at the view offset in one blit.
	if v.off == nil || v.off.Bounds().Dx() != size.W || v.off.Bounds().Dy() != size.H {
		if v.off != nil {
			v.off.Deallocate()
		}
		v.off = ebiten.NewImage(size.W, size.H)
	}
	v.off.Clear()
	v.surface.SetTarget(v.off)

	exposed := hexgrid.Rc(0, 0, size.W, size.H)
	r.DrawTileLayer(v.surface, v.layer, v.ws, exposed)
	r.DrawGrid(v.surface, exposed, v.ws, color.RGBA{0xc8, 0xd0, 0xda, 0x80})

	if v.hover.In(v.ws.Bounds()) {
		sel := hexgrid.Region{hexgrid.RcSized(v.hover.X, v.hover.Y, 1, 1)}
		r.DrawTileSelection(v.surface, sel, v.ws, color.RGBA{0xff, 0xd1, 0x4d, 0x90}, exposed)
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(v.offset.X), float64(v.offset.Y))
	screen.DrawImage(v.off, &op)

	msg := fmt.Sprintf("axis=%v parity=%v orientation=%v side=%d  hover=(%d,%d)\n[A]xis [P]arity [O]rientation [-/=] side",
		v.cfg.Axis, v.cfg.Parity, v.cfg.Orientation, v.cfg.SideLength,
		v.hover.X, v.hover.Y)
	ebitenutil.DebugPrint(screen, msg)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	if *flagV {
		hexgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("hexgrid viewer")
	if err := ebiten.RunGame(newViewer()); err != nil {
		log.Fatal(err)
	}
}
