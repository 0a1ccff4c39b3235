// Command contour is a tuning viewer for the outline pipeline. It shows
// how each piece sprite becomes a collision polygon: the extracted
// contour, its triangulation, the centroid anchor, and the bounding box
// a fallback would use. Point it at a custom PNG to check artwork
// before dropping it into a piece pack.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automoto/stackdrop/assets"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/shapes"
	"github.com/automoto/stackdrop/silhouette"
)

const (
	screenWidth  = 800
	screenHeight = 600
	viewMargin   = 80
)

var (
	contourColor  = color.RGBA{R: 0, G: 255, B: 120, A: 255}
	triangleColor = color.RGBA{R: 120, G: 120, B: 140, A: 140}
	anchorColor   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	boxColor      = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	backColor     = color.RGBA{R: 24, G: 28, B: 48, A: 255}
)

// view is everything the pipeline produced for one piece.
type view struct {
	id      string
	sprite  *ebiten.Image
	w, h    int
	contour silhouette.Contour
	ok      bool
	tris    []shapes.Triangle
	trisOK  bool
}

func buildView(id string) *view {
	v := &view{id: id}

	img, err := assets.Decode(context.Background(), id)
	if err != nil {
		log.Printf("decode %s: %v", id, err)
		v.w = cfg.Extractor.FallbackSize
		v.h = cfg.Extractor.FallbackSize
		return v
	}
	bounds := img.Bounds()
	v.w = bounds.Dx()
	v.h = bounds.Dy()
	v.sprite = ebiten.NewImageFromImage(img)

	v.contour, v.ok = silhouette.Extract(img, silhouette.Config{
		AlphaThreshold:       cfg.Extractor.AlphaThreshold,
		SamplingStep:         cfg.Extractor.SamplingStep,
		MinSegmentLength:     cfg.Extractor.MinSegmentLength,
		TraceIterationBudget: cfg.Extractor.TraceIterationBudget,
	})
	if v.ok {
		v.tris, v.trisOK = shapes.Triangulate(v.contour)
	}
	return v
}

type Game struct {
	ids   []string
	index int
	views map[string]*view

	showSprite    bool
	showTriangles bool
}

func NewGame(ids []string, start string) *Game {
	g := &Game{
		ids:           ids,
		views:         map[string]*view{},
		showSprite:    true,
		showTriangles: true,
	}
	for i, id := range ids {
		if id == start {
			g.index = i
		}
	}
	return g
}

func (g *Game) current() *view {
	id := g.ids[g.index]
	v, ok := g.views[id]
	if !ok {
		v = buildView(id)
		g.views[id] = v
	}
	return v
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.index = (g.index + 1) % len(g.ids)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.index = (g.index - 1 + len(g.ids)) % len(g.ids)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showTriangles = !g.showTriangles
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.showSprite = !g.showSprite
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// Rebuild, picking up edits to pack artwork on disk
		delete(g.views, g.ids[g.index])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backColor)
	v := g.current()

	// Fit the raster into the window
	zoom := float64(screenWidth-2*viewMargin) / float64(v.w)
	if fit := float64(screenHeight-2*viewMargin) / float64(v.h); fit < zoom {
		zoom = fit
	}
	offX := (screenWidth - float64(v.w)*zoom) / 2
	offY := (screenHeight - float64(v.h)*zoom) / 2

	if g.showSprite && v.sprite != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(offX, offY)
		screen.DrawImage(v.sprite, op)
	}

	if g.showTriangles {
		for _, tri := range v.tris {
			for i := range tri {
				a, b := tri[i], tri[(i+1)%3]
				strokeSegment(screen, a, b, zoom, offX, offY, triangleColor)
			}
		}
	}

	if v.ok {
		for i := range v.contour {
			a := v.contour[i]
			b := v.contour[(i+1)%len(v.contour)]
			strokeSegment(screen, a, b, zoom, offX, offY, contourColor)
		}
		drawAnchor(screen, v.contour.Centroid(), zoom, offX, offY)
	} else {
		// No usable contour; the game would fall back to this box
		vector.StrokeRect(screen, float32(offX), float32(offY),
			float32(float64(v.w)*zoom), float32(float64(v.h)*zoom), 1, boxColor, false)
	}

	g.drawStatus(screen, v)
}

func strokeSegment(screen *ebiten.Image, a, b silhouette.Point, zoom, offX, offY float64, clr color.RGBA) {
	vector.StrokeLine(screen,
		float32(a.X*zoom+offX), float32(a.Y*zoom+offY),
		float32(b.X*zoom+offX), float32(b.Y*zoom+offY),
		1, clr, false)
}

func drawAnchor(screen *ebiten.Image, p silhouette.Point, zoom, offX, offY float64) {
	x := float32(p.X*zoom + offX)
	y := float32(p.Y*zoom + offY)
	vector.StrokeLine(screen, x-6, y, x+6, y, 1, anchorColor, false)
	vector.StrokeLine(screen, x, y-6, x, y+6, 1, anchorColor, false)
}

func (g *Game) drawStatus(screen *ebiten.Image, v *view) {
	shape := "box fallback"
	if v.ok {
		shape = fmt.Sprintf("%d points", len(v.contour))
		if v.trisOK {
			shape += fmt.Sprintf(", %d triangles", len(v.tris))
		} else {
			shape += ", hull fallback"
		}
	}
	status := fmt.Sprintf("%s (%d/%d)  %dx%d  %s", v.id, g.index+1, len(g.ids), v.w, v.h, shape)
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
	ebitenutil.DebugPrintAt(screen, "arrows: piece  T: triangles  S: sprite  R: rebuild", 8, screenHeight-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	piece := flag.String("piece", "", "Piece id to show first")
	imagePath := flag.String("image", "", "PNG file to inspect alongside the builtin pieces")
	packDir := flag.String("pack", "", "Piece pack directory to include")
	flag.Parse()

	if *packDir != "" {
		if n := assets.LoadPack(*packDir); n > 0 {
			log.Printf("Loaded %d pack pieces from %s", n, *packDir)
		}
	}

	start := *piece
	if *imagePath != "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			log.Fatalf("reading %s: %v", *imagePath, err)
		}
		base := filepath.Base(*imagePath)
		id := "file/" + strings.TrimSuffix(base, filepath.Ext(base))
		assets.Register(id, data)
		start = id
	}

	ids := assets.PieceIDs()
	if len(ids) == 0 {
		log.Fatal("no pieces registered")
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Contour Viewer")
	if err := ebiten.RunGame(NewGame(ids, start)); err != nil {
		log.Fatal(err)
	}
}
