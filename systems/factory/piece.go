package factory

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/archetypes"
	"github.com/automoto/stackdrop/assets"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/shapes"
	"github.com/automoto/stackdrop/silhouette"
	"github.com/automoto/stackdrop/tags"
)

// CreatePiece spawns a dynamic body for a resolved shape entry with its
// sprite, centered on the entry's anchor at the given spawn position.
func CreatePiece(e *ecs.ECS, id string, shapeEntry *shapes.Entry, x, y float64) *donburi.Entry {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry).Space

	entry := archetypes.Piece.Spawn(e)

	body := space.AddBody(cp.NewBody(cfg.Piece.Mass, pieceMoment(shapeEntry)))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.UserData = entry

	cpShapes := buildPieceShapes(body, shapeEntry)
	for _, s := range cpShapes {
		s.SetFriction(cfg.Piece.Friction)
		s.SetElasticity(cfg.Piece.Elasticity)
		s.SetCollisionType(tags.CollisionPiece)
		space.AddShape(s)
	}

	img, imgOK := assets.PieceImage(id)
	if !imgOK {
		img = assets.FallbackTile()
	}

	components.Piece.SetValue(entry, components.PieceData{
		AssetID: id,
		Entry:   shapeEntry,
	})
	components.Body.SetValue(entry, components.BodyData{
		Body:   body,
		Shapes: cpShapes,
	})
	components.Sprite.SetValue(entry, components.SpriteData{
		Image:    img,
		Fallback: !imgOK,
	})
	return entry
}

// pieceMoment computes the moment of inertia about the body origin,
// which the shape entry anchors at the piece's center of gravity.
func pieceMoment(shapeEntry *shapes.Entry) float64 {
	if shapeEntry.Shape.Kind == shapes.KindPolygon {
		verts := toVectors(shapeEntry.WorldPolygon())
		return cp.MomentForPoly(cfg.Piece.Mass, len(verts), verts, cp.Vector{}, cfg.Piece.ShapeRadius)
	}
	w, h := shapeEntry.WorldSize()
	return cp.MomentForBox(cfg.Piece.Mass, w, h)
}

// buildPieceShapes turns the cached geometry into chipmunk shapes.
// Traced outlines are concave, so the contour is triangulated and each
// cell becomes its own convex shape on the shared body; if the
// decomposition fails the convex hull stands in. Rectangle entries
// become a single box.
func buildPieceShapes(body *cp.Body, shapeEntry *shapes.Entry) []*cp.Shape {
	if shapeEntry.Shape.Kind == shapes.KindRectangle {
		w, h := shapeEntry.WorldSize()
		return []*cp.Shape{cp.NewBox(body, w, h, cfg.Piece.ShapeRadius)}
	}

	world := shapeEntry.WorldPolygon()
	tris, ok := shapes.Triangulate(world)
	if !ok {
		verts := toVectors(world)
		return []*cp.Shape{cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), cfg.Piece.ShapeRadius)}
	}

	out := make([]*cp.Shape, 0, len(tris))
	for _, tri := range tris {
		verts := []cp.Vector{
			{X: tri[0].X, Y: tri[0].Y},
			{X: tri[1].X, Y: tri[1].Y},
			{X: tri[2].X, Y: tri[2].Y},
		}
		out = append(out, cp.NewPolyShapeRaw(body, 3, verts, cfg.Piece.ShapeRadius))
	}
	return out
}

func toVectors(c silhouette.Contour) []cp.Vector {
	verts := make([]cp.Vector, len(c))
	for i, p := range c {
		verts[i] = cp.Vector{X: p.X, Y: p.Y}
	}
	return verts
}
