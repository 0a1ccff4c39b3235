package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stackdrop/shapes"
)

// PieceData identifies a dropped piece and carries its resolved
// collision entry for rendering and debug overlays.
type PieceData struct {
	AssetID string
	Entry   *shapes.Entry
	// TouchedDown flips on first contact with anything solid; used to
	// play the landing sound exactly once per piece.
	TouchedDown bool
}

var Piece = donburi.NewComponentType[PieceData]()
