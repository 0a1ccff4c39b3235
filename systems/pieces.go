package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/components"
	"github.com/automoto/stackdrop/tags"
)

// UpdatePieces watches the stacked tower: any piece sinking past the
// kill line ends the round, no matter which state the drop cycle is in.
func UpdatePieces(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.State != components.SessionAwaitingDrop && session.State != components.SessionDropping {
		return
	}

	pfEntry, ok := components.Playfield.First(e.World)
	if !ok {
		return
	}
	pf := components.Playfield.Get(pfEntry)

	tags.Piece.Each(e.World, func(entry *donburi.Entry) {
		if session.State == components.SessionGameOver {
			return
		}
		body := components.Body.Get(entry).Body
		if body.Position().Y > pf.KillY {
			EndRound(e)
		}
	})
}
