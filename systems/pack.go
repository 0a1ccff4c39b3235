package systems

import (
	"log"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/assets"
	"github.com/automoto/stackdrop/components"
)

var packWatcher *assets.PackWatcher

// StartPackWatcher loads the piece pack directory and begins mirroring
// later file changes into the registry. Call once at startup; a missing
// directory just means no custom pieces.
func StartPackWatcher(dir string) {
	if n := assets.LoadPack(dir); n > 0 {
		log.Printf("Loaded %d pack pieces from %s", n, dir)
	}
	w, err := assets.NewPackWatcher(dir)
	if err != nil {
		return
	}
	packWatcher = w
}

// UpdatePack applies pack file changes to the running round: a changed
// piece loses its cached collision shape so its next appearance
// re-extracts from the new artwork. Pieces already on the tower keep
// the shape they fell with.
func UpdatePack(e *ecs.ECS) {
	if packWatcher == nil {
		return
	}
	for {
		select {
		case id, ok := <-packWatcher.Events:
			if !ok {
				packWatcher = nil
				return
			}
			log.Printf("Piece pack changed: %s", id)
			if entry, found := components.Shapes.First(e.World); found {
				components.Shapes.Get(entry).Cache.Invalidate(id)
			}
		case err, ok := <-packWatcher.Errors:
			if !ok {
				packWatcher = nil
				return
			}
			log.Printf("Warning: piece pack watcher: %v", err)
		default:
			return
		}
	}
}
