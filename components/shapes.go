package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stackdrop/shapes"
)

// ShapesData wraps the collision outline cache (singleton component).
type ShapesData struct {
	Cache *shapes.Cache
}

var Shapes = donburi.NewComponentType[ShapesData]()
