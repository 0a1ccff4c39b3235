package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// SpaceData wraps the physics space (singleton component).
type SpaceData struct {
	Space *cp.Space
}

var Space = donburi.NewComponentType[SpaceData]()
