package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// BodyData ties an entity to its chipmunk body and collision shapes.
// Concave pieces carry one shape per triangulated cell. Body.UserData
// points back at the owning *donburi.Entry so collision handlers can
// reach components.
type BodyData struct {
	Body   *cp.Body
	Shapes []*cp.Shape
}

var Body = donburi.NewComponentType[BodyData]()
