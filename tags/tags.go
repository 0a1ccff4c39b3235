package tags

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

var (
	Piece = donburi.NewTag().SetName("Piece")
	Floor = donburi.NewTag().SetName("Floor")
)

// Collision types for physics handlers
const (
	CollisionPiece cp.CollisionType = iota + 1
	CollisionFloor
	CollisionWall
)
