package components

import (
	"context"
	"math/rand"

	"github.com/yohamta/donburi"
)

// SessionState is the round lifecycle. Transitions only move forward
// within a round: NotStarted -> AwaitingDrop -> Dropping -> back to
// AwaitingDrop after a landing, and any active state -> GameOver.
type SessionState int

const (
	SessionNotStarted SessionState = iota
	SessionAwaitingDrop
	SessionDropping
	SessionGameOver
)

// SessionData is the singleton round state (singleton component).
type SessionData struct {
	State  SessionState
	Score  int
	Paused bool

	// Ctx is canceled when the round ends so in-flight shape
	// resolutions abort instead of caching work nobody needs.
	Ctx    context.Context
	Cancel context.CancelFunc

	// Rand drives piece selection; seeded per round.
	Rand *rand.Rand

	// OverFrames counts frames since the round ended, for the overlay
	// fade.
	OverFrames int

	// NewRank is the position the final score earned in the ranking
	// table, or -1 when it did not qualify.
	NewRank int
}

var Session = donburi.NewComponentType[SessionData]()
