package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the current state of the game over screen.
type GameOverData struct {
	SelectedOption GameOverOption
	Score          int
	// Rank is the table position the score earned, -1 when it did not
	// qualify. A qualifying score opens name entry before the menu
	// options activate.
	Rank         int
	EnteringName bool
	Name         string
	Saved        bool
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
