package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stackdrop/highscore"
)

// RankingData holds the loaded high score table (singleton component).
type RankingData struct {
	Table *highscore.Table
}

var Ranking = donburi.NewComponentType[RankingData]()
