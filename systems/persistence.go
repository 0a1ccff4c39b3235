package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/highscore"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for high score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Ranking.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRankings loads the high score table from disk. It never returns
// nil: a missing or unreadable save yields an empty table so the game
// keeps running without scores.
func LoadRankings() *highscore.Table {
	table := highscore.NewTable(cfg.Ranking.Size)
	if !gdataInitialized || gdataManager == nil {
		return table
	}

	data, err := gdataManager.LoadItem(cfg.Ranking.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load rankings: %v", err)
		return table
	}
	if len(data) == 0 {
		// No saved rankings yet
		return table
	}

	if err := json.Unmarshal(data, table); err != nil {
		log.Printf("Warning: Could not parse saved rankings: %v", err)
		return highscore.NewTable(cfg.Ranking.Size)
	}
	return table
}

// SaveRankings writes the high score table to disk
func SaveRankings(table *highscore.Table) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(table)
	if err != nil {
		log.Printf("Warning: Could not serialize rankings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Ranking.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save rankings: %v", err)
		return err
	}
	return nil
}
