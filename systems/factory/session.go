package factory

import (
	"context"
	"math/rand"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/archetypes"
	"github.com/automoto/stackdrop/assets"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/highscore"
	"github.com/automoto/stackdrop/shapes"
	"github.com/automoto/stackdrop/silhouette"
)

// CreateSession spawns the round singleton in its initial state, with
// the context that shape resolutions run under.
func CreateSession(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Session.Spawn(e)
	ctx, cancel := context.WithCancel(context.Background())
	components.Session.SetValue(entry, components.SessionData{
		State:   components.SessionNotStarted,
		Ctx:     ctx,
		Cancel:  cancel,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		NewRank: -1,
	})
	return entry
}

// CreateShapes wires the collision outline cache to the piece registry
// with the configured extraction tuning.
func CreateShapes(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Shapes.Spawn(e)
	cache := shapes.NewCache(assets.Decode, shapes.Config{
		Extract: silhouette.Config{
			AlphaThreshold:       cfg.Extractor.AlphaThreshold,
			SamplingStep:         cfg.Extractor.SamplingStep,
			MinSegmentLength:     cfg.Extractor.MinSegmentLength,
			TraceIterationBudget: cfg.Extractor.TraceIterationBudget,
		},
		MaxDimension: cfg.Extractor.MaxPieceDimension,
		FallbackSize: cfg.Extractor.FallbackSize,
	})
	components.Shapes.SetValue(entry, components.ShapesData{Cache: cache})
	return entry
}

// CreateSpawner hangs the first piece over the playfield. The swing is
// an endless there-and-back tween across the span the stage allows, so
// it must run after CreatePlayfield.
func CreateSpawner(e *ecs.ECS, r *rand.Rand) *donburi.Entry {
	pfEntry, _ := components.Playfield.First(e.World)
	pf := components.Playfield.Get(pfEntry)

	seq := gween.NewSequence(
		gween.New(float32(pf.SwingMinX), float32(pf.SwingMaxX), cfg.Spawner.SwingSeconds, ease.InOutSine),
		gween.New(float32(pf.SwingMaxX), float32(pf.SwingMinX), cfg.Spawner.SwingSeconds, ease.InOutSine),
	)
	seq.SetLoop(-1)

	current := assets.RandomPieceID(r, "")
	entry := archetypes.Spawner.Spawn(e)
	components.Spawner.SetValue(entry, components.SpawnerData{
		CurrentID: current,
		NextID:    assets.RandomPieceID(r, current),
		X:         pf.SwingMinX,
		Swing:     seq,
	})
	return entry
}

// CreateRanking spawns the high score singleton around a loaded table.
func CreateRanking(e *ecs.ECS, table *highscore.Table) *donburi.Entry {
	entry := archetypes.Ranking.Spawn(e)
	components.Ranking.SetValue(entry, components.RankingData{Table: table})
	return entry
}
