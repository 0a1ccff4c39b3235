package config

import "image/color"

// ExtractorConfig contains the silhouette extraction tuning values.
type ExtractorConfig struct {
	AlphaThreshold       uint8   // pixel-opacity cutoff: alpha above this counts as solid
	SamplingStep         int     // trace grid resolution; speed/precision tradeoff
	MinSegmentLength     float64 // simplification aggressiveness in raster units
	TraceIterationBudget int     // safety bound against non-terminating traces
	MaxPieceDimension    float64 // world-scale normalization target for sprites
	FallbackSize         int     // assumed raster size when an image cannot be decoded
}

// PieceConfig contains the physical tuning shared by all dropped pieces.
type PieceConfig struct {
	Mass       float64
	Friction   float64
	Elasticity float64
	// Radius applied to polygon collision shapes; a small value rounds
	// off corners and keeps stacked pieces from snagging.
	ShapeRadius float64
}

// PhysicsConfig contains simulation-wide values. World units are pixels.
type PhysicsConfig struct {
	Gravity            float64 // downward, pixels/s^2
	TimeStep           float64 // fixed step per tick, seconds
	Iterations         uint    // solver iterations per step
	SleepTimeThreshold float64 // seconds of stillness before bodies sleep
}

// SpawnerConfig contains the held-piece swing and drop timing.
type SpawnerConfig struct {
	SwingMargin     float64 // horizontal distance kept from each playfield edge
	SwingSeconds    float32 // one sweep across the playfield
	SpawnY          float64 // height the held piece hangs at
	LandDelayFrames int     // frames after a drop until the piece counts as landed
	PrefetchNext    bool    // resolve the next piece's outline while the current one falls
}

// PlayfieldConfig contains the playfield geometry used when the embedded
// map is missing or malformed; normally these come from the map's object
// layers.
type PlayfieldConfig struct {
	FloorY         float64 // top surface of the floor platform
	FloorMinX      float64
	FloorMaxX      float64
	FloorThickness float64
	KillMargin     float64 // distance below the screen bottom that ends the game
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing float64 // how fast the camera eases toward its target (0.0-1.0)
	TopMargin       float64 // screen distance kept above the tower top
}

// HUDConfig contains in-game overlay configuration.
type HUDConfig struct {
	TextColor    color.RGBA
	ShadowColor  color.RGBA
	Margin       float64 // distance from the screen edges
	PreviewSize  float64 // edge length of the next-piece preview box
	PreviewAlpha float32 // preview sprite translucency
}

// MenuConfig contains main menu configuration values.
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	RankingStartY     float64
}

// GameOverConfig contains game over screen configuration values.
type GameOverConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	FadeInFrames      int // overlay fade after the tower collapses
	MaxNameLength     int // name entry limit for a qualifying score
}

// RankingConfig contains high score persistence configuration.
type RankingConfig struct {
	Size    int    // entries kept in the table
	AppName string // save directory name used by the data manager
	ItemKey string // item the table is stored under
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	DrawColliders bool // overlay collision outlines on every piece
	SkipMenu      bool // skip menu and go directly to game
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Extractor ExtractorConfig
var Piece PieceConfig
var Physics PhysicsConfig
var Spawner SpawnerConfig
var Playfield PlayfieldConfig
var Camera CameraConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Ranking RankingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyTop       = color.RGBA{R: 24, G: 28, B: 48, A: 255}
	SkyBottom    = color.RGBA{R: 64, G: 82, B: 128, A: 255}
	FloorColor   = color.RGBA{R: 54, G: 60, B: 72, A: 255}
	OutlineGreen = color.RGBA{R: 0, G: 255, B: 120, A: 255} // collider overlay polygons
	OutlineRed   = color.RGBA{R: 255, G: 80, B: 80, A: 255} // collider overlay fallback boxes
)

func init() {
	C = &Config{
		Width:  640,
		Height: 800,
	}

	// Extractor Config
	Extractor = ExtractorConfig{
		AlphaThreshold:       10,   // ignore near-invisible antialiasing fringes
		SamplingStep:         4,    // trace every 4th pixel
		MinSegmentLength:     15,   // drop traced points closer than this
		TraceIterationBudget: 5000, // plenty for any sane sprite boundary
		MaxPieceDimension:    120,  // largest on-screen piece edge
		FallbackSize:         120,  // undecodable assets become a box this big
	}

	// Piece Config
	Piece = PieceConfig{
		Mass:        4.0,
		Friction:    0.8, // grippy enough to stack without sliding apart
		Elasticity:  0.05,
		ShapeRadius: 1.0,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:            600.0, // pixels/s^2
		TimeStep:           1.0 / 60.0,
		Iterations:         20,
		SleepTimeThreshold: 0.5,
	}

	// Spawner Config
	Spawner = SpawnerConfig{
		SwingMargin:     140.0,
		SwingSeconds:    1.6, // one full sweep left-to-right
		SpawnY:          90.0,
		LandDelayFrames: 150, // 2.5s at 60fps, enough for a piece to settle
		PrefetchNext:    true,
	}

	// Playfield Config (fallback values; the embedded map normally wins)
	Playfield = PlayfieldConfig{
		FloorY:         710.0,
		FloorMinX:      120.0,
		FloorMaxX:      520.0,
		FloorThickness: 24.0,
		KillMargin:     120.0,
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing: 0.08,
		TopMargin:       240.0,
	}

	// HUD Config
	HUD = HUDConfig{
		TextColor:    White,
		ShadowColor:  color.RGBA{R: 0, G: 0, B: 0, A: 160},
		Margin:       16.0,
		PreviewSize:  72.0,
		PreviewAlpha: 0.85,
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor:   SkyTop,
		TitleColor:        Yellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            180.0,
		MenuStartY:        300.0,
		MenuItemHeight:    40.0,
		MenuItemGap:       10.0,
		MenuOptions:       []string{"Start", "Quit"},
		RankingStartY:     460.0,
	}

	// Game Over Config
	GameOver = GameOverConfig{
		OverlayColor:      BlackOverlay,
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            200.0,
		ScoreY:            270.0,
		MenuStartY:        560.0,
		MenuItemHeight:    40.0,
		MenuItemGap:       10.0,
		MenuOptions:       []string{"Retry", "Menu"},
		FadeInFrames:      45,
		MaxNameLength:     12,
	}

	// Ranking Config
	Ranking = RankingConfig{
		Size:    5,
		AppName: "stackdrop",
		ItemKey: "rankings.json",
	}

	Debug = DebugConfig{}
}
