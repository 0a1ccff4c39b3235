package systems

import (
	"context"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/fonts"
)

// NewUpdateSession creates the round state machine system. It owns the
// NotStarted->AwaitingDrop kickoff, the pause toggle, the restart
// shortcut and the fade-out handoff to the game over scene.
func NewUpdateSession(sceneChanger SceneChanger, createPlayScene func() interface{}, createGameOverScene func(score int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		session := GetOrCreateSession(e)
		input := getOrCreateInput(e)

		switch session.State {
		case components.SessionNotStarted:
			// Wait for the menu's confirm press to clear so it cannot
			// double as the first drop.
			if !GetAction(input, cfg.ActionDrop).Pressed {
				session.State = components.SessionAwaitingDrop
			}

		case components.SessionGameOver:
			session.OverFrames++
			if session.OverFrames >= cfg.GameOver.FadeInFrames {
				sceneChanger.ChangeScene(createGameOverScene(session.Score))
			}
			return

		default:
			if GetAction(input, cfg.ActionPause).JustPressed {
				session.Paused = !session.Paused
			}
		}

		if GetAction(input, cfg.ActionRestart).JustPressed {
			if session.Cancel != nil {
				session.Cancel()
			}
			sceneChanger.ChangeScene(createPlayScene())
		}
	}
}

// EndRound moves the session to GameOver. Terminal: calling it again is
// a no-op. Cancels the session context so in-flight shape resolutions
// abort instead of caching work nobody will use.
func EndRound(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	if session.State == components.SessionGameOver {
		return
	}
	session.State = components.SessionGameOver
	session.Paused = false
	session.OverFrames = 0
	if session.Cancel != nil {
		session.Cancel()
	}
	PlaySFX(e, cfg.SoundGameOver)
}

// WithGameplayChecks wraps a system to skip execution while paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if session := GetOrCreateSession(e); session.Paused {
			return
		}
		system(e)
	}
}

// DrawSessionOverlay renders the pause curtain and the game over fade
// on top of the world.
func DrawSessionOverlay(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	if session.Paused {
		vector.FillRect(
			screen,
			0, 0,
			float32(width), float32(height),
			cfg.GameOver.OverlayColor,
			false,
		)
		titleFont := fonts.Title.Get()
		title := "PAUSED"
		titleWidth := len(title) * 22
		text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(height/2), cfg.White)

		hint := "Esc: Resume   R: Restart"
		hintFont := fonts.Small.Get()
		hintWidth := len(hint) * 7
		text.Draw(screen, hint, hintFont, int((width-float64(hintWidth))/2), int(height)-24, cfg.HUD.TextColor)
		return
	}

	if session.State != components.SessionGameOver {
		return
	}

	// Fade the overlay in while the tower finishes collapsing.
	progress := float64(session.OverFrames) / float64(cfg.GameOver.FadeInFrames)
	if progress > 1 {
		progress = 1
	}
	overlay := cfg.GameOver.OverlayColor
	overlay.A = uint8(float64(overlay.A) * progress)
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		overlay,
		false,
	)

	if progress >= 0.5 {
		titleFont := fonts.Title.Get()
		title := "GAME OVER"
		titleWidth := len(title) * 22
		text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)
	}
}

// GetOrCreateSession returns the singleton Session component, creating
// it with a fresh context and RNG if the factory has not run yet.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	if _, ok := components.Session.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Session))
		ctx, cancel := context.WithCancel(context.Background())
		components.Session.SetValue(ent, components.SessionData{
			State:   components.SessionNotStarted,
			Ctx:     ctx,
			Cancel:  cancel,
			Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
			NewRank: -1,
		})
	}

	ent, _ := components.Session.First(e.World)
	return components.Session.Get(ent)
}
