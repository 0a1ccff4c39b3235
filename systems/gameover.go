package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/archetypes"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/fonts"
)

// NewUpdateGameOver creates the system driving the results screen.
// While a qualifying name is being entered the form owns all input, so
// menu navigation stands down until the name is confirmed.
func NewUpdateGameOver(sceneChanger SceneChanger, createPlayScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		if gameOver.EnteringName {
			return
		}
		input := getOrCreateInput(e)

		numOptions := len(cfg.GameOver.MenuOptions)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption((int(gameOver.SelectedOption) - 1 + numOptions) % numOptions)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption((int(gameOver.SelectedOption) + 1) % numOptions)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createPlayScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	titleWidth := len(title) * 22
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	scoreFont := fonts.Score.Get()
	scoreText := fmt.Sprintf("SCORE %d", gameOver.Score)
	scoreWidth := len(scoreText) * 13
	text.Draw(screen, scoreText, scoreFont, int((width-float64(scoreWidth))/2), int(cfg.GameOver.ScoreY), cfg.HUD.TextColor)

	if gameOver.Saved && gameOver.Rank >= 0 {
		rankText := fmt.Sprintf("NEW BEST #%d", gameOver.Rank+1)
		rankWidth := len(rankText) * 10
		text.Draw(screen, rankText, fonts.Body.Get(), int((width-float64(rankWidth))/2), int(cfg.GameOver.ScoreY)+30, cfg.Yellow)
	}

	drawRankingTable(e, screen, cfg.GameOver.ScoreY+80, gameOver.Rank)

	// Name entry replaces the menu options until the score is saved.
	if gameOver.EnteringName {
		return
	}

	menuFont := fonts.Score.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)
		textColor := cfg.GameOver.TextColorNormal
		if i == int(gameOver.SelectedOption) {
			textColor = cfg.GameOver.TextColorSelected
		}
		textWidth := len(option) * 13
		text.Draw(screen, option, menuFont, int((width-float64(textWidth))/2), int(y+cfg.GameOver.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Menu"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, hintFont, int((width-float64(hintWidth))/2), int(height)-12, cfg.GameOver.TextColorNormal)
}

func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	gameOverEntry, ok := components.GameOver.First(e.World)
	if !ok {
		gameOverEntry = archetypes.GameOver.Spawn(e)
		components.GameOver.SetValue(gameOverEntry, components.GameOverData{
			SelectedOption: components.GameOverRetry,
			Rank:           -1,
		})
	}
	return components.GameOver.Get(gameOverEntry)
}
