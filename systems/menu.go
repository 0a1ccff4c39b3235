package systems

import (
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/stackdrop/archetypes"
	"github.com/automoto/stackdrop/components"
	cfg "github.com/automoto/stackdrop/config"
	"github.com/automoto/stackdrop/fonts"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createPlayScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(cfg.Menu.MenuOptions)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch components.MainMenuOption(menu.SelectedIndex) {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createPlayScene())
			case components.MainMenuQuit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "STACKDROP"
	titleWidth := len(title) * 22
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Score.Get()
	for i, option := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		textWidth := len(option) * 13
		text.Draw(screen, option, menuFont, int((width-float64(textWidth))/2), int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	drawRankingTable(e, screen, cfg.Menu.RankingStartY, -1)

	hint := "Arrows: Navigate   Enter: Select"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, hintFont, int((width-float64(hintWidth))/2), int(height)-12, cfg.Menu.TextColorNormal)
}

// drawRankingTable renders the best results list shared by the menu and
// game over screens. highlight is the zero-based row to emphasize, -1
// for none.
func drawRankingTable(e *ecs.ECS, screen *ebiten.Image, startY float64, highlight int) {
	rankingEntry, ok := components.Ranking.First(e.World)
	if !ok {
		return
	}
	table := components.Ranking.Get(rankingEntry).Table
	if table == nil || table.Len() == 0 {
		return
	}

	width := float64(screen.Bounds().Dx())
	bodyFont := fonts.Body.Get()

	header := "BEST DROPS"
	headerWidth := len(header) * 10
	text.Draw(screen, header, bodyFont, int((width-float64(headerWidth))/2), int(startY), cfg.HUD.TextColor)

	for i, entry := range table.Entries() {
		y := int(startY) + 28 + i*24
		rowColor := cfg.Menu.TextColorNormal
		if i == highlight {
			rowColor = cfg.Menu.TextColorSelected
		}
		name := entry.Name
		if name == "" {
			name = "???"
		}
		text.Draw(screen, name, bodyFont, int(width/2)-120, y, rowColor)
		score := strconv.Itoa(entry.Score)
		text.Draw(screen, score, bodyFont, int(width/2)+120-len(score)*10, y, rowColor)
	}
}

func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	menuEntry, ok := components.Menu.First(e.World)
	if !ok {
		menuEntry = archetypes.Menu.Spawn(e)
		components.Menu.SetValue(menuEntry, components.MenuData{})
	}
	return components.Menu.Get(menuEntry)
}
