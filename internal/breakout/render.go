package breakout

import (
	"fmt"

	"github.com/breakbricks/breakbricks/internal/core"
)

// Visual characters
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
	LockedChar = '·'
	SepChar    = '─'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
	case PhaseGameOver:
		g.renderFinal(dst, "GAME OVER")
	case PhaseVictory:
		g.renderFinal(dst, "YOU WIN!")
	default:
		g.renderPlayfield(dst)
		g.renderOverlay(dst)
	}
}

// renderMenu draws the title and level select row.
func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()

	dst.DrawTextCenteredColored(h/2-5, "B R E A K   B R I C K S", core.ColorBrightCyan)
	dst.DrawTextCentered(h/2-3, "Select level:")

	// Level row: unlocked levels show their number, locked a dot,
	// the cursor gets brackets
	row := ""
	for i := 1; i <= MaxLevel; i++ {
		label := LockedChar
		if i <= g.unlocked {
			label = rune('0' + i)
		}
		if i == g.menuCursor {
			row += fmt.Sprintf("[%c]", label)
		} else {
			row += fmt.Sprintf(" %c ", label)
		}
		if i < MaxLevel {
			row += " "
		}
	}
	dst.DrawTextCenteredColored(h/2-1, row, WorldColor(g.menuCursor))

	if g.menuCursor <= g.unlocked {
		if pattern, err := PatternForLevel(g.menuCursor); err == nil {
			dst.DrawTextCentered(h/2+1, pattern.String())
		}
	} else {
		dst.DrawTextCentered(h/2+1, "Locked")
	}

	dst.DrawTextCentered(h/2+4, "◄ ► select   Enter start   Q quit")
}

// renderPlayfield draws the HUD, bricks, paddle, and ball.
func (g *Game) renderPlayfield(dst *core.Screen) {
	world := WorldColor(g.levelIndex)

	// HUD: score left, lives center, level right
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))
	levelText := fmt.Sprintf("Level: %d/%d", g.levelIndex, MaxLevel)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	// Separator tinted by world theme
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, SepChar, world)
	}

	if g.level != nil {
		for i := range g.level.Bricks {
			brick := &g.level.Bricks[i]
			if !brick.Alive {
				continue
			}
			x := int(brick.Rect.X)
			y := int(brick.Rect.Y)
			for dx := 0; dx < int(brick.Rect.W); dx++ {
				dst.SetColored(x+dx, y, BrickChar, brick.Color)
			}
		}
	}

	// Paddle
	r := g.paddle.Rect()
	for dx := 0; dx < int(r.W); dx++ {
		dst.Set(int(r.X)+dx, int(g.paddle.Y), PaddleChar)
	}

	// Ball
	dst.SetColored(int(g.ball.X), int(g.ball.Y), BallChar, core.ColorBrightWhite)
}

// renderOverlay draws phase-dependent messages over the playfield.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhasePlaying:
		if g.ball.Stuck {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}

	case PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "P resume   Esc menu")

	case PhaseLevelClear:
		if g.levelIndex >= MaxLevel {
			g.drawCenteredBox(dst, "ALL LEVELS CLEAR!", fmt.Sprintf("Score: %d", g.score))
		} else {
			g.drawCenteredBox(dst, fmt.Sprintf("LEVEL %d CLEAR!", g.levelIndex), "+1 life")
		}

	case PhaseNameEntry:
		g.renderNameEntry(dst)
	}
}

// renderNameEntry draws the name prompt with the current buffer.
func (g *Game) renderNameEntry(dst *core.Screen) {
	title := "Enter your name"
	entry := string(g.nameBuf) + "_"
	g.drawCenteredBox(dst, title, entry)
}

// renderFinal draws the end-of-run screen.
func (g *Game) renderFinal(dst *core.Screen, title string) {
	h := dst.Height()
	color := core.ColorBrightRed
	if g.victory {
		color = core.ColorBrightGreen
	}
	dst.DrawTextCenteredColored(h/2-2, title, color)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Final score: %d", g.score))
	dst.DrawTextCentered(h/2+2, "Enter menu")
}

// drawCenteredBox draws a centered message box over the playfield.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), WorldColor(g.levelIndex))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
