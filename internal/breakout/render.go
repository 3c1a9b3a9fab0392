package breakout

import (
	"fmt"

	"github.com/avorobev/breakout-tui/internal/core"
)

// Render draws the current game state into the screen buffer.
// World coordinates are projected onto the terminal cell grid; the main
// menu is drawn by the platform layer (it owns the login form).
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	switch g.phase {
	case PhaseMainMenu:
		// Login form rendered by the platform layer.
	case PhasePostLoginMenu:
		g.renderPostLoginMenu(screen)
	case PhaseRunning:
		g.renderPlayfield(screen)
	case PhasePaused:
		g.renderPlayfield(screen)
		g.renderOverlay(screen, "PAUSED", "Press Enter to resume")
	case PhaseGameOver:
		g.renderPlayfield(screen)
		g.renderOverlay(screen, "GAME OVER", "Press R to play again, Q to quit")
	}
}

// cellX projects a world x-coordinate onto the screen column.
func (g *Game) cellX(screen *core.Screen, x float64) int {
	return int(x * float64(screen.Width()) / WorldW)
}

// cellY projects a world y-coordinate onto the screen row, reserving the
// top row for the HUD.
func (g *Game) cellY(screen *core.Screen, y float64) int {
	h := screen.Height() - 1
	if h < 1 {
		h = 1
	}
	return 1 + int(y*float64(h)/WorldH)
}

// cellW projects a world width onto a cell span of at least one column.
func (g *Game) cellW(screen *core.Screen, w float64) int {
	cw := int(w * float64(screen.Width()) / WorldW)
	if cw < 1 {
		cw = 1
	}
	return cw
}

func (g *Game) renderPostLoginMenu(screen *core.Screen) {
	midY := screen.Height() / 2
	screen.DrawTextCenteredColored(midY-3, "B R E A K O U T", core.ColorBrightCyan)
	screen.DrawTextCentered(midY-1, fmt.Sprintf("Welcome, %s!", g.user))
	screen.DrawTextCentered(midY, fmt.Sprintf("High score: %d", g.highScore))
	screen.DrawTextCenteredColored(midY+2, "Press Enter to start", core.ColorBrightYellow)
	screen.DrawTextCentered(midY+4, "←/→ or A/D move · P pause · Q quit")
}

func (g *Game) renderPlayfield(screen *core.Screen) {
	g.renderStars(screen)
	g.renderBricks(screen)
	g.renderFragments(screen)
	g.renderPowerUps(screen)
	g.renderTrail(screen)
	g.renderParticles(screen)
	g.renderPaddle(screen)
	g.renderBall(screen)
	g.renderHUD(screen)
}

func (g *Game) renderHUD(screen *core.Screen) {
	left := fmt.Sprintf(" %s  Score: %d  High: %d", g.user, g.score, g.highScore)
	right := fmt.Sprintf("Level: %d  Lives: %d ", g.level, g.lives)
	screen.DrawTextColored(0, 0, left, core.ColorBrightWhite)
	screen.DrawTextColored(screen.Width()-len(right), 0, right, core.ColorBrightWhite)
}

func (g *Game) renderStars(screen *core.Screen) {
	for _, s := range g.stars {
		r := '·'
		if s.Size >= 3 {
			r = '+'
		}
		screen.SetCell(g.cellX(screen, s.X), g.cellY(screen, s.Y), r, core.ColorGray)
	}
}

func (g *Game) renderBricks(screen *core.Screen) {
	for _, b := range g.bricks {
		y := g.cellY(screen, b.Rect.CenterY())
		x := g.cellX(screen, b.Rect.X)
		w := g.cellW(screen, b.Rect.W)
		color := core.ColorRed
		if b.PowerUp != PowerUpNone {
			color = core.ColorBrightMagenta
		}
		screen.DrawHLine(x, y, w, '█', color)
	}
}

func (g *Game) renderFragments(screen *core.Screen) {
	for _, f := range g.fragments {
		screen.SetCell(g.cellX(screen, f.X), g.cellY(screen, f.Y), '▪', core.ColorRed)
	}
}

func (g *Game) renderPowerUps(screen *core.Screen) {
	for _, p := range g.powerUps {
		var r rune
		var c core.Color
		switch p.Type {
		case PowerUpPaddleSize:
			r, c = '=', core.ColorBrightGreen
		case PowerUpSlowBall:
			r, c = '~', core.ColorBrightBlue
		case PowerUpExtraLife:
			r, c = '♥', core.ColorBrightRed
		default:
			r, c = '?', core.ColorWhite
		}
		screen.SetCell(g.cellX(screen, p.Rect.CenterX()), g.cellY(screen, p.Rect.CenterY()), r, c)
	}
}

func (g *Game) renderTrail(screen *core.Screen) {
	for _, p := range g.ball.Trail {
		if p.Size <= 0 {
			continue
		}
		screen.SetCell(g.cellX(screen, p.X), g.cellY(screen, p.Y), '·', core.ColorOrange)
	}
}

func (g *Game) renderParticles(screen *core.Screen) {
	for _, p := range g.particles {
		c := core.ColorOrange
		if p.G < 80 {
			c = core.ColorBrightRed
		}
		screen.SetCell(g.cellX(screen, p.X), g.cellY(screen, p.Y), '•', c)
	}
}

func (g *Game) renderPaddle(screen *core.Screen) {
	y := g.cellY(screen, g.paddle.Rect.CenterY())
	x := g.cellX(screen, g.paddle.Rect.X)
	w := g.cellW(screen, g.paddle.Rect.W)
	screen.DrawHLine(x, y, w, '▀', core.ColorBrightCyan)
}

func (g *Game) renderBall(screen *core.Screen) {
	screen.SetCell(
		g.cellX(screen, g.ball.Rect.CenterX()),
		g.cellY(screen, g.ball.Rect.CenterY()),
		'●', core.ColorBrightWhite,
	)
}

// renderOverlay draws a centered two-line message box over the playfield.
func (g *Game) renderOverlay(screen *core.Screen, title, hint string) {
	midY := screen.Height() / 2
	w := core.Max(len(title), len(hint)) + 6
	x := (screen.Width() - w) / 2
	screen.DrawBox(x, midY-2, w, 5, core.ColorBrightYellow)
	for yy := midY - 1; yy <= midY+1; yy++ {
		for xx := x + 1; xx < x+w-1; xx++ {
			screen.SetCell(xx, yy, ' ', core.ColorDefault)
		}
	}
	screen.DrawTextCenteredColored(midY-1, title, core.ColorBrightYellow)
	screen.DrawTextCentered(midY+1, hint)
}
