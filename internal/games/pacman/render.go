package pacman

import (
	"strings"

	platformcore "github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
)

// Layout constants
const (
	cellW        = 2 // terminal columns per tile
	hudHeight    = 2 // status line + gap
	footerHeight = 1 // controls hint

	// blinkTicks is how long before Frightened ends the ghosts start flashing.
	blinkTicks = 120
)

// boardSize returns the board footprint in terminal cells.
func boardSize(g *core.Grid) (w, h int) {
	return g.W * cellW, g.H
}

var ghostColors = map[string]platformcore.Color{
	"blinky": platformcore.ColorRed,
	"pinky":  platformcore.ColorPink,
	"inky":   platformcore.ColorCyan,
	"clyde":  platformcore.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderOverlay(dst, "Cannot start game", firstLine(g.err.Error()))
		return
	}
	if g.snap.Grid == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := boardSize(g.snap.Grid)
		g.renderOverlay(dst, "Window too small", "Need "+itoa(w)+"x"+itoa(h+hudHeight+footerHeight))
		return
	}

	ox, oy := g.boardOrigin(dst)
	g.renderMaze(dst, ox, oy)
	g.renderGhosts(dst, ox, oy)
	g.renderPlayer(dst, ox, oy)
	g.renderPopups(dst, ox, oy)
	g.renderFooter(dst)

	_, bh := boardSize(g.snap.Grid)
	msgY := oy + bh/2
	switch {
	case g.snap.State == core.StateGameOver:
		g.renderOverlay(dst, "GAME OVER", "Score "+itoa(g.snap.Score)+" - R to restart")
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "Press P to continue")
	case g.snap.State == core.StateReady:
		dst.DrawTextCentered(msgY, " READY! ", platformcore.ColorBrightYellow)
	case g.snap.State == core.StateLevelClear:
		dst.DrawTextCentered(msgY, " LEVEL CLEAR ", platformcore.ColorBrightWhite)
	}
}

// boardOrigin centres the board below the HUD.
func (g *Game) boardOrigin(dst *platformcore.Screen) (x, y int) {
	w, h := boardSize(g.snap.Grid)
	free := dst.Height() - hudHeight - footerHeight - h
	return (dst.Width() - w) / 2, hudHeight + platformcore.Max(free, 0)/2
}

// renderHUD draws the status line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	high := platformcore.Max(g.highScore, g.snap.Score)
	left := " SCORE " + itoa(g.snap.Score) + "   HIGH " + itoa(high) + "   LEVEL " + itoa(g.snap.Level)
	if g.demo {
		left += "   DEMO"
	}
	dst.DrawTextColor(0, 0, left, platformcore.ColorBrightWhite)

	lives := strings.Repeat("ᗧ ", platformcore.Max(g.snap.Lives, 0))
	dst.DrawTextColor(dst.Width()-len([]rune(lives))-1, 0, lives, platformcore.ColorBrightYellow)
}

// renderFooter draws the controls hint.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	hint := " ←↑↓→/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
	if g.demo {
		hint = " Autopilot playing | P: Pause | R: Restart | Q: Quit"
	}
	dst.DrawTextColor(0, dst.Height()-1, hint, platformcore.ColorGray)
}

// renderMaze draws walls and remaining pellets.
func (g *Game) renderMaze(dst *platformcore.Screen, ox, oy int) {
	grid := g.snap.Grid
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			sx, sy := ox+x*cellW, oy+y
			switch grid.At(core.C(x, y)) {
			case core.TileWall:
				dst.SetColored(sx, sy, '█', platformcore.ColorBlue)
				dst.SetColored(sx+1, sy, '█', platformcore.ColorBlue)
			case core.TilePellet:
				dst.SetColored(sx, sy, '·', platformcore.ColorWhite)
			case core.TilePowerPellet:
				// Power pellets blink
				if (g.frame/15)%2 == 0 || g.snap.State != core.StatePlaying {
					dst.SetColored(sx, sy, '●', platformcore.ColorBrightWhite)
				}
			}
		}
	}
}

// screenPos maps an entity to its screen cell. Horizontal movement is
// drawn at half-tile resolution.
func (g *Game) screenPos(v core.View, ox, oy int) (int, int) {
	grid := g.snap.Grid
	col := v.Tile.X * cellW
	if v.Offset >= 0.5 {
		switch v.Dir {
		case core.DirRight:
			col++
		case core.DirLeft:
			col--
		}
	}
	width := grid.W * cellW
	col = (col + width) % width
	return ox + col, oy + v.Tile.Y
}

// renderGhosts draws each ghost in its name colour, blue when frightened
// and as eyes when eaten.
func (g *Game) renderGhosts(dst *platformcore.Screen, ox, oy int) {
	for _, gh := range g.snap.Ghosts {
		x, y := g.screenPos(gh.View, ox, oy)
		r, c := 'ᗣ', platformcore.ColorMagenta
		if named, ok := ghostColors[gh.Name]; ok {
			c = named
		}
		switch gh.Mode {
		case core.ModeFrightened:
			c = platformcore.ColorBrightBlue
			if g.snap.FrightenedLeft < blinkTicks && (g.frame/8)%2 == 1 {
				c = platformcore.ColorBrightWhite
			}
		case core.ModeEaten:
			r, c = '"', platformcore.ColorBrightWhite
		}
		dst.SetColored(x, y, r, c)
	}
}

// renderPlayer draws the player facing its heading.
func (g *Game) renderPlayer(dst *platformcore.Screen, ox, oy int) {
	if g.snap.State == core.StatePlayerCaught && (g.frame/10)%2 == 1 {
		return
	}
	x, y := g.screenPos(g.snap.Player, ox, oy)
	r := 'ᗧ'
	switch g.snap.Player.Dir {
	case core.DirLeft:
		r = 'ᗤ'
	case core.DirUp:
		r = 'ᗢ'
	case core.DirDown:
		r = 'ᗜ'
	}
	dst.SetColored(x, y, r, platformcore.ColorBrightYellow)
}

// renderPopups draws ghost points where the ghost was eaten.
func (g *Game) renderPopups(dst *platformcore.Screen, ox, oy int) {
	for _, p := range g.popups {
		dst.DrawTextColor(ox+p.at.X*cellW, oy+p.at.Y, p.text, platformcore.ColorCyan)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := platformcore.Max(len([]rune(line1)), len([]rune(line2)))
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), maxLen+4, 5)

	dst.DrawRect(box, platformcore.Cell{Rune: ' '})
	dst.DrawBox(box, platformcore.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorWhite)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
