package core

import (
	"fmt"
	"strings"
	"unicode"
)

// RenderASCII renders a snapshot as a multi-line string for debugging
// and headless runs. The player is 'C', ghosts use the first letter of
// their name, frightened ghosts 'w' and eaten ghosts '"'.
func RenderASCII(s Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tick: %d | Level: %d | Score: %d | Lives: %d | State: %s\n",
		s.Tick, s.Level, s.Score, s.Lives, s.State)
	if s.Grid == nil {
		return sb.String()
	}

	g := s.Grid
	board := make([]rune, len(g.Tiles))
	for i, t := range g.Tiles {
		board[i] = t.Char()
	}
	put := func(c Coord, r rune) {
		c = g.Wrap(c)
		if g.InBounds(c) {
			board[c.Y*g.W+c.X] = r
		}
	}
	for _, gh := range s.Ghosts {
		put(gh.Tile, ghostRune(gh))
	}
	put(s.Player.Tile, 'C')

	for y := 0; y < g.H; y++ {
		sb.WriteString(string(board[y*g.W : (y+1)*g.W]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func ghostRune(g GhostView) rune {
	switch g.Mode {
	case ModeFrightened:
		return 'w'
	case ModeEaten:
		return '"'
	}
	for _, r := range g.Name {
		return unicode.ToUpper(r)
	}
	return 'G'
}
