package gemsnake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/gemsnake/internal/core"
	"github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"
)

const (
	cellWidth = 2 // glyph plus spacing
	hudHeight = 3 // two status lines and a separator
)

// gemStyles indexes glyph and color by kind-1.
var gemStyles = [...]struct {
	glyph rune
	color core.Color
}{
	{'◆', core.ColorRed},
	{'●', core.ColorGreen},
	{'▲', core.ColorBlue},
	{'■', core.ColorYellow},
	{'★', core.ColorMagenta},
	{'♦', core.ColorCyan},
	{'♥', core.ColorOrange},
	{'♣', core.ColorWhite},
}

func gemStyle(k board.Kind) (rune, core.Color) {
	if k == board.Empty || int(k) > len(gemStyles) {
		return ' ', core.ColorDefault
	}
	s := gemStyles[k-1]
	return s.glyph, s.color
}

// frameSize returns the board frame dimensions in screen cells.
func (g *Game) frameSize() (w, h int) {
	return g.cfg.Board.Width*cellWidth + 3, g.cfg.Board.Height + 2
}

func (g *Game) checkSize() {
	fw, fh := g.frameSize()
	g.tooSmall = g.screenW < fw || g.screenH < fh+hudHeight
}

// Render draws the HUD, the board, the snake and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()
	g.checkSize()

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Cannot start round", g.err.Error())
		return
	case g.round == nil:
		return
	case g.tooSmall:
		fw, fh := g.frameSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", fw, fh+hudHeight))
		return
	}

	fw, fh := g.frameSize()
	frame := core.NewRect((dst.Width()-fw)/2, hudHeight, fw, fh)

	g.renderHUD(dst, frame)
	dst.DrawBox(frame, core.ColorGray)
	g.renderGems(dst, frame)
	g.renderSnake(dst, frame)

	switch g.round.Phase() {
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P or Space to continue")
	case PhaseLost:
		reason := string(g.round.Reason())
		if g.lost != nil {
			reason = fmt.Sprintf("%s at %v", g.lost.Reason, g.lost.At)
		}
		g.renderOverlay(dst, "Game Over: "+reason, "Press R to restart")
	}
}

// toScreen maps a board cell to screen coordinates. Board row 0 is drawn at the bottom.
func (g *Game) toScreen(frame core.Rect, x, row int) (int, int) {
	return frame.X + 2 + x*cellWidth, frame.Y + g.cfg.Board.Height - row
}

func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	stats := g.round.Stats()
	line1 := fmt.Sprintf(" Gem Snake  Length: %d  Record: %d  Grow in: %.1fs",
		stats.AgentLength, stats.RecordLength, g.round.GrowthIn().Seconds())
	line2 := fmt.Sprintf(" Destroyed: %d  Total: %d  Longest chain: %d",
		stats.ExplosionsThisWave, stats.ExplosionsTotal, stats.BiggestChain)

	dst.DrawTextColored(0, 0, line1, core.ColorBrightWhite)
	dst.DrawTextColored(0, 1, line2, core.ColorYellow)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 2, '─', core.ColorGray)
	}
}

func (g *Game) renderGems(dst *core.Screen, frame core.Rect) {
	blinkOn := g.blinkOn()
	for _, s := range g.tiles.Sprites() {
		if s.Row >= g.cfg.Board.Height {
			continue // still entering from above
		}
		glyph, color := gemStyle(s.Kind)
		if _, matched := g.flashes[s.Home]; matched && s.Row == s.Home.Y && blinkOn {
			glyph, color = '*', core.ColorBrightYellow
		}
		sx, sy := g.toScreen(frame, s.X, s.Row)
		dst.SetColored(sx, sy, glyph, color)
	}
}

// blinkOn alternates every flash period while matched gems wait for removal.
func (g *Game) blinkOn() bool {
	period := g.cfg.Flash()
	if period <= 0 {
		return true
	}
	elapsed := time.Duration(g.tick) * g.dt
	return (elapsed/period)%2 == 0
}

func (g *Game) renderSnake(dst *core.Screen, frame core.Rect) {
	snake := g.round.Snake()
	segs := snake.Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		sx, sy := g.toScreen(frame, segs[i].Pos.X, segs[i].Pos.Y)
		if i == 0 {
			dst.SetColored(sx, sy, '@', core.ColorBrightWhite)
		} else {
			dst.SetColored(sx, sy, 'o', core.ColorBrightGreen)
		}
	}
	for _, p := range snake.Collisions() {
		sx, sy := g.toScreen(frame, p.X, p.Y)
		dst.SetColored(sx, sy, 'X', core.ColorBrightRed)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(box.X+2, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+2, box.Y+3, line2, core.ColorGray)
}
