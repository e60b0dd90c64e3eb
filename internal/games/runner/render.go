package runner

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Camera placement relative to the player, in world units.
const (
	cameraBehind = 5.5
	nearDepth    = 4.0
	cellAspect   = 0.5 // terminal cells are about twice as tall as wide
	hudRows      = 1
)

// view projects world coordinates onto the screen with a pinhole camera
// behind the player looking down -z.
type view struct {
	horizon     int
	bottom      int
	cx          int
	camZ        float64
	colsPerUnit float64 // at nearDepth
	distance    float64
}

func newView(dst *core.Screen, r *Run) view {
	w, h := dst.Width(), dst.Height()
	track := r.cfg.Track
	span := float64(min(w-6, 72))
	return view{
		horizon:     hudRows + max(2, (h-hudRows)/3),
		bottom:      h - 2,
		cx:          w / 2,
		camZ:        track.PlayerZ + cameraBehind,
		colsPerUnit: span / (3 * track.LaneWidth),
		distance:    r.Session.Distance,
	}
}

func (v view) rows() float64 { return float64(v.bottom - v.horizon) }

// depth returns distance in front of the camera, or false if behind it.
func (v view) depth(z float64) (float64, bool) {
	d := v.camZ - z
	return d, d >= nearDepth*0.8
}

// groundRow returns the screen row of the track surface at depth d.
func (v view) groundRow(d float64) int {
	return v.horizon + int(v.rows()*nearDepth/d)
}

// rowDepth inverts groundRow.
func (v view) rowDepth(row int) float64 {
	return nearDepth * v.rows() / float64(row-v.horizon)
}

func (v view) col(x, d float64) int {
	return v.cx + int(math.Round(x*v.colsPerUnit*nearDepth/d))
}

// lift returns how many rows a height of y units spans at depth d.
func (v view) lift(y, d float64) int {
	return int(math.Round(y * v.colsPerUnit * nearDepth / d * cellAspect))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.run == nil {
		return
	}
	r := g.run
	v := newView(dst, r)
	pal := r.Biomes.Current().Palette()

	g.drawSky(dst, v, pal)
	g.drawTrack(dst, v, pal)
	g.drawObjects(dst, v, pal)
	g.drawPlayer(dst, v)
	g.drawHUD(dst)
	g.drawPopups(dst, v)

	switch r.Session.Phase {
	case PhaseMenu:
		g.drawTitle(dst)
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "P resume • R restart • B menu", core.ColorWhite)
	case PhaseGameOver:
		title := "GAME OVER"
		if r.Session.NewBest {
			title = "NEW BEST!"
		}
		sub := fmt.Sprintf("Score: %d  |  Best: %d  |  R restart • B menu", r.Score(), r.Session.Best)
		drawCenteredMessage(dst, title, sub, core.ColorRed)
	}
}

func (g *Game) drawSky(dst *core.Screen, v view, pal Palette) {
	w := dst.Width()
	for row := hudRows; row < v.horizon; row++ {
		if row%2 == 0 {
			continue
		}
		for _, k := range []int{17, 31} {
			x := (row*k + 7 + g.frame/40) % max(w, 1)
			dst.SetColor(x, row, '.', pal.Light)
		}
	}
	dst.DrawHLine(0, v.horizon, w, '_', pal.Wall)
}

func (g *Game) drawTrack(dst *core.Screen, v view, pal Palette) {
	lw := g.run.cfg.Track.LaneWidth
	for row := v.horizon + 1; row <= v.bottom; row++ {
		d := v.rowDepth(row)
		u := d + v.distance // fixed along the track, so marks scroll toward the camera
		left, right := v.col(-1.5*lw, d), v.col(1.5*lw, d)

		if int(u/3) != int((v.rowDepth(row+1)+v.distance)/3) {
			dst.DrawHLine(left+1, row, right-left-1, '-', pal.Accent)
		}
		if int(u/1.5)%2 == 0 {
			dst.SetColor(v.col(-0.5*lw, d), row, ':', pal.Light)
			dst.SetColor(v.col(0.5*lw, d), row, ':', pal.Light)
		}
		dst.SetColor(left, row, '/', pal.Ground)
		dst.SetColor(right, row, '\\', pal.Ground)
	}
}

// sprite is one projected object, drawn far to near.
type sprite struct {
	depth float64
	draw  func()
}

func (g *Game) drawObjects(dst *core.Screen, v view, pal Palette) {
	w := g.run.World
	var sprites []sprite

	for _, seg := range w.Segments() {
		for _, dec := range seg.Decorations {
			d, ok := v.depth(dec.Z)
			if !ok {
				continue
			}
			sprites = append(sprites, sprite{d, func() {
				x, base := v.col(dec.X, d), v.groundRow(d)
				h := max(1, v.lift(2.5, d))
				for i := 0; i < h; i++ {
					dst.SetColor(x, base-i, dec.Kind.Glyph(), pal.Wall)
				}
			}})
		}
	}

	for _, o := range w.Obstacles() {
		d, ok := v.depth(o.Pos.Z)
		if !ok {
			continue
		}
		sprites = append(sprites, sprite{d, func() {
			half := max(1, int(math.Round(o.Size.X/2*v.colsPerUnit*nearDepth/d)))
			x := v.col(o.Pos.X, d)
			top := v.groundRow(d) - v.lift(o.Pos.Y+o.Size.Y/2, d)
			bot := v.groundRow(d) - v.lift(o.Pos.Y-o.Size.Y/2, d)
			color := core.ColorRed
			if o.Kind.NeedsSlide() {
				color = core.ColorOrange
			}
			for y := top; y <= max(top, bot-1); y++ {
				for dx := -half + 1; dx < half; dx++ {
					dst.SetColor(x+dx, y, o.Kind.Glyph(), color)
				}
			}
		}})
	}

	for _, c := range w.Coins() {
		d, ok := v.depth(c.Pos.Z)
		if !ok {
			continue
		}
		sprites = append(sprites, sprite{d, func() {
			glyph := 'o'
			if d < nearDepth*2 {
				glyph = '◎'
			}
			dst.SetColor(v.col(c.Pos.X, d), v.groundRow(d)-v.lift(c.Pos.Y, d), glyph, core.ColorGold)
		}})
	}

	for _, p := range w.Powerups() {
		d, ok := v.depth(p.Pos.Z)
		if !ok {
			continue
		}
		sprites = append(sprites, sprite{d, func() {
			dst.SetColor(v.col(p.Pos.X, d), v.groundRow(d)-v.lift(p.Pos.Y, d), p.Kind.Glyph(), p.Kind.Color())
		}})
	}

	slices.SortStableFunc(sprites, func(a, b sprite) int { return cmp.Compare(b.depth, a.depth) })
	for _, s := range sprites {
		s.draw()
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v view) {
	p := g.run.Player
	d := cameraBehind
	x := v.col(p.X, d)
	base := v.groundRow(d) - v.lift(p.Y, d)

	color := core.ColorWhite
	if active := g.run.Powerups.Active(); active != nil {
		color = active.Kind.Color()
	}
	if g.run.Session.Phase == PhaseGameOver {
		color = core.ColorRed
	}

	head := p.Character.Glyph()
	switch p.Pose {
	case PoseSliding:
		dst.DrawTextColor(x-1, base, ">=", color)
		dst.SetColor(x+1, base, head, color)
	case PoseAirborne:
		dst.SetColor(x, base-2, head, color)
		dst.DrawTextColor(x-1, base-1, "\\|/", color)
		dst.DrawTextColor(x-1, base, "/ \\", color)
	default:
		legs := [4]string{"/ \\", "| |", "\\ /", "| |"}
		dst.SetColor(x, base-2, head, color)
		dst.DrawTextColor(x-1, base-1, "/|\\", color)
		dst.DrawTextColor(x-1, base, legs[(g.frame/6)%4], color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	r := g.run
	s := &r.Session
	left := fmt.Sprintf(" %s  SCORE %07d  COINS %d  %dm", g.Title(), r.Score(), s.Coins, int(s.Distance))
	dst.DrawTextColor(0, 0, left, core.ColorWhite)

	right := fmt.Sprintf("BEST %d ", s.Best)
	if active := r.Powerups.Active(); active != nil {
		right = fmt.Sprintf("%s %.1fs  %s", active.Kind, active.Remaining, right)
	}
	if s.Combo > 1 {
		right = fmt.Sprintf("%dx  %s", s.Combo, right)
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorGold)

	status := fmt.Sprintf(" %s  spd %.2f", r.Biomes.Current(), s.Speed*r.cfg.Speed.Multiplier())
	dst.DrawTextColor(0, dst.Height()-1, status, core.ColorGray)
}

func (g *Game) drawPopups(dst *core.Screen, v view) {
	row := hudRows + 1
	for i := len(g.popups.items) - 1; i >= 0 && row < v.horizon; i-- {
		it := g.popups.items[i]
		dst.DrawTextCentered(row, it.text, it.color)
		row++
	}
}

func (g *Game) drawTitle(dst *core.Screen) {
	s := &g.run.Session
	sub := fmt.Sprintf("Best: %d  |  Enter/Space to run • B back", s.Best)
	drawCenteredMessage(dst, g.Title(), sub, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(rect, ' ')
	dst.DrawBox(rect, c)

	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
