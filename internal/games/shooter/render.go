package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyraid/internal/core"
)

const (
	minScreenW   = 24
	minScreenH   = 12
	healthBarLen = 20
)

// Layout maps world units onto a region of terminal cells.
// Cells are roughly twice as tall as wide, so a 1:2 world fills a
// square block of cells.
type Layout struct {
	Field  core.Rect
	ScaleX float64
	ScaleY float64
}

// FieldLayout fits the world into a screen of the given size, centred.
func FieldLayout(screenW, screenH int, b Bounds) Layout {
	h := screenH
	w := int(float64(h) * b.W / b.H * 2)
	if w > screenW {
		w = screenW
		h = int(float64(w) * b.H / b.W / 2)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Layout{
		Field:  core.NewRect((screenW-w)/2, (screenH-h)/2, w, h),
		ScaleX: float64(w) / b.W,
		ScaleY: float64(h) / b.H,
	}
}

// CellRect converts an entity box into the cells it covers, at least one cell.
func (l Layout) CellRect(e *Entity) core.Rect {
	x0 := int(math.Floor(e.X * l.ScaleX))
	y0 := int(math.Floor(e.Y * l.ScaleY))
	x1 := int(math.Ceil((e.X + e.W) * l.ScaleX))
	y1 := int(math.Ceil((e.Y + e.H) * l.ScaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(l.Field.X+x0, l.Field.Y+y0, x1-x0, y1-y0)
}

// Render draws the world. It never clears the screen, so backdrop
// colors already painted into the cell backgrounds stay visible.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	w := &g.world
	l := FieldLayout(dst.Width(), dst.Height(), w.Bounds)
	drawFieldEdges(dst, l.Field)

	for i := range w.PowerUps {
		drawClipped(dst, l, &w.PowerUps[i], drawPowerUp)
	}
	for i := range w.Enemies {
		drawClipped(dst, l, &w.Enemies[i], drawEnemy)
	}
	for i := range w.Bullets {
		drawClipped(dst, l, &w.Bullets[i], drawBullet)
	}
	drawClipped(dst, l, &w.Player, drawPlayer)

	g.drawHUD(dst, l.Field)

	if g.state == StateGameOver {
		drawGameOver(dst, w.Score)
	}
}

type spriteFunc func(dst *core.Screen, r core.Rect, e *Entity, field core.Rect)

// drawClipped draws an entity only where it overlaps the field.
func drawClipped(dst *core.Screen, l Layout, e *Entity, draw spriteFunc) {
	r := l.CellRect(e)
	if r.Bottom() <= l.Field.Y || r.Y >= l.Field.Bottom() {
		return
	}
	draw(dst, r, e, l.Field)
}

func put(dst *core.Screen, field core.Rect, x, y int, ch rune, fg core.Color) {
	if field.Contains(x, y) {
		dst.SetColored(x, y, ch, fg)
	}
}

func drawPlayer(dst *core.Screen, r core.Rect, _ *Entity, field core.Rect) {
	cx := r.X + r.W/2
	if r.H == 1 {
		put(dst, field, cx, r.Y, '▲', core.ColorBrightGreen)
		return
	}
	put(dst, field, cx, r.Y, '▲', core.ColorBrightGreen)
	for y := r.Y + 1; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			ch := '█'
			switch {
			case r.W > 2 && x == r.X:
				ch = '◢'
			case r.W > 2 && x == r.Right()-1:
				ch = '◣'
			}
			put(dst, field, x, y, ch, core.ColorBrightGreen)
		}
	}
}

func drawEnemy(dst *core.Screen, r core.Rect, e *Entity, field core.Rect) {
	fg := core.ColorBrightRed
	if e.Tier > 0 {
		fg = core.ColorBrightMagenta
	}
	cx := r.X + r.W/2
	last := r.Bottom() - 1
	for y := r.Y; y < last; y++ {
		for x := r.X; x < r.Right(); x++ {
			ch := '█'
			switch {
			case r.W > 2 && x == r.X:
				ch = '◥'
			case r.W > 2 && x == r.Right()-1:
				ch = '◤'
			}
			put(dst, field, x, y, ch, fg)
		}
	}
	put(dst, field, cx, last, '▼', fg)
	// Damaged heavy enemies show remaining hits
	if e.Tier > 0 && e.Health < e.MaxHealth && r.H > 1 {
		put(dst, field, cx, r.Y, rune('0'+e.Health%10), core.ColorBrightWhite)
	}
}

func drawBullet(dst *core.Screen, r core.Rect, e *Entity, field core.Rect) {
	x := r.X + r.W/2
	if e.FromPlayer {
		put(dst, field, x, r.Y, '|', core.ColorBrightYellow)
		return
	}
	put(dst, field, x, r.Y, '•', core.ColorOrange)
}

func drawPowerUp(dst *core.Screen, r core.Rect, e *Entity, field core.Rect) {
	fg := core.ColorBrightCyan
	if e.PowerUp == PowerUpHealth {
		fg = core.ColorBrightGreen
	}
	put(dst, field, r.X+r.W/2, r.Y, e.PowerUp.Glyph(), fg)
}

func drawFieldEdges(dst *core.Screen, field core.Rect) {
	if field.X > 0 {
		for y := field.Y; y < field.Bottom(); y++ {
			dst.SetColored(field.X-1, y, '│', core.ColorGray)
		}
	}
	if field.Right() < dst.Width() {
		for y := field.Y; y < field.Bottom(); y++ {
			dst.SetColored(field.Right(), y, '│', core.ColorGray)
		}
	}
}

// drawHUD prints score, health, enemy count and a health bar in the
// top-left corner of the field.
func (g *Game) drawHUD(dst *core.Screen, field core.Rect) {
	w := &g.world
	x, y := field.X+1, field.Y

	dst.DrawTextColored(x, y, fmt.Sprintf("Score: %d", w.Score), core.ColorBrightWhite)
	dst.DrawTextColored(x, y+1, fmt.Sprintf("Health: %d", w.Player.Health), core.ColorBrightWhite)
	dst.DrawTextColored(x, y+2, fmt.Sprintf("Enemies: %d", len(w.Enemies)), core.ColorBrightWhite)

	barLen := healthBarLen
	if barLen > field.W-2 {
		barLen = field.W - 2
	}
	filled := 0
	if w.Player.MaxHealth > 0 {
		filled = barLen * w.Player.Health / w.Player.MaxHealth
	}
	for i := 0; i < barLen; i++ {
		if i < filled {
			dst.SetColored(x+i, y+3, '█', core.ColorGreen)
		} else {
			dst.SetColored(x+i, y+3, '░', core.ColorRed)
		}
	}

	var tags string
	if w.Player.DoubleShot {
		tags += " x2"
	}
	if w.Player.ShotDelayMs < g.cfg.Player.ShotDelayMs {
		tags += fmt.Sprintf(" %dms", w.Player.ShotDelayMs)
	}
	if tags != "" {
		dst.DrawTextColored(x, y+4, "Guns:"+tags, core.ColorBrightCyan)
	}
}

func drawGameOver(dst *core.Screen, score int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final Score: %d", score),
		"Press R to restart",
	}
	boxW := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > boxW {
			boxW = n
		}
	}
	boxW += 6
	boxH := len(lines) + 4

	bx := (dst.Width() - boxW) / 2
	by := (dst.Height() - boxH) / 2
	box := core.NewRect(bx, by, boxW, boxH)

	dst.DrawRect(core.NewRect(bx+1, by+1, boxW-2, boxH-2), ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(by+2, lines[0], core.ColorBrightRed)
	dst.DrawTextCentered(by+3, lines[1], core.ColorBrightWhite)
	dst.DrawTextCentered(by+4, lines[2], core.ColorGray)
}
