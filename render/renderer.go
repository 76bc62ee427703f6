// Package render draws engine snapshots on a tcell screen
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// HUD carries front-end state that is not part of the simulation
type HUD struct {
	Paused  bool
	Muted   bool
	Message string
}

// Renderer owns a screen and redraws it from snapshots
// Not safe for concurrent use; call from the loop goroutine
type Renderer struct {
	screen tcell.Screen
	view   Viewport
	trails bool
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, trails: true}
}

// SetTrails toggles token trail drawing
func (r *Renderer) SetTrails(on bool) { r.trails = on }

// Viewport is the mapping used by the last Draw
func (r *Renderer) Viewport() Viewport { return r.view }

// Fit recomputes the viewport for a field of width x height and the current screen size
func (r *Renderer) Fit(width, height float64) Viewport {
	cols, rows := r.screen.Size()
	r.view = Viewport{
		Cols:   cols,
		Rows:   max(rows-parameter.HUDRows, 0),
		Width:  width,
		Height: height,
	}
	return r.view
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(s *engine.Snapshot, hud HUD) {
	r.screen.Clear()
	v := r.Fit(s.Width, s.Height)

	if v.Cols >= parameter.MinFieldCols && v.Rows >= parameter.MinFieldRows {
		r.drawWind(s.Wind, s.WindFade)
		if r.trails {
			for i := range s.Balls {
				r.drawTrail(s.Balls[i].Trail)
			}
		}
		for i := range s.Balls {
			r.drawBall(&s.Balls[i])
		}
		for i := range s.Particles {
			r.drawParticle(&s.Particles[i])
		}
	}

	r.drawHUD(s, hud)
	r.screen.Show()
}

func (r *Renderer) set(col, row int, ch rune, st tcell.Style) {
	if col < 0 || row < 0 || col >= r.view.Cols || row >= r.view.Rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, st)
}

func (r *Renderer) drawWind(points []vmath.Vec2, fade float64) {
	if len(points) == 0 {
		return
	}
	glyph := rune(parameter.GlyphWind)
	st := styleWind
	if fade < 0.5 {
		glyph = parameter.GlyphWindDim
		st = st.Dim(true)
	}

	// Sample each segment at roughly cell spacing so gaps never show
	cw, ch := r.view.CellSize()
	step := math.Min(cw, ch) / 2
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		n := int(math.Ceil(vmath.V2Dist(a, b)/step)) + 1
		for k := 0; k <= n; k++ {
			p := vmath.V2Lerp(a, b, float64(k)/float64(n))
			if col, row, ok := r.view.ToCell(p); ok {
				r.set(col, row, glyph, st)
			}
		}
	}
	if len(points) == 1 {
		if col, row, ok := r.view.ToCell(points[0]); ok {
			r.set(col, row, glyph, st)
		}
	}
}

func (r *Renderer) drawTrail(trail []vmath.Vec2) {
	for i := 0; i < len(trail); i += parameter.TrailStride {
		if col, row, ok := r.view.ToCell(trail[i]); ok {
			r.set(col, row, parameter.GlyphTrail, styleTrail)
		}
	}
}

// drawBall fills every cell whose centre lies inside the token, then labels the centre cell
func (r *Renderer) drawBall(b *engine.BallView) {
	st := ballStyle(b)
	cw, ch := r.view.CellSize()

	c0 := int(math.Floor((b.Pos.X - b.Radius) / cw))
	c1 := int(math.Floor((b.Pos.X + b.Radius) / cw))
	r0 := int(math.Floor((b.Pos.Y - b.Radius) / ch))
	r1 := int(math.Floor((b.Pos.Y + b.Radius) / ch))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if b.Radius >= vmath.V2Dist(r.view.ToField(col, row), b.Pos) {
				r.set(col, row, ' ', st)
			}
		}
	}

	if col, row, ok := r.view.ToCell(b.Pos); ok {
		r.set(col, row, ballLabel(b), st)
	}
}

func (r *Renderer) drawParticle(p *engine.ParticleView) {
	col, row, ok := r.view.ToCell(p.Pos)
	if !ok {
		return
	}
	st := particleStyle(p)
	if p.Text != "" {
		col -= len(p.Text) / 2
		for i, ch := range p.Text {
			r.set(col+i, row, ch, st.Bold(true))
		}
		return
	}
	r.set(col, row, particleGlyph(p.Kind), st)
}

func (r *Renderer) drawHUD(s *engine.Snapshot, hud HUD) {
	cols, rows := r.screen.Size()
	row := rows - parameter.HUDRows
	if row < 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, " score %d", s.Score)
	if s.LivesEnabled {
		fmt.Fprintf(&b, "  lives %d", s.Lives)
	}
	fmt.Fprintf(&b, "  best L%d  tokens %d", s.HighestLevel, len(s.Balls))
	if hud.Paused {
		b.WriteString("  [paused]")
	}
	if hud.Muted {
		b.WriteString("  [muted]")
	}
	if hud.Message != "" {
		b.WriteString("  ")
		b.WriteString(hud.Message)
	}

	x := 0
	for _, ch := range b.String() {
		if x >= cols {
			break
		}
		r.screen.SetContent(x, row, ch, nil, styleHUD)
		x++
	}
	for ; x < cols; x++ {
		r.screen.SetContent(x, row, ' ', nil, styleHUD)
	}

	if s.GameOver {
		r.drawCentered(r.view.Rows/2, "GAME OVER  (r) restart  (q) quit", styleAlert)
	}
}

func (r *Renderer) drawCentered(row int, text string, st tcell.Style) {
	cols, _ := r.screen.Size()
	col := max((cols-len(text))/2, 0)
	for i, ch := range text {
		r.screen.SetContent(col+i, row, ch, nil, st)
	}
}

// Clear wipes the screen between games
func (r *Renderer) Clear() {
	r.screen.Clear()
	r.screen.Show()
}
