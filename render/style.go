package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/symbol"
)

var (
	styleHUD   = tcell.StyleDefault.Reverse(true)
	styleAlert = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTrail = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWind  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

var shapeColors = [...]tcell.Color{
	symbol.ShapeSolidBoth: tcell.ColorRoyalBlue,
	symbol.ShapeSolidLeft: tcell.ColorForestGreen,
	symbol.ShapeLinesBoth: tcell.ColorGoldenrod,
}

// ballStyle picks the fill style of a token
func ballStyle(b *engine.BallView) tcell.Style {
	var bg tcell.Color
	switch b.Class {
	case symbol.ClassVoid:
		bg = tcell.ColorBlack
	case symbol.ClassLife:
		bg = tcell.ColorDarkRed
	case symbol.ClassWildcard:
		bg = tcell.ColorDarkMagenta
	case symbol.ClassCapstone:
		bg = tcell.ColorGold
	default:
		bg = tcell.ColorGray
		if int(b.Shape) < len(shapeColors) {
			bg = shapeColors[b.Shape]
		}
	}

	st := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
	if b.Grabbed {
		st = st.Reverse(true)
	}
	if b.Captured {
		st = st.Underline(true)
	}
	if b.Constructing {
		st = st.Bold(true)
	}
	return st
}

// ballLabel is the centre glyph of a token
func ballLabel(b *engine.BallView) rune {
	switch b.Class {
	case symbol.ClassVoid:
		return parameter.GlyphVoid
	case symbol.ClassLife:
		return parameter.GlyphLife
	case symbol.ClassWildcard:
		return parameter.GlyphWildcard
	case symbol.ClassCapstone:
		return parameter.GlyphCapstone
	}
	if b.Level >= 1 && b.Level < 36 {
		return rune(strconv.FormatInt(int64(b.Level), 36)[0])
	}
	return '?'
}

var particleGlyphs = [...]rune{
	component.ParticleDebris:    parameter.GlyphDebris,
	component.ParticleConstruct: parameter.GlyphConstruct,
	component.ParticleExplosion: parameter.GlyphExplosion,
	component.ParticleCelebrate: parameter.GlyphCelebrate,
	component.ParticleWind:      parameter.GlyphTrail,
	component.ParticleSnap:      parameter.GlyphSnap,
	component.ParticleLife:      parameter.GlyphLife,
}

var particleColors = [...]tcell.Color{
	component.ParticleDebris:    tcell.ColorSilver,
	component.ParticleConstruct: tcell.ColorWhite,
	component.ParticleExplosion: tcell.ColorOrangeRed,
	component.ParticleCelebrate: tcell.ColorGold,
	component.ParticleWind:      tcell.ColorAqua,
	component.ParticleSnap:      tcell.ColorYellow,
	component.ParticleLife:      tcell.ColorRed,
	component.ParticlePopup:     tcell.ColorGold,
}

func particleStyle(p *engine.ParticleView) tcell.Style {
	st := tcell.StyleDefault
	if int(p.Kind) < len(particleColors) {
		st = st.Foreground(particleColors[p.Kind])
	}
	if p.Fade < parameter.ParticleDimFade {
		st = st.Dim(true)
	}
	return st
}

func particleGlyph(kind component.ParticleKind) rune {
	if int(kind) < len(particleGlyphs) && particleGlyphs[kind] != 0 {
		return particleGlyphs[kind]
	}
	return parameter.GlyphDebris
}
