package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a wave source of the given length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(parameter.AudioNoiseSeed),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose frequency glides linearly over its length
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a gliding sine from one frequency to another
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.duration)
		freq := vmath.Lerp(s.from, s.to, t)
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack and release ramps
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero mutes since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, parameter.CueAttack, parameter.CueRelease, rate)
}

// levelFreq raises base by a whole tone per level above one
func levelFreq(base float64, level int) float64 {
	return base * math.Pow(2, float64(max(level-1, 0))*2/12)
}

// Cue generators

func combineSound(level int, rate beep.SampleRate) beep.Streamer {
	d := parameter.CombineNoteDuration
	f := levelFreq(parameter.CombineBaseFreq, level)
	return beep.Seq(
		note(f, d, WaveSine, rate),
		note(f*1.5, d, WaveSine, rate),
	)
}

func eliminateSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.EliminateDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.CueAttack, parameter.EliminateRelease, rate)
	low := NewEnvelope(NewSweep(160, 50, d, rate), d, parameter.CueAttack, parameter.EliminateRelease, rate)
	return beep.Mix(newVolume(noise, 0.5), newVolume(low, 0.6))
}

func degradeSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.DegradeDuration
	f := parameter.DegradeFreq
	return NewEnvelope(NewSweep(f*2, f, d, rate), d, parameter.CueAttack, parameter.CueRelease, rate)
}

func destroySound(rate beep.SampleRate) beep.Streamer {
	d := parameter.DestroyDuration
	f := parameter.DestroyFreq
	return beep.Mix(
		newVolume(note(f, d, WaveSaw, rate), 0.6),
		newVolume(note(f*2, d, WaveSine, rate), 0.3),
	)
}

func bounceSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BounceDuration
	return newVolume(NewEnvelope(NewOscillator(parameter.BounceFreq, d, WaveSine, rate), d, 0, d, rate), parameter.BounceVolume)
}

func lifeGainedSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.LifeNoteDuration
	return beep.Seq(
		note(parameter.LifeLowFreq, d, WaveSquare, rate),
		note(parameter.LifeHighFreq, d, WaveSquare, rate),
	)
}

func lifeLostSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.LifeNoteDuration
	return beep.Seq(
		note(parameter.LifeHighFreq, d, WaveSquare, rate),
		note(parameter.LifeLowFreq, d, WaveSquare, rate),
	)
}

func levelUpSound(level int, rate beep.SampleRate) beep.Streamer {
	d := parameter.LevelBellDuration
	f := levelFreq(parameter.LevelBellFreq, level)
	fund := NewEnvelope(NewOscillator(f, d, WaveSine, rate), d, parameter.CueAttack, parameter.LevelBellRelease, rate)
	over := NewEnvelope(NewOscillator(f*2, d, WaveSine, rate), d, parameter.CueAttack, d/3, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

func snapSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SnapDuration
	return NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.SnapAttack, parameter.SnapRelease, rate)
}

func gameOverSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.GameOverNoteDuration
	f := parameter.GameOverBaseFreq
	return beep.Seq(
		note(f, d, WaveSaw, rate),
		note(f*0.84, d, WaveSaw, rate),
		note(f*0.67, d*2, WaveSaw, rate),
	)
}

// Build returns the streamer for cue scaled by the configured volumes; nil for CueNone
func Build(cue Cue, level int, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case CueCombine:
		s = combineSound(level, rate)
	case CueEliminate:
		s = eliminateSound(rate)
	case CueDegrade:
		s = degradeSound(rate)
	case CueDestroy:
		s = destroySound(rate)
	case CueBounce:
		s = bounceSound(rate)
	case CueLifeGained:
		s = lifeGainedSound(rate)
	case CueLifeLost:
		s = lifeLostSound(rate)
	case CueLevelUp:
		s = levelUpSound(level, rate)
	case CueWindSnap:
		s = snapSound(rate)
	case CueGameOver:
		s = gameOverSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.Volume(cue))
}
