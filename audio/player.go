package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/parameter"
)

// Player turns game events into cues on a shared mixer
// Without Start the mixer is never attached to a device; tests stream it directly
type Player struct {
	cfg *AudioConfig
	log *zap.Logger

	mu      sync.Mutex
	mixer   *beep.Mixer
	started bool
	last    map[Cue]time.Time
	now     func() time.Time

	muted   atomic.Bool
	played  atomic.Int64
	dropped atomic.Int64
}

// NewPlayer creates a detached player; nil cfg uses defaults
func NewPlayer(cfg *AudioConfig, log *zap.Logger) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{
		cfg:   cfg,
		log:   log,
		mixer: &beep.Mixer{},
		last:  make(map[Cue]time.Time),
		now:   time.Now,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the audio device and plays the mixer on it
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	p.log.Info("audio started", zap.Int("sample_rate", p.cfg.SampleRate))
	return nil
}

// Stop silences everything; the device stays open
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.mixer.Clear()
		return
	}
	speaker.Clear()
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
}

func (p *Player) SetMuted(m bool) { p.muted.Store(m) }

func (p *Player) Muted() bool { return p.muted.Load() }

// Played is the count of cues started
func (p *Player) Played() int64 { return p.played.Load() }

// Dropped is the count of cues skipped for throttling or voice limit
func (p *Player) Dropped() int64 { return p.dropped.Load() }

// Mixer exposes the output stream
func (p *Player) Mixer() beep.Streamer { return p.mixer }

// EventTypes subscribes to every event that has a cue
func (p *Player) EventTypes() []event.EventType {
	return cueEventTypes()
}

func (p *Player) HandleEvent(ev event.GameEvent) {
	cue, level := CueFor(ev)
	p.Play(cue, level)
}

// Play starts cue unless muted, repeated within MinCueGap, or out of voices
func (p *Player) Play(cue Cue, level int) bool {
	if cue == CueNone || p.muted.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if last, ok := p.last[cue]; ok && now.Sub(last) < parameter.MinCueGap {
		p.dropped.Add(1)
		return false
	}

	s := Build(cue, level, p.cfg)
	if s == nil {
		return false
	}

	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if p.mixer.Len() >= parameter.AudioMaxVoices {
		p.dropped.Add(1)
		return false
	}
	p.mixer.Add(s)
	p.last[cue] = now
	p.played.Add(1)
	return true
}

// Active is the number of cues still sounding
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}
