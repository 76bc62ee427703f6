package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/audio"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/input"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/record"
	"github.com/lixenwraith/gogo-ame/render"
	"github.com/lixenwraith/gogo-ame/status"
)

// app binds the terminal front end to the loop
// All methods run on the loop goroutine
type app struct {
	loop     *engine.Loop
	screen   tcell.Screen
	renderer *render.Renderer
	adapter  *input.Adapter
	control  *input.Controller
	player   *audio.Player // nil without audio
	recorder *record.Recorder
	log      *zap.Logger

	trails bool
	muted  bool

	message   string
	messageAt time.Time
}

// post forwards a polled event to the loop goroutine
func (a *app) post(ev tcell.Event) {
	a.loop.Post(func(w *engine.World) { a.handle(w, ev) })
}

func (a *app) handle(w *engine.World, ev tcell.Event) {
	in := a.adapter.Translate(ev)
	if in.World() {
		if cmd := a.control.Command(in); cmd != nil {
			cmd(w)
		}
		return
	}

	switch in.Type {
	case input.IntentQuit:
		a.loop.Stop()
	case input.IntentPause:
		if a.loop.TogglePause() {
			a.say("paused")
		} else {
			a.say("resumed")
		}
	case input.IntentRestart:
		a.loop.Restart()
	case input.IntentToggleMute:
		a.muted = !a.muted
		if a.player != nil {
			a.player.SetMuted(a.muted)
		}
	case input.IntentToggleTrails:
		a.trails = !a.trails
		a.renderer.SetTrails(a.trails)
	case input.IntentResize:
		a.screen.Sync()
	}
}

func (a *app) say(msg string) {
	a.message = msg
	a.messageAt = time.Now()
}

// frame is the loop's OnFrame hook
func (a *app) frame(w *engine.World) {
	if a.recorder != nil {
		a.recorder.Frame(w)
	}

	hud := render.HUD{
		Paused: w.Status.Bools.Get(status.KeyPaused).Load(),
		Muted:  a.muted,
	}
	if a.message != "" && time.Since(a.messageAt) < parameter.StatusMessageTimeout {
		hud.Message = a.message
	}
	a.renderer.Draw(w.Snapshot(a.trails), hud)
}

// EventTypes subscribes to the events surfaced on the status line
func (a *app) EventTypes() []event.EventType {
	return []event.EventType{event.EventConfigApplied, event.EventGameOver, event.EventGameReset}
}

func (a *app) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventConfigApplied:
		a.say("config reloaded")
	case event.EventGameOver:
		a.log.Info("game over", zap.Int64("frame", ev.Frame))
	case event.EventGameReset:
		a.say("new game")
	}
}
