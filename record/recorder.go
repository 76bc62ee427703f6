// Package record writes game sessions as JSON lines: a header, sampled snapshots,
// every routed event and a closing summary
package record

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/event"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Line kinds
const (
	KindHeader   = "header"
	KindSnapshot = "snapshot"
	KindEvent    = "event"
	KindSummary  = "summary"
)

// Header opens a recording
type Header struct {
	Seed    uint64         `json:"seed"`
	Started time.Time      `json:"started"`
	Config  *config.Config `json:"config,omitempty"`
}

// entry is the encoded form of one line
type entry struct {
	Kind     string           `json:"kind"`
	Frame    int64            `json:"frame"`
	Event    string           `json:"event,omitempty"`
	Payload  any              `json:"payload,omitempty"`
	Snapshot *engine.Snapshot `json:"snapshot,omitempty"`
	Header   *Header          `json:"header,omitempty"`
	Summary  *Summary         `json:"summary,omitempty"`
}

// Recorder appends JSON lines to a writer
// It is an engine.EventHandler for all event types; Frame samples snapshots
type Recorder struct {
	mu     sync.Mutex
	buf    *bufio.Writer
	closer io.Closer
	enc    *jsoniter.Encoder
	every  int64
	lines  int
	err    error
}

// New records to w, snapshotting every n frames; n <= 0 disables snapshots
func New(w io.Writer, n int) *Recorder {
	buf := bufio.NewWriter(w)
	r := &Recorder{buf: buf, every: int64(n)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	r.enc = json.NewEncoder(buf)
	return r
}

// Create records to a new file at path
func Create(path string, n int) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create recording %s: %w", path, err)
	}
	return New(f, n), nil
}

func (r *Recorder) write(e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return
	}
	if err := r.enc.Encode(e); err != nil {
		r.err = fmt.Errorf("record %s line: %w", e.Kind, err)
		return
	}
	r.lines++
}

// WriteHeader emits the opening line
func (r *Recorder) WriteHeader(h Header) {
	r.write(&entry{Kind: KindHeader, Header: &h})
}

// WriteSummary emits the closing line
func (r *Recorder) WriteSummary(frame int64, s Summary) {
	r.write(&entry{Kind: KindSummary, Frame: frame, Summary: &s})
}

// EventTypes subscribes to every event type
func (r *Recorder) EventTypes() []event.EventType { return nil }

func (r *Recorder) HandleEvent(ev event.GameEvent) {
	r.write(&entry{
		Kind:    KindEvent,
		Frame:   ev.Frame,
		Event:   ev.Type.String(),
		Payload: ev.Payload,
	})
}

// Frame snapshots w on every sampled frame and on the frame the game ends
// Call from the loop goroutine after Step
func (r *Recorder) Frame(w *engine.World) {
	f := w.Frame()
	if r.every <= 0 && !w.State.GameOver {
		return
	}
	if r.every > 0 && f%r.every != 0 && !w.State.GameOver {
		return
	}
	r.write(&entry{Kind: KindSnapshot, Frame: f, Snapshot: w.Snapshot(false)})
}

// Lines returns the number of lines written
func (r *Recorder) Lines() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lines
}

// Err returns the first write error; later lines are dropped once set
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Close flushes buffered lines and closes the underlying writer when it is a Closer
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.buf.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
		r.closer = nil
	}
	if err != nil {
		return fmt.Errorf("close recording: %w", err)
	}
	return r.err
}
