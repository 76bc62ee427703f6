package record

import (
	"bufio"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/lixenwraith/gogo-ame/engine"
)

const maxLineBytes = 16 << 20

// Line is one decoded recording line; Payload stays raw until the caller knows its type
type Line struct {
	Kind     string              `json:"kind"`
	Frame    int64               `json:"frame"`
	Event    string              `json:"event,omitempty"`
	Payload  jsoniter.RawMessage `json:"payload,omitempty"`
	Snapshot *engine.Snapshot    `json:"snapshot,omitempty"`
	Header   *Header             `json:"header,omitempty"`
	Summary  *Summary            `json:"summary,omitempty"`
}

// DecodePayload unmarshals the raw event payload into v
func (l *Line) DecodePayload(v any) error {
	if len(l.Payload) == 0 {
		return fmt.Errorf("line %s at frame %d has no payload", l.Kind, l.Frame)
	}
	return json.Unmarshal(l.Payload, v)
}

// Read decodes lines from r and passes each to fn, stopping at the first error
func Read(r io.Reader, fn func(Line) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	n := 0
	for sc.Scan() {
		n++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var l Line
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			return fmt.Errorf("recording line %d: %w", n, err)
		}
		if err := fn(l); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read recording: %w", err)
	}
	return nil
}
