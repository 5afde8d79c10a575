package sprig

import (
	"encoding/json"
	"fmt"
)

// ScriptHost is driven by a ScriptRunner. Engines implement it: injected keys
// are queued and delivered one per frame through the engine's KeyBus.
type ScriptHost interface {
	InjectKey(raw string)
	Screenshot(label string)
	Quit()
	// PendingKeys reports how many injected keys have not been delivered yet.
	PendingKeys() int
}

// scriptStep is a single action in a key script.
type scriptStep struct {
	Action string   `json:"action"`
	Key    string   `json:"key,omitempty"`
	Keys   []string `json:"keys,omitempty"`
	Label  string   `json:"label,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

type keyScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected keys, waits and screenshots across frames
// for automated runs. Supported actions:
//
//	{"action": "key", "key": "ArrowDown"}
//	{"action": "keys", "keys": ["ArrowDown", "Enter"]}
//	{"action": "wait", "frames": 30}
//	{"action": "screenshot", "label": "menu-open"}
//	{"action": "quit"}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON key script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script keyScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse key script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse key script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "key", "keys", "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse key script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether every step has executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Engines call it once per tick before
// draining injected keys.
func (r *ScriptRunner) Step(host ScriptHost) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if host.PendingKeys() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "key":
		host.InjectKey(st.Key)
	case "keys":
		for _, k := range st.Keys {
			host.InjectKey(k)
		}
	case "screenshot":
		host.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		host.Quit()
		r.done = true
		return
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && host.PendingKeys() == 0 {
		r.done = true
	}
}

// KeyQueue holds injected keys until the engine delivers them, one per frame.
type KeyQueue struct {
	keys []string
}

// Push appends raw to the queue.
func (q *KeyQueue) Push(raw string) {
	q.keys = append(q.keys, raw)
}

// Len returns the number of queued keys.
func (q *KeyQueue) Len() int {
	return len(q.keys)
}

// Pop removes and returns the oldest key.
func (q *KeyQueue) Pop() (string, bool) {
	if len(q.keys) == 0 {
		return "", false
	}
	k := q.keys[0]
	copy(q.keys, q.keys[1:])
	q.keys = q.keys[:len(q.keys)-1]
	return k, true
}
