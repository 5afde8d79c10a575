package sprig

import (
	"reflect"
	"testing"
)

// fakeHost records what a ScriptRunner asks of its engine.
type fakeHost struct {
	queue       KeyQueue
	screenshots []string
	quit        bool
}

func (h *fakeHost) InjectKey(raw string)    { h.queue.Push(raw) }
func (h *fakeHost) Screenshot(label string) { h.screenshots = append(h.screenshots, label) }
func (h *fakeHost) Quit()                   { h.quit = true }
func (h *fakeHost) PendingKeys() int        { return h.queue.Len() }

// deliver drains one queued key, the way an engine does once per frame.
func (h *fakeHost) deliver(bus *KeyBus) {
	if k, ok := h.queue.Pop(); ok {
		bus.Dispatch(k)
	}
}

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "key", "key": "ArrowDown"},
			{"action": "wait", "frames": 3},
			{"action": "keys", "keys": ["Enter", "Escape"]},
			{"action": "quit"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "key" || runner.steps[1].Key != "ArrowDown" {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if !reflect.DeepEqual(runner.steps[3].Keys, []string{"Enter", "Escape"}) {
		t.Errorf("step 3 keys = %v", runner.steps[3].Keys)
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	_, err := LoadScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadScript_UnknownAction(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": [{"action": "click"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Key(t *testing.T) {
	ctx, _, bus := newTestContext(t)
	s := NewScene(ctx, Template{Leaf("a", Props{})}, nil)
	mustRender(t, s)
	var got []string
	s.On(EventDown, func() { got = append(got, EventDown) })

	runner, err := LoadScript([]byte(`{"steps": [{"action": "key", "key": "ArrowDown"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	host := &fakeHost{}

	runner.Step(host)
	if host.queue.Len() != 1 {
		t.Fatalf("expected 1 queued key, got %d", host.queue.Len())
	}
	if runner.Done() {
		t.Error("runner should not be done while keys are pending")
	}

	host.deliver(bus)
	runner.Step(host)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
	if !reflect.DeepEqual(got, []string{EventDown}) {
		t.Errorf("events = %v, want [down]", got)
	}
}

func TestRunnerStep_KeysDeliveredOnePerFrame(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "keys", "keys": ["ArrowUp", "ArrowUp", "Enter"]},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	host := &fakeHost{}
	bus := NewKeyBus()
	var raw []string
	bus.Subscribe(func(k string) { raw = append(raw, k) })

	runner.Step(host)
	for frame := 0; frame < 3; frame++ {
		runner.Step(host) // blocked by pending keys
		if len(host.screenshots) != 0 {
			t.Fatalf("frame %d: screenshot taken before keys drained", frame)
		}
		host.deliver(bus)
	}
	runner.Step(host)

	if !reflect.DeepEqual(raw, []string{"ArrowUp", "ArrowUp", "Enter"}) {
		t.Errorf("delivered = %v", raw)
	}
	if !reflect.DeepEqual(host.screenshots, []string{"after"}) {
		t.Errorf("screenshots = %v, want [after]", host.screenshots)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	host := &fakeHost{}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.Step(host)
	if runner.Done() {
		t.Error("should not be done during wait")
	}

	// Frames 2 and 3: count down.
	runner.Step(host)
	runner.Step(host)
	if runner.Done() {
		t.Error("should not be done before the screenshot step")
	}

	// Frame 4: execute screenshot step, runner finishes.
	runner.Step(host)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(host.screenshots) != 1 || host.screenshots[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", host.screenshots)
	}
}

func TestRunnerStep_Quit(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "quit"},
		{"action": "screenshot", "label": "never"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	host := &fakeHost{}

	runner.Step(host)
	runner.Step(host)

	if !host.quit {
		t.Error("host should have been asked to quit")
	}
	if !runner.Done() {
		t.Error("runner should be done after quit")
	}
	if len(host.screenshots) != 0 {
		t.Errorf("steps after quit should not run, got %v", host.screenshots)
	}
}

func TestKeyQueue(t *testing.T) {
	var q KeyQueue
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue should report false")
	}
	q.Push("a")
	q.Push("b")
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
	if k, _ := q.Pop(); k != "a" {
		t.Errorf("Pop = %q, want a", k)
	}
	if k, _ := q.Pop(); k != "b" {
		t.Errorf("Pop = %q, want b", k)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
}
