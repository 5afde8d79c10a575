package sprig

// Semantic navigation events.
const (
	EventUp    = "up"
	EventDown  = "down"
	EventLeft  = "left"
	EventRight = "right"
	EventEnter = "enter"
	EventExit  = "exit"
	EventBack  = "back"
)

// Raw key identifiers understood by the navigation table. Engines translate
// their native key codes into these names before dispatching.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeyBackspace  = "Backspace"
)

var keyEvents = map[string]string{
	KeyArrowUp:    EventUp,
	KeyArrowDown:  EventDown,
	KeyArrowLeft:  EventLeft,
	KeyArrowRight: EventRight,
	KeyEnter:      EventEnter,
	KeyEscape:     EventExit,
	KeyBackspace:  EventBack,
}

// EventForKey maps a raw key to its semantic event. Unmapped keys report false.
func EventForKey(raw string) (string, bool) {
	ev, ok := keyEvents[raw]
	return ev, ok
}

// KeySource delivers raw key-down events. The returned function unsubscribes.
type KeySource interface {
	Subscribe(fn func(key string)) (unsubscribe func())
}

type keySubscriber struct {
	id uint32
	fn func(string)
}

// KeyBus is an in-process KeySource. Engines own one and call Dispatch from
// their input loop; tests call Dispatch directly.
type KeyBus struct {
	subs   []keySubscriber
	nextID uint32
}

// NewKeyBus returns an empty KeyBus.
func NewKeyBus() *KeyBus {
	return &KeyBus{}
}

// Subscribe registers fn. Calling the returned function more than once is
// harmless.
func (b *KeyBus) Subscribe(fn func(key string)) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, keySubscriber{id: id, fn: fn})
	return func() { b.unsubscribe(id) }
}

func (b *KeyBus) unsubscribe(id uint32) {
	for i := range b.subs {
		if b.subs[i].id == id {
			copy(b.subs[i:], b.subs[i+1:])
			b.subs[len(b.subs)-1] = keySubscriber{}
			b.subs = b.subs[:len(b.subs)-1]
			return
		}
	}
}

// Dispatch delivers raw to every subscriber in subscription order. Subscribers
// added or removed during dispatch take effect on the next call.
func (b *KeyBus) Dispatch(raw string) {
	if len(b.subs) == 0 {
		return
	}
	snapshot := make([]keySubscriber, len(b.subs))
	copy(snapshot, b.subs)
	for _, s := range snapshot {
		s.fn(raw)
	}
}

// Len returns the number of subscribers.
func (b *KeyBus) Len() int {
	return len(b.subs)
}
