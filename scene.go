package sprig

import "fmt"

// EventStore is the interface for optional ECS integration. When set on a
// Scene, every dispatched navigation event is forwarded to it.
type EventStore interface {
	EmitEvent(event NavigationEvent)
}

// NavigationEvent carries a dispatched navigation event for the ECS bridge.
type NavigationEvent struct {
	Event string // semantic event name, e.g. "up"
	Key   string // raw key that produced it, e.g. "ArrowUp"
}

type sceneState uint8

const (
	sceneIdle sceneState = iota
	sceneRendered
	sceneDestroyed
)

type listener struct {
	id uint32
	fn func()
}

// ListenerHandle identifies one listener registration.
type ListenerHandle struct {
	id    uint32
	event string
	scene *Scene
}

// Remove unregisters the listener. Same as Scene.Off(h).
func (h ListenerHandle) Remove() {
	if h.scene == nil {
		return
	}
	h.scene.Off(h)
}

// Event returns the event name the listener was registered for.
func (h ListenerHandle) Event() string {
	return h.event
}

// Scene owns the top-level nodes produced from a template, the navigation
// listeners and the render/destroy lifecycle.
//
// A Scene renders once. After Destroy it cannot be rendered again; create a
// new Scene instead.
type Scene struct {
	ctx      *Context
	template Template
	parent   *Node
	store    EventStore

	children  []*Node
	listeners map[string][]listener
	nextID    uint32

	unsubscribe func()
	state       sceneState
}

// NewScene creates a scene for template. Nothing is created on the engine until
// Render is called. A nil parent renders top-level nodes under the context's
// scene root; otherwise they are created as children of parent.
func NewScene(ctx *Context, template Template, parent *Node) *Scene {
	return &Scene{
		ctx:       ctx,
		template:  template,
		parent:    parent,
		listeners: make(map[string][]listener),
	}
}

// Render subscribes to keyboard input and materializes the template.
//
// Render is single-use: a second call returns ErrAlreadyRendered and a call
// after Destroy returns ErrSceneDestroyed. If a node cannot be created the
// parse stops and the error is returned; nodes created so far remain owned by
// the scene and are released by Destroy.
func (s *Scene) Render() error {
	switch s.state {
	case sceneRendered:
		return ErrAlreadyRendered
	case sceneDestroyed:
		return ErrSceneDestroyed
	}
	if !s.ctx.Ready() {
		return fmt.Errorf("render scene: %w", ErrNotInitialized)
	}
	s.state = sceneRendered
	s.unsubscribe = s.ctx.Keys().Subscribe(s.handleKey)

	p := parser{ctx: s.ctx, scene: s}
	if err := p.parse(s.template, s.parent, 0); err != nil {
		return fmt.Errorf("render scene: %w", err)
	}
	return nil
}

// IsRendered reports whether Render has been called on a live scene.
func (s *Scene) IsRendered() bool {
	return s.state == sceneRendered
}

// IsDestroyed reports whether Destroy has been called.
func (s *Scene) IsDestroyed() bool {
	return s.state == sceneDestroyed
}

// Find searches every top-level node in order. See Node.Find.
func (s *Scene) Find(key string) *Node {
	for _, child := range s.children {
		if found := child.Find(key); found != nil {
			return found
		}
	}
	return nil
}

// Children returns a copy of the top-level node list.
func (s *Scene) Children() []*Node {
	out := make([]*Node, len(s.children))
	copy(out, s.children)
	return out
}

// Parent returns the node the scene renders under, or nil for the scene root.
func (s *Scene) Parent() *Node {
	return s.parent
}

// Template returns the template the scene was created with.
func (s *Scene) Template() Template {
	return s.template
}

// SetEventStore sets the optional ECS bridge.
func (s *Scene) SetEventStore(store EventStore) {
	s.store = store
}

// --- Listeners ---

// On registers fn for a navigation event. Listeners for one event run in
// registration order, synchronously, once per dispatch. Registering the same
// function twice registers it twice. Event names outside the navigation set
// are accepted but never fire from keyboard input.
func (s *Scene) On(event string, fn func()) ListenerHandle {
	if s.state == sceneDestroyed {
		Logger().Debug("sprig: ignoring listener on destroyed scene", "event", event)
		return ListenerHandle{}
	}
	s.nextID++
	s.listeners[event] = append(s.listeners[event], listener{id: s.nextID, fn: fn})
	return ListenerHandle{id: s.nextID, event: event, scene: s}
}

// Off removes exactly the registration identified by h. No-op if it was
// already removed.
func (s *Scene) Off(h ListenerHandle) {
	list := s.listeners[h.event]
	for i := range list {
		if list[i].id == h.id {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = listener{}
			list = list[:len(list)-1]
			if len(list) == 0 {
				delete(s.listeners, h.event)
			} else {
				s.listeners[h.event] = list
			}
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for event.
func (s *Scene) ListenerCount(event string) int {
	return len(s.listeners[event])
}

// handleKey is the scene's keyboard subscription. Unmapped keys are ignored.
func (s *Scene) handleKey(raw string) {
	if s.state != sceneRendered {
		return
	}
	event, ok := EventForKey(raw)
	if !ok {
		return
	}
	s.emit(event, raw)
}

// emit runs the listeners registered for event when dispatch started. A
// listener that destroys the scene stops the remaining ones.
func (s *Scene) emit(event, raw string) {
	if s.store != nil {
		s.store.EmitEvent(NavigationEvent{Event: event, Key: raw})
	}
	list := s.listeners[event]
	if len(list) == 0 {
		return
	}
	snapshot := make([]listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		if s.state != sceneRendered {
			return
		}
		l.fn()
	}
}

// --- Disposal ---

// Destroy unsubscribes from keyboard input, clears every listener and destroys
// every top-level node along with its subtree. When the scene was rendered
// under a parent node, the destroyed nodes are also detached from it.
// Destroy is idempotent.
func (s *Scene) Destroy() {
	if s.state == sceneDestroyed {
		return
	}
	s.state = sceneDestroyed
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.listeners = make(map[string][]listener)
	s.store = nil

	children := s.children
	s.children = nil
	for _, child := range children {
		if s.parent != nil && !s.parent.destroyed {
			s.parent.removeChildByPtr(child)
		}
		child.Destroy()
	}
}
