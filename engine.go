package sprig

import (
	"fmt"
	"time"
)

// Primitive is an engine-native node. Sprig only reads and writes its
// properties by name, animates it and destroys it.
type Primitive interface {
	// Get returns the current value of a visual property.
	Get(name string) (any, bool)
	// Set writes a visual property.
	Set(name string, value any)
	// Animate prepares an animation toward target. It does not run until
	// Start is called on the result.
	Animate(target Props, cfg AnimationConfig) Animation
	// Destroy releases the primitive and detaches it from its engine parent.
	Destroy()
}

// Engine is the render engine facade consumed by sprig.
type Engine interface {
	// Root returns the engine's own root primitive.
	Root() Primitive
	// CreateNode creates a generic visual primitive under parent.
	CreateNode(parent Primitive, props Props) (Primitive, error)
	// CreateTextNode creates a text-capable primitive under parent.
	CreateTextNode(parent Primitive, props Props) (Primitive, error)
}

// Animation is a prepared animation on a primitive.
type Animation interface {
	Start()
	Stop()
	Finished() bool
}

// AnimationConfig controls timing for Primitive.Animate.
type AnimationConfig struct {
	Duration time.Duration
	Delay    time.Duration
	// Easing names an easing curve: "linear" (default), "ease-in", "ease-out",
	// "ease-in-out", or any name accepted by EasingByName.
	Easing string
}

type contextState uint8

const (
	contextUninitialized contextState = iota
	contextReady
	contextClosed
)

// Context holds one initialized render engine, the scene root primitive and the
// keyboard source. Pass it to NewNode and NewScene. Several contexts may live
// in one process, each with its own engine.
type Context struct {
	state  contextState
	engine Engine
	root   Primitive
	keys   KeySource
}

// NewContext returns an uninitialized Context.
func NewContext() *Context {
	return &Context{}
}

// Init binds the engine and key source and creates the scene root under the
// engine root. Initializing a ready Context logs an error and keeps the
// existing engine. A nil keys source is replaced by an idle KeyBus.
func (c *Context) Init(engine Engine, keys KeySource) error {
	switch c.state {
	case contextReady:
		Logger().Error("sprig: engine already initialized; keeping existing instance")
		return nil
	case contextClosed:
		return ErrContextClosed
	}
	if engine == nil {
		return fmt.Errorf("init context: nil engine")
	}
	root, err := engine.CreateNode(engine.Root(), Props{"color": 0})
	if err != nil {
		return fmt.Errorf("init context: create scene root: %w", err)
	}
	if keys == nil {
		keys = NewKeyBus()
	}
	c.engine = engine
	c.root = root
	c.keys = keys
	c.state = contextReady
	return nil
}

// Ready reports whether Init has succeeded and Close has not been called.
func (c *Context) Ready() bool {
	return c != nil && c.state == contextReady
}

// Engine returns the bound engine, or nil before Init.
func (c *Context) Engine() Engine {
	return c.engine
}

// Root returns the scene root primitive that parentless nodes attach to.
func (c *Context) Root() Primitive {
	return c.root
}

// Keys returns the keyboard source scenes subscribe to.
func (c *Context) Keys() KeySource {
	return c.keys
}

// Close destroys the scene root and tears the context down. Nodes still alive
// become unusable. Close is idempotent.
func (c *Context) Close() {
	if c.state != contextReady {
		c.state = contextClosed
		return
	}
	c.root.Destroy()
	c.root = nil
	c.engine = nil
	c.keys = nil
	c.state = contextClosed
}

// create allocates the primitive for a node of the given key.
func (c *Context) create(key string, parent Primitive, props Props) (Primitive, error) {
	if !c.Ready() {
		return nil, fmt.Errorf("create node %q: %w", key, ErrNotInitialized)
	}
	if parent == nil {
		parent = c.root
	}
	var (
		p   Primitive
		err error
	)
	if props.Has("text") {
		p, err = c.engine.CreateTextNode(parent, props)
	} else {
		p, err = c.engine.CreateNode(parent, props)
	}
	if err != nil {
		return nil, fmt.Errorf("create node %q: %w", key, err)
	}
	return p, nil
}
