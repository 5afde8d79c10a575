package sprig

import "fmt"

// Node wraps a single engine primitive. It adds a stable key, an ordered child
// list the engine does not expose, recursive destruction and property
// pass-through onto the primitive.
//
// A Node holds no reference to its parent. Keys are expected to be unique
// within a scene; lookups return the first match.
type Node struct {
	key      string
	native   Primitive
	children []*Node

	destroyed bool
}

// NewNode creates the engine primitive for key and wraps it.
//
// When props contains "text" the primitive is created through
// Engine.CreateTextNode, otherwise through Engine.CreateNode. With a non-nil
// parent the primitive is created under the parent's primitive and the node
// registers itself as the parent's child. With a nil parent the primitive is
// attached to the context's scene root and a warning is logged.
//
// NewNode fails when ctx is not initialized, key is empty, parent has been
// destroyed or the engine refuses to create the primitive.
func NewNode(ctx *Context, key string, parent *Node, props Props) (*Node, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if !ctx.Ready() {
		return nil, fmt.Errorf("create node %q: %w", key, ErrNotInitialized)
	}
	var parentPrim Primitive
	if parent != nil {
		if parent.destroyed {
			return nil, fmt.Errorf("create node %q under %q: %w", key, parent.key, ErrNodeDestroyed)
		}
		parentPrim = parent.native
	}
	if props == nil {
		props = Props{}
	}
	native, err := ctx.create(key, parentPrim, props)
	if err != nil {
		return nil, err
	}
	n := &Node{key: key, native: native}
	if parent != nil {
		parent.Add(n)
	} else {
		Logger().Warn("sprig: dangling node has no parent, adding to root", "key", key)
	}
	return n, nil
}

// Key returns the node's key.
func (n *Node) Key() string {
	return n.key
}

// Get returns the wrapped engine primitive, or nil once destroyed. Prefer Prop,
// SetProp and Animate; Get exists for interop with engine-specific APIs.
func (n *Node) Get() Primitive {
	return n.native
}

// IsDestroyed reports whether Destroy has been called.
func (n *Node) IsDestroyed() bool {
	return n.destroyed
}

// --- Tree manipulation ---

// Add appends child to the child list. There is no cycle or duplicate check:
// adding the same child twice registers it twice.
// Panics if child is nil.
func (n *Node) Add(child *Node) {
	if child == nil {
		panic("sprig: cannot add nil child")
	}
	if n.destroyed {
		logDestroyed(n, "Add")
		return
	}
	n.children = append(n.children, child)
	checkChildCount(n)
}

// Remove detaches the first reference-equal match of child from the child
// list. It does not destroy child; call Destroy for that. No-op if absent.
func (n *Node) Remove(child *Node) {
	if n.destroyed {
		logDestroyed(n, "Remove")
		return
	}
	n.removeChildByPtr(child)
}

// Children returns a copy of the child list in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// NumChildren returns the number of registered children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Find searches the subtree depth-first, pre-order: n itself first, then each
// child in order. Destroyed nodes and their subtrees are skipped. Returns nil
// when no node has the key.
func (n *Node) Find(key string) *Node {
	if n.destroyed {
		return nil
	}
	if n.key == key {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(key); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Destroy destroys every child first, then releases the primitive. A second
// call is a no-op. Destroy does not detach n from the parent's child list;
// the parent skips it in Find from then on.
func (n *Node) Destroy() {
	if n.destroyed {
		logDestroyed(n, "Destroy")
		return
	}
	n.destroyed = true
	// Children may be destroyed from listeners while we walk; iterate a copy.
	children := n.children
	n.children = nil
	for _, child := range children {
		if !child.destroyed {
			child.Destroy()
		}
	}
	if n.native != nil {
		n.native.Destroy()
		n.native = nil
	}
}

// --- Property pass-through ---

// Prop reads a property from the primitive. Returns nil when the property is
// unset or the node is destroyed.
func (n *Node) Prop(name string) any {
	if n.native == nil {
		return nil
	}
	v, _ := n.native.Get(name)
	return v
}

// Float reads a numeric property, normalizing any Go numeric kind.
func (n *Node) Float(name string) (float64, bool) {
	return toFloat(n.Prop(name))
}

// SetProp writes a property to the primitive. Ignored on a destroyed node.
func (n *Node) SetProp(name string, value any) {
	if n.native == nil {
		logDestroyed(n, "SetProp")
		return
	}
	n.native.Set(name, value)
}

// SetProps writes every entry of props, in no particular order.
func (n *Node) SetProps(props Props) {
	for k, v := range props {
		n.SetProp(k, v)
	}
}

// Animate prepares an animation of the primitive toward target. Call Start on
// the result to run it. Returns nil on a destroyed node.
func (n *Node) Animate(target Props, cfg AnimationConfig) Animation {
	if n.native == nil {
		logDestroyed(n, "Animate")
		return nil
	}
	return n.native.Animate(target, cfg)
}

// --- Helpers ---

// removeChildByPtr removes the first occurrence of child. Uses copy+nil to
// avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return true
		}
	}
	return false
}
