package sprig

import (
	"fmt"
	"sort"
)

// nodeIDCounter is a plain counter; sprig is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// RetainedNode is an in-memory engine primitive: a property bag in a parent
// tree, ordered for drawing by zIndex with insertion order as the tiebreak.
// RetainedEngine creates them; the ebiten and terminal engines draw them.
type RetainedNode struct {
	ID   uint32
	text bool

	props    Props
	parent   *RetainedNode
	children []*RetainedNode
	animator *Animator

	destroyed      bool
	childrenSorted bool
	sortedChildren []*RetainedNode // reused buffer for zIndex-sorted draw order
}

func newRetainedNode(parent *RetainedNode, text bool, props Props, animator *Animator) *RetainedNode {
	n := &RetainedNode{
		ID:             nextNodeID(),
		text:           text,
		props:          props.Clone(),
		animator:       animator,
		childrenSorted: true,
	}
	if n.props == nil {
		n.props = Props{}
	}
	if parent != nil {
		n.parent = parent
		parent.children = append(parent.children, n)
		parent.childrenSorted = false
	}
	return n
}

// Get implements Primitive.
func (n *RetainedNode) Get(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

// Set implements Primitive. Writing zIndex re-sorts the parent's draw order.
func (n *RetainedNode) Set(name string, value any) {
	if n.destroyed {
		return
	}
	n.props[name] = value
	if name == "zIndex" && n.parent != nil {
		n.parent.childrenSorted = false
	}
}

// Animate implements Primitive.
func (n *RetainedNode) Animate(target Props, cfg AnimationConfig) Animation {
	return NewPropTween(n, target, cfg, n.animator)
}

// Destroy implements Primitive. The node is detached from its parent and its
// whole subtree is marked destroyed.
func (n *RetainedNode) Destroy() {
	if n.destroyed {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.dispose()
}

func (n *RetainedNode) dispose() {
	n.destroyed = true
	for _, child := range n.children {
		child.parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.parent = nil
}

// IsDestroyed reports whether Destroy has been called.
func (n *RetainedNode) IsDestroyed() bool {
	return n.destroyed
}

// IsText reports whether the node was created through CreateTextNode.
func (n *RetainedNode) IsText() bool {
	return n.text
}

// Props returns a copy of the current properties.
func (n *RetainedNode) Props() Props {
	return n.props.Clone()
}

// Float reads a numeric property.
func (n *RetainedNode) Float(name string, def float64) float64 {
	return n.props.FloatOr(name, def)
}

// Parent returns the engine parent, nil for the engine root or once destroyed.
func (n *RetainedNode) Parent() *RetainedNode {
	return n.parent
}

// Children returns the children in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (n *RetainedNode) Children() []*RetainedNode {
	return n.children
}

// DrawOrder returns the children sorted by zIndex, stable on insertion order,
// so later siblings draw on top. The returned slice MUST NOT be mutated.
func (n *RetainedNode) DrawOrder() []*RetainedNode {
	if !n.childrenSorted {
		n.rebuildSortedChildren()
	}
	if n.sortedChildren == nil {
		return n.children
	}
	return n.sortedChildren
}

func (n *RetainedNode) rebuildSortedChildren() {
	n.childrenSorted = true
	needSort := false
	for _, c := range n.children {
		if c.props.FloatOr("zIndex", 0) != 0 {
			needSort = true
			break
		}
	}
	if !needSort {
		n.sortedChildren = nil
		return
	}
	n.sortedChildren = append(n.sortedChildren[:0], n.children...)
	sort.SliceStable(n.sortedChildren, func(i, j int) bool {
		return n.sortedChildren[i].props.FloatOr("zIndex", 0) < n.sortedChildren[j].props.FloatOr("zIndex", 0)
	})
}

func (n *RetainedNode) removeChild(child *RetainedNode) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			n.childrenSorted = false
			return
		}
	}
}

// Walk visits n and its subtree in draw order, depth-first. The visit
// function receives each node's depth below n.
func (n *RetainedNode) Walk(visit func(node *RetainedNode, depth int)) {
	n.walk(visit, 0)
}

func (n *RetainedNode) walk(visit func(*RetainedNode, int), depth int) {
	visit(n, depth)
	for _, c := range n.DrawOrder() {
		c.walk(visit, depth+1)
	}
}

// RetainedEngine is an Engine that keeps primitives in memory as a
// RetainedNode tree. On its own it is a headless engine; the ebiten and
// terminal engines embed it and draw the tree.
type RetainedEngine struct {
	root     *RetainedNode
	animator *Animator

	created int
}

// NewRetainedEngine returns an engine with an empty root.
func NewRetainedEngine() *RetainedEngine {
	e := &RetainedEngine{animator: NewAnimator()}
	e.root = newRetainedNode(nil, false, Props{"color": 0}, e.animator)
	return e
}

// Root implements Engine.
func (e *RetainedEngine) Root() Primitive {
	return e.root
}

// RootNode returns the engine root as a RetainedNode for drawing.
func (e *RetainedEngine) RootNode() *RetainedNode {
	return e.root
}

// CreateNode implements Engine.
func (e *RetainedEngine) CreateNode(parent Primitive, props Props) (Primitive, error) {
	n, err := e.create(parent, false, props)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// CreateTextNode implements Engine.
func (e *RetainedEngine) CreateTextNode(parent Primitive, props Props) (Primitive, error) {
	n, err := e.create(parent, true, props)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (e *RetainedEngine) create(parent Primitive, text bool, props Props) (*RetainedNode, error) {
	var p *RetainedNode
	if parent != nil {
		var ok bool
		p, ok = parent.(*RetainedNode)
		if !ok {
			return nil, fmt.Errorf("create primitive: parent %T: %w", parent, ErrForeignPrimitive)
		}
		if p.destroyed {
			return nil, fmt.Errorf("create primitive: parent %d: %w", p.ID, ErrNodeDestroyed)
		}
	} else {
		p = e.root
	}
	e.created++
	return newRetainedNode(p, text, props, e.animator), nil
}

// Animator returns the animator that advances tweens started on this engine's
// primitives.
func (e *RetainedEngine) Animator() *Animator {
	return e.animator
}

// Advance steps every running animation by dt seconds.
func (e *RetainedEngine) Advance(dt float32) {
	e.animator.Update(dt)
}

// Created returns how many primitives have been created, excluding the root.
func (e *RetainedEngine) Created() int {
	return e.created
}

// Live counts the primitives currently attached below the engine root.
func (e *RetainedEngine) Live() int {
	count := -1
	e.root.Walk(func(*RetainedNode, int) { count++ })
	return count
}
