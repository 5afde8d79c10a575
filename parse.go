package sprig

// parser materializes a Template into nodes for one scene.
//
// Child registration belongs to NewNode: a node created with a parent adds
// itself to that parent. The parser only records depth-0 nodes on the scene.
type parser struct {
	ctx   *Context
	scene *Scene
}

// parse creates a node per entry of layer, in order, under parent. Containers
// recurse with their node as parent.
func (p *parser) parse(layer Template, parent *Node, depth int) error {
	for _, e := range layer {
		if e.IsNull() {
			continue
		}
		if e.missingProps() {
			Logger().Warn("sprig: container has no props, skipping it and its children",
				"key", e.Key, "children", len(e.Children))
			continue
		}
		checkTreeDepth(e.Key, depth+1)

		node, err := NewNode(p.ctx, e.Key, parent, e.Props.Clone())
		if err != nil {
			return err
		}
		if depth == 0 {
			p.scene.children = append(p.scene.children, node)
		}
		if e.container {
			if err := p.parse(e.Children, node, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
