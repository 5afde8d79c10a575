package sprig

// Thresholds above which the tree is probably being built by mistake, such as
// a template generated in a loop that never terminates.
const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// logDestroyed reports an operation ignored because n was destroyed.
func logDestroyed(n *Node, op string) {
	Logger().Debug("sprig: ignoring operation on destroyed node", "op", op, "key", n.key)
}

// checkChildCount warns once a node crosses debugMaxChildCount children.
func checkChildCount(n *Node) {
	if len(n.children) == debugMaxChildCount+1 {
		Logger().Warn("sprig: node has too many children",
			"key", n.key, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// checkTreeDepth warns when a template nests deeper than debugMaxTreeDepth.
func checkTreeDepth(key string, depth int) {
	if depth == debugMaxTreeDepth+1 {
		Logger().Warn("sprig: template nesting too deep",
			"key", key, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}
