package rubyast

// Inspect traverses the tree rooted at node in depth-first pre-order,
// calling fn for each node. If fn returns false, the children of the
// current node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	switch n := node.(type) {
	case *File:
		inspectAll(n.Statements, fn)
	case *ClassNode:
		if n.Name != nil {
			Inspect(n.Name, fn)
		}
		Inspect(n.Superclass, fn)
		inspectAll(n.Body, fn)
	case *ModuleNode:
		if n.Name != nil {
			Inspect(n.Name, fn)
		}
		inspectAll(n.Body, fn)
	case *DefNode:
		inspectAll(n.Body, fn)
	case *SendNode:
		Inspect(n.Receiver, fn)
		inspectAll(n.Args, fn)
	case *AssignNode:
		Inspect(n.Target, fn)
		Inspect(n.Value, fn)
	case *ConstNode, *IdentNode, *LiteralNode:
		// leaves
	}
}

func inspectAll(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		Inspect(n, fn)
	}
}
