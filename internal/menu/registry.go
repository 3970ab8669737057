package menu

import "strings"

// RootID identifies the top level of the configuration menu.
const RootID = "root"

// Node represents a menu entry definition within the registry tree.
type Node struct {
	ID       string
	Loader   Loader
	Action   Action
	Children map[string]*Node
}

// Registry exposes lookup utilities for menu definitions.
type Registry struct {
	root  *Node
	nodes map[string]*Node
}

// BuildRegistry wires loaders and actions into a tree keyed by the
// colon-separated node IDs.
func BuildRegistry() *Registry {
	nodes := make(map[string]*Node)

	ensure := func(id string) *Node {
		if node, ok := nodes[id]; ok {
			return node
		}
		node := &Node{ID: id, Children: make(map[string]*Node)}
		nodes[id] = node
		return node
	}

	root := ensure(RootID)
	root.Loader = func(Context) ([]Item, error) { return RootItems(), nil }

	for id, loader := range CategoryLoaders() {
		ensure(id).Loader = loader
	}
	for id, loader := range ActionLoaders() {
		ensure(id).Loader = loader
	}
	for id, action := range ActionHandlers() {
		ensure(id).Action = action
	}

	for id, node := range nodes {
		if id == RootID {
			continue
		}
		parentID, key := parentKey(id)
		ensure(parentID).Children[key] = node
	}

	return &Registry{root: root, nodes: nodes}
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

func parentKey(id string) (string, string) {
	idx := strings.LastIndex(id, ":")
	if idx < 0 {
		return RootID, id
	}
	return id[:idx], id[idx+1:]
}
