package scene

// sceneImpl is the implementation of the Scene interface.
type sceneImpl struct {
	name string
	root Node
}

// Scene wraps the root of a loaded scene graph with name-based lookup and
// depth-first traversal. The graph itself is produced by the asset
// collaborator; a Scene never creates or destroys nodes.
type Scene interface {
	// Name returns the scene's identifier.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Root returns the root node of the graph.
	//
	// Returns:
	//   - Node: the root node
	Root() Node

	// Find returns the first node with the given name in depth-first
	// traversal order, or nil if no node matches.
	//
	// Parameters:
	//   - name: the node name to look up
	//
	// Returns:
	//   - Node: the matching node or nil
	Find(name string) Node

	// Traverse walks the whole graph depth-first in pre-order.
	// Returning false from visit stops the walk.
	//
	// Parameters:
	//   - visit: callback invoked per node; return false to stop
	Traverse(visit func(Node) bool)

	// NodeNames returns every node name in depth-first traversal order.
	// The order is the tie-break order used by track retargeting.
	//
	// Returns:
	//   - []string: node names in traversal order
	NodeNames() []string
}

var _ Scene = &sceneImpl{}

// NewScene wraps a root node as a Scene.
//
// Parameters:
//   - name: the scene identifier
//   - root: the root node of the loaded graph (must not be nil)
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, root Node) Scene {
	if root == nil {
		panic("scene: NewScene requires a non-nil root node")
	}
	return &sceneImpl{name: name, root: root}
}

func (s *sceneImpl) Name() string {
	return s.name
}

func (s *sceneImpl) Root() Node {
	return s.root
}

func (s *sceneImpl) Find(name string) Node {
	var found Node
	s.root.Traverse(func(n Node) bool {
		if n.Name() == name {
			found = n
			return false
		}
		return true
	})
	return found
}

func (s *sceneImpl) Traverse(visit func(Node) bool) {
	s.root.Traverse(visit)
}

func (s *sceneImpl) NodeNames() []string {
	names := make([]string, 0, 32)
	s.root.Traverse(func(n Node) bool {
		names = append(names, n.Name())
		return true
	})
	return names
}
