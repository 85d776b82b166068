package elements

import "github.com/vango-dev/viewstream/pkg/vtree"

// Type aliases for the node primitives used by the DSL.
type Node = vtree.Node
type Component = vtree.Component
