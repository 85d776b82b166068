// Package vtree defines the markup node tree consumed by the renderer:
// the tagged-variant node type, the tree-construction helpers that play
// the role of a JSX factory, and the Future type used to represent
// asynchronous content.
package vtree

import "github.com/vango-dev/viewstream/pkg/renderctx"

// Kind discriminates the variants of Node. The renderer's walker
// switches on Kind exhaustively; every node carries only the fields
// relevant to its Kind.
type Kind uint8

const (
	KindPrimitive Kind = iota // string, number, bool, nil
	KindRaw                   // verbatim, unescaped string
	KindElement               // tag (or fragment) with attributes and content
	KindSequence              // ordered list of nodes
	KindDeferred              // function of a context, returning a node
	KindPending               // a Future resolving to a node
	KindOnce                  // key-guarded child, emitted at most once per render
	KindStackPush             // content redirected into a named stack's sink
	KindStackOut              // materializes a stack's accumulated content
	KindForeign               // a foreign framework's element, rejected on sight
	KindUnknown               // any other Go value, stringified at walk time
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindRaw:
		return "Raw"
	case KindElement:
		return "Element"
	case KindSequence:
		return "Sequence"
	case KindDeferred:
		return "Deferred"
	case KindPending:
		return "Pending"
	case KindOnce:
		return "Once"
	case KindStackPush:
		return "StackPush"
	case KindStackOut:
		return "StackOut"
	case KindForeign:
		return "Foreign"
	case KindUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// DeferredFunc is the shape of a deferred content function: it receives
// the forked context it was invoked with and returns the node it
// produced, or an error if it failed synchronously. Asynchronous work
// is represented by returning a Node of KindPending, not by blocking.
type DeferredFunc func(ctx *renderctx.Context) (Node, error)

// Node is the single tagged-variant type backing the whole markup tree.
// Only the fields relevant to Kind are populated; the rest are zero.
type Node struct {
	Kind Kind

	// KindPrimitive: Value holds string, bool, nil, or any of the
	// numeric kinds (int, int64, float64, *big.Int).
	Value any

	// KindRaw
	Raw string

	// KindElement
	Tag         string // empty + IsFragment == true means fragment
	IsFragment  bool
	Attrs       map[string]any
	Content     []Node
	DisplayName string

	// KindSequence
	Items []Node

	// KindDeferred
	Fn   DeferredFunc
	Name string // diagnostic display name for the function/component

	// KindPending
	Future *Future

	// KindOnce
	OnceKey   any
	OnceChild *Node

	// KindStackPush / KindStackOut
	StackID    *StackToken
	StackChild *Node

	// KindForeign
	ForeignTag string

	// KindUnknown: Value holds the original Go value, stringified via
	// fmt and escaped at walk time rather than here.
}

// IsNil reports whether n is the zero Node, used by tree-construction
// helpers to recognize "nothing was produced here".
func (n Node) IsNil() bool {
	return n.Kind == KindPrimitive && n.Value == nil && n.Raw == "" && n.Tag == "" && n.Fn == nil
}

// Nil is the canonical empty node: renders nothing.
var Nil = Node{Kind: KindPrimitive, Value: nil}
