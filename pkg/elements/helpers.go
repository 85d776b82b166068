// This file re-exports vtree's node constructors and control-flow
// helpers under the elements package, completing the flat DSL.
package elements

import "github.com/vango-dev/viewstream/pkg/vtree"

var (
	Text     = vtree.Text
	Textf    = vtree.Textf
	Raw      = vtree.RawHTML
	Fragment = vtree.Fragment
	Group    = vtree.Group
	If       = vtree.If
	IfElse   = vtree.IfElse
	When     = vtree.When
	Unless   = vtree.Unless
	Show     = vtree.Show
	HideIf   = vtree.Hide
	Repeat   = vtree.Repeat
	Either   = vtree.Either
	Deferred = vtree.Deferred
	Once     = vtree.Once
)

// CaseOf builds a Case matching value.
func CaseOf[T comparable](value T, node vtree.Node) vtree.Case[T] {
	return vtree.CaseOf(value, node)
}

// DefaultCase builds the fallback Case for Switch.
func DefaultCase[T comparable](node vtree.Node) vtree.Case[T] {
	return vtree.DefaultCase[T](node)
}

// Switch picks the first matching Case for value, falling back to a
// DefaultCase if present.
func Switch[T comparable](value T, cases ...vtree.Case[T]) vtree.Node {
	return vtree.Switch(value, cases...)
}

// Range maps items to nodes in order.
func Range[T any](items []T, fn func(T, int) vtree.Node) vtree.Node {
	return vtree.Range(items, fn)
}

// RangeMap maps a map's entries to nodes, in map iteration order; the
// order is not stable from one call to the next.
func RangeMap[K comparable, V any](m map[K]V, fn func(K, V) vtree.Node) vtree.Node {
	return vtree.RangeMap(m, fn)
}
