package vtree

import (
	"fmt"
	"math/big"

	"github.com/vango-dev/viewstream/pkg/renderctx"
)

// Attr is a single attribute key/value pair, the argument form accepted
// by Element alongside child nodes.
type Attr struct {
	Key   string
	Value any
}

func attr(key string, value any) Attr { return Attr{Key: key, Value: value} }

// Element builds an element or fragment node from a tag and a list of
// mixed-type arguments, playing the role the JSX factory plays for a
// dynamically typed source language. Accepted argument kinds: nil
// (ignored, enabling conditional attributes/children), Attr, []Attr,
// Node, []Node, string, Component, any primitive, and anything else
// normalize accepts. A child that normalizes to a sequence (a slice,
// nested slices, or a Sequence node) is spliced into Content item by
// item.
//
// tag == "" produces a fragment.
func Element(tag string, args ...any) Node {
	el := Node{
		Kind:        KindElement,
		Tag:         tag,
		IsFragment:  tag == "",
		Attrs:       make(map[string]any),
		DisplayName: tag,
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if v.Key != "" {
				el.Attrs[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					el.Attrs[a.Key] = a.Value
				}
			}
		default:
			child := normalize(arg)
			switch {
			case child.Kind == KindSequence:
				el.Content = append(el.Content, child.Items...)
			case !child.IsNil():
				el.Content = append(el.Content, child)
			}
		}
	}
	if el.IsFragment {
		el.DisplayName = ""
	}
	return el
}

// Component is anything that can produce a node given a render
// context. Class-style components implement this directly; the
// container package adapts constructors marked as class components
// into instances satisfying it (see pkg/markup's component resolution).
type Component interface {
	Render(ctx *renderctx.Context) (Node, error)
}

// ForeignElement is implemented by values that carry their own marker
// identifying them as an element from another rendering framework
// (the Go analogue of a sentinel property like a JSX element's
// "$$typeof"). Any value satisfying it is rejected outright rather
// than stringified, since embedding another framework's tree here is
// almost always a mistake rather than content to display.
type ForeignElement interface {
	ForeignElementTag() string
}

// normalize converts an arbitrary Go value into a Node the same way a
// JSX factory's child-array normalization does: strings/numbers become
// primitives, nested slices flatten into sequences, functions become
// deferred nodes, and Futures become pending nodes.
func normalize(v any) Node {
	switch val := v.(type) {
	case nil:
		return Nil
	case Node:
		return val
	case *Node:
		if val == nil {
			return Nil
		}
		return *val
	case []Node:
		return Sequence(val...)
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64, *big.Int:
		return Node{Kind: KindPrimitive, Value: val}
	case []any:
		items := make([]Node, 0, len(val))
		for _, c := range val {
			n := normalize(c)
			if n.Kind == KindSequence {
				items = append(items, n.Items...)
			} else if !n.IsNil() {
				items = append(items, n)
			}
		}
		return Sequence(items...)
	case DeferredFunc:
		return Deferred(val)
	case func(*renderctx.Context) (Node, error):
		return Deferred(val)
	case *Future:
		return Node{Kind: KindPending, Future: val}
	case ForeignElement:
		return Node{Kind: KindForeign, ForeignTag: val.ForeignElementTag()}
	case Component:
		return Deferred(func(ctx *renderctx.Context) (Node, error) { return val.Render(ctx) })
	case fmt.Stringer:
		return Node{Kind: KindPrimitive, Value: val.String()}
	default:
		// True catch-all: stringified at walk time rather than here, so
		// the walker's dispatch table (not the factory) owns the
		// "anything else" rule.
		return Node{Kind: KindUnknown, Value: val}
	}
}

// Sequence builds an ordered sequence node from already-constructed
// nodes, skipping nils.
func Sequence(nodes ...Node) Node {
	items := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsNil() {
			items = append(items, n)
		}
	}
	return Node{Kind: KindSequence, Items: items}
}

// Fragment groups heterogeneous children without a wrapper element. It
// accepts the same argument kinds as Element's children.
func Fragment(children ...any) Node {
	return Element("", children...)
}

// Group is an alias for Fragment, matching common naming in markup DSLs.
func Group(children ...any) Node {
	return Fragment(children...)
}

// Text creates an escaped text primitive.
func Text(content string) Node {
	return Node{Kind: KindPrimitive, Value: content}
}

// Textf formats and wraps the result as a text primitive.
func Textf(format string, args ...any) Node {
	return Text(fmt.Sprintf(format, args...))
}

// RawHTML wraps a verbatim string emitted without escaping.
func RawHTML(html string) Node {
	return Node{Kind: KindRaw, Raw: html}
}

// Deferred wraps fn as a deferred node, the renderer's lazy/async
// content primitive.
func Deferred(fn DeferredFunc) Node {
	return Node{Kind: KindDeferred, Fn: fn}
}

// DeferredNamed is Deferred with an explicit display name, used by
// component wrappers so error component-stacks show a meaningful name
// instead of an anonymous function.
func DeferredNamed(name string, fn DeferredFunc) Node {
	return Node{Kind: KindDeferred, Fn: fn, Name: name}
}

// Pending wraps an in-flight Future as a node.
func Pending(f *Future) Node {
	return Node{Kind: KindPending, Future: f}
}
