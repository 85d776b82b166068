package vtree

import (
	"errors"
	"testing"

	"github.com/vango-dev/viewstream/pkg/renderctx"
)

func TestElementCollectsAttrsAndChildren(t *testing.T) {
	n := Element("div", ID("outer"), Text("before "),
		Element("span", ID("inner"), Text("inner")), Text(" after"))

	if n.Kind != KindElement || n.Tag != "div" {
		t.Fatalf("got Kind=%v Tag=%q", n.Kind, n.Tag)
	}
	if n.Attrs["id"] != "outer" {
		t.Fatalf("attrs[id] = %v", n.Attrs["id"])
	}
	if len(n.Content) != 3 {
		t.Fatalf("len(Content) = %d, want 3", len(n.Content))
	}
}

func TestElementEmptyTagIsFragment(t *testing.T) {
	n := Element("", Text("a"), Text("b"))
	if !n.IsFragment {
		t.Fatal("expected fragment")
	}
}

func TestFragmentFlattensNestedSlices(t *testing.T) {
	n := Fragment([]any{Text("a"), []any{Text("b"), Text("c")}}, "d")
	if len(n.Content) != 4 {
		t.Fatalf("len(Content) = %d, want 4", len(n.Content))
	}
}

func TestNilArgumentsAreSkipped(t *testing.T) {
	n := Element("div", nil, Text("only"))
	if len(n.Content) != 1 {
		t.Fatalf("len(Content) = %d, want 1", len(n.Content))
	}
}

func TestDeferredNodeCarriesFunction(t *testing.T) {
	called := false
	n := Deferred(func(ctx *renderctx.Context) (Node, error) {
		called = true
		return Text("ok"), nil
	})
	if n.Kind != KindDeferred || n.Fn == nil {
		t.Fatal("expected a deferred node with a function")
	}
	if _, err := n.Fn(renderctx.Root()); err != nil || !called {
		t.Fatalf("Fn did not run: called=%v err=%v", called, err)
	}
}

func TestPendingWrapsFuture(t *testing.T) {
	f := NewFuture(func() (Node, error) { return Text("x"), nil })
	n := Pending(f)
	if n.Kind != KindPending {
		t.Fatal("expected pending node")
	}
	got, err := n.Future.Await()
	if err != nil || got.Value != "x" {
		t.Fatalf("Await() = %v, %v", got, err)
	}
}

func TestFutureRecoversPanic(t *testing.T) {
	f := NewFuture(func() (Node, error) {
		panic("boom")
	})
	_, err := f.Await()
	if err == nil {
		t.Fatal("expected panic to surface as an error")
	}
}

func TestFutureSurfacesReturnedError(t *testing.T) {
	sentinel := errors.New("rejected")
	f := NewFuture(func() (Node, error) { return Nil, sentinel })
	_, err := f.Await()
	if !errors.Is(err, sentinel) {
		t.Fatalf("Await() err = %v, want %v", err, sentinel)
	}
}

type fakeForeignElement struct{ tag string }

func (f fakeForeignElement) ForeignElementTag() string { return f.tag }

func TestForeignElementMarkerRoutesToKindForeign(t *testing.T) {
	n := Element("div", fakeForeignElement{tag: "other-framework.Element"})
	if len(n.Content) != 1 {
		t.Fatalf("len(Content) = %d, want 1", len(n.Content))
	}
	child := n.Content[0]
	if child.Kind != KindForeign {
		t.Fatalf("Kind = %v, want KindForeign", child.Kind)
	}
	if child.ForeignTag != "other-framework.Element" {
		t.Fatalf("ForeignTag = %q", child.ForeignTag)
	}
}

type unrecognizedValue struct{ N int }

func TestUnrecognizedValueRoutesToKindUnknown(t *testing.T) {
	n := Element("div", unrecognizedValue{N: 7})
	if len(n.Content) != 1 {
		t.Fatalf("len(Content) = %d, want 1", len(n.Content))
	}
	child := n.Content[0]
	if child.Kind != KindUnknown {
		t.Fatalf("Kind = %v, want KindUnknown", child.Kind)
	}
	if _, ok := child.Value.(unrecognizedValue); !ok {
		t.Fatalf("Value = %#v, want the original unrecognizedValue", child.Value)
	}
}
