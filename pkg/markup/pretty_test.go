package markup

import (
	"strings"
	"testing"

	"github.com/vango-dev/viewstream/pkg/vtree"
)

func TestRenderPrettyIndentsNestedElements(t *testing.T) {
	tree := vtree.Element("div",
		vtree.Element("p", vtree.Text("hi")),
	)

	compact, err := Render(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if compact != "<div><p>hi</p></div>" {
		t.Fatalf("got %q", compact)
	}

	pretty, err := Render(tree, WithPretty(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n  <p>\n    hi\n  </p>\n</div>"
	if pretty != want {
		t.Fatalf("got %q, want %q", pretty, want)
	}
}

func TestRenderPrettyPropagatesError(t *testing.T) {
	tree := vtree.Element("br", vtree.Text("bad"))
	if _, err := Render(tree, WithPretty(true)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestRenderPrettySelfClosingVoidElementStaysOnOneLine(t *testing.T) {
	tree := vtree.Element("div", vtree.Element("img", vtree.Attr{Key: "src", Value: "/a.png"}))
	got, err := Render(tree, WithPretty(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `<img src="/a.png" />`) {
		t.Fatalf("got %q, missing self-closing img on its own line", got)
	}
}
