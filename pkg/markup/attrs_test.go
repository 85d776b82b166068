package markup

import (
	"strings"
	"testing"

	"github.com/vango-dev/viewstream/pkg/renderctx"
)

func TestVoidElementSetMatchesGlossary(t *testing.T) {
	for _, tag := range []string{"area", "base", "br", "col", "embed", "hr",
		"img", "input", "keygen", "link", "meta", "param", "source", "track", "wbr"} {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false, want true", tag)
		}
	}
	if IsVoidElement("div") {
		t.Error("IsVoidElement(div) = true, want false")
	}
}

func TestBooleanAttrSetMatchesGlossary(t *testing.T) {
	for _, name := range []string{"allowfullscreen", "async", "autofocus", "autoplay",
		"checked", "controls", "default", "defer", "disabled", "download",
		"formnovalidate", "hidden", "inert", "ismap", "itemscope", "loop",
		"multiple", "muted", "nomodule", "novalidate", "open", "playsinline",
		"readonly", "required", "reversed", "selected"} {
		if !IsBooleanAttr(name) {
			t.Errorf("IsBooleanAttr(%q) = false, want true", name)
		}
	}
	if IsBooleanAttr("type") {
		t.Error("IsBooleanAttr(type) = true, want false")
	}
}

func TestWriteOpeningTagBooleanAttrsHTML(t *testing.T) {
	var b strings.Builder
	attrs := map[string]any{"type": "checkbox", "checked": true, "disabled": false}
	if err := WriteOpeningTag(&b, "input", attrs, true, ModeHTML); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := b.String()
	want := `<input checked type="checkbox" />`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteOpeningTagBooleanAttrsXML(t *testing.T) {
	var b strings.Builder
	attrs := map[string]any{"type": "checkbox", "checked": true, "disabled": false}
	if err := WriteOpeningTag(&b, "input", attrs, true, ModeXML); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := b.String()
	want := `<input checked="true" disabled="false" type="checkbox" />`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFunctionAttributeValueFails(t *testing.T) {
	var b strings.Builder
	attrs := map[string]any{"funcAttr": func() {}}
	err := WriteOpeningTag(&b, "div", attrs, false, ModeHTML)
	if err == nil {
		t.Fatal("expected attribute-type-error")
	}
	re, ok := err.(*RenderingError)
	if !ok || re.Kind != AttributeTypeError {
		t.Fatalf("err = %v, want *RenderingError{Kind: AttributeTypeError}", err)
	}
}

func TestContextKeyAttributeValueFails(t *testing.T) {
	var b strings.Builder
	key := renderctx.NewKey[string]()
	attrs := map[string]any{"bad": key}
	if err := WriteOpeningTag(&b, "div", attrs, false, ModeHTML); err == nil {
		t.Fatal("expected attribute-type-error for a context key value")
	}
}

func TestSerializeStyleCamelCaseAndUnits(t *testing.T) {
	style := map[string]any{
		"backgroundColor": "red",
		"fontSize":        16,
		"opacity":         0.5,
		"--v":             "x",
	}
	got := SerializeStyle(style)
	want := "--v:x;background-color:red;font-size:16px;opacity:0.5"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSerializeClassFlattensAndFiltersFalsy(t *testing.T) {
	got := SerializeClass([]any{"a", "", nil, []any{"b", map[string]bool{"c": true, "d": false}}})
	want := "a b c"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
