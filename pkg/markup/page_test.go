package markup

import (
	"strings"
	"testing"

	"github.com/vango-dev/viewstream/pkg/vtree"
)

func TestPageAssemblesDocumentShellWithTeleportedHeadTags(t *testing.T) {
	body := vtree.Element("div",
		vtree.Text("content"),
		MetaTag(map[string]string{"name": "description", "content": "a page"}),
	)
	page := Page(body, WithTitle("My Page"), WithStyleSheet("/app.css"))

	got, err := Render(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>\n<html lang=\"en\">") {
		t.Fatalf("got %q, missing doctype/html prefix", got)
	}
	if !strings.Contains(got, "<title>My Page</title>") {
		t.Fatalf("got %q, missing title", got)
	}
	if !strings.Contains(got, `<link href="/app.css" rel="stylesheet" />`) {
		t.Fatalf("got %q, missing stylesheet link", got)
	}
	if !strings.Contains(got, `<meta content="a page" name="description" />`) {
		t.Fatalf("got %q, missing teleported meta tag emitted into head", got)
	}
	if !strings.Contains(got, "<div>content</div>") {
		t.Fatalf("got %q, missing body content", got)
	}
	headEnd := strings.Index(got, "</head>")
	metaIdx := strings.Index(got, `name="description"`)
	if headEnd == -1 || metaIdx == -1 || metaIdx > headEnd {
		t.Fatalf("expected the body-pushed meta tag to appear inside <head>, got %q", got)
	}
}
