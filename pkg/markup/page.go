package markup

import (
	"github.com/vango-dev/viewstream/pkg/vtree"
)

// HeadStack is the stack identity components push meta/link/style/
// script tags onto from anywhere in the tree; Page's head section
// materializes them with a single StackOut, so head-tag placement goes
// through the same stack/teleportation primitive as any other content
// instead of a fixed set of struct fields.
var HeadStack = vtree.NewStackToken("markup.head")

// PageData configures Page's document shell.
type PageData struct {
	Lang             string
	Title            string
	StyleSheets      []string
	InlineCriticalCSS string
}

// PageOption configures a PageData.
type PageOption func(*PageData)

// WithLang sets the html lang attribute (default "en").
func WithLang(lang string) PageOption { return func(p *PageData) { p.Lang = lang } }

// WithTitle sets the document title.
func WithTitle(title string) PageOption { return func(p *PageData) { p.Title = title } }

// WithStyleSheet appends an external stylesheet link.
func WithStyleSheet(href string) PageOption {
	return func(p *PageData) { p.StyleSheets = append(p.StyleSheets, href) }
}

// WithInlineCriticalCSS inlines css into a <style> tag in <head>,
// typically populated from pkg/cssasset.
func WithInlineCriticalCSS(css string) PageOption {
	return func(p *PageData) { p.InlineCriticalCSS = css }
}

// Page wraps body in a complete HTML document: DOCTYPE, <html lang>,
// a <head> that emits the fixed boilerplate tags and then
// materializes whatever MetaTag/LinkTag/ScriptTag calls were reached
// anywhere in body via HeadStack, and <body>. Grounded on the
// teacher's RenderPage/renderHead, generalized from PageData's fixed
// struct fields to stack-sourced head content.
func Page(body vtree.Node, opts ...PageOption) vtree.Node {
	data := PageData{Lang: "en"}
	for _, opt := range opts {
		opt(&data)
	}

	head := []any{
		vtree.Element("meta", attr("charset", "utf-8")),
		vtree.Element("meta", attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1")),
	}
	if data.Title != "" {
		head = append(head, vtree.Element("title", vtree.Text(data.Title)))
	}
	for _, href := range data.StyleSheets {
		head = append(head, vtree.Element("link", attr("rel", "stylesheet"), attr("href", href)))
	}
	if data.InlineCriticalCSS != "" {
		head = append(head, vtree.Element("style", vtree.RawHTML(data.InlineCriticalCSS)))
	}
	head = append(head, vtree.StackOut(HeadStack))

	return vtree.Sequence(
		vtree.RawHTML("<!DOCTYPE html>\n"),
		vtree.Element("html", attr("lang", data.Lang),
			vtree.Element("head", head...),
			vtree.Element("body", body),
		),
	)
}

// MetaTag pushes a <meta> tag onto HeadStack from wherever a
// component is walked in the tree.
func MetaTag(pairs map[string]string) vtree.Node {
	attrs := make([]vtree.Attr, 0, len(pairs))
	for k, v := range pairs {
		attrs = append(attrs, vtree.Attr{Key: k, Value: v})
	}
	return vtree.StackPush(HeadStack, vtree.Element("meta", attrsToArgs(attrs)...))
}

// LinkTag pushes a <link> tag onto HeadStack.
func LinkTag(rel, href string, extra map[string]string) vtree.Node {
	attrs := []vtree.Attr{{Key: "rel", Value: rel}, {Key: "href", Value: href}}
	for k, v := range extra {
		attrs = append(attrs, vtree.Attr{Key: k, Value: v})
	}
	return vtree.StackPush(HeadStack, vtree.Element("link", attrsToArgs(attrs)...))
}

// ScriptTag pushes a <script> tag onto HeadStack. If inline is
// non-empty, src is ignored and inline becomes the script body.
func ScriptTag(src string, inline string, deferAttr bool) vtree.Node {
	args := []any{}
	if src != "" && inline == "" {
		args = append(args, attr("src", src))
	}
	if deferAttr {
		args = append(args, attr("defer", true))
	}
	if inline != "" {
		args = append(args, vtree.RawHTML(inline))
	}
	return vtree.StackPush(HeadStack, vtree.Element("script", args...))
}

func attrsToArgs(attrs []vtree.Attr) []any {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return args
}

func attr(key string, value any) vtree.Attr { return vtree.Attr{Key: key, Value: value} }
