// Package elements provides a constructor function for every HTML
// and common-SVG tag, each a thin wrapper around vtree.Element that
// fixes the tag name.
package elements

import "github.com/vango-dev/viewstream/pkg/vtree"

// Html builds a <html> element.
func Html(args ...any) vtree.Node {
	return vtree.Element("html", args...)
}

// Head builds a <head> element.
func Head(args ...any) vtree.Node {
	return vtree.Element("head", args...)
}

// Body builds a <body> element.
func Body(args ...any) vtree.Node {
	return vtree.Element("body", args...)
}

// Title builds a <title> element.
func Title(args ...any) vtree.Node {
	return vtree.Element("title", args...)
}

// Meta builds a <meta> element.
func Meta(args ...any) vtree.Node {
	return vtree.Element("meta", args...)
}

// LinkEl builds a <link> element.
func LinkEl(args ...any) vtree.Node {
	return vtree.Element("link", args...)
}

// Base builds a <base> element.
func Base(args ...any) vtree.Node {
	return vtree.Element("base", args...)
}

// Header builds a <header> element.
func Header(args ...any) vtree.Node {
	return vtree.Element("header", args...)
}

// Footer builds a <footer> element.
func Footer(args ...any) vtree.Node {
	return vtree.Element("footer", args...)
}

// Main builds a <main> element.
func Main(args ...any) vtree.Node {
	return vtree.Element("main", args...)
}

// Nav builds a <nav> element.
func Nav(args ...any) vtree.Node {
	return vtree.Element("nav", args...)
}

// Section builds a <section> element.
func Section(args ...any) vtree.Node {
	return vtree.Element("section", args...)
}

// Article builds a <article> element.
func Article(args ...any) vtree.Node {
	return vtree.Element("article", args...)
}

// Aside builds a <aside> element.
func Aside(args ...any) vtree.Node {
	return vtree.Element("aside", args...)
}

// Address builds a <address> element.
func Address(args ...any) vtree.Node {
	return vtree.Element("address", args...)
}

// H1 builds a <h1> element.
func H1(args ...any) vtree.Node {
	return vtree.Element("h1", args...)
}

// H2 builds a <h2> element.
func H2(args ...any) vtree.Node {
	return vtree.Element("h2", args...)
}

// H3 builds a <h3> element.
func H3(args ...any) vtree.Node {
	return vtree.Element("h3", args...)
}

// H4 builds a <h4> element.
func H4(args ...any) vtree.Node {
	return vtree.Element("h4", args...)
}

// H5 builds a <h5> element.
func H5(args ...any) vtree.Node {
	return vtree.Element("h5", args...)
}

// H6 builds a <h6> element.
func H6(args ...any) vtree.Node {
	return vtree.Element("h6", args...)
}

// Hgroup builds a <hgroup> element.
func Hgroup(args ...any) vtree.Node {
	return vtree.Element("hgroup", args...)
}

// Div builds a <div> element.
func Div(args ...any) vtree.Node {
	return vtree.Element("div", args...)
}

// P builds a <p> element.
func P(args ...any) vtree.Node {
	return vtree.Element("p", args...)
}

// Span builds a <span> element.
func Span(args ...any) vtree.Node {
	return vtree.Element("span", args...)
}

// Pre builds a <pre> element.
func Pre(args ...any) vtree.Node {
	return vtree.Element("pre", args...)
}

// Blockquote builds a <blockquote> element.
func Blockquote(args ...any) vtree.Node {
	return vtree.Element("blockquote", args...)
}

// Ul builds a <ul> element.
func Ul(args ...any) vtree.Node {
	return vtree.Element("ul", args...)
}

// Ol builds a <ol> element.
func Ol(args ...any) vtree.Node {
	return vtree.Element("ol", args...)
}

// Li builds a <li> element.
func Li(args ...any) vtree.Node {
	return vtree.Element("li", args...)
}

// Dl builds a <dl> element.
func Dl(args ...any) vtree.Node {
	return vtree.Element("dl", args...)
}

// Dt builds a <dt> element.
func Dt(args ...any) vtree.Node {
	return vtree.Element("dt", args...)
}

// Dd builds a <dd> element.
func Dd(args ...any) vtree.Node {
	return vtree.Element("dd", args...)
}

// Hr builds a <hr> element.
func Hr(args ...any) vtree.Node {
	return vtree.Element("hr", args...)
}

// Figure builds a <figure> element.
func Figure(args ...any) vtree.Node {
	return vtree.Element("figure", args...)
}

// Figcaption builds a <figcaption> element.
func Figcaption(args ...any) vtree.Node {
	return vtree.Element("figcaption", args...)
}

// A builds a <a> element.
func A(args ...any) vtree.Node {
	return vtree.Element("a", args...)
}

// Strong builds a <strong> element.
func Strong(args ...any) vtree.Node {
	return vtree.Element("strong", args...)
}

// Em builds a <em> element.
func Em(args ...any) vtree.Node {
	return vtree.Element("em", args...)
}

// B builds a <b> element.
func B(args ...any) vtree.Node {
	return vtree.Element("b", args...)
}

// I builds a <i> element.
func I(args ...any) vtree.Node {
	return vtree.Element("i", args...)
}

// U builds a <u> element.
func U(args ...any) vtree.Node {
	return vtree.Element("u", args...)
}

// S builds a <s> element.
func S(args ...any) vtree.Node {
	return vtree.Element("s", args...)
}

// Small builds a <small> element.
func Small(args ...any) vtree.Node {
	return vtree.Element("small", args...)
}

// Mark builds a <mark> element.
func Mark(args ...any) vtree.Node {
	return vtree.Element("mark", args...)
}

// Sub builds a <sub> element.
func Sub(args ...any) vtree.Node {
	return vtree.Element("sub", args...)
}

// Sup builds a <sup> element.
func Sup(args ...any) vtree.Node {
	return vtree.Element("sup", args...)
}

// Code builds a <code> element.
func Code(args ...any) vtree.Node {
	return vtree.Element("code", args...)
}

// Kbd builds a <kbd> element.
func Kbd(args ...any) vtree.Node {
	return vtree.Element("kbd", args...)
}

// Samp builds a <samp> element.
func Samp(args ...any) vtree.Node {
	return vtree.Element("samp", args...)
}

// Var builds a <var> element.
func Var(args ...any) vtree.Node {
	return vtree.Element("var", args...)
}

// Abbr builds a <abbr> element.
func Abbr(args ...any) vtree.Node {
	return vtree.Element("abbr", args...)
}

// Cite builds a <cite> element.
func Cite(args ...any) vtree.Node {
	return vtree.Element("cite", args...)
}

// Q builds a <q> element.
func Q(args ...any) vtree.Node {
	return vtree.Element("q", args...)
}

// Dfn builds a <dfn> element.
func Dfn(args ...any) vtree.Node {
	return vtree.Element("dfn", args...)
}

// Ruby builds a <ruby> element.
func Ruby(args ...any) vtree.Node {
	return vtree.Element("ruby", args...)
}

// Rt builds a <rt> element.
func Rt(args ...any) vtree.Node {
	return vtree.Element("rt", args...)
}

// Rp builds a <rp> element.
func Rp(args ...any) vtree.Node {
	return vtree.Element("rp", args...)
}

// Bdi builds a <bdi> element.
func Bdi(args ...any) vtree.Node {
	return vtree.Element("bdi", args...)
}

// Bdo builds a <bdo> element.
func Bdo(args ...any) vtree.Node {
	return vtree.Element("bdo", args...)
}

// DataElement builds a <data> element.
func DataElement(args ...any) vtree.Node {
	return vtree.Element("data", args...)
}

// Br builds a <br> element.
func Br(args ...any) vtree.Node {
	return vtree.Element("br", args...)
}

// Wbr builds a <wbr> element.
func Wbr(args ...any) vtree.Node {
	return vtree.Element("wbr", args...)
}

// Form builds a <form> element.
func Form(args ...any) vtree.Node {
	return vtree.Element("form", args...)
}

// Input builds a <input> element.
func Input(args ...any) vtree.Node {
	return vtree.Element("input", args...)
}

// Textarea builds a <textarea> element.
func Textarea(args ...any) vtree.Node {
	return vtree.Element("textarea", args...)
}

// Select builds a <select> element.
func Select(args ...any) vtree.Node {
	return vtree.Element("select", args...)
}

// Option builds a <option> element.
func Option(args ...any) vtree.Node {
	return vtree.Element("option", args...)
}

// Optgroup builds a <optgroup> element.
func Optgroup(args ...any) vtree.Node {
	return vtree.Element("optgroup", args...)
}

// Button builds a <button> element.
func Button(args ...any) vtree.Node {
	return vtree.Element("button", args...)
}

// Label builds a <label> element.
func Label(args ...any) vtree.Node {
	return vtree.Element("label", args...)
}

// Fieldset builds a <fieldset> element.
func Fieldset(args ...any) vtree.Node {
	return vtree.Element("fieldset", args...)
}

// Legend builds a <legend> element.
func Legend(args ...any) vtree.Node {
	return vtree.Element("legend", args...)
}

// Datalist builds a <datalist> element.
func Datalist(args ...any) vtree.Node {
	return vtree.Element("datalist", args...)
}

// Output builds a <output> element.
func Output(args ...any) vtree.Node {
	return vtree.Element("output", args...)
}

// Progress builds a <progress> element.
func Progress(args ...any) vtree.Node {
	return vtree.Element("progress", args...)
}

// Meter builds a <meter> element.
func Meter(args ...any) vtree.Node {
	return vtree.Element("meter", args...)
}

// Table builds a <table> element.
func Table(args ...any) vtree.Node {
	return vtree.Element("table", args...)
}

// Thead builds a <thead> element.
func Thead(args ...any) vtree.Node {
	return vtree.Element("thead", args...)
}

// Tbody builds a <tbody> element.
func Tbody(args ...any) vtree.Node {
	return vtree.Element("tbody", args...)
}

// Tfoot builds a <tfoot> element.
func Tfoot(args ...any) vtree.Node {
	return vtree.Element("tfoot", args...)
}

// Tr builds a <tr> element.
func Tr(args ...any) vtree.Node {
	return vtree.Element("tr", args...)
}

// Th builds a <th> element.
func Th(args ...any) vtree.Node {
	return vtree.Element("th", args...)
}

// Td builds a <td> element.
func Td(args ...any) vtree.Node {
	return vtree.Element("td", args...)
}

// Caption builds a <caption> element.
func Caption(args ...any) vtree.Node {
	return vtree.Element("caption", args...)
}

// Colgroup builds a <colgroup> element.
func Colgroup(args ...any) vtree.Node {
	return vtree.Element("colgroup", args...)
}

// Col builds a <col> element.
func Col(args ...any) vtree.Node {
	return vtree.Element("col", args...)
}

// Img builds a <img> element.
func Img(args ...any) vtree.Node {
	return vtree.Element("img", args...)
}

// Picture builds a <picture> element.
func Picture(args ...any) vtree.Node {
	return vtree.Element("picture", args...)
}

// Source builds a <source> element.
func Source(args ...any) vtree.Node {
	return vtree.Element("source", args...)
}

// Video builds a <video> element.
func Video(args ...any) vtree.Node {
	return vtree.Element("video", args...)
}

// Audio builds a <audio> element.
func Audio(args ...any) vtree.Node {
	return vtree.Element("audio", args...)
}

// Track builds a <track> element.
func Track(args ...any) vtree.Node {
	return vtree.Element("track", args...)
}

// Iframe builds a <iframe> element.
func Iframe(args ...any) vtree.Node {
	return vtree.Element("iframe", args...)
}

// Embed builds a <embed> element.
func Embed(args ...any) vtree.Node {
	return vtree.Element("embed", args...)
}

// Object builds a <object> element.
func Object(args ...any) vtree.Node {
	return vtree.Element("object", args...)
}

// Param builds a <param> element.
func Param(args ...any) vtree.Node {
	return vtree.Element("param", args...)
}

// Canvas builds a <canvas> element.
func Canvas(args ...any) vtree.Node {
	return vtree.Element("canvas", args...)
}

// Svg builds a <svg> element.
func Svg(args ...any) vtree.Node {
	return vtree.Element("svg", args...)
}

// Circle builds a <circle> element.
func Circle(args ...any) vtree.Node {
	return vtree.Element("circle", args...)
}

// Ellipse builds a <ellipse> element.
func Ellipse(args ...any) vtree.Node {
	return vtree.Element("ellipse", args...)
}

// Line builds a <line> element.
func Line(args ...any) vtree.Node {
	return vtree.Element("line", args...)
}

// Path builds a <path> element.
func Path(args ...any) vtree.Node {
	return vtree.Element("path", args...)
}

// Polygon builds a <polygon> element.
func Polygon(args ...any) vtree.Node {
	return vtree.Element("polygon", args...)
}

// Polyline builds a <polyline> element.
func Polyline(args ...any) vtree.Node {
	return vtree.Element("polyline", args...)
}

// Rect builds a <rect> element.
func Rect(args ...any) vtree.Node {
	return vtree.Element("rect", args...)
}

// G builds a <g> element.
func G(args ...any) vtree.Node {
	return vtree.Element("g", args...)
}

// Defs builds a <defs> element.
func Defs(args ...any) vtree.Node {
	return vtree.Element("defs", args...)
}

// Use builds a <use> element.
func Use(args ...any) vtree.Node {
	return vtree.Element("use", args...)
}

// Math builds a <math> element.
func Math(args ...any) vtree.Node {
	return vtree.Element("math", args...)
}

// Area builds a <area> element.
func Area(args ...any) vtree.Node {
	return vtree.Element("area", args...)
}

// Details builds a <details> element.
func Details(args ...any) vtree.Node {
	return vtree.Element("details", args...)
}

// Summary builds a <summary> element.
func Summary(args ...any) vtree.Node {
	return vtree.Element("summary", args...)
}

// Dialog builds a <dialog> element.
func Dialog(args ...any) vtree.Node {
	return vtree.Element("dialog", args...)
}

// Menu builds a <menu> element.
func Menu(args ...any) vtree.Node {
	return vtree.Element("menu", args...)
}

// Script builds a <script> element.
func Script(args ...any) vtree.Node {
	return vtree.Element("script", args...)
}

// Noscript builds a <noscript> element.
func Noscript(args ...any) vtree.Node {
	return vtree.Element("noscript", args...)
}

// Template builds a <template> element.
func Template(args ...any) vtree.Node {
	return vtree.Element("template", args...)
}

// Slot builds a <slot> element.
func Slot(args ...any) vtree.Node {
	return vtree.Element("slot", args...)
}

// Style builds a <style> element.
func Style(args ...any) vtree.Node {
	return vtree.Element("style", args...)
}
