package vtree

import "strings"

// Identity and styling.

func ID(id string) Attr                   { return attr("id", id) }
func Class(classes ...string) Attr        { return attr("class", strings.Join(classes, " ")) }
func StyleAttr(style any) Attr            { return attr("style", style) }
func Data(key string, value any) Attr     { return attr("data-"+key, value) }
func TitleAttr(title string) Attr         { return attr("title", title) }
func Lang(lang string) Attr               { return attr("lang", lang) }
func Dir(dir string) Attr                 { return attr("dir", dir) }
func TabIndex(index int) Attr             { return attr("tabindex", index) }
func Hidden(hidden bool) Attr             { return attr("hidden", hidden) }

// Accessibility.

func Role(role string) Attr                { return attr("role", role) }
func AriaLabel(label string) Attr          { return attr("aria-label", label) }
func AriaHidden(hidden bool) Attr          { return attr("aria-hidden", hidden) }
func AriaExpanded(expanded bool) Attr      { return attr("aria-expanded", expanded) }
func AriaDescribedBy(id string) Attr       { return attr("aria-describedby", id) }
func AriaControls(id string) Attr          { return attr("aria-controls", id) }
func AriaCurrent(value string) Attr        { return attr("aria-current", value) }

// Links and media.

func Href(href string) Attr   { return attr("href", href) }
func Target(target string) Attr { return attr("target", target) }
func Rel(rel string) Attr     { return attr("rel", rel) }
func Download(value string) Attr {
	if value == "" {
		return attr("download", true)
	}
	return attr("download", value)
}
func Src(src string) Attr       { return attr("src", src) }
func AltText(alt string) Attr   { return attr("alt", alt) }
func Width(w any) Attr          { return attr("width", w) }
func Height(h any) Attr         { return attr("height", h) }
func Loading(mode string) Attr  { return attr("loading", mode) }
func Srcset(value string) Attr  { return attr("srcset", value) }

// Forms.

func Name(name string) Attr         { return attr("name", name) }
func Value(value any) Attr          { return attr("value", value) }
func TypeAttr(t string) Attr        { return attr("type", t) }
func Placeholder(text string) Attr  { return attr("placeholder", text) }
func Disabled(disabled bool) Attr   { return attr("disabled", disabled) }
func Readonly(readonly bool) Attr   { return attr("readonly", readonly) }
func Required(required bool) Attr   { return attr("required", required) }
func Checked(checked bool) Attr     { return attr("checked", checked) }
func Selected(selected bool) Attr   { return attr("selected", selected) }
func Multiple(multiple bool) Attr   { return attr("multiple", multiple) }
func Autofocus(autofocus bool) Attr { return attr("autofocus", autofocus) }
func MaxLength(n int) Attr          { return attr("maxlength", n) }
func MinLength(n int) Attr          { return attr("minlength", n) }
func Pattern(pattern string) Attr   { return attr("pattern", pattern) }
func ForAttr(id string) Attr        { return attr("for", id) }
func Action(url string) Attr        { return attr("action", url) }
func Method(method string) Attr     { return attr("method", method) }

// Table.

func Colspan(n int) Attr { return attr("colspan", n) }
func Rowspan(n int) Attr { return attr("rowspan", n) }
func Scope(scope string) Attr { return attr("scope", scope) }

// ClassIf conditionally includes a class token.
func ClassIf(condition bool, class string) string {
	if condition {
		return class
	}
	return ""
}

// Classes merges class tokens from strings, []string and
// map[string]bool, matching the class serializer's truthy-map rule
// (see pkg/markup's class serializer for the full algorithm), and
// returns the finished space-joined class attribute. Tokens from a map
// appear in map iteration order.
func Classes(parts ...any) Attr {
	var tokens []string
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			if v != "" {
				tokens = append(tokens, v)
			}
		case []string:
			tokens = append(tokens, v...)
		case map[string]bool:
			for k, ok := range v {
				if ok {
					tokens = append(tokens, k)
				}
			}
		}
	}
	return attr("class", strings.Join(tokens, " "))
}
