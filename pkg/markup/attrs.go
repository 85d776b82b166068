package markup

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/viewstream/pkg/renderctx"
	"github.com/vango-dev/viewstream/pkg/vtree"
)

// Mode selects HTML or XML serialization rules.
type Mode uint8

const (
	ModeHTML Mode = iota
	ModeXML
)

func (m Mode) String() string {
	switch m {
	case ModeXML:
		return "xml"
	default:
		return "html"
	}
}

// booleanAttrs is the fixed set from the glossary: in HTML mode, true
// emits the bare attribute name, false omits it entirely.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true, "async": true, "autofocus": true, "autoplay": true,
	"checked": true, "controls": true, "default": true, "defer": true,
	"disabled": true, "download": true, "formnovalidate": true, "hidden": true,
	"inert": true, "ismap": true, "itemscope": true, "loop": true,
	"multiple": true, "muted": true, "nomodule": true, "novalidate": true,
	"open": true, "playsinline": true, "readonly": true, "required": true,
	"reversed": true, "selected": true,
}

// IsBooleanAttr reports whether name is in the fixed boolean-attribute
// set.
func IsBooleanAttr(name string) bool { return booleanAttrs[name] }

// voidElements is the fixed set from the glossary: these tags may
// never have children and are emitted without a closing tag in HTML
// mode.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is in the fixed void-element set.
func IsVoidElement(tag string) bool { return voidElements[tag] }

// WriteOpeningTag emits "<tag" followed by each attribute and the
// closing ">" or " />", honoring HTML/XML attribute rules.
func WriteOpeningTag(b *strings.Builder, tag string, attrs map[string]any, selfClosing bool, mode Mode) error {
	b.WriteByte('<')
	b.WriteString(tag)
	if err := writeAttributes(b, attrs, mode); err != nil {
		return err
	}
	if selfClosing {
		b.WriteString(" />")
	} else {
		b.WriteByte('>')
	}
	return nil
}

// WriteClosingTag emits "</tag>".
func WriteClosingTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func writeAttributes(b *strings.Builder, attrs map[string]any, mode Mode) error {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := attrs[key]
		if value == nil {
			continue
		}
		switch key {
		case "style":
			if serialized := SerializeStyle(value); serialized != "" {
				writeStringAttr(b, "style", serialized)
			}
			continue
		case "class":
			if serialized := SerializeClass(value); serialized != "" {
				writeStringAttr(b, "class", serialized)
			}
			continue
		}

		if mode == ModeHTML && booleanAttrs[key] {
			bv, ok := value.(bool)
			switch {
			case ok && bv:
				b.WriteByte(' ')
				b.WriteString(key)
			case ok && !bv:
				// omitted entirely
			default:
				s, err := coerceAttrValue(key, value)
				if err != nil {
					return err
				}
				writeStringAttr(b, key, s)
			}
			continue
		}

		s, err := coerceAttrValue(key, value)
		if err != nil {
			return err
		}
		writeStringAttr(b, key, s)
	}
	return nil
}

func writeStringAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(escapeAttr(value))
	b.WriteByte('"')
}

// coerceAttrValue stringifies an attribute value, rejecting shapes
// that can't be meaningfully serialized: any func value, a
// *vtree.Future (an unresolved promise), a *vtree.StackToken (an opaque
// stack identity), and anything satisfying renderctx.AnyKey (a context
// key used by mistake as an attribute value).
func coerceAttrValue(key string, value any) (string, error) {
	rv := reflect.ValueOf(value)
	if rv.IsValid() && rv.Kind() == reflect.Func {
		return "", newAttributeTypeError(key, "function values cannot be serialized as an attribute")
	}
	if _, ok := value.(*vtree.Future); ok {
		return "", newAttributeTypeError(key, "promise (Future) values cannot be serialized as an attribute")
	}
	if _, ok := value.(*vtree.StackToken); ok {
		return "", newAttributeTypeError(key, "stack token values cannot be serialized as an attribute")
	}
	if _, ok := value.(renderctx.AnyKey); ok {
		return "", newAttributeTypeError(key, "context key values cannot be serialized as an attribute")
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case *big.Int:
		return v.String(), nil
	default:
		return fmt.Sprintf("%v", value), nil
	}
}

// unitlessStyleProps is the fixed set of CSS properties that never
// receive a "px" suffix when given a bare numeric value.
var unitlessStyleProps = map[string]bool{
	"opacity": true, "zIndex": true, "fontWeight": true, "lineHeight": true,
	"flex": true, "flexGrow": true, "flexShrink": true, "flexOrder": true,
	"gridRow": true, "gridRowStart": true, "gridRowEnd": true,
	"gridColumn": true, "gridColumnStart": true, "gridColumnEnd": true,
	"order": true, "orphans": true, "widows": true, "aspectRatio": true,
	"scale": true, "animationIterationCount": true,
	"fillOpacity": true, "stopOpacity": true, "floodOpacity": true,
	"strokeOpacity": true, "strokeWidth": true, "strokeDasharray": true,
	"strokeDashoffset": true, "strokeMiterlimit": true,
	"tabSize": true, "columns": true, "columnCount": true,
	"boxFlex": true, "boxFlexGroup": true, "boxOrdinalGroup": true,
	"fontSizeAdjust": true, "lineClamp": true, "gridArea": true,
}

var vendorPrefixes = []string{"Webkit", "Ms", "Moz", "O"}

// kebabCaseStyleProp converts a camelCase CSS property name to its
// hyphenated wire form, handling vendor prefixes.
func kebabCaseStyleProp(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	hasUpper := false
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return key
	}

	rest := key
	var b strings.Builder
	for _, prefix := range vendorPrefixes {
		if strings.HasPrefix(key, prefix) {
			b.WriteByte('-')
			b.WriteByte(lower(prefix[0]))
			rest = key[1:]
			break
		}
	}
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(lower(c))
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func isUnitlessProp(key string) bool {
	if unitlessStyleProps[key] {
		return true
	}
	for _, prefix := range vendorPrefixes {
		if strings.HasPrefix(key, prefix) {
			if unprefixed := lowerFirst(strings.TrimPrefix(key, prefix)); unitlessStyleProps[unprefixed] {
				return true
			}
		}
	}
	return false
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(lower(s[0])) + s[1:]
}

// SerializeStyle converts a style mapping into "prop1:value1;prop2:value2".
// Accepts map[string]any (or map[string]string / map[string]int as
// convenience forms). Null values are skipped; numeric values receive
// a "px" suffix unless the property is in the unitless set.
func SerializeStyle(value any) string {
	props := toStyleMap(value)
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, key := range keys {
		v := props[key]
		if v == nil {
			continue
		}
		wireKey := kebabCaseStyleProp(key)
		var wireVal string
		switch n := v.(type) {
		case int:
			wireVal = strconv.Itoa(n)
			if !isUnitlessProp(key) {
				wireVal += "px"
			}
		case int64:
			wireVal = strconv.FormatInt(n, 10)
			if !isUnitlessProp(key) {
				wireVal += "px"
			}
		case float64:
			wireVal = strconv.FormatFloat(n, 'f', -1, 64)
			if !isUnitlessProp(key) {
				wireVal += "px"
			}
		case string:
			wireVal = n
		default:
			wireVal = fmt.Sprintf("%v", n)
		}
		parts = append(parts, wireKey+":"+wireVal)
	}
	return strings.Join(parts, ";")
}

func toStyleMap(value any) map[string]any {
	switch m := value.(type) {
	case map[string]any:
		return m
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	case map[string]int:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	default:
		return nil
	}
}

// SerializeClass accepts nested strings/[]any/map[string]bool/numbers
// and produces a space-separated token list. Falsy map entries, nil,
// and empty strings contribute nothing; token-level deduplication is
// not performed.
func SerializeClass(value any) string {
	var tokens []string
	appendClassTokens(value, &tokens)
	return strings.Join(tokens, " ")
}

func appendClassTokens(value any, tokens *[]string) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		if v != "" {
			*tokens = append(*tokens, v)
		}
	case bool:
		return // booleans alone contribute nothing
	case int:
		if v != 0 {
			*tokens = append(*tokens, strconv.Itoa(v))
		}
	case float64:
		if v != 0 {
			*tokens = append(*tokens, strconv.FormatFloat(v, 'f', -1, 64))
		}
	case []any:
		for _, item := range v {
			appendClassTokens(item, tokens)
		}
	case []string:
		for _, item := range v {
			appendClassTokens(item, tokens)
		}
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if v[k] && k != "" {
				*tokens = append(*tokens, k)
			}
		}
	default:
		*tokens = append(*tokens, fmt.Sprintf("%v", v))
	}
}
