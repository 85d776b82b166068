package markup

import "strings"

// prettyPrint re-indents an already-assembled HTML/XML document for
// readability. It's a simple depth-tracking tokenizer, not a full
// parser: it trusts the input is well-formed markup produced by this
// package's own walker.
func prettyPrint(doc string) string {
	var out strings.Builder
	depth := 0
	writeLine := func(s string, d int) {
		if s == "" {
			return
		}
		out.WriteString(strings.Repeat("  ", d))
		out.WriteString(s)
		out.WriteString("\n")
	}

	i := 0
	for i < len(doc) {
		lt := strings.IndexByte(doc[i:], '<')
		if lt == -1 {
			writeLine(strings.TrimSpace(doc[i:]), depth)
			break
		}
		if lt > 0 {
			writeLine(strings.TrimSpace(doc[i:i+lt]), depth)
		}
		i += lt

		gt := strings.IndexByte(doc[i:], '>')
		if gt == -1 {
			writeLine(doc[i:], depth)
			break
		}
		tag := doc[i : i+gt+1]
		i += gt + 1

		switch {
		case strings.HasPrefix(tag, "<!"):
			writeLine(tag, depth)
		case strings.HasPrefix(tag, "</"):
			depth--
			if depth < 0 {
				depth = 0
			}
			writeLine(tag, depth)
		case strings.HasSuffix(tag, "/>"):
			writeLine(tag, depth)
		default:
			writeLine(tag, depth)
			depth++
		}
	}

	return strings.TrimRight(out.String(), "\n")
}
