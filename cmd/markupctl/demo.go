package main

import (
	"fmt"
	"time"

	. "github.com/vango-dev/viewstream/pkg/elements"
	"github.com/vango-dev/viewstream/pkg/markup"
)

// demoPage builds a small document exercising the page wrapper, the
// stack-backed head teleportation, and a couple of element helpers, so
// both "render" and "serve" have something real to show.
func demoPage(title string) Node {
	body := Div(Class("demo"),
		markup.MetaTag(map[string]string{"name": "generator", "content": "markupctl"}),
		H1(Text(title)),
		P(Text(fmt.Sprintf("rendered at %s", time.Now().Format(time.RFC3339)))),
		Ul(
			Li(Text("streaming")),
			Li(Text("out-of-order safe")),
			Li(Text("once-key deduplicated")),
		),
	)

	return markup.Page(body,
		markup.WithTitle(title),
		markup.WithStyleSheet("/assets/app.css"),
	)
}
