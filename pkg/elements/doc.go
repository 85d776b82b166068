// Package elements provides the tag-constructor DSL for building
// markup trees: one function per HTML/SVG element plus re-exported
// attribute and control-flow helpers from pkg/vtree.
//
// Typical usage:
//
//	import (
//	    . "github.com/vango-dev/viewstream/pkg/elements"
//	)
//
//	Div(Class("card"),
//	    H2(Text("Title")),
//	    P(Text("Body")),
//	)
package elements
