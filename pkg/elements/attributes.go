// This file re-exports vtree's attribute helpers under the elements
// package so a dot-import of elements reads as a single flat DSL.
package elements

import "github.com/vango-dev/viewstream/pkg/vtree"

type Attr = vtree.Attr

var (
	ID             = vtree.ID
	Class          = vtree.Class
	StyleAttr      = vtree.StyleAttr
	Data           = vtree.Data
	TitleAttr      = vtree.TitleAttr
	Lang           = vtree.Lang
	Dir            = vtree.Dir
	TabIndex       = vtree.TabIndex
	Hidden         = vtree.Hidden
	Role           = vtree.Role
	AriaLabel      = vtree.AriaLabel
	AriaHidden     = vtree.AriaHidden
	AriaExpanded   = vtree.AriaExpanded
	AriaDescribedBy = vtree.AriaDescribedBy
	AriaControls   = vtree.AriaControls
	AriaCurrent    = vtree.AriaCurrent
	Href           = vtree.Href
	Target         = vtree.Target
	Rel            = vtree.Rel
	Download       = vtree.Download
	Src            = vtree.Src
	AltText        = vtree.AltText
	Width          = vtree.Width
	Height         = vtree.Height
	Loading        = vtree.Loading
	Srcset         = vtree.Srcset
	Name           = vtree.Name
	Value          = vtree.Value
	TypeAttr       = vtree.TypeAttr
	Placeholder    = vtree.Placeholder
	Disabled       = vtree.Disabled
	Readonly       = vtree.Readonly
	Required       = vtree.Required
	Checked        = vtree.Checked
	Selected       = vtree.Selected
	Multiple       = vtree.Multiple
	Autofocus      = vtree.Autofocus
	MaxLength      = vtree.MaxLength
	MinLength      = vtree.MinLength
	Pattern        = vtree.Pattern
	ForAttr        = vtree.ForAttr
	Action         = vtree.Action
	Method         = vtree.Method
	Colspan        = vtree.Colspan
	Rowspan        = vtree.Rowspan
	Scope          = vtree.Scope
	ClassIf        = vtree.ClassIf
	Classes        = vtree.Classes
)
