// Package vtree defines the markup tree that pkg/markup renders: a
// single tagged-variant Node type plus construction helpers that play
// the role of a JSX factory over it. See pkg/markup for the renderer
// that walks these trees.
package vtree
