package vtree

// Once wraps child in a once marker: the walker emits it the first
// time key is seen during a render and nothing thereafter. key must be
// comparable (string, number, bigint-equivalent, or an opaque token
// such as a *StackToken); the renderer's once-set is a Go map keyed on
// it directly.
func Once(key any, child Node) Node {
	c := child
	return Node{Kind: KindOnce, OnceKey: key, OnceChild: &c}
}

// StackPush ties children to a stack identity: their rendered content
// is redirected into that stack's sink instead of the surrounding
// document position.
func StackPush(id *StackToken, children ...any) Node {
	content := Fragment(children...)
	return Node{Kind: KindStackPush, StackID: id, StackChild: &content}
}

// StackOut marks the location where a stack's accumulated content is
// materialized. A given stack identity may appear in at most one
// StackOut per render; the walker enforces this and fails the second
// occurrence.
func StackOut(id *StackToken) Node {
	return Node{Kind: KindStackOut, StackID: id}
}
