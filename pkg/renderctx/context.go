// Package renderctx implements the renderer's hierarchical render
// context: a persistent parent-chain map from opaque Key tokens to
// values, with copy-on-write forking.
package renderctx

import "sync"

// AnyKey is the identity-comparable, type-erased view of a Key[T]. It
// exists so a single map can hold keys of varying T, and so that the
// attribute writer can recognize a key value used by mistake as an
// attribute (keys are opaque tokens, not serializable values).
type AnyKey interface {
	displayName() string
}

// keyToken holds a Key[T]'s diagnostic label. Key equality is decided
// by the *Key[T] pointer, not by this token.
type keyToken struct {
	displayName string
}

// Key is a typed context key. Its identity is the *Key pointer that
// NewKey returns, so two keys created with NewKey are never equal even
// if they share a display name and default.
type Key[T any] struct {
	token   *keyToken
	def     T
	hasDef  bool
}

func (k *Key[T]) displayName() string { return k.token.displayName }

// KeyOption configures a Key at creation time.
type KeyOption[T any] func(*Key[T])

// WithDisplayName attaches a diagnostic label to the key, used only in
// error messages and debugging output.
func WithDisplayName[T any](name string) KeyOption[T] {
	return func(k *Key[T]) { k.token.displayName = name }
}

// WithDefault sets the value returned by Get when no frame on the
// chain holds an entry for this key.
func WithDefault[T any](def T) KeyOption[T] {
	return func(k *Key[T]) {
		k.def = def
		k.hasDef = true
	}
}

// NewKey creates a fresh, process-unique context key for values of
// type T.
func NewKey[T any](opts ...KeyOption[T]) *Key[T] {
	k := &Key[T]{token: &keyToken{}}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Context is one frame of the parent-chain render context. A Context
// is never mutated concurrently by more than one writer — forked
// children are handed to distinct deferred invocations, each of which
// owns its own frame exclusively.
type Context struct {
	parent   *Context
	mu       sync.RWMutex
	values   map[AnyKey]any
	modified bool
}

// Root creates a fresh root context with no parent.
func Root() *Context {
	return &Context{}
}

// Fork creates a child frame whose parent is c. The child starts
// unmodified; writes land in the child, never in c.
func (c *Context) Fork() *Context {
	return &Context{parent: c}
}

// WasModified reports whether Set has ever been called directly on c
// (not on an ancestor or descendant).
func (c *Context) WasModified() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modified
}

// Parent returns c's parent frame, or nil at the root.
func (c *Context) Parent() *Context {
	return c.parent
}

// Get walks the parent chain for key, in generic free-function form
// since Go methods cannot introduce their own type parameters.
func Get[T any](c *Context, key *Key[T]) T {
	for frame := c; frame != nil; frame = frame.parent {
		frame.mu.RLock()
		v, ok := frame.values[key]
		frame.mu.RUnlock()
		if ok {
			return v.(T)
		}
	}
	return key.def
}

// Lookup is Get, but also reports whether any frame on the chain held
// an entry (as opposed to falling back to the key's default).
func Lookup[T any](c *Context, key *Key[T]) (T, bool) {
	for frame := c; frame != nil; frame = frame.parent {
		frame.mu.RLock()
		v, ok := frame.values[key]
		frame.mu.RUnlock()
		if ok {
			return v.(T), true
		}
	}
	var zero T
	return zero, false
}

// Set stores value in c's own frame and marks c modified.
func Set[T any](c *Context, key *Key[T], value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values == nil {
		c.values = make(map[AnyKey]any)
	}
	c.values[key] = value
	c.modified = true
}

// Default returns the key's configured default value (the zero value
// of T if none was set).
func (k *Key[T]) Default() T {
	return k.def
}
