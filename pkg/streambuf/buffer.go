// Package streambuf implements the renderer's stream buffer: a
// single-writer/single-reader string pipe with a stack of nested
// "redirect sinks" (used by stacks/teleported content) and a deferred
// mode that activates once the first top-level stack-out is reached.
//
// The single-writer/single-reader discipline is enforced by running the
// walker as the only goroutine that ever calls the mutating methods,
// and by handing output to the consumer over an unbuffered channel —
// which gives a single-slot handoff, resolved immediately once a
// waiter exists, without a hand-rolled resolver.
package streambuf

import (
	"errors"
	"iter"
	"strings"
)

// ErrStackAlreadyOut is returned by EmitRedirectedContent when the
// given stack identity has already been materialized once in this
// render.
var ErrStackAlreadyOut = errors.New("streambuf: stack identity already has a stack-out in this render")

type item struct {
	text string
	err  error
}

// Buffer is the renderer's output pipe for exactly one render.
type Buffer struct {
	registry *StackRegistry

	pending strings.Builder

	redirectStack  []*sink
	firstStackSink *sink
	deferredMode   bool
	deferred       sink

	out       chan item
	completed bool
}

// New creates a fresh Buffer bound to registry (which must not be
// shared with any other render).
func New(registry *StackRegistry) *Buffer {
	return &Buffer{
		registry: registry,
		out:      make(chan item),
	}
}

// Add appends text to the internal buffer; it is not routed to a
// destination until the next Yield.
func (b *Buffer) Add(text string) {
	b.pending.WriteString(text)
}

// Yield routes the current buffer's content, then clears the buffer.
// Inside a redirect the text goes to the active sink, or straight to
// the consumer when that sink is the first-stack sink; outside one it
// goes to the deferred list in deferred mode, else to the consumer.
func (b *Buffer) Yield() {
	text := b.pending.String()
	b.pending.Reset()
	b.route(text)
}

func (b *Buffer) route(text string) {
	if len(b.redirectStack) > 0 {
		top := b.redirectStack[len(b.redirectStack)-1]
		if top == b.firstStackSink {
			b.send(text)
		} else {
			top.appendText(text)
		}
		return
	}
	if b.deferredMode {
		b.deferred.appendText(text)
		return
	}
	b.send(text)
}

// send blocks until the consumer pulls, mirroring the single-slot
// resolver: at most one item is ever in flight.
func (b *Buffer) send(text string) {
	if text == "" {
		return
	}
	b.out <- item{text: text}
}

// BeginRedirect pushes the current active sink (if any) and installs
// the sink bound to stackID as the new active sink.
func (b *Buffer) BeginRedirect(stackID any) {
	b.redirectStack = append(b.redirectStack, b.registry.sinkFor(stackID))
}

// EndRedirect pops the active redirect sink, restoring whatever sink
// (if any) was active before the matching BeginRedirect.
func (b *Buffer) EndRedirect() {
	if len(b.redirectStack) == 0 {
		return
	}
	b.redirectStack = b.redirectStack[:len(b.redirectStack)-1]
}

// EmitRedirectedContent materializes stackID's accumulated content at
// the walker's current document position. It fails if stackID already
// had a stack-out in this render.
func (b *Buffer) EmitRedirectedContent(stackID any) error {
	if !b.registry.tryMaterialize(stackID) {
		return ErrStackAlreadyOut
	}
	s := b.registry.sinkFor(stackID)

	b.Yield()

	switch {
	case len(b.redirectStack) > 0:
		b.redirectStack[len(b.redirectStack)-1].appendRef(s)
	case b.firstStackSink == nil:
		b.firstStackSink = s
		b.send(s.flatten())
		b.deferredMode = true
	default:
		b.deferred.appendRef(s)
	}
	return nil
}

// Complete flushes any remaining buffered text, flattens and emits any
// deferred chunks, and terminates the stream.
func (b *Buffer) Complete() {
	b.Yield()
	if tail := b.deferred.flatten(); tail != "" {
		b.send(tail)
	}
	if !b.completed {
		b.completed = true
		close(b.out)
	}
}

// Fail records err and terminates the stream; the consumer observes it
// on its next pull.
func (b *Buffer) Fail(err error) {
	if b.completed {
		return
	}
	b.completed = true
	b.out <- item{err: err}
	close(b.out)
}

// Stream returns the async consumer view of the buffer as a Go 1.23
// range-over-func iterator — the idiomatic analogue of an async
// iterator<string>. Exactly one goroutine may range over it.
func (b *Buffer) Stream() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for it := range b.out {
			if it.err != nil {
				yield("", it.err)
				return
			}
			if !yield(it.text, nil) {
				return
			}
		}
	}
}
