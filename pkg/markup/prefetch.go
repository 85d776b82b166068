package markup

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/vango-dev/viewstream/pkg/renderctx"
	"github.com/vango-dev/viewstream/pkg/vtree"
)

// Prefetcher is a pre-execution scheduler: a best-effort,
// correctness-transparent optimization that fans out deferred nodes
// eagerly, in parallel with (and ahead of) the walker,
// so their Futures are already in flight by the time the walker
// reaches them.
//
// It is keyed on function identity, not node identity, since the same
// closure commonly appears at many positions in a tree (a list row
// renderer, say) and should only ever run once.
type Prefetcher struct {
	mu      sync.Mutex
	entries map[uintptr]*prefetchEntry
	logger  *slog.Logger
}

type prefetchEntry struct {
	node     vtree.Node
	ctxToUse *renderctx.Context
	failed   bool
	ready    chan struct{}
}

// NewPrefetcher returns an empty, ready-to-use scheduler. logger may be
// nil, in which case the scheduler runs silently.
func NewPrefetcher(logger *slog.Logger) *Prefetcher {
	return &Prefetcher{entries: make(map[uintptr]*prefetchEntry), logger: logger}
}

// funcIdentity returns the address of fn's closure object. Unlike
// reflect.Value.Pointer, which returns the code pointer shared by every
// closure created from the same function literal, this tells apart two
// closures that capture different values.
func funcIdentity(fn vtree.DeferredFunc) uintptr {
	return *(*uintptr)(unsafe.Pointer(&fn))
}

func (p *Prefetcher) lookup(fn vtree.DeferredFunc) (*prefetchEntry, bool) {
	if fn == nil {
		return nil, false
	}
	p.mu.Lock()
	e, ok := p.entries[funcIdentity(fn)]
	p.mu.Unlock()
	return e, ok
}

// Run walks n from ctx, firing off goroutines for every deferred node
// it finds. It returns immediately; the goroutines populate the cache
// as they settle. Stack markers, once markers, and foreign nodes are
// not descended into: stacks and once-keys are walker-local
// correctness concerns, not content to pre-execute.
func (p *Prefetcher) Run(ctx *renderctx.Context, n vtree.Node) {
	p.walk(ctx, n)
}

func (p *Prefetcher) walk(ctx *renderctx.Context, n vtree.Node) {
	switch n.Kind {
	case vtree.KindSequence:
		for _, item := range n.Items {
			p.walk(ctx, item)
		}
	case vtree.KindElement:
		for _, child := range n.Content {
			p.walk(ctx, child)
		}
	case vtree.KindDeferred:
		p.schedule(ctx, n)
	case vtree.KindPending:
		go func(f *vtree.Future) {
			resolved, err := f.Await()
			if err == nil {
				p.walk(ctx, resolved)
			}
		}(n.Future)
	}
}

func (p *Prefetcher) schedule(ctx *renderctx.Context, n vtree.Node) {
	if n.Fn == nil {
		return
	}
	key := funcIdentity(n.Fn)

	p.mu.Lock()
	if _, inProgress := p.entries[key]; inProgress {
		p.mu.Unlock()
		return
	}
	e := &prefetchEntry{ready: make(chan struct{})}
	p.entries[key] = e
	p.mu.Unlock()

	go p.run(ctx, n, key, e)
}

func (p *Prefetcher) run(ctx *renderctx.Context, n vtree.Node, key uintptr, e *prefetchEntry) {
	childCtx := ctx.Fork()
	result, err := p.invoke(childCtx, n)
	if err != nil {
		p.dropOnFailure(key, e, err)
		return
	}

	contextToUse := ctx
	if childCtx.WasModified() {
		contextToUse = childCtx
	}

	if result.Kind == vtree.KindPending {
		resolved, ferr := result.Future.Await()
		if ferr != nil {
			p.dropOnFailure(key, e, ferr)
			return
		}
		e.node, e.ctxToUse = resolved, contextToUse
		close(e.ready)
		p.walk(contextToUse, resolved)
		return
	}

	e.node, e.ctxToUse = result, contextToUse
	close(e.ready)
	p.walk(contextToUse, result)
}

// invoke calls n.Fn, recovering a panic the same way a Future does:
// this runs on a scheduler goroutine, speculatively and independent of
// the walker, so a panic here must never take the whole process down
// with it.
func (p *Prefetcher) invoke(ctx *renderctx.Context, n vtree.Node) (result vtree.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return n.Fn(ctx)
}

// dropOnFailure removes the in-progress record and swallows the
// error: the walker will re-invoke the same function on a cache miss
// and surface the canonical, component-stack-annotated error itself.
// The swallowed error is logged at Debug so it isn't silently lost.
func (p *Prefetcher) dropOnFailure(key uintptr, e *prefetchEntry, err error) {
	p.mu.Lock()
	delete(p.entries, key)
	p.mu.Unlock()
	e.failed = true
	if p.logger != nil {
		p.logger.Debug("markup: pre-execution fetch failed, deferring to walker", "error", err)
	}
	close(e.ready)
}
