package markup

import (
	"bytes"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vango-dev/viewstream/pkg/renderctx"
	"github.com/vango-dev/viewstream/pkg/vtree"
)

func TestPrefetcherInvokesSharedClosureOnce(t *testing.T) {
	var calls int32
	fn := func(ctx *renderctx.Context) (vtree.Node, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(5 * time.Millisecond)
		return vtree.Text("x"), nil
	}
	tree := vtree.Sequence(vtree.Deferred(fn), vtree.Deferred(fn), vtree.Deferred(fn))

	p := NewPrefetcher(nil)
	p.Run(renderctx.Root(), tree)

	e, ok := p.lookup(fn)
	if !ok {
		t.Fatal("expected an in-progress or completed cache entry")
	}
	<-e.ready
	if e.failed {
		t.Fatal("unexpected failure")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("calls = %d, want 1 (same function identity must only run once)", got)
	}
}

func TestWalkerUsesPrefetchedResult(t *testing.T) {
	var calls int32
	tree := vtree.Deferred(func(ctx *renderctx.Context) (vtree.Node, error) {
		atomic.AddInt32(&calls, 1)
		return vtree.Text("prefetched"), nil
	})
	got, err := Render(tree, WithPrefetch(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "prefetched" {
		t.Fatalf("got %q, want %q", got, "prefetched")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("calls = %d, want exactly 1 even with prefetch+walker both visiting the node", atomic.LoadInt32(&calls))
	}
}

func TestPrefetcherLogsSwallowedFailureAtDebug(t *testing.T) {
	var logs bytes.Buffer
	boom := errors.New("boom")
	release := make(chan struct{})
	fn := func(ctx *renderctx.Context) (vtree.Node, error) {
		<-release
		return vtree.Nil, boom
	}
	tree := vtree.Deferred(fn)

	p := NewPrefetcher(debugLogger(&logs))
	p.Run(renderctx.Root(), tree)

	e, ok := p.lookup(fn)
	close(release)
	if !ok {
		t.Fatal("expected an in-progress cache entry")
	}
	<-e.ready
	if !e.failed {
		t.Fatal("expected the entry to be marked failed")
	}
	if !strings.Contains(logs.String(), "pre-execution fetch failed") {
		t.Fatalf("expected a swallowed-error debug log, got %q", logs.String())
	}
}

func TestPrefetcherRecoversPanicInsteadOfCrashing(t *testing.T) {
	release := make(chan struct{})
	fn := func(ctx *renderctx.Context) (vtree.Node, error) {
		<-release
		panic("boom")
	}
	tree := vtree.Deferred(fn)

	p := NewPrefetcher(nil)
	p.Run(renderctx.Root(), tree)

	e, ok := p.lookup(fn)
	close(release)
	if !ok {
		t.Fatal("expected an in-progress cache entry")
	}
	<-e.ready
	if !e.failed {
		t.Fatal("expected the recovered panic to surface as a failed entry")
	}
}
