package markup

import (
	"bytes"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/vango-dev/viewstream/pkg/renderctx"
	"github.com/vango-dev/viewstream/pkg/streambuf"
	"github.com/vango-dev/viewstream/pkg/vtree"
)

// RendererConfig holds the options a render runs under, assembled by
// Option functions passed to the entry points below.
type RendererConfig struct {
	Mode                Mode
	RootContext          *renderctx.Context
	Prefetch             bool
	Pretty               bool
	Logger               *slog.Logger
	Observer             Observer
	ComponentInstantiator ComponentInstantiator
}

// Option configures a render. Functional options, matching the
// teacher's server configuration style.
type Option func(*RendererConfig)

// WithMode selects HTML or XML output.
func WithMode(mode Mode) Option {
	return func(c *RendererConfig) { c.Mode = mode }
}

// WithRootContext seeds the render with an already-populated root
// context (e.g. one holding request-scoped values set by middleware).
func WithRootContext(ctx *renderctx.Context) Option {
	return func(c *RendererConfig) { c.RootContext = ctx }
}

// WithPrefetch enables or disables the pre-execution scheduler. It
// defaults to enabled; disabling it is useful for deterministic tests
// that assert on exact chunk boundaries.
func WithPrefetch(enabled bool) Option {
	return func(c *RendererConfig) { c.Prefetch = enabled }
}

// WithPretty indents the rendered output for readability. Pretty
// output is assembled in full before the first chunk is emitted, since
// indentation depth depends on structure that can arrive out of order
// through stacks and deferred content — it trades streaming's
// first-byte latency for readability, so reserve it for debugging and
// CLI output rather than production responses.
func WithPretty(enabled bool) Option {
	return func(c *RendererConfig) { c.Pretty = enabled }
}

// WithLogger overrides the default logger used for render-scoped
// diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *RendererConfig) { c.Logger = logger }
}

// WithObserver attaches metrics/tracing hooks to the render.
func WithObserver(obs Observer) Option {
	return func(c *RendererConfig) { c.Observer = obs }
}

// WithComponentInstantiator installs the class-component resolver used
// by ClassComponentRef nodes (see component.go).
func WithComponentInstantiator(inst ComponentInstantiator) Option {
	return func(c *RendererConfig) { c.ComponentInstantiator = inst }
}

func newConfig(opts []Option) *RendererConfig {
	cfg := &RendererConfig{
		Mode:     ModeHTML,
		Prefetch: true,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.RootContext == nil {
		cfg.RootContext = renderctx.Root()
	}
	if cfg.ComponentInstantiator == nil {
		cfg.ComponentInstantiator = defaultInstantiator{}
	}
	InstallComponentInstantiator(cfg.RootContext, cfg.ComponentInstantiator)
	return cfg
}

// RenderStream walks root and returns the renderer's async-iterator
// view of the output: range over it to get (chunk, error) pairs in
// document-stream order, exactly as a consumer would drain an HTTP
// response body as it's produced.
func RenderStream(root vtree.Node, opts ...Option) iter.Seq2[string, error] {
	cfg := newConfig(opts)
	registry := streambuf.NewStackRegistry()
	buf := streambuf.New(registry)

	var prefetcher *Prefetcher
	if cfg.Prefetch {
		prefetcher = NewPrefetcher(cfg.Logger)
		prefetcher.Run(cfg.RootContext, root)
	}

	w := newWalker(buf, cfg.Mode, prefetcher, cfg.Logger)

	started := cfg.Observer.RenderStarted(cfg.Mode)
	go func() {
		err := w.walk(cfg.RootContext, root)
		if err != nil {
			cfg.Observer.RenderFinished(started, err)
			return
		}
		buf.Complete()
		cfg.Observer.RenderFinished(started, nil)
	}()

	stream := buf.Stream()
	if !cfg.Pretty {
		return stream
	}
	return prettyStream(stream)
}

// prettyStream drains src to completion (or its first error) and
// re-emits the assembled document as a single indented chunk.
func prettyStream(src iter.Seq2[string, error]) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var b strings.Builder
		for chunk, err := range src {
			if err != nil {
				yield("", err)
				return
			}
			b.WriteString(chunk)
		}
		yield(prettyPrint(b.String()), nil)
	}
}

// Render walks root to completion and returns the fully assembled
// markup as a single string. Prefer RenderStream for large documents
// or ones with deferred content, where streaming the first bytes
// before the whole tree resolves matters.
func Render(root vtree.Node, opts ...Option) (string, error) {
	var b bytes.Buffer
	for chunk, err := range RenderStream(root, opts...) {
		if err != nil {
			return "", err
		}
		b.WriteString(chunk)
	}
	return b.String(), nil
}

// RenderResponse streams root's markup to w, flushing after each chunk
// if w supports http.Flusher-style incremental writes (any io.Writer
// whose underlying type implements Flush()).
func RenderResponse(w io.Writer, root vtree.Node, opts ...Option) error {
	type flusher interface{ Flush() }
	f, canFlush := w.(flusher)

	for chunk, err := range RenderStream(root, opts...) {
		if err != nil {
			return err
		}
		if _, werr := io.WriteString(w, chunk); werr != nil {
			return werr
		}
		if canFlush {
			f.Flush()
		}
	}
	return nil
}
