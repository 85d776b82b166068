package markup

import (
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/vango-dev/viewstream/pkg/renderctx"
	"github.com/vango-dev/viewstream/pkg/streambuf"
	"github.com/vango-dev/viewstream/pkg/vtree"
)

// walker is the depth-first traversal over the markup tree: it owns
// the per-render once-set and component-display-name stack, and
// writes to buf in document order.
type walker struct {
	buf      *streambuf.Buffer
	mode     Mode
	onceSeen map[any]bool
	stack    []string
	prefetch *Prefetcher
	logger   *slog.Logger
}

func newWalker(buf *streambuf.Buffer, mode Mode, prefetch *Prefetcher, logger *slog.Logger) *walker {
	return &walker{
		buf:      buf,
		mode:     mode,
		onceSeen: make(map[any]bool),
		prefetch: prefetch,
		logger:   logger,
	}
}

func (w *walker) fail(err error) error {
	w.buf.Fail(err)
	return err
}

// walk dispatches on n.Kind.
func (w *walker) walk(ctx *renderctx.Context, n vtree.Node) error {
	switch n.Kind {
	case vtree.KindPrimitive:
		w.walkPrimitive(n.Value)
		return nil
	case vtree.KindRaw:
		w.buf.Add(n.Raw)
		return nil
	case vtree.KindSequence:
		for _, item := range n.Items {
			if err := w.walk(ctx, item); err != nil {
				return err
			}
		}
		return nil
	case vtree.KindElement:
		return w.walkElement(ctx, n)
	case vtree.KindDeferred:
		return w.walkDeferred(ctx, n)
	case vtree.KindPending:
		return w.walkPending(ctx, n)
	case vtree.KindOnce:
		return w.walkOnce(ctx, n)
	case vtree.KindStackPush:
		return w.walkStackPush(ctx, n)
	case vtree.KindStackOut:
		return w.walkStackOut(n)
	case vtree.KindForeign:
		return w.fail(newRenderingError(InvalidContent, w.stack,
			fmt.Errorf("embedded a value of unrecognized type %s", n.ForeignTag)))
	case vtree.KindUnknown:
		w.buf.Add(Escape(fmt.Sprintf("%v", n.Value)))
		return nil
	default:
		return w.fail(newRenderingError(InvalidContent, w.stack,
			fmt.Errorf("unknown node kind %v", n.Kind)))
	}
}

func (w *walker) walkPrimitive(v any) {
	switch val := v.(type) {
	case nil, bool:
		return
	case string:
		w.buf.Add(Escape(val))
	case *big.Int:
		w.buf.Add(val.String())
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		w.buf.Add(fmt.Sprintf("%v", val))
	default:
		w.buf.Add(Escape(fmt.Sprintf("%v", val)))
	}
}

func (w *walker) pushName(name string) bool {
	if name == "" {
		return false
	}
	w.stack = append(w.stack, name)
	return true
}

func (w *walker) popName(pushed bool) {
	if pushed {
		w.stack = w.stack[:len(w.stack)-1]
	}
}

func (w *walker) walkElement(ctx *renderctx.Context, n vtree.Node) error {
	pushed := w.pushName(n.DisplayName)
	defer w.popName(pushed)

	if n.IsFragment {
		for _, child := range n.Content {
			if err := w.walk(ctx, child); err != nil {
				return err
			}
		}
		return nil
	}

	isVoid := w.mode == ModeHTML && IsVoidElement(n.Tag)
	if isVoid && len(n.Content) > 0 {
		return w.fail(newRenderingError(AttributeTypeError, w.stack,
			fmt.Errorf("void element <%s> cannot have children", n.Tag)))
	}
	selfClosing := isVoid || (w.mode == ModeXML && len(n.Content) == 0)

	var open strings.Builder
	if err := WriteOpeningTag(&open, n.Tag, n.Attrs, selfClosing, w.mode); err != nil {
		if re, ok := err.(*RenderingError); ok {
			return w.fail(newRenderingError(re.Kind, w.stack, re.Cause))
		}
		return w.fail(newRenderingError(AttributeTypeError, w.stack, err))
	}
	w.buf.Add(open.String())

	if selfClosing {
		return nil
	}

	for _, child := range n.Content {
		if err := w.walk(ctx, child); err != nil {
			return err
		}
	}

	var closeTag strings.Builder
	WriteClosingTag(&closeTag, n.Tag)
	w.buf.Add(closeTag.String())
	return nil
}

func (w *walker) walkOnce(ctx *renderctx.Context, n vtree.Node) error {
	if w.onceSeen[n.OnceKey] {
		return nil
	}
	w.onceSeen[n.OnceKey] = true
	if n.OnceChild == nil {
		return nil
	}
	return w.walk(ctx, *n.OnceChild)
}

func (w *walker) walkStackPush(ctx *renderctx.Context, n vtree.Node) error {
	w.buf.Yield()
	w.buf.BeginRedirect(n.StackID)
	var err error
	if n.StackChild != nil {
		err = w.walk(ctx, *n.StackChild)
	}
	w.buf.Yield()
	w.buf.EndRedirect()
	return err
}

func (w *walker) walkStackOut(n vtree.Node) error {
	if err := w.buf.EmitRedirectedContent(n.StackID); err != nil {
		return w.fail(err)
	}
	return nil
}

func (w *walker) walkPending(ctx *renderctx.Context, n vtree.Node) error {
	w.buf.Yield()
	resolved, err := n.Future.Await()
	if err != nil {
		return w.fail(newRenderingError(ContentPromiseError, w.stack, err))
	}
	return w.walk(ctx, resolved)
}

// invoke calls n.Fn, recovering a panic the same way a Future resolving
// asynchronously would: the synchronous path gets the same safety net,
// and the recovered value is logged at Debug before surfacing as an
// ordinary ContentFunctionError.
func (w *walker) invoke(ctx *renderctx.Context, n vtree.Node) (result vtree.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if w.logger != nil {
				w.logger.Debug("markup: recovered panic in content function",
					"component", n.Name, "panic", r)
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return n.Fn(ctx)
}

// walkDeferred consults the pre-execution cache first, otherwise
// forks, invokes, and (if the result is pending) awaits it, computing
// contextToUse from whether the fork was modified.
func (w *walker) walkDeferred(ctx *renderctx.Context, n vtree.Node) error {
	pushed := w.pushName(n.Name)
	defer w.popName(pushed)

	if w.prefetch != nil {
		if e, ok := w.prefetch.lookup(n.Fn); ok {
			<-e.ready
			if e.failed {
				// Cache dropped the record; fall through and
				// re-invoke to produce the canonical error.
			} else {
				return w.walk(e.ctxToUse, e.node)
			}
		}
	}

	childCtx := ctx.Fork()
	result, err := w.invoke(childCtx, n)
	if err != nil {
		return w.fail(newRenderingError(ContentFunctionError, w.stack, err))
	}

	contextToUse := ctx
	if childCtx.WasModified() {
		contextToUse = childCtx
	}

	if result.Kind == vtree.KindPending {
		w.buf.Yield()
		resolved, ferr := result.Future.Await()
		if ferr != nil {
			return w.fail(newRenderingError(ContentFunctionPromiseRejection, w.stack, ferr))
		}
		return w.walk(contextToUse, resolved)
	}
	return w.walk(contextToUse, result)
}
