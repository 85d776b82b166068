package markup

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/viewstream/pkg/renderctx"
	"github.com/vango-dev/viewstream/pkg/vtree"
)

func TestRenderXMLModeSelfClosesEmptyElements(t *testing.T) {
	tree := vtree.Element("input", vtree.Attr{Key: "type", Value: "checkbox"}, vtree.Attr{Key: "checked", Value: true})
	got, err := Render(tree, WithMode(ModeXML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<input checked="true" type="checkbox" />`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderResponseWritesFullOutput(t *testing.T) {
	tree := vtree.Element("p", vtree.Text("hi"))
	var buf bytes.Buffer
	if err := RenderResponse(&buf, tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "<p>hi</p>" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestRenderResponsePropagatesError(t *testing.T) {
	tree := vtree.Element("br", vtree.Text("bad"))
	var buf bytes.Buffer
	if err := RenderResponse(&buf, tree); err == nil {
		t.Fatal("expected an error")
	}
}

func debugLogger(dest *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(dest, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDeferredPanicRecoversAsContentFunctionErrorAndLogs(t *testing.T) {
	var logs bytes.Buffer
	tree := vtree.Deferred(func(ctx *renderctx.Context) (vtree.Node, error) {
		panic("boom")
	})
	_, err := Render(tree, WithPrefetch(false), WithLogger(debugLogger(&logs)))
	re, ok := err.(*RenderingError)
	if !ok || re.Kind != ContentFunctionError {
		t.Fatalf("err = %v, want *RenderingError{Kind: ContentFunctionError}", err)
	}
	if !strings.Contains(logs.String(), "recovered panic") {
		t.Fatalf("expected a recovered-panic debug log, got %q", logs.String())
	}
}

type modeCapturingObserver struct{ got Mode }

func (o *modeCapturingObserver) RenderStarted(mode Mode) any {
	o.got = mode
	return nil
}
func (o *modeCapturingObserver) RenderFinished(any, error) {}

func TestRenderStartedReceivesActualMode(t *testing.T) {
	obs := &modeCapturingObserver{}
	if _, err := Render(vtree.Text("x"), WithMode(ModeXML), WithObserver(obs)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obs.got != ModeXML {
		t.Fatalf("Observer saw mode %v, want ModeXML", obs.got)
	}
}

func TestModeStringMatchesMetricLabels(t *testing.T) {
	if ModeHTML.String() != "html" {
		t.Fatalf("ModeHTML.String() = %q, want %q", ModeHTML.String(), "html")
	}
	if ModeXML.String() != "xml" {
		t.Fatalf("ModeXML.String() = %q, want %q", ModeXML.String(), "xml")
	}
}
