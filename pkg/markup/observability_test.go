package markup

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromOtelObserverLabelsMetricWithActualMode(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewPromOtelObserver(reg, "markup-test")

	started := obs.RenderStarted(ModeXML)
	obs.RenderFinished(started, nil)

	if got := testutil.ToFloat64(obs.total.WithLabelValues("xml")); got != 1 {
		t.Fatalf("render_total{mode=xml} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.total.WithLabelValues("html")); got != 0 {
		t.Fatalf("render_total{mode=html} = %v, want 0", got)
	}
}

func TestNoopObserverIgnoresMode(t *testing.T) {
	obs := NewNoopObserver()
	if got := obs.RenderStarted(ModeXML); got != nil {
		t.Fatalf("RenderStarted = %v, want nil", got)
	}
	obs.RenderFinished(nil, nil)
}
