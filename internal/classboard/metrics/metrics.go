// Package metrics exposes the Prometheus collectors of the dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	widgetsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classboard",
		Name:      "widgets_created_total",
		Help:      "Widgets added to a workspace, by widget type.",
	}, []string{"type"})
	timerEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classboard",
		Name:      "timer_events_total",
		Help:      "Expiry and phase events emitted by timed widgets.",
	}, []string{"kind"})
	storeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classboard",
		Name:      "store_failures_total",
		Help:      "Failed reads and writes against the layout store.",
	}, []string{"op"})
	activeTimers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "classboard",
		Name:      "active_timers",
		Help:      "Timed widgets currently holding a tick registration.",
	})
)

func RecordWidgetCreated(widgetType string) {
	widgetsCreated.WithLabelValues(widgetType).Inc()
}

func RecordTimerEvent(kind string) {
	timerEvents.WithLabelValues(kind).Inc()
}

func RecordStoreFailure(op string) {
	storeFailures.WithLabelValues(op).Inc()
}

func SetActiveTimers(n int) {
	activeTimers.Set(float64(n))
}
