package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver counts events in Prometheus. Every event increments
// EventsTotal by type; events whose Data carries a "kind" also increment
// ReasonsTotal, labelled with that kind and the optional "axis".
type MetricsObserver struct {
	EventsTotal  *prometheus.CounterVec
	ReasonsTotal *prometheus.CounterVec
}

// NewMetricsObserver registers the counters on reg. Observers created on the
// same registry share the counters registered first. A nil reg leaves them
// unregistered.
func NewMetricsObserver(reg prometheus.Registerer, namespace string) *MetricsObserver {
	return &MetricsObserver{
		EventsTotal: registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total number of diagnostic events by type",
		}, []string{"type"})),
		ReasonsTotal: registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reasons_total",
			Help:      "Total number of events carrying a reason kind, by type, kind and axis",
		}, []string{"type", "kind", "axis"})),
	}
}

// registerCounterVec panics on conflicting descriptors, as MustRegister does.
func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *MetricsObserver) OnEvent(_ context.Context, event Event) {
	m.EventsTotal.WithLabelValues(string(event.Type)).Inc()

	kind, ok := event.Data["kind"]
	if !ok {
		return
	}
	axis := ""
	if a, ok := event.Data["axis"]; ok {
		axis = fmt.Sprint(a)
	}
	m.ReasonsTotal.WithLabelValues(string(event.Type), fmt.Sprint(kind), axis).Inc()
}
