// Package metrics exports script execution counters to Prometheus through
// lifecycle hooks.
package metrics

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts node executions and deferrals.
type Collector struct {
	executions *prometheus.CounterVec
	deferrals  prometheus.Counter
}

// New creates the counters and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		executions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hexrune_node_executions_total",
				Help: "Total number of node executions by node type",
			},
			[]string{"type"},
		),
		deferrals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hexrune_node_deferrals_total",
			Help: "Total number of nodes that suspended flow",
		}),
	}
	for _, col := range []prometheus.Collector{c.executions, c.deferrals} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Hooks returns lifecycle hooks feeding the collector. Other hooks can be
// chained with Chain.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(e *domain.NodeEvent) {
			name := e.TypeName
			if name == "" {
				name = "unknown"
			}
			c.executions.WithLabelValues(name).Inc()
		},
		OnDeferred: func(*domain.NodeEvent) {
			c.deferrals.Inc()
		},
	}
}

// Chain combines hook sets; each callback runs in argument order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var enter, leave, deferred []func(*domain.NodeEvent)
	for _, h := range sets {
		if h.OnNodeEnter != nil {
			enter = append(enter, h.OnNodeEnter)
		}
		if h.OnNodeLeave != nil {
			leave = append(leave, h.OnNodeLeave)
		}
		if h.OnDeferred != nil {
			deferred = append(deferred, h.OnDeferred)
		}
	}
	return domain.LifecycleHooks{
		OnNodeEnter: fanOut(enter),
		OnNodeLeave: fanOut(leave),
		OnDeferred:  fanOut(deferred),
	}
}

func fanOut(fns []func(*domain.NodeEvent)) func(*domain.NodeEvent) {
	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}
	return func(e *domain.NodeEvent) {
		for _, fn := range fns {
			fn(e)
		}
	}
}
