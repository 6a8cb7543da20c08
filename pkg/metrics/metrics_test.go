package metrics_test

import (
	"strings"
	"testing"

	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
	"github.com/aretw0/hexrune/pkg/metrics"
	"github.com/aretw0/hexrune/pkg/nodes"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CountsExecutions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	s := graph.New(graph.WithNodeLibrary(nodes.Register), graph.WithLifecycleHooks(c.Hooks()))
	begin, err := s.AddNode(nodes.TypeBeginPlay, domain.BeginPlayNodeID)
	require.NoError(t, err)
	delay, err := s.AddNode(nodes.TypeDelay, 0)
	require.NoError(t, err)
	require.NotZero(t, s.Link(begin.Base().Output(0).ID(), delay.Base().Input(0).ID()))

	s.BeginPlay(nil)
	s.BeginPlay(nil)

	expected := `
# HELP hexrune_node_executions_total Total number of node executions by node type
# TYPE hexrune_node_executions_total counter
hexrune_node_executions_total{type="BeginPlay"} 2
hexrune_node_executions_total{type="Delay"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "hexrune_node_executions_total"))

	expected = `
# HELP hexrune_node_deferrals_total Total number of nodes that suspended flow
# TYPE hexrune_node_deferrals_total counter
hexrune_node_deferrals_total 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "hexrune_node_deferrals_total"))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)
}

func TestChain(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{OnNodeEnter: func(*domain.NodeEvent) { order = append(order, "a") }}
	b := domain.LifecycleHooks{
		OnNodeEnter: func(*domain.NodeEvent) { order = append(order, "b") },
		OnDeferred:  func(*domain.NodeEvent) { order = append(order, "b-defer") },
	}

	h := metrics.Chain(a, b)
	h.OnNodeEnter(&domain.NodeEvent{})
	h.OnDeferred(&domain.NodeEvent{})

	assert.Equal(t, []string{"a", "b", "b-defer"}, order)
	assert.Nil(t, h.OnNodeLeave)
}
