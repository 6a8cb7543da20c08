package graph

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/hexrune/internal/logging"
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/guid"
	"github.com/aretw0/hexrune/pkg/ports"
)

// EditorState is the authoring-time presentation data kept per node.
type EditorState struct {
	X, Y float32
}

// Script owns the nodes, links and data bindings of one script asset.
type Script struct {
	nodes       []Node
	nodeIndices map[domain.NodeID]int
	startNodes  []domain.NodeID
	pins        map[domain.PinID]*Pin
	links       []Link
	bindings    []DataBinding
	editor      map[domain.NodeID]EditorState

	factory  *Factory
	library  []func(*Factory)
	ids      ports.IDGenerator
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	scene    ports.Scene
	pulling  map[domain.NodeID]bool
	deferred []Deferral
	reserved map[uint64]struct{}
	halted   bool
}

// Option configures a Script.
type Option func(*Script)

// WithLogger sets the structured logger used for authoring diagnostics and print nodes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Script) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks fired during execution.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Script) {
		s.hooks = hooks
	}
}

// WithIDGenerator replaces the default random id generator.
func WithIDGenerator(ids ports.IDGenerator) Option {
	return func(s *Script) {
		s.ids = ids
	}
}

// WithNodeLibrary registers additional node types after the built-in binding
// nodes. Libraries run in the order given; keep it fixed so persisted type ids
// stay stable.
func WithNodeLibrary(register func(*Factory)) Option {
	return func(s *Script) {
		s.library = append(s.library, register)
	}
}

// New creates an empty, initialized script.
func New(opts ...Option) *Script {
	s := &Script{
		nodeIndices: make(map[domain.NodeID]int),
		pins:        make(map[domain.PinID]*Pin),
		editor:      make(map[domain.NodeID]EditorState),
		pulling:     make(map[domain.NodeID]bool),
		ids:         guid.New(),
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Initialize()
	return s
}

// Initialize (re)builds the node factory: binding nodes first, then every
// library in order.
func (s *Script) Initialize() {
	s.factory = NewFactory()
	registerDataBindingNodes(s.factory)
	for _, register := range s.library {
		register(s.factory)
	}
	for _, b := range s.bindings {
		s.factory.addBindingDescriptors(b)
	}
}

// Factory returns the script's node factory.
func (s *Script) Factory() *Factory { return s.factory }

// Logger returns the script logger.
func (s *Script) Logger() *slog.Logger { return s.logger }

// LifecycleHooks returns the hooks fired during execution.
func (s *Script) LifecycleHooks() domain.LifecycleHooks { return s.hooks }

// SetLifecycleHooks replaces the execution hooks.
func (s *Script) SetLifecycleHooks(hooks domain.LifecycleHooks) { s.hooks = hooks }

// Scene returns the scene of the most recent traversal, or nil.
func (s *Script) Scene() ports.Scene { return s.scene }

// AddNode creates a node of typeID through the factory and adds it to the graph.
// A zero id is replaced by a fresh one.
func (s *Script) AddNode(typeID domain.TypeID, id domain.NodeID) (Node, error) {
	if id != 0 && s.HasNode(id) {
		return nil, fmt.Errorf("node %d already exists", id)
	}
	n, err := s.factory.CreateNode(typeID, id, s)
	if err != nil {
		return nil, err
	}
	s.insertNode(n)
	return n, nil
}

// AddDataBindingNode creates a get or set node for bindingID.
func (s *Script) AddDataBindingNode(typeID domain.TypeID, id domain.NodeID, bindingID domain.BindingID) (Node, error) {
	if id != 0 && s.HasNode(id) {
		return nil, fmt.Errorf("node %d already exists", id)
	}
	n, err := s.factory.CreateDataBindingNode(typeID, id, s, bindingID)
	if err != nil {
		return nil, err
	}
	s.insertNode(n)
	return n, nil
}

func (s *Script) insertNode(n Node) {
	b := n.Base()
	s.nodeIndices[b.id] = len(s.nodes)
	s.nodes = append(s.nodes, n)
	for _, p := range b.pins() {
		s.pins[p.id] = p
	}
	if n.IsStartNode() {
		s.startNodes = append(s.startNodes, b.id)
	}
	s.editor[b.id] = EditorState{}
}

// RemoveNode severs every link touching the node's pins, then swap-removes it.
// Unknown ids and empty graphs are logged and ignored.
func (s *Script) RemoveNode(id domain.NodeID) bool {
	if len(s.nodes) == 0 {
		s.logger.Warn("remove node: graph is empty", "node", id)
		return false
	}
	idx, ok := s.nodeIndices[id]
	if !ok {
		s.logger.Warn("remove node: unknown node", "node", id)
		return false
	}

	b := s.nodes[idx].Base()
	for _, p := range b.pins() {
		s.UnlinkPin(p.id)
	}

	last := len(s.nodes) - 1
	if idx != last {
		s.nodes[idx] = s.nodes[last]
		s.nodeIndices[s.nodes[idx].Base().id] = idx
	}
	s.nodes[last] = nil
	s.nodes = s.nodes[:last]
	delete(s.nodeIndices, id)

	for _, p := range b.pins() {
		if s.pins[p.id] == p {
			delete(s.pins, p.id)
		}
	}
	for i, startID := range s.startNodes {
		if startID == id {
			s.startNodes = append(s.startNodes[:i], s.startNodes[i+1:]...)
			break
		}
	}
	s.cancelDeferral(id)
	delete(s.editor, id)
	return true
}

// GetNode returns the node with the given id, or nil.
func (s *Script) GetNode(id domain.NodeID) Node {
	idx, ok := s.nodeIndices[id]
	if !ok {
		return nil
	}
	return s.nodes[idx]
}

// HasNode reports whether the graph contains id.
func (s *Script) HasNode(id domain.NodeID) bool {
	_, ok := s.nodeIndices[id]
	return ok
}

// Nodes returns the dense node array. Callers must not modify it.
func (s *Script) Nodes() []Node { return s.nodes }

// NodeIndex returns the position of id in the dense node array.
func (s *Script) NodeIndex(id domain.NodeID) (int, bool) {
	idx, ok := s.nodeIndices[id]
	return idx, ok
}

// StartNodes returns the ids of the trigger nodes in insertion order.
func (s *Script) StartNodes() []domain.NodeID {
	return append([]domain.NodeID(nil), s.startNodes...)
}

// Pin returns the pin with the given id, or nil.
func (s *Script) Pin(id domain.PinID) *Pin { return s.pins[id] }

// SetDataOnInput writes a literal value onto an input pin, as when a designer
// types into an unlinked pin. Output pins, flow pins and mismatched types are ignored.
func (s *Script) SetDataOnInput(pinID domain.PinID, v domain.Value) bool {
	p := s.pins[pinID]
	if p == nil || p.Direction != domain.Input {
		return false
	}
	return p.SetData(v)
}

// NodePosition returns the editor position of a node.
func (s *Script) NodePosition(id domain.NodeID) (EditorState, bool) {
	st, ok := s.editor[id]
	return st, ok
}

// SetNodePosition moves a node in the editor.
func (s *Script) SetNodePosition(id domain.NodeID, x, y float32) {
	if s.HasNode(id) {
		s.editor[id] = EditorState{X: x, Y: y}
	}
}

// nextID draws from the generator until it yields an id that no node, pin,
// link or binding of the script holds. A loaded script may already own ids a
// deterministic generator hands out again.
func (s *Script) nextID() uint64 {
	for {
		id := s.ids.Next()
		if id != 0 && !s.idInUse(id) {
			return id
		}
	}
}

func (s *Script) idInUse(id uint64) bool {
	if _, ok := s.reserved[id]; ok {
		return true
	}
	if _, ok := s.nodeIndices[domain.NodeID(id)]; ok {
		return true
	}
	if _, ok := s.pins[domain.PinID(id)]; ok {
		return true
	}
	for _, l := range s.links {
		if uint64(l.ID) == id {
			return true
		}
	}
	return s.bindingIndex(domain.BindingID(id)) >= 0
}

// reset drops every node, link, binding and pending deferral.
func (s *Script) reset() {
	s.nodes = nil
	s.nodeIndices = make(map[domain.NodeID]int)
	s.startNodes = nil
	s.pins = make(map[domain.PinID]*Pin)
	s.links = nil
	s.bindings = nil
	s.editor = make(map[domain.NodeID]EditorState)
	s.pulling = make(map[domain.NodeID]bool)
	s.deferred = nil
	s.reserved = nil
	s.halted = false
	s.Initialize()
}
