package domain

import "time"

// NodeEvent describes one node execution.
type NodeEvent struct {
	Timestamp time.Time
	NodeID    NodeID
	TypeID    TypeID
	TypeName  string
	// Selector is the continuation returned by OnExecute. Unset on enter.
	Selector int8
}

// LifecycleHooks defines callbacks for script observability.
// Hooks run synchronously on the executing goroutine.
type LifecycleHooks struct {
	OnNodeEnter func(*NodeEvent)
	OnNodeLeave func(*NodeEvent)
	OnDeferred  func(*NodeEvent)
}
