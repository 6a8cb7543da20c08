package domain

// Reserved node ids of the trigger nodes the host invokes directly.
// A script holds at most one instance of each.
const (
	BeginPlayNodeID NodeID = iota + 1
	TickNodeID
	EndPlayNodeID
	BeginOverlapNodeID
	EndOverlapNodeID

	// ReservedNodeIDLimit is the first id generators may hand out.
	ReservedNodeIDLimit NodeID = 1024
)

// Continuation selectors returned by a node's OnExecute.
// Non-negative values select a single output pin.
const (
	SelectAll int8 = -1
	Defer     int8 = -2
)
