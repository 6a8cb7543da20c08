/*
Package graph implements the HexRune script graph: pins, nodes, links and data
bindings, the factory that builds nodes from persisted type ids, the execution
protocol, and the binary serialization contract.

# Execution

A host calls a trigger entry point (BeginPlay, Tick, EndPlay, BeginOverlap,
EndOverlap) or TraverseFromNode. Executing a node resolves its data inputs by
pulling from linked outputs (running pure data nodes on demand), runs the
node's OnExecute, then pushes flow along the selected output pins:

  - a non-negative selector runs the successor linked to that output;
  - domain.SelectAll runs every linked flow output, in output order;
  - domain.Defer suspends propagation until Resume is called for the node.

Execution is synchronous and single-threaded. A Script must not be edited while
it is executing, and is not safe for concurrent use.

# Persistence

Serialize writes data bindings, nodes and link records in a fixed little-endian
layout. Deserialize restores them through the Factory but does not re-establish
pin links; call Relink (or use Load, which does both) before executing a
deserialized script.
*/
package graph
