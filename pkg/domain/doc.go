/*
Package domain contains the core value types shared by the HexRune script runtime.

It defines the identifiers, the closed set of pin types, the tagged-union Value
carried by pins and data bindings, the entity/component handles that flow through
the graph as opaque data, and the lifecycle hooks used for observability. The
package has no knowledge of graphs, storage or hosts.

# Key Types

  - PinType: the closed set of payload kinds a pin or data binding can carry.
  - Value: a tagged union holding exactly one payload, or nothing ("unset").
  - Entity / ComponentHandle: opaque references into the host ECS.
  - LifecycleHooks: callbacks fired while a script graph executes.
*/
package domain
