/*
Package ports defines the driven ports (interfaces) of the HexRune runtime.

These interfaces decouple the script core from the host engine and from storage,
so a script can run against a donburi world, an in-memory test scene, a file
tree or a Redis instance without changing.

# Key Interfaces

  - Scene: resolves entity components and reports the frame delta.
  - ScriptStore: persists serialized script assets by asset id.
  - IDGenerator: hands out process-unique 64-bit ids.
*/
package ports
