/*
Package nodes is the standard HexRune node library: lifecycle and overlap
triggers, flow control (branch, sequence, delay, loops), string helpers,
float and int comparisons, and the entity effect nodes.

Register adds every type to a factory in a fixed order. The type ids below are
persisted inside script assets, so existing ids must never be renumbered;
new node types take new ids.
*/
package nodes
