/*
Package domain contains the core domain models of the ghostmap walker.

It defines the vocabulary shared by every other package: node labels, instruction
symbols, node edge pairs, walk lifecycle events and the error taxonomy. The package
is kept pure and free of I/O so that parsers, engines and adapters can all depend on it.

# Key Entities

  - Label: a fixed-width (3 byte) node identifier with start/accepting predicates.
  - Symbol: one binary instruction (Left or Right).
  - Node: the two outgoing edges of a graph vertex.
  - Definition: a (node, left, right) triple as produced by the input parser.
  - WalkHooks: callbacks for observing walk start and completion.
*/
package domain
