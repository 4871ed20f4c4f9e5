/*
Package walk drives walkers over a network.

A Walker is a (node, step) value advanced by the cyclic instruction sequence.
The Engine runs the three queries built on top of it:

  - SingleWalk counts steps from one label until a terminal predicate holds.
  - DetectPeriod finds, for one start, the step at which accepting visits recur.
  - MultiWalk combines the periods of every start node with a 128-bit LCM.

MultiWalkExact replaces the LCM with a full cycle analysis of the
(phase, node) product automaton and a Chinese Remainder combination, for
inputs where walkers do not line up with step zero.

Every loop is bounded: the product automaton has |nodes| * P states, so a
walk that has not met its condition within a small multiple of that count
never will. The configured step budget can only tighten that bound.
*/
package walk
