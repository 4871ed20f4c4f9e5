/*
Package ports defines the driven ports (interfaces) of the ghostmap solver.

These interfaces decouple the walk engine from external implementations so the
solver can run with or without a shared answer cache.

# Key Interfaces

  - ResultCache: stores computed answers keyed by network fingerprint and query.
*/
package ports
