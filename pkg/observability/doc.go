/*
Package observability exposes walk engine activity to operators.

Metrics turns the engine's WalkHooks into Prometheus series, and Chain lets
several hook sets (metrics, audit logging) observe the same walks.
*/
package observability
