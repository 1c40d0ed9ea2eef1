/*
Package observability provides tools for monitoring the Balance engine.

It includes Prometheus collectors fed by lifecycle hooks and a helper to fan a
single engine out to several hook sets (debug logging, metrics, tests).
Metrics are written as a Prometheus textfile: the engine never opens a listener.
*/
package observability
