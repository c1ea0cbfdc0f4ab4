/*
Package observability provides tools for monitoring the calculator engine.

It turns lifecycle hooks into structured log lines (log/slog) and Prometheus
metrics, and exposes the metrics over HTTP.
*/
package observability
