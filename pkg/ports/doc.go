/*
Package ports defines the driven ports (interfaces) of the calculator core.

These interfaces decouple the runtime from the outside world, allowing the same
reducer to be driven by a terminal, an HTTP client or an agent.

# Key Interfaces

  - Catalog: read-only access to the calculation modules (implemented by pkg/registry).
  - Fragment: the external navigation address (e.g. a URL fragment); the source of truth for selection.
  - StatelessEngine: the reducer surface used by adapters that keep state per request.
*/
package ports
