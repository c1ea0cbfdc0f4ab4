/*
Package runtime implements the single-threaded reducer that drives selection and
per-module sessions.

Engine.Dispatch is a pure transition function over domain.State: it never mutates
its input and never performs I/O besides logging and lifecycle hooks. Navigator
wraps an Engine with a ports.Fragment so the external address stays in sync with
the selection: the fragment is read on start, app-initiated selections write it
back and the resulting change notification re-enters the reducer.
*/
package runtime
