/*
Package session implements the per-module working state.

A session is created when a module becomes active and discarded when the user
navigates away. Every strategy of the module keeps its own raw inputs, seeded
from the field defaults; only the active strategy is validated and computed.
All operations return a new session and leave their input untouched, so the
runtime reducer can treat states as values.
*/
package session
