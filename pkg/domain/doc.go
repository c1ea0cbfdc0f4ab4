/*
Package domain contains the core domain models of the agronomic calculator.

It defines the vocabulary shared by every calculation module: unit-tagged quantities,
field schemas, results and the navigation/session state driven by the runtime. This
package is kept pure and free of external dependencies like I/O or presentation,
following Hexagonal Architecture principles.

# Key Entities

  - Quantity: a decimal number tagged with its physical unit.
  - FieldSchema: declarative description of one input (numeric, text or choice).
  - Result: one labeled entry of a computation's ordered output.
  - ModuleDescriptor: immutable catalog metadata of a calculation module.
  - State: the current selection plus the active module's session.
*/
package domain
