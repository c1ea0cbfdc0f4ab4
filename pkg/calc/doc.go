/*
Package calc defines the calculation-module contract.

A Module is catalog metadata plus one or more Strategies. A Strategy owns its field
schema and a pure ComputeFunc; Strategy.Run applies the validation policy first and
only then computes, so a ComputeFunc never sees unvalidated input. Modules with a
single strategy are ordinary modules whose strategy set has one element; the first
strategy of a module is its default.
*/
package calc
