// Package rustgen turns a validated bounded-integer specification into a
// self-contained Rust type definition.
//
// Emission pipeline (each stage is a pure function of the specification):
//  1. Type item (enumerated variants or transparent wrapper)
//  2. Inherent impl: bound constants, constructors, accessors, checked and
//     saturating arithmetic from the operator tables
//  3. Cross-type impls: comparisons, infix operators, iterator folds,
//     formatting, widening conversions, optional serde
//  4. Optional self-test module
//
// Output is deterministic: identical specifications produce byte-identical
// artifacts.
package rustgen
