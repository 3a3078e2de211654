// Package compiler translates programs of the eight-instruction tape
// language (+ - < > , . [ ]) into Python 3 source.
//
// Pipeline: source → Tokenizer events → Generator (tier 0, 1 or 2) → Builder → Python text
//
// Tier 0 emits one statement per instruction, tier 1 fuses runs of identical
// arithmetic and pointer instructions, and tier 2 additionally defers
// pointer movements, addressing cells relative to the pointer until a loop
// boundary forces a pointer assignment.
package compiler
