// Package value implements the JSON value model shared by every JTON
// component: the parser, the column analyzer, the sequence packers, the
// encoder driver, and the decoder all operate on [Value].
//
// A [Value] is a closed tagged union over null, bool, int64, float64,
// string, an ordered array of values, and an ordered object (insertion
// order preserved, as required by round-trip fidelity). Integers and
// floats are distinct variants even when numerically equal -- an input
// integer must never decode as a float and vice versa.
//
// Descriptor trees produced by the encoder are themselves [Value] trees:
// a descriptor object such as {"s": N, "d": D, "n": C} is just an ordinary
// [Value] of kind Object with keys "s", "d", "n" in that order. This keeps
// the encoder, decoder, and serializer working against one representation
// instead of a separate "AST" type.
package value
