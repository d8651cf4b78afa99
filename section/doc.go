// Package section defines the on-wire header of the shape blob format.
//
// A shape blob is a fixed 24-byte ShapeHeader followed by the payload. The payload is a
// sequence of entries, each a kind byte, a uint32 coefficient count and that many
// float64 coefficients, optionally compressed as a whole. The options field is always
// little-endian so the endianness flag can be read before anything else.
package section
