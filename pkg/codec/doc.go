// Package codec provides species-record serialization for AtomDB.
//
// Each compiled species is stored as a single MessagePack map with string
// keys, one key per persisted record field. The field set and its key
// names are a stable binary contract.
//
// # Value encoding
//
// Three kinds of values appear in the map:
//
//   - Scalars (strings, integers, floats) are packed as their natural
//     MessagePack types.
//   - Radius dictionaries (reference-source name -> length) are packed as
//     nested string-keyed maps.
//   - Numeric arrays are packed as MessagePack bin values holding the raw
//     contiguous little-endian IEEE-754 float64 buffer. Using the bin
//     type (never str) keeps array bytes unambiguous from text.
//
// Optional fields that are absent on a record are packed as nil, so every
// encoded map carries the complete field set.
//
// # Decoding
//
// Decode reverses the mapping: every bin value is reinterpreted as a
// float64 slice of length len/8, nils become absent fields, and the
// result is handed to species.New, which recomputes the derived charge
// and multiplicity. Derived fields are never part of the encoded map.
//
// Decode(Encode(r)) reproduces r's persisted fields exactly; array fields
// round-trip bit-for-bit. A missing identity field or a non-string map
// key is a decode error.
package codec
