// Package rdn implements Rich Data Notation (RDN), a strict superset of JSON
// that adds surface syntax for dates, time-of-day, durations, bigints,
// regular expressions, binary blobs, ordered maps, sets, tuples, and the
// special numeric values NaN and ±Infinity.
//
// Use one of the ParseXXX functions to turn RDN text into a Value tree, and
// Stringify to turn a Value tree back into canonical RDN text. Every valid
// JSON document is valid RDN and round-trips through this package; the
// converse does not hold.
//
//	val, err := rdn.ParseString(`{"a":1,"b":[true,@2024-01-15]}`)
//	text, err := rdn.Stringify(val, rdn.StringifyOptions{})
//
// This package implements only the parser, the value tree, the serializer,
// and ParseCST, a parser that keeps source offsets for tooling. It does not compile regular expressions, validate against a
// schema, or bind values to Go struct types — those are left to callers.
package rdn
