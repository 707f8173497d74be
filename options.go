package rdn

// DefaultMaxDepth is the default bound on container nesting depth.
const DefaultMaxDepth = 128

// DefaultMaxBinaryBytes is the default bound on decoded Binary literal size.
const DefaultMaxBinaryBytes = 100 << 20 // 100 MiB

// DuplicateKeyPolicy controls what Parse does when an Object literal repeats
// a key.
type DuplicateKeyPolicy uint8

const (
	// DuplicateKeysLastWins keeps the first occurrence's position and the
	// last occurrence's value (the default).
	DuplicateKeysLastWins DuplicateKeyPolicy = iota
	// DuplicateKeysReject fails with a ValueError on any repeated key.
	DuplicateKeysReject
)

// Reviver is invoked bottom-up during Parse for every value position: for
// Objects the key is a String Value holding the member name, for Array/Tuple
// it is a String Value holding the index, for Map it is the actual key
// Value (of any Kind), for Set it is a String Value holding the index.
// Returning ok=false deletes the
// containing entry; otherwise the returned Value replaces it. After all
// children are revived, the reviver runs once more with an empty-string key
// and the root value.
type Reviver func(key Value, value Value) (Value, bool)

// ParseOptions configures Parse.
type ParseOptions struct {
	// Reviver, if non-nil, is applied per spec semantics.
	Reviver Reviver
	// MaxDepth bounds container nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// MaxBinaryBytes bounds decoded Binary literal size. Zero means
	// DefaultMaxBinaryBytes.
	MaxBinaryBytes int
	// DuplicateKeys selects the Object duplicate-key policy.
	DuplicateKeys DuplicateKeyPolicy
}

func (o ParseOptions) resolved() ParseOptions {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxBinaryBytes <= 0 {
		o.MaxBinaryBytes = DefaultMaxBinaryBytes
	}
	return o
}

// TupleOutput selects how Tuple values are rendered by Stringify.
type TupleOutput uint8

const (
	// TupleOutputParens emits "(...)" (the default, lossless round-trip).
	TupleOutputParens TupleOutput = iota
	// TupleOutputArray emits "[...]" (lossy: decodes back as Array).
	TupleOutputArray
)

// BinaryOutput selects how Binary values are rendered by Stringify.
type BinaryOutput uint8

const (
	// BinaryOutputBase64 emits `b"...base64..."` (the default).
	BinaryOutputBase64 BinaryOutput = iota
	// BinaryOutputHex emits `x"...hex..."`.
	BinaryOutputHex
)

// Replacer is invoked top-down during Stringify for every value position,
// before its children are visited, with the same key semantics as Reviver.
// The root is invoked first with an empty-string key. Returning ok=false
// omits the value per the serializer's omission table.
type Replacer func(key Value, value Value) (Value, bool)

// StringifyOptions configures Stringify.
type StringifyOptions struct {
	// Replacer, if non-nil, is applied per spec semantics.
	Replacer Replacer
	// TupleOutput selects the Tuple surface form. Zero value is "parens".
	TupleOutput TupleOutput
	// BinaryOutput selects the Binary surface form. Zero value is "base64".
	BinaryOutput BinaryOutput
}
