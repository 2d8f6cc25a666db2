// SPDX-License-Identifier: MIT

// Package matrix: element kinds.
// This file holds ONLY the closed set of supported storage kinds and the tag
// that drives arithmetic dispatch (see summation.go). The tag is resolved once
// per element type at construction and carried by every derived matrix.
package matrix

// Element is the closed set of numeric storage types a Matrix can hold.
// Named types are intentionally excluded: every member maps to exactly one Kind.
type Element interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Kind tags the storage type of a Matrix.
// Integral kinds use exact summation; floating kinds use compensated summation.
type Kind uint8

const (
	KindInt Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64

	numKinds // sentinel: table size, never a valid tag
)

var kindNames = [numKinds]string{
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// String returns the Go spelling of the storage type.
func (k Kind) String() string {
	if k >= numKinds {
		return "invalid"
	}

	return kindNames[k]
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

// IsIntegral reports whether k is a signed or unsigned integer kind.
func (k Kind) IsIntegral() bool { return k < KindFloat32 }

// KindOf returns the tag for the element type E.
// Complexity: O(1); the switch is resolved on the zero value of E.
func KindOf[E Element]() Kind {
	var zero E
	switch any(zero).(type) {
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	default:
		return KindFloat64
	}
}
