package abuf

import (
	"encoding/binary"
)

type (
	// Bounds describes which numeric range a NumType enforces on writes.
	Bounds int

	// NumType describes how a primitive value is stored in the savegame:
	// its width in bytes and its signedness. All multi-byte values in the
	// format are little-endian.
	NumType struct {
		Size   int
		Bounds Bounds
	}
)

const (
	BoundsNone Bounds = iota
	BoundsSigned
	BoundsUnsigned
)

var (
	UInt8   = NumType{1, BoundsUnsigned}
	Int8    = NumType{1, BoundsSigned}
	UInt16  = NumType{2, BoundsUnsigned}
	Int16   = NumType{2, BoundsSigned}
	UInt32  = NumType{4, BoundsUnsigned}
	Int32   = NumType{4, BoundsSigned}
	UInt64  = NumType{8, BoundsUnsigned}
	Int64   = NumType{8, BoundsSigned}
	Float32 = NumType{4, BoundsNone}
)

func (t NumType) Bits() int {
	return t.Size * 8
}

// MaxUint is the largest raw value that fits in the type's width.
func (t NumType) MaxUint() uint64 {
	if t.Size >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(t.Bits())) - 1
}

func (t NumType) MaxInt() int64 {
	return int64(1)<<uint(t.Bits()-1) - 1
}

func (t NumType) MinInt() int64 {
	return -(int64(1) << uint(t.Bits()-1))
}

// InRangeUint reports whether v can be written as this type without
// truncation. Signed types accept any raw bit pattern of their width.
func (t NumType) InRangeUint(v uint64) bool {
	if t.Bounds == BoundsNone {
		return true
	}
	return v <= t.MaxUint()
}

func (t NumType) InRangeInt(v int64) bool {
	switch t.Bounds {
	case BoundsSigned:
		return v >= t.MinInt() && v <= t.MaxInt()
	case BoundsUnsigned:
		return v >= 0 && uint64(v) <= t.MaxUint()
	default:
		return true
	}
}

// Decode reads a raw little-endian value of the type's width from p.
// Signed values come back as their raw two's-complement bit pattern;
// use SignExtend to interpret them.
func (t NumType) Decode(p []byte) uint64 {
	var v uint64
	for i := t.Size - 1; i >= 0; i-- {
		v = v<<8 | uint64(p[i])
	}
	return v
}

// Encode writes v into p as a little-endian value of the type's width.
func (t NumType) Encode(v uint64, p []byte) {
	switch t.Size {
	case 1:
		p[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(p, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(p, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(p, v)
	}
}

// SignExtend interprets a raw value of the type's width as a signed
// integer.
func (t NumType) SignExtend(v uint64) int64 {
	shift := uint(64 - t.Bits())
	return int64(v<<shift) >> shift
}
