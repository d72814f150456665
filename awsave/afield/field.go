// Package afield implements the typed field handles that make up the
// savegame tree: plain numeric fields, labeled choices, named bitfields,
// counted bitsets and fixed-capacity record lists. Every handle is a
// lightweight (buffer, offset, type) value whose offset was computed once
// during the schema walk; reads are served from a cache that is kept in
// sync by write-through on every mutation.
package afield

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"animal-savior/awsave/abuf"
)

type Field struct {
	buf    *abuf.Buffer
	offset int
	typ    abuf.NumType
	value  uint64
}

// NewField resolves a field at an absolute offset and decodes its current
// value. Offsets come from the static schema, so an out-of-bounds offset
// is a schema-authoring bug and panics rather than returning an error.
func NewField(buf *abuf.Buffer, offset int, typ abuf.NumType) *Field {
	v, err := buf.ReadNum(offset, typ)
	if err != nil {
		panic(fmt.Sprintf("schema bug: field at 0x%X: %v", offset, err))
	}
	return &Field{
		buf:    buf,
		offset: offset,
		typ:    typ,
		value:  v,
	}
}

func (f *Field) Offset() int {
	return f.offset
}

func (f *Field) Type() abuf.NumType {
	return f.typ
}

// Value returns the cached raw value. The cache always matches what is
// currently decodable at the field's offset.
func (f *Field) Value() uint64 {
	return f.value
}

// Int returns the value interpreted through the field's signedness.
func (f *Field) Int() int64 {
	if f.typ.Bounds == abuf.BoundsSigned {
		return f.typ.SignExtend(f.value)
	}
	return int64(f.value)
}

// Set bounds-checks v against the field's type and writes it through to
// the buffer immediately. On failure neither the buffer nor the cache
// changes.
func (f *Field) Set(v uint64) error {
	if !f.typ.InRangeUint(v) {
		return errors.Wrapf(ErrRange, "Field.Set error: maximum value is %d", f.typ.MaxUint())
	}
	f.mustWrite(v)
	return nil
}

// SetInt is Set for signed values; it rejects values outside the type's
// signed (or unsigned, for unsigned fields) range.
func (f *Field) SetInt(v int64) error {
	if !f.typ.InRangeInt(v) {
		return errors.Wrapf(ErrRange, "Field.SetInt error: value %d outside [%d, %d]", v, f.min(), f.max())
	}
	f.mustWrite(uint64(v) & f.typ.MaxUint())
	return nil
}

func (f *Field) min() int64 {
	if f.typ.Bounds == abuf.BoundsSigned {
		return f.typ.MinInt()
	}
	return 0
}

func (f *Field) max() int64 {
	if f.typ.Bounds == abuf.BoundsSigned {
		return f.typ.MaxInt()
	}
	return int64(f.typ.MaxUint())
}

func (f *Field) mustWrite(v uint64) {
	// The offset was validated at construction time, so this cannot fail.
	if err := f.buf.WriteNum(f.offset, f.typ, v); err != nil {
		panic(err)
	}
	f.value = v
}

// FloatField is a Field holding an IEEE 754 single (shard and elevator
// positions are the only floats in the format).
type FloatField struct {
	Field
}

func NewFloatField(buf *abuf.Buffer, offset int) *FloatField {
	return &FloatField{Field: *NewField(buf, offset, abuf.Float32)}
}

func (f *FloatField) Float() float32 {
	return math.Float32frombits(uint32(f.Value()))
}

func (f *FloatField) SetFloat(v float32) {
	f.mustWrite(uint64(math.Float32bits(v)))
}
