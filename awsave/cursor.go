package awsave

import (
	"animal-savior/awsave/abuf"
	"animal-savior/awsave/afield"
	"animal-savior/awsave/araster"
)

// Tracer receives every field the schema walk resolves: its label, its
// absolute offset and its size in bytes. Wire one in via WithTracer to
// dump the layout while reverse-engineering; nil means no tracing.
type Tracer func(label string, offset, size int)

// inline marks a field that continues at the cursor's current position
// instead of anchoring to an explicit slot-relative offset.
const inline = -1

// cursor walks a schema region and computes every field offset exactly
// once. Fields anchor either at an explicit offset relative to the
// cursor's base, or inline right after the previous field.
type cursor struct {
	buf   *abuf.Buffer
	base  int
	pos   int
	trace Tracer
}

func newCursor(buf *abuf.Buffer, base int, trace Tracer) *cursor {
	return &cursor{
		buf:   buf,
		base:  base,
		pos:   base,
		trace: trace,
	}
}

// at resolves the next field's absolute offset and advances the cursor
// past it.
func (c *cursor) at(label string, rel, size int) int {
	off := c.pos
	if rel != inline {
		off = c.base + rel
	}
	if c.trace != nil {
		c.trace(label, off, size)
	}
	c.pos = off + size
	return off
}

// skip advances past reserved bytes without resolving a field.
func (c *cursor) skip(n int) {
	c.pos += n
}

func (c *cursor) num(label string, rel int, typ abuf.NumType) *afield.Field {
	return afield.NewField(c.buf, c.at(label, rel, typ.Size), typ)
}

func (c *cursor) float(label string, rel int) *afield.FloatField {
	return afield.NewFloatField(c.buf, c.at(label, rel, abuf.Float32.Size))
}

func (c *cursor) choice(label string, rel int, typ abuf.NumType, choices []afield.Choice) *afield.ChoiceField {
	return afield.NewChoiceField(c.buf, c.at(label, rel, typ.Size), typ, choices)
}

func (c *cursor) bitfield(label string, rel int, typ abuf.NumType, flags []afield.Flag) *afield.Bitfield {
	return afield.NewBitfield(c.buf, c.at(label, rel, typ.Size), typ, flags)
}

func (c *cursor) bits(label string, rel int, typ abuf.NumType, numSegments, maxBits int) *afield.BitCount {
	return afield.NewBitCount(c.buf, c.at(label, rel, typ.Size*numSegments), typ, numSegments, maxBits)
}

func (c *cursor) bitsPhantom(label string, rel int, typ abuf.NumType, numSegments, maxBits, phantomSegment int, phantomMask uint64) *afield.BitCount {
	return afield.NewBitCountPhantom(c.buf, c.at(label, rel, typ.Size*numSegments), typ, numSegments, maxBits, phantomSegment, phantomMask)
}

func (c *cursor) layer(label string, rel int, geo araster.Geometry) *araster.Layer {
	return araster.NewLayer(c.buf, c.at(label, rel, geo.TotalBytes()), geo)
}
