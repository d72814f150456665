package afield

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"

	"animal-savior/awsave/abuf"
)

// BitCount treats a run of unsigned words as one large bit vector whose
// interesting property is how many bits are set (picked fruit, pressed
// buttons, opened chests and the like). maxBits is the number of bits
// actually known to be used; Fill stops there, because the trailing bits
// of the last word are undocumented game state that must not be
// fabricated. Clear, by contrast, zeroes everything.
type BitCount struct {
	segments []*Field
	typ      abuf.NumType
	maxBits  int
	count    int

	// A phantom bit is storage that structurally belongs to the vector
	// but semantically means something else (stealing a nut from a
	// squirrel lands in the picked-fruit bits). It is excluded from the
	// reported count and surfaced separately.
	phantomSegment int
	phantomMask    uint64
	hasPhantom     bool
}

func NewBitCount(buf *abuf.Buffer, offset int, typ abuf.NumType, numSegments, maxBits int) *BitCount {
	if typ.Bounds != abuf.BoundsUnsigned {
		panic("schema bug: BitCount segments must be unsigned")
	}
	if maxBits > numSegments*typ.Bits() {
		panic(fmt.Sprintf("schema bug: %d known bits do not fit %d segments", maxBits, numSegments))
	}
	c := &BitCount{
		typ:            typ,
		maxBits:        maxBits,
		phantomSegment: -1,
	}
	for i := 0; i < numSegments; i++ {
		c.segments = append(c.segments, NewField(buf, offset+i*typ.Size, typ))
	}
	c.fixCount()
	return c
}

// NewBitCountPhantom is NewBitCount with a phantom bit at (segment, mask).
func NewBitCountPhantom(buf *abuf.Buffer, offset int, typ abuf.NumType, numSegments, maxBits, phantomSegment int, phantomMask uint64) *BitCount {
	c := NewBitCount(buf, offset, typ, numSegments, maxBits)
	c.phantomSegment = phantomSegment
	c.phantomMask = phantomMask
	c.fixCount()
	return c
}

// fixCount recomputes the cardinality (and the phantom state) from the
// segments. Simple and correct; mutation frequency is low.
func (c *BitCount) fixCount() {
	c.count = 0
	for _, seg := range c.segments {
		c.count += bits.OnesCount64(seg.Value())
	}
	c.hasPhantom = false
	if c.phantomSegment >= 0 {
		raw := c.segments[c.phantomSegment].Value()
		if raw&c.phantomMask == c.phantomMask {
			c.count--
			c.hasPhantom = true
		}
	}
}

// Count is the number of set bits, excluding any phantom bit.
func (c *BitCount) Count() int {
	return c.count
}

// HasPhantom reports whether the phantom bit is currently set.
func (c *BitCount) HasPhantom() bool {
	return c.hasPhantom
}

// MaxBits is the number of known-used bits.
func (c *BitCount) MaxBits() int {
	return c.maxBits
}

// Fill sets the first maxBits bits, consuming segments front to back and
// stopping mid-word when the limit does not align to a word boundary.
// Bits past the limit are left alone.
func (c *BitCount) Fill() {
	remaining := c.maxBits
	perSegment := c.typ.Bits()
	for _, seg := range c.segments {
		n := remaining
		if n > perSegment {
			n = perSegment
		}
		if n <= 0 {
			break
		}
		var mask uint64
		if n >= 64 {
			mask = ^uint64(0)
		} else {
			mask = (uint64(1) << uint(n)) - 1
		}
		seg.mustWrite(seg.Value() | mask)
		remaining -= n
	}
	c.fixCount()
}

// Clear zeroes every bit in every segment, including bits past maxBits.
func (c *BitCount) Clear() {
	for _, seg := range c.segments {
		seg.mustWrite(0)
	}
	c.fixCount()
}

func (c *BitCount) locate(bit int) (segment int, mask uint64, err error) {
	if bit < 0 || bit >= c.maxBits {
		return 0, 0, errors.Wrapf(ErrRange, "cannot alter bit %d; only %d are used", bit, c.maxBits)
	}
	perSegment := c.typ.Bits()
	return bit / perSegment, uint64(1) << uint(bit%perSegment), nil
}

// SetBit sets a single bit by its global index.
func (c *BitCount) SetBit(bit int) error {
	seg, mask, err := c.locate(bit)
	if err != nil {
		return errors.Wrap(err, "BitCount.SetBit error")
	}
	c.segments[seg].mustWrite(c.segments[seg].Value() | mask)
	c.fixCount()
	return nil
}

// ClearBit clears a single bit by its global index.
func (c *BitCount) ClearBit(bit int) error {
	seg, mask, err := c.locate(bit)
	if err != nil {
		return errors.Wrap(err, "BitCount.ClearBit error")
	}
	c.segments[seg].mustWrite(c.segments[seg].Value() &^ mask)
	c.fixCount()
	return nil
}

func (c *BitCount) Segments() []*Field {
	return c.segments
}
