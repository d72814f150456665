package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeChunks(t *testing.T) {
	assert.Equal(t,
		[][]int{{1, 2}, {3, 4}, {5}},
		MakeChunks([]int{1, 2, 3, 4, 5}, 2),
	)
	assert.Equal(t,
		[][]int{{1, 2, 3}},
		MakeChunks([]int{1, 2, 3}, 3),
	)
	assert.Empty(t, MakeChunks([]int{}, 4))
}

func TestMakeChunks_Repeated(t *testing.T) {
	chunks := MakeChunks(Repeat(7, "x"), 3)
	assert.Len(t, chunks, 3)
	assert.Equal(t, []string{"x"}, chunks[2])
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []int{2, 2, 2}, Repeat(3, 2))
	assert.Empty(t, Repeat(0, 1))
}
