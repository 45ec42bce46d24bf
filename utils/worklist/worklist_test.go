package worklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	W := Empty[string]()
	require.True(t, W.IsEmpty())

	W.Add("a")
	W.Add("b")
	W.Add("a")
	assert.Equal(t, 3, W.Len())

	for _, want := range []string{"a", "b", "a"} {
		assert.Equal(t, want, W.GetNext())
	}
	assert.Equal(t, "", W.GetNext())
	assert.True(t, W.IsEmpty())
}

func TestStartV(t *testing.T) {
	var visited []int
	StartV([]int{1, 2}, func(next int, add func(int)) {
		visited = append(visited, next)
		if next < 4 {
			add(next + 2)
		}
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, visited)
}
