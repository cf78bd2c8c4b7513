package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlotSegments_NoDuplicateIndices(t *testing.T) {
	// The coarsest tank collapses middle and bottom onto one segment.
	assert.Equal(t, []int{0, 1}, plotSegments(2))
	assert.Equal(t, []int{0, 1, 2}, plotSegments(3))
	assert.Equal(t, []int{0, 2, 3}, plotSegments(4))
	assert.Equal(t, []int{0, 5, 9}, plotSegments(10))
}
