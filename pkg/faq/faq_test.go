package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems(t *testing.T) {
	all := Items()
	require.Len(t, all, 5)
	for _, it := range all {
		assert.NotEmpty(t, it.ID)
		assert.NotEmpty(t, it.Category)
		assert.NotEmpty(t, it.Question)
		assert.NotEmpty(t, it.Answer)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	a := Items()
	a[0].Question = "mutated"
	assert.NotEqual(t, "mutated", Items()[0].Question)
}

func TestByCategory(t *testing.T) {
	network := ByCategory("Network")
	require.Len(t, network, 1)
	assert.Equal(t, "How do I reset my Internet?", network[0].Question)

	// Case-insensitive match.
	assert.Len(t, ByCategory("network"), 1)
	assert.Empty(t, ByCategory("Plumbing"))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Network", "Video", "Audio", "Automation", "Security"}, Categories())
}
