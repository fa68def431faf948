package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Jane Doe", DisplayName("jane_doe"))
	assert.Equal(t, "Bob", DisplayName("bob"))
	assert.Equal(t, "Mary Ann Smith", DisplayName("mary_ann_smith"))
}

func TestDisplayName_EdgeCases(t *testing.T) {
	assert.Equal(t, "", DisplayName(""))
	assert.Equal(t, "", DisplayName("___"))
	assert.Equal(t, "Jane Doe", DisplayName("_jane__doe_"))
	// symbol-only words pass through unchanged
	assert.Equal(t, "- -", DisplayName("-_-"))
	assert.Equal(t, "J", DisplayName("j"))
}
