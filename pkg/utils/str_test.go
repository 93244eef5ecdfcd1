package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitByMultipleDelimiters(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitByMultipleDelimiters("a,b;c", ",", ";"))
	assert.Equal(t, []string{"a", "b=c"}, SplitByMultipleDelimiters("a, b=c", ",", ";"))
	assert.Equal(t, []string{"10.0.0.1:6379", "10.0.0.2:6379"}, SplitByMultipleDelimiters(" 10.0.0.1:6379 ;; 10.0.0.2:6379 ", ",", ";"))
	assert.Equal(t, []string{"a,b"}, SplitByMultipleDelimiters("a,b"))
	assert.Empty(t, SplitByMultipleDelimiters("", ","))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty("", ""))
	assert.Equal(t, "", FirstNonEmpty())
}
