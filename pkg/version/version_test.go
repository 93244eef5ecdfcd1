package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsVersion(t *testing.T) {
	assert.Equal(t, Version, Get())
}

func TestVersionNotEmptyAndPrefixed(t *testing.T) {
	s := Get()
	assert.NotEmpty(t, s)
	assert.Equal(t, byte('v'), s[0])
	assert.NotContains(t, s, "\n")
}

func TestString(t *testing.T) {
	s := String("phongtro")
	assert.Contains(t, s, "phongtro "+Version)
	assert.Contains(t, s, runtime.GOOS)
}
