package common

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlices(t *testing.T) {
	s := []int{1, 2, 3, 4}

	assert.Equal(t, []string{"1", "2", "3", "4"}, Map(s, strconv.Itoa))
	assert.Equal(t, []int{2, 4}, Filter(s, func(v int) bool { return v%2 == 0 }))
	assert.Nil(t, Filter(s, func(int) bool { return false }))
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 100))
	assert.True(t, IsInRange(0.0, 100.0, 100.0))
	assert.False(t, IsInRange(0.0, 100.5, 100.0))
	assert.False(t, IsInRange(1, 0, 2))
}

func TestPackage(t *testing.T) {
	tests := []struct {
		name, pkg string
	}{
		{"a/b/C", "a/b/"},
		{"C", ""},
		{"a/C$1", "a/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pkg, Package(tt.name))
		})
	}
}
