package etag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "0"},
		{"single char", "a", "61"},
		{"empty array", "[]", "b62"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(tt.in))
		})
	}
}

func TestHashIsStableAndOverflowSafe(t *testing.T) {
	body := `[{"id":"1","title":"建筑结构工","company":"中国建筑第八工程局"}]`
	first := Hash(body)
	assert.Equal(t, first, Hash(body))
	assert.NotEqual(t, first, Hash(body+" "))
	assert.NotContains(t, first, "-")
}

func TestGenerateQuotes(t *testing.T) {
	assert.Equal(t, `"b62"`, Generate([]byte("[]")))
}

func TestMatches(t *testing.T) {
	tag := `"b62"`
	assert.True(t, Matches(`"b62"`, tag))
	assert.True(t, Matches(`"zzz", "b62"`, tag))
	assert.True(t, Matches(`W/"b62"`, tag))
	assert.True(t, Matches("*", tag))
	assert.False(t, Matches("", tag))
	assert.False(t, Matches(`"b63"`, tag))
}
