package nanoid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLower(t *testing.T) {
	assert.Len(t, Lower(), defaultSize)
	assert.Len(t, Lower(13), 13)
	assert.Len(t, Lower(0), defaultSize)

	id := Lower(64)
	assert.Empty(t, strings.Trim(id, lowerDigits), "unexpected characters in %q", id)
	assert.NotEqual(t, Lower(), Lower())
}
