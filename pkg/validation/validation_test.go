package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title   string `json:"title" validate:"required"`
	Salary  string `json:"salary" validate:"required"`
	Content string `json:"content" validate:"max=5"`
}

func TestFirstMissingFieldUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Struct(sample{Title: "x"})
	require.Error(t, err)

	field, ok := FirstMissingField(err)
	assert.True(t, ok)
	assert.Equal(t, "salary", field)
}

func TestFirstMissingFieldReportsDeclarationOrder(t *testing.T) {
	err := New().Struct(sample{})
	field, ok := FirstMissingField(err)
	assert.True(t, ok)
	assert.Equal(t, "title", field)
}

func TestFormatValidationErrors(t *testing.T) {
	err := New().Struct(sample{Title: "a", Salary: "b", Content: "too long"})
	require.Error(t, err)

	_, ok := FirstMissingField(err)
	assert.False(t, ok)
	assert.Equal(t, []string{"Content must be at most 5 characters"}, FormatValidationErrors(err))
}
