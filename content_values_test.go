package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentValues(t *testing.T) {
	t.Run("put get and overwrite", func(t *testing.T) {
		cv := NewContentValues()
		cv.Put("name", "amirreza")
		cv.Put("name", "parsa")

		assert.Equal(t, 1, cv.Size())
		assert.Equal(t, "parsa", cv.Get("name"))
		assert.True(t, cv.Has("name"))
		assert.False(t, cv.Has("age"))
	})

	t.Run("columns are sorted", func(t *testing.T) {
		cv := NewContentValues().
			Put("zip", "123").
			Put("age", 10).
			Put("name", "amirreza")

		assert.Equal(t, []string{"age", "name", "zip"}, cv.Columns())
		assert.Equal(t, []any{10, "amirreza", "123"}, cv.sortedValues())
	})

	t.Run("remove", func(t *testing.T) {
		cv := ContentValuesFromMap(map[string]any{"a": 1, "b": 2})
		cv.Remove("a")

		assert.Equal(t, 1, cv.Size())
		assert.Equal(t, []string{"b"}, cv.Columns())
	})
}
