package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type UserProfile struct {
	ID       int64
	FullName string
	Age      int
	secret   string
}

type Person struct {
	ID int64
}

func (Person) TableName() string {
	return "people"
}

func TestTableOf(t *testing.T) {
	t.Run("plural snake case of struct name", func(t *testing.T) {
		assert.Equal(t, "user_profiles", TableOf(UserProfile{}))
		assert.Equal(t, "user_profiles", TableOf(&UserProfile{}))
	})

	t.Run("HasTableName wins", func(t *testing.T) {
		assert.Equal(t, "people", TableOf(Person{}))
	})
}

func TestValuesOf(t *testing.T) {
	t.Run("exported fields become snake case columns", func(t *testing.T) {
		cv := ValuesOf(UserProfile{ID: 3, FullName: "amirreza", Age: 11, secret: "x"})

		assert.Equal(t, []string{"age", "full_name", "id"}, cv.Columns())
		assert.Equal(t, "amirreza", cv.Get("full_name"))
		assert.Equal(t, int64(3), cv.Get("id"))
	})

	t.Run("zero ID is skipped so the engine assigns it", func(t *testing.T) {
		cv := ValuesOf(UserProfile{FullName: "parsa", Age: 10})

		assert.False(t, cv.Has("id"))
		assert.Equal(t, []string{"age", "full_name"}, cv.Columns())
	})
}
