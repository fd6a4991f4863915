package sqlite

import (
	"reflect"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

// HasTableName defines how a type overrides the table name inferred from its
// struct name.
type HasTableName interface {
	TableName() string
}

var pluralizer = pluralize.NewClient()

// TableOf returns the table name for a struct: the pluralized snake_case of
// its type name, unless the type implements HasTableName.
func TableOf(v any) string {
	if ht, ok := v.(HasTableName); ok {
		return ht.TableName()
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return pluralizer.Plural(strcase.ToSnake(t.Name()))
}

// ValuesOf builds a ContentValues from the exported fields of a struct,
// columns named by the snake_case of the field name. A field named ID with a
// zero value is skipped so the engine assigns the rowid.
func ValuesOf(v any) *ContentValues {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	t := rv.Type()

	cv := NewContentValues()
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		if ft.PkgPath != "" {
			continue
		}
		if ft.Name == "ID" && rv.Field(i).IsZero() {
			continue
		}
		cv.Put(strcase.ToSnake(ft.Name), rv.Field(i).Interface())
	}
	return cv
}
