package sqlite

import "sort"

// ContentValues is a set of column name/value pairs, unique by column name.
// Iteration is always in lexicographic column order so that emitted
// placeholders and the bind value list line up positionally.
type ContentValues struct {
	values map[string]any
}

func NewContentValues() *ContentValues {
	return &ContentValues{values: map[string]any{}}
}

func ContentValuesFromMap(m map[string]any) *ContentValues {
	cv := NewContentValues()
	for k, v := range m {
		cv.Put(k, v)
	}
	return cv
}

// Put sets the value for a column, overwriting any previous value.
func (cv *ContentValues) Put(column string, value any) *ContentValues {
	cv.values[column] = value
	return cv
}

func (cv *ContentValues) Get(column string) any {
	return cv.values[column]
}

func (cv *ContentValues) Has(column string) bool {
	_, ok := cv.values[column]
	return ok
}

func (cv *ContentValues) Remove(column string) {
	delete(cv.values, column)
}

func (cv *ContentValues) Size() int {
	return len(cv.values)
}

// Columns returns the column names sorted lexicographically.
func (cv *ContentValues) Columns() []string {
	cols := make([]string, 0, len(cv.values))
	for c := range cv.values {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// sortedValues returns the values in the same order Columns reports.
func (cv *ContentValues) sortedValues() []any {
	cols := cv.Columns()
	vals := make([]any, 0, len(cols))
	for _, c := range cols {
		vals = append(vals, cv.values[c])
	}
	return vals
}
