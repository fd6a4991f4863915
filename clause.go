package sqlite

import (
	"fmt"
	"strings"
)

func questionMarks(n int) []string {
	output := make([]string, 0, n)
	for i := 0; i < n; i++ {
		output = append(output, "?")
	}
	return output
}

// columnValuesClause builds the '(columns...) VALUES (?, ...)' clause used in
// INSERT statements. Columns are emitted in lexicographic order and the
// returned values follow the exact same order.
func columnValuesClause(values *ContentValues) (string, []any) {
	if values == nil || values.Size() == 0 {
		return "DEFAULT VALUES", nil
	}
	cols := values.Columns()
	return fmt.Sprintf("(%s) VALUES (%s)",
		strings.Join(cols, ", "),
		strings.Join(questionMarks(len(cols)), ", "),
	), values.sortedValues()
}

// columnAssignmentsClause builds the 'col1=?, col2=?' clause used in UPDATE
// statements, same ordering discipline as columnValuesClause. An empty map
// yields an empty clause; the engine rejects the resulting statement.
func columnAssignmentsClause(values *ContentValues) (string, []any) {
	if values == nil || values.Size() == 0 {
		return "", nil
	}
	var pairs []string
	for _, col := range values.Columns() {
		pairs = append(pairs, col+"=?")
	}
	return strings.Join(pairs, ", "), values.sortedValues()
}

// BuildWhereClause substitutes each (?) placeholder in selection with the
// corresponding arg inlined as a quoted literal. The scan is a plain character
// scan: a ? inside a quoted string is indistinguishable from a placeholder.
// Args are not escaped, they must already be safe to inline.
//
// A nil args slice returns selection unchanged. A nil element fails with
// ErrInvalidArgument; a count mismatch between placeholders and args fails
// with ErrMalformedWhere.
func BuildWhereClause(selection string, args []any) (string, error) {
	if args == nil {
		return selection, nil
	}

	placeholders := strings.Count(selection, "?")
	where := selection
	for i, arg := range args {
		if arg == nil {
			return "", fmt.Errorf("%w: the bind value at index %d is null", ErrInvalidArgument, i)
		}
		where = strings.Replace(where, "?", fmt.Sprintf("'%v'", arg), 1)
	}
	if placeholders != len(args) {
		return "", fmt.Errorf("%w: count of args does not match count of (?) placeholders", ErrMalformedWhere)
	}

	return where, nil
}
