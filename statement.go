package sqlite

import (
	"fmt"
	"strings"
)

// ConflictAlgorithm selects the OR ... conflict resolution applied to an
// INSERT when a constraint violation occurs.
type ConflictAlgorithm int

const (
	ConflictNone ConflictAlgorithm = iota
	ConflictRollback
	ConflictAbort
	ConflictFail
	ConflictIgnore
	ConflictReplace
)

func (c ConflictAlgorithm) fragment() string {
	switch c {
	case ConflictNone:
		return ""
	case ConflictRollback:
		return "OR ROLLBACK "
	case ConflictAbort:
		return "OR ABORT "
	case ConflictFail:
		return "OR FAIL "
	case ConflictIgnore:
		return "OR IGNORE "
	case ConflictReplace:
		return "OR REPLACE "
	default:
		panic(fmt.Sprintf("unknown conflict algorithm: %d", c))
	}
}

type Insert struct {
	Into       string
	Values     *ContentValues
	OnConflict ConflictAlgorithm
}

// ToSql returns the INSERT statement and the values to bind to its
// placeholders, one per ContentValues entry in column order.
func (i Insert) ToSql() (string, []any) {
	var sb strings.Builder

	sb.WriteString("INSERT ")
	sb.WriteString(i.OnConflict.fragment())
	sb.WriteString("INTO ")
	sb.WriteString(i.Into)
	sb.WriteString(" ")

	clause, args := columnValuesClause(i.Values)
	sb.WriteString(clause)
	sb.WriteString(";")

	return sb.String(), args
}

type Update struct {
	Table     string
	Values    *ContentValues
	Where     string
	WhereArgs []any
}

// ToSql returns the UPDATE statement and the values to bind. Only the SET
// assignments are bound; where args are inlined as quoted literals by
// BuildWhereClause.
func (u Update) ToSql() (string, []any, error) {
	var sb strings.Builder

	sb.WriteString("UPDATE ")
	sb.WriteString(u.Table)
	sb.WriteString(" SET ")

	clause, args := columnAssignmentsClause(u.Values)
	sb.WriteString(clause)

	if u.Where != "" {
		where, err := BuildWhereClause(u.Where, u.WhereArgs)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	sb.WriteString(";")

	return sb.String(), args, nil
}

type Delete struct {
	From      string
	Where     string
	WhereArgs []any
}

// ToSql returns the DELETE statement text. All where args are inlined, so
// there is no bind value list.
func (d Delete) ToSql() (string, error) {
	var sb strings.Builder

	sb.WriteString("DELETE FROM ")
	sb.WriteString(d.From)

	if d.Where != "" {
		where, err := BuildWhereClause(d.Where, d.WhereArgs)
		if err != nil {
			return "", err
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	sb.WriteString(";")

	return sb.String(), nil
}
