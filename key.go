package sqlite

import (
	"database/sql"
	"fmt"
)

// FetchGeneratedKey reads the auto-generated key from rows and closes rows on
// every path. Returns -1 when the cursor has no rows. A read or close failure
// propagates as ErrDataAccess, after the cursor has still been closed.
func FetchGeneratedKey(rows *sql.Rows) (key int64, err error) {
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing generated key cursor: %v", ErrDataAccess, cerr)
		}
	}()

	if !rows.Next() {
		if rerr := rows.Err(); rerr != nil {
			return -1, fmt.Errorf("%w: reading generated key: %v", ErrDataAccess, rerr)
		}
		return -1, nil
	}
	if serr := rows.Scan(&key); serr != nil {
		return -1, fmt.Errorf("%w: scanning generated key: %v", ErrDataAccess, serr)
	}
	return key, nil
}
