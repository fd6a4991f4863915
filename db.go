package sqlite

import (
	"context"
	"database/sql"

	//Drivers
	_ "github.com/mattn/go-sqlite3"
)

type ConnectionConfig struct {
	Name     string
	Path     string
	DB       *sql.DB
	LogLevel LogLevel
}

// Connection wraps a *sql.DB and executes statements built by this package.
type Connection struct {
	Name   string
	DB     *sql.DB
	logger Logger
}

func Open(conf ConnectionConfig) (*Connection, error) {
	db := conf.DB
	if db == nil {
		var err error
		db, err = sql.Open("sqlite3", conf.Path)
		if err != nil {
			return nil, err
		}
	}
	logger, err := newLogger(conf.LogLevel)
	if err != nil {
		return nil, err
	}
	name := conf.Name
	if name == "" {
		name = "default"
	}
	return &Connection{Name: name, DB: db, logger: logger}, nil
}

func (c *Connection) Close() error {
	return c.DB.Close()
}

// Insert builds and executes an INSERT for the given values, then reads back
// the generated rowid. Returns -1 when the engine reports no generated key.
// last_insert_rowid() is per-connection state, so the INSERT and the readback
// are pinned to a single pool connection.
func (c *Connection) Insert(table string, values *ContentValues, onConflict ConflictAlgorithm) (int64, error) {
	q, args := Insert{Into: table, Values: values, OnConflict: onConflict}.ToSql()
	c.logger.Debugf("exec: %s args: %v", q, args)

	ctx := context.Background()
	conn, err := c.DB.Conn(ctx)
	if err != nil {
		return -1, err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, q, args...); err != nil {
		return -1, err
	}

	rows, err := conn.QueryContext(ctx, "SELECT last_insert_rowid();")
	if err != nil {
		return -1, err
	}
	return FetchGeneratedKey(rows)
}

// Update builds and executes an UPDATE, returns affected row count.
func (c *Connection) Update(table string, values *ContentValues, where string, whereArgs []any) (int64, error) {
	q, args, err := Update{Table: table, Values: values, Where: where, WhereArgs: whereArgs}.ToSql()
	if err != nil {
		return 0, err
	}
	c.logger.Debugf("exec: %s args: %v", q, args)

	res, err := c.DB.Exec(q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete builds and executes a DELETE, returns affected row count.
func (c *Connection) Delete(table string, where string, whereArgs []any) (int64, error) {
	q, err := Delete{From: table, Where: where, WhereArgs: whereArgs}.ToSql()
	if err != nil {
		return 0, err
	}
	c.logger.Debugf("exec: %s", q)

	res, err := c.DB.Exec(q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
