package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/jedib0t/go-pretty/table"
)

// Schematic prints every user table of the connected database with its
// columns, read from sqlite_master and table_info.
func (c *Connection) Schematic() error {
	rows, err := c.DB.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name;`)
	if err != nil {
		return err
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	if err := rows.Close(); err != nil {
		return err
	}

	fmt.Printf("Connection: %s\n", c.Name)
	for _, t := range tables {
		if err := c.schematicTable(t); err != nil {
			return err
		}
	}
	return nil
}

func (c *Connection) schematicTable(name string) error {
	rows, err := c.DB.Query(fmt.Sprintf("PRAGMA table_info(%s);", name))
	if err != nil {
		return err
	}
	defer rows.Close()

	fmt.Printf("Table: %s\n", name)
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Column", "Type", "Not Null", "Default", "Is Primary Key"})
	for rows.Next() {
		var (
			cid     int
			col     string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &col, &typ, &notNull, &dflt, &pk); err != nil {
			return err
		}
		w.AppendRow(table.Row{col, typ, notNull == 1, dflt.String, pk > 0})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	fmt.Println(w.Render())
	return nil
}
