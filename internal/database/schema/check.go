// Package schema verifies after migration that the tables the repositories
// query actually carry the columns they scan.
package schema

import (
	"context"
	"fmt"

	"hireboard/internal/database"
)

var expected = map[string][]string{
	"users":        {"id", "name", "email", "password_hash", "role", "phone", "address", "created_at", "updated_at"},
	"jobs":         {"id", "owner_id", "title", "description", "location", "salary", "deadline", "created_at", "updated_at"},
	"applications": {"id", "job_id", "applicant_id", "cover_letter", "status", "created_at", "updated_at"},
}

func Verify(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for table, cols := range expected {
		if err := ensureTableColumns(ctx, db, table, cols...); err != nil {
			return err
		}
	}
	return nil
}

func ensureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
