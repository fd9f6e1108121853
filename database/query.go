package database

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// FetchMode controls how much of a result set a query pulls back.
type FetchMode int

const (
	FetchAll FetchMode = iota
	FetchOne
	FetchMany
)

// Row is one result row keyed by column name. Search results flow to the
// client as-is, so values are decoded into plain strings and nils rather
// than driver-specific types.
type Row map[string]interface{}

// MySQL server error numbers the layers above care about.
const (
	mysqlDuplicateEntry  = 1062
	mysqlForeignKeyNoRef = 1452
)

// IsDuplicateEntry reports whether err is a unique-key violation.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// IsForeignKeyViolation reports whether err is a failed foreign key
// reference, e.g. a purchase against a flight that does not exist.
func IsForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlForeignKeyNoRef
}

// RunQuery executes a finished (sql, params) pair and decodes the result
// per the fetch mode. size only applies to FetchMany.
func (d Datasource) RunQuery(ctx context.Context, sqlText string, args []interface{}, mode FetchMode, size int) ([]Row, error) {
	rows, err := d.Conn.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, errors.Wrap(err, "executing query")
	}
	defer rows.Close()

	limit := -1
	switch mode {
	case FetchOne:
		limit = 1
	case FetchMany:
		limit = size
	}
	return scanRows(rows, limit)
}

func scanRows(rows *sql.Rows, limit int) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "reading result columns")
	}

	var result []Row
	for rows.Next() {
		if limit >= 0 && len(result) >= limit {
			break
		}
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "scanning result row")
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = decodeValue(values[i])
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating result rows")
	}
	return result, nil
}

// decodeValue turns driver byte slices into strings so rows serialize to
// JSON cleanly.
func decodeValue(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
