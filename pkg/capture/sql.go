package capture

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // registers the "mysql" driver
)

// SQLSource runs SHOW ENGINE INNODB STATUS over a database connection.
type SQLSource struct {
	DB *sql.DB
}

// OpenSQL opens a mysql connection pool for dsn
// (e.g. "root:secret@tcp(localhost:3306)/"). The caller closes the returned DB.
func OpenSQL(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, &Error{Kind: KindQuery, Source: "mysql", Err: errors.New("dsn is required")}
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, &Error{Kind: KindQuery, Source: "mysql", Err: err}
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Minute)
	return db, nil
}

// Acquire queries the server and captures the Status column.
// The result set has one row of (Type, Name, Status).
func (s SQLSource) Acquire(ctx context.Context) (Capture, error) {
	if s.DB == nil {
		return Capture{}, &Error{Kind: KindQuery, Source: "mysql", Err: errors.New("db is required")}
	}

	rows, err := s.DB.QueryContext(ctx, StatusQuery)
	if err != nil {
		return Capture{}, &Error{Kind: KindQuery, Source: "mysql", Err: err}
	}
	defer rows.Close()

	var chunks []string
	for rows.Next() {
		var typ, name, status sql.NullString
		if err := rows.Scan(&typ, &name, &status); err != nil {
			return Capture{}, &Error{Kind: KindQuery, Source: "mysql", Err: fmt.Errorf("scan status row: %w", err)}
		}
		if status.Valid {
			chunks = append(chunks, splitLines(status.String)...)
		}
	}
	if err := rows.Err(); err != nil {
		return Capture{}, &Error{Kind: KindQuery, Source: "mysql", Err: err}
	}
	return Capture{Origin: "mysql", Chunks: chunks}, nil
}
