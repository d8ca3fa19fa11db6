// Package storage persists benchmark results to an embedded SQLite
// database so runs can be compared after the fact.
package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Row is one (batch size, strategy) measurement.
type Row struct {
	Size       int
	Strategy   string
	AvgNs      int64
	Collisions int64 // -1 for strategies without a collision counter
}

type ResultDB struct {
	db *sql.DB
	mu sync.Mutex
}

func OpenResultDB(path string) (*ResultDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS results (
		run_at     INTEGER NOT NULL,
		size       INTEGER NOT NULL,
		strategy   TEXT    NOT NULL,
		avg_ns     INTEGER NOT NULL,
		collisions INTEGER NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("init results table: %w", err)
	}

	return &ResultDB{db: db}, nil
}

// WriteRows appends all rows inside one transaction, stamped with the
// same run time.
func (r *ResultDB) WriteRows(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO results (run_at, size, strategy, avg_ns, collisions) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	runAt := time.Now().Unix()
	for _, row := range rows {
		if _, err := stmt.Exec(runAt, row.Size, row.Strategy, row.AvgNs, row.Collisions); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// ReadRows returns every stored row, oldest run first.
func (r *ResultDB) ReadRows() ([]Row, error) {
	rows, err := r.db.Query("SELECT size, strategy, avg_ns, collisions FROM results ORDER BY run_at, size, strategy")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.Size, &row.Strategy, &row.AvgNs, &row.Collisions); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ResultDB) Close() error {
	return r.db.Close()
}
