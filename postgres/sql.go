// Copyright 2026 Pressbox, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

// This file contains generic support code for database/sql: withTx()
// to do work in a transaction that can be retried, scanRows() to loop
// over the results of a multi-row SELECT, and null-time marshalling.

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// withTx calls some function with a database/sql transaction object.
// If f panics or returns a non-nil error, rolls the transaction back;
// otherwise commits it before returning.  Serialization failures are
// retried with a fresh transaction.  Returns the error value from f,
// or some other error related to transaction management.
func withTx(s *pgStorage, readOnly bool, f func(*sql.Tx) error) (err error) {
	var (
		tx   *sql.Tx
		done bool
	)

	defer func() {
		if tx != nil && !done {
			err2 := tx.Rollback()
			if err == nil {
				err = err2
			}
		}
	}()

	for {
		tx, err = s.db.Begin()
		if err != nil {
			return
		}

		level := "REPEATABLE READ"
		if readOnly {
			level += " READ ONLY"
		}
		_, err = tx.Exec("SET TRANSACTION ISOLATION LEVEL " + level)
		if err != nil {
			return
		}

		err = f(tx)
		if err == nil {
			err = tx.Commit()
			done = true
		}

		// Retry the whole transaction on a serialization error
		if pqerr, ok := err.(*pq.Error); ok && pqerr.Code == "40001" {
			err = tx.Rollback()
			if err == sql.ErrTxDone {
				err = nil
			} else if err != nil {
				return
			}
			tx = nil
			continue
		}

		break
	}
	return
}

// scanRows runs over an SQL result set and calls a function for each
// row.  The callback function should only call the Scan() method on
// the provided Rows object; this function takes care of advancing
// through the list of rows and closing the iterator as required.
func scanRows(rows *sql.Rows, f func() error) (err error) {
	var done bool
	defer func() {
		if !done {
			err2 := rows.Close()
			if err == nil {
				err = err2
			}
		}
	}()

	for rows.Next() {
		err = f()
		if err != nil {
			return
		}
	}
	done = true
	err = rows.Err()
	return
}

// nullTimeToTime decodes a pq-specific NullTime to an optional time,
// mapping a null value to nil.
func nullTimeToTime(nt pq.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}
