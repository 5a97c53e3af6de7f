package driver

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// FromRows materializes a database/sql row set into a raw handle. The
// rows are fully consumed and closed; cell values are copied, so the
// handle stays valid after the connection is returned to the pool.
// NULL is detected by scanning every column through *[]byte, which
// database/sql sets to nil for SQL NULL and to a non-nil copy otherwise.
func FromRows(rows *sql.Rows) (*StaticResult, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var data [][]Cell
	for rows.Next() {
		raws := make([][]byte, len(columns))
		dests := make([]interface{}, len(columns))
		for i := range raws {
			dests[i] = &raws[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}

		cells := make([]Cell, len(columns))
		for i, raw := range raws {
			if raw == nil {
				cells[i] = NullCell()
			} else {
				cells[i] = Cell{Value: raw}
			}
		}
		data = append(data, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result rows: %w", err)
	}

	res := NewStatic(StatusTuplesOK, data).WithNfields(len(columns))
	res.WithColumns(columns)
	res.WithCmdStatus(fmt.Sprintf("SELECT %d", len(data)))
	return res, nil
}

// FromExec builds a handle for a data-modifying command. The tag is the
// command word reported back to callers, such as "UPDATE". Drivers that
// cannot report an affected-row count yield an empty CmdTuples value,
// which typed accessors treat as "not reported" rather than an error.
func FromExec(res sql.Result, tag string) *StaticResult {
	out := NewStatic(StatusCommandOK, nil)
	affected, err := res.RowsAffected()
	if err != nil {
		out.WithCmdStatus(tag)
		out.WithCmdTuples("")
		return out
	}
	out.WithCmdStatus(fmt.Sprintf("%s %d", tag, affected))
	out.WithCmdTuples(strconv.FormatInt(affected, 10))
	return out
}

// FromError builds an error-state handle from a driver error. Backend
// errors from the supported drivers carry a SQLSTATE (or the closest
// native equivalent) plus the backend message; anything else produces a
// handle with no diagnostic fields, which the classifier surfaces as a
// broken-connection condition rather than a SQL failure.
func FromError(err error) *StaticResult {
	res := NewStatic(StatusFatalError, nil)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return res.WithError(string(pqErr.Code), pqErr.Message)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		state := string(myErr.SQLState[:])
		if state == "\x00\x00\x00\x00\x00" {
			// Older servers omit the state; HY000 is the generic one.
			state = "HY000"
		}
		return res.WithError(state, myErr.Message)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		// SQLite has no SQLSTATE; the numeric result code fills the
		// diagnostic field so callers can still match programmatically.
		return res.WithError(strconv.Itoa(int(liteErr.Code)), liteErr.Error())
	}

	return res
}
