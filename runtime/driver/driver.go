// Package driver defines the raw result handle produced by the native
// database drivers: a fully materialized, immutable view of one executed
// statement's rows, cells and status metadata. Everything above this
// package (decoding, typed access) treats the handle as read-only.
package driver

// Status is the backend-reported outcome for the statement that produced
// a result. It is fixed once the handle is built and never changes.
type Status int

const (
	// StatusEmptyQuery means the statement was empty.
	StatusEmptyQuery Status = iota
	// StatusCommandOK means the command succeeded without producing rows.
	StatusCommandOK
	// StatusTuplesOK means the command succeeded and rows are available.
	StatusTuplesOK
	// StatusBadResponse means the driver could not understand the backend.
	StatusBadResponse
	// StatusNonfatalError means the backend reported a notice-level error.
	StatusNonfatalError
	// StatusFatalError means the statement failed.
	StatusFatalError
)

// String returns the libpq-style name for the status.
func (s Status) String() string {
	switch s {
	case StatusEmptyQuery:
		return "EMPTY_QUERY"
	case StatusCommandOK:
		return "COMMAND_OK"
	case StatusTuplesOK:
		return "TUPLES_OK"
	case StatusBadResponse:
		return "BAD_RESPONSE"
	case StatusNonfatalError:
		return "NONFATAL_ERROR"
	case StatusFatalError:
		return "FATAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// FieldCode identifies one diagnostic field of an error result.
type FieldCode byte

// FieldSQLState is the SQLSTATE code for the error, per the SQL standard.
// The value matches libpq's PG_DIAG_SQLSTATE.
const FieldSQLState FieldCode = 'C'

// Cell is one field of one row. A cell is either present, carrying the
// backend's raw bytes for the value, or SQL NULL. Present-and-empty is
// distinct from NULL.
type Cell struct {
	Value []byte
	Null  bool
}

// NullCell returns a SQL NULL cell.
func NullCell() Cell {
	return Cell{Null: true}
}

// TextCell returns a present cell holding s.
func TextCell(s string) Cell {
	return Cell{Value: []byte(s)}
}

// Result is the raw handle for one executed statement. Implementations
// are immutable after construction and safe for concurrent reads. The
// handle owns its data; callers must not mutate returned byte slices.
//
// Accessors returning (value, bool) report false when the driver has no
// value at all for the field, which is different from an empty value.
type Result interface {
	// Ntuples reports the number of rows in the result.
	Ntuples() int
	// Nfields reports the number of columns per row.
	Nfields() int
	// Cell returns the cell at (row, col). Indexes outside the
	// Ntuples/Nfields bounds return a NULL cell.
	Cell(row, col int) Cell
	// Status reports the backend outcome for the statement.
	Status() Status
	// CmdStatus returns the command tag, such as "SELECT 3".
	CmdStatus() ([]byte, bool)
	// CmdTuples returns the affected-row count reported by the backend,
	// as raw text. Commands that do not report one return an empty value.
	CmdTuples() ([]byte, bool)
	// ErrorMessage returns the human-readable error message for a
	// failed statement.
	ErrorMessage() ([]byte, bool)
	// ErrorField returns one diagnostic field of a failed statement.
	ErrorField(code FieldCode) ([]byte, bool)
}
