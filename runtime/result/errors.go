package result

import (
	"errors"
	"fmt"

	"github.com/satishbabariya/rowset-go/runtime/driver"
)

// Error kinds for typed result operations.
var (
	// ErrRowsOutOfBounds is returned when a row index exceeds the rows
	// available in the result.
	ErrRowsOutOfBounds = errors.New("row index out of bounds")

	// ErrColumnShapeMismatch is returned when a row's column count
	// disagrees with the decoder's expected width.
	ErrColumnShapeMismatch = errors.New("column count mismatch")

	// ErrRowDecode is returned when the row decoder rejects a row's
	// cell contents.
	ErrRowDecode = errors.New("row decode failed")

	// ErrConnection is returned when the driver reports no value for a
	// field it must always supply, which signals a broken connection
	// or driver rather than a SQL-level failure.
	ErrConnection = errors.New("database connection is unusable")

	// ErrSQL is returned when the backend reports a structured SQL
	// failure for the statement.
	ErrSQL = errors.New("backend reported an error")
)

// RowsOutOfBoundsError reports a row access past the end of the result.
type RowsOutOfBoundsError struct {
	Op        string
	Requested int
	Total     int
}

// Error implements the error interface.
func (e *RowsOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: row %d out of bounds (%d rows)", e.Op, e.Requested, e.Total)
}

// Is reports whether the error matches ErrRowsOutOfBounds.
func (e *RowsOutOfBoundsError) Is(target error) bool {
	return target == ErrRowsOutOfBounds
}

// ColumnShapeMismatchError reports a result whose column count does not
// match the decoder it was paired with, which means the statement and
// the decoder were built for different row shapes.
type ColumnShapeMismatchError struct {
	Op       string
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *ColumnShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: result has %d columns, decoder expects %d", e.Op, e.Actual, e.Expected)
}

// Is reports whether the error matches ErrColumnShapeMismatch.
func (e *ColumnShapeMismatchError) Is(target error) bool {
	return target == ErrColumnShapeMismatch
}

// RowDecodeError reports a row the decoder could not interpret. Message
// is the decoder's diagnostic, surfaced verbatim.
type RowDecodeError struct {
	Op      string
	Message string
}

// Error implements the error interface.
func (e *RowDecodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Is reports whether the error matches ErrRowDecode.
func (e *RowDecodeError) Is(target error) bool {
	return target == ErrRowDecode
}

// ConnectionError reports a driver call that returned no value where
// the backend protocol guarantees one. Call names the failing accessor.
type ConnectionError struct {
	Call string
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: driver returned no value", e.Call)
}

// Is reports whether the error matches ErrConnection.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

// SQLError is the structured failure the backend reported for the
// statement. Code is the SQLSTATE (or the driver's closest equivalent)
// and is preserved for programmatic matching.
type SQLError struct {
	Status  driver.Status
	Code    string
	Message string
}

// Error implements the error interface.
func (e *SQLError) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Status, e.Code, e.Message)
}

// Is reports whether the error matches ErrSQL.
func (e *SQLError) Is(target error) bool {
	return target == ErrSQL
}

// IsRowsOutOfBounds checks if an error is a row bounds violation.
func IsRowsOutOfBounds(err error) bool {
	return errors.Is(err, ErrRowsOutOfBounds)
}

// IsColumnShapeMismatch checks if an error is a row shape mismatch.
func IsColumnShapeMismatch(err error) bool {
	return errors.Is(err, ErrColumnShapeMismatch)
}

// IsRowDecode checks if an error is a decode failure.
func IsRowDecode(err error) bool {
	return errors.Is(err, ErrRowDecode)
}

// IsConnection checks if an error signals an unusable connection.
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsSQL checks if an error is a backend-reported SQL failure.
func IsSQL(err error) bool {
	return errors.Is(err, ErrSQL)
}

// AsSQLError extracts the structured SQL failure from an error chain.
func AsSQLError(err error) (*SQLError, bool) {
	var sqlErr *SQLError
	ok := errors.As(err, &sqlErr)
	return sqlErr, ok
}
