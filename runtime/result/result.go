// Package result provides typed access to raw query results. A
// TypedResult pairs a row decoder with the driver's raw result handle
// and converts untyped cells into values of the decoder's target type,
// re-validating the row shape on every access. This is the trust
// boundary between foreign result data and statically typed rows:
// column counts, NULLs and backend error states are never guessed at.
package result

import (
	"strconv"
	"strings"

	"github.com/satishbabariya/rowset-go/runtime/decode"
	"github.com/satishbabariya/rowset-go/runtime/driver"
)

// TypedResult couples a row decoder with a raw result handle. It owns
// neither: the handle is borrowed and must outlive every operation on
// the TypedResult, which the surrounding session layer guarantees by
// releasing results only after use. All operations are read-only, so a
// TypedResult may be shared across goroutines without locking.
type TypedResult[T any] struct {
	dec decode.Decoder[T]
	res driver.Result
}

// New pairs a decoder with a raw result handle. The decoder's width is
// checked against the result on every row access, not here; a result
// whose shape never matches simply fails every access.
func New[T any](dec decode.Decoder[T], res driver.Result) TypedResult[T] {
	return TypedResult[T]{dec: dec, res: res}
}

// liftResult applies a raw-handle-reading function to the borrowed
// handle. The metadata accessors are all instances of it.
func liftResult[T, U any](r TypedResult[T], f func(driver.Result) U) U {
	return f(r.res)
}

// rawField carries one optional metadata field read off the handle.
type rawField struct {
	value []byte
	ok    bool
}

// Ntuples reports the number of rows in the result.
func (r TypedResult[T]) Ntuples() int {
	return liftResult(r, driver.Result.Ntuples)
}

// Nfields reports the number of columns per row.
func (r TypedResult[T]) Nfields() int {
	return liftResult(r, driver.Result.Nfields)
}

// Status reports the backend outcome for the statement.
func (r TypedResult[T]) Status() driver.Status {
	return liftResult(r, driver.Result.Status)
}

// Result returns the borrowed raw handle.
func (r TypedResult[T]) Result() driver.Result {
	return r.res
}

// CmdStatus returns the command tag for the statement, such as
// "SELECT 3". A driver that reports no tag at all (as opposed to an
// empty one) indicates a protocol-level anomaly, surfaced as a
// ConnectionError.
func (r TypedResult[T]) CmdStatus() (string, error) {
	field := liftResult(r, func(res driver.Result) rawField {
		v, ok := res.CmdStatus()
		return rawField{value: v, ok: ok}
	})
	if !field.ok {
		return "", &ConnectionError{Call: "CmdStatus"}
	}
	return string(field.value), nil
}

// CmdTuples returns the number of rows affected by a data-modifying
// command. Commands that do not report a count, and counts that fail to
// parse as an integer, both yield nil. Only a driver reporting no value
// at all is an error.
func (r TypedResult[T]) CmdTuples() (*int64, error) {
	field := liftResult(r, func(res driver.Result) rawField {
		v, ok := res.CmdTuples()
		return rawField{value: v, ok: ok}
	})
	if !field.ok {
		return nil, &ConnectionError{Call: "CmdTuples"}
	}
	trimmed := strings.TrimSpace(string(field.value))
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil, nil
	}
	return &n, nil
}

// GetRow decodes the row at index (zero-based). The row's column count
// is validated against the decoder width before any cell is read.
func (r TypedResult[T]) GetRow(index int) (T, error) {
	return r.decodeRow("GetRow", index)
}

// NextRow supports external lazy iteration: given the total row count
// (obtained once from Ntuples) and the current index, it returns nil
// once index reaches total, otherwise the decoded row paired with the
// next index to pass back in. Each call is self-contained, so iteration
// is restartable from any index and safe under concurrent reads.
func (r TypedResult[T]) NextRow(total, index int) (*T, int, error) {
	if index >= total {
		return nil, index, nil
	}
	value, err := r.decodeRow("NextRow", index)
	if err != nil {
		return nil, index, err
	}
	return &value, index + 1, nil
}

// GetRows decodes every row in order. The first failing row aborts the
// whole operation; no partial slice is returned.
func (r TypedResult[T]) GetRows() ([]T, error) {
	total := r.res.Ntuples()
	rows := make([]T, 0, total)
	for index := 0; index < total; index++ {
		value, err := r.decodeRow("GetRows", index)
		if err != nil {
			return nil, err
		}
		rows = append(rows, value)
	}
	return rows, nil
}

// FirstRow decodes row 0, or returns nil when the result has no rows.
func (r TypedResult[T]) FirstRow() (*T, error) {
	if r.res.Ntuples() <= 0 {
		return nil, nil
	}
	value, err := r.decodeRow("FirstRow", 0)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// decodeRow reads exactly one row's cells and runs the decoder over
// them. The bounds and shape checks happen here, per access: the shape
// contract is between the decoder and each row, and checking lazily
// keeps incremental consumption cheap when callers stop early.
func (r TypedResult[T]) decodeRow(op string, index int) (T, error) {
	var zero T

	total := r.res.Ntuples()
	if index < 0 || index >= total {
		return zero, &RowsOutOfBoundsError{Op: op, Requested: index, Total: total}
	}

	width := r.dec.Width()
	actual := r.res.Nfields()
	if actual != width {
		return zero, &ColumnShapeMismatchError{Op: op, Expected: width, Actual: actual}
	}

	cells := make([]driver.Cell, actual)
	for col := range cells {
		cells[col] = r.res.Cell(index, col)
	}

	value, err := r.dec.Decode(cells)
	if err != nil {
		return zero, &RowDecodeError{Op: op, Message: err.Error()}
	}
	return value, nil
}
