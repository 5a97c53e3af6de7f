// Package decode turns raw result cells into typed Go values. A Decoder
// is a pure function over one fixed-width row of nullable byte cells;
// it never touches the database and has no state, so decoders can be
// built once and shared freely.
package decode

import (
	"fmt"
	"strconv"
	"time"

	"github.com/satishbabariya/rowset-go/runtime/driver"
)

// Decoder decodes one row of raw cells into a value of type T. Width
// reports the exact number of cells Decode consumes; callers validate
// the row's actual column count against it before decoding.
type Decoder[T any] interface {
	Width() int
	Decode(cells []driver.Cell) (T, error)
}

// Value decodes a single cell. Column decoders for non-nullable types
// reject SQL NULL; wrap them with Nullable to accept it.
type Value[T any] func(cell driver.Cell) (T, error)

// Text decodes a cell as a string.
func Text() Value[string] {
	return func(cell driver.Cell) (string, error) {
		if cell.Null {
			return "", errNull
		}
		return string(cell.Value), nil
	}
}

// Bytes decodes a cell as a raw byte slice. The slice is copied so the
// caller may retain it independently of the result handle.
func Bytes() Value[[]byte] {
	return func(cell driver.Cell) ([]byte, error) {
		if cell.Null {
			return nil, errNull
		}
		out := make([]byte, len(cell.Value))
		copy(out, cell.Value)
		return out, nil
	}
}

// Int64 decodes a cell as a base-10 integer.
func Int64() Value[int64] {
	return func(cell driver.Cell) (int64, error) {
		if cell.Null {
			return 0, errNull
		}
		n, err := strconv.ParseInt(string(cell.Value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", cell.Value)
		}
		return n, nil
	}
}

// Float64 decodes a cell as a floating-point number.
func Float64() Value[float64] {
	return func(cell driver.Cell) (float64, error) {
		if cell.Null {
			return 0, errNull
		}
		f, err := strconv.ParseFloat(string(cell.Value), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid float %q", cell.Value)
		}
		return f, nil
	}
}

// Bool decodes a cell as a boolean, accepting the spellings the
// supported backends emit ("t"/"f", "true"/"false", "1"/"0").
func Bool() Value[bool] {
	return func(cell driver.Cell) (bool, error) {
		if cell.Null {
			return false, errNull
		}
		switch string(cell.Value) {
		case "t", "true", "TRUE", "1":
			return true, nil
		case "f", "false", "FALSE", "0":
			return false, nil
		default:
			return false, fmt.Errorf("invalid boolean %q", cell.Value)
		}
	}
}

// timeLayouts are the text formats the supported backends use for
// timestamps and dates, most specific first.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
	"15:04:05.999999999",
}

// Time decodes a cell as a timestamp or date.
func Time() Value[time.Time] {
	return func(cell driver.Cell) (time.Time, error) {
		if cell.Null {
			return time.Time{}, errNull
		}
		s := string(cell.Value)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
}

// Nullable lifts a column decoder to accept SQL NULL, decoding it to a
// nil pointer.
func Nullable[T any](v Value[T]) Value[*T] {
	return func(cell driver.Cell) (*T, error) {
		if cell.Null {
			return nil, nil
		}
		out, err := v(cell)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

var errNull = fmt.Errorf("unexpected NULL")

// rowDecoder is the concrete Decoder behind the Columns constructors.
type rowDecoder[T any] struct {
	width int
	fn    func(cells []driver.Cell) (T, error)
}

func (d rowDecoder[T]) Width() int { return d.width }

func (d rowDecoder[T]) Decode(cells []driver.Cell) (T, error) {
	return d.fn(cells)
}

// column applies a Value to one cell, tagging errors with the column
// index so decode failures name the offending column.
func column[T any](v Value[T], cells []driver.Cell, i int) (T, error) {
	out, err := v(cells[i])
	if err != nil {
		var zero T
		return zero, fmt.Errorf("column %d: %v", i, err)
	}
	return out, nil
}

// Unit is the decoder for statements that produce no rows. Its width
// is zero, so any result that does carry columns fails the shape check.
func Unit() Decoder[struct{}] {
	return rowDecoder[struct{}]{width: 0, fn: func([]driver.Cell) (struct{}, error) {
		return struct{}{}, nil
	}}
}

// Columns1 builds a single-column row decoder.
func Columns1[A any](a Value[A]) Decoder[A] {
	return rowDecoder[A]{width: 1, fn: func(cells []driver.Cell) (A, error) {
		return column(a, cells, 0)
	}}
}

// Columns2 builds a two-column row decoder, assembling the final value
// from the decoded columns.
func Columns2[A, B, T any](a Value[A], b Value[B], assemble func(A, B) T) Decoder[T] {
	return rowDecoder[T]{width: 2, fn: func(cells []driver.Cell) (T, error) {
		var zero T
		av, err := column(a, cells, 0)
		if err != nil {
			return zero, err
		}
		bv, err := column(b, cells, 1)
		if err != nil {
			return zero, err
		}
		return assemble(av, bv), nil
	}}
}

// Columns3 builds a three-column row decoder.
func Columns3[A, B, C, T any](a Value[A], b Value[B], c Value[C], assemble func(A, B, C) T) Decoder[T] {
	return rowDecoder[T]{width: 3, fn: func(cells []driver.Cell) (T, error) {
		var zero T
		av, err := column(a, cells, 0)
		if err != nil {
			return zero, err
		}
		bv, err := column(b, cells, 1)
		if err != nil {
			return zero, err
		}
		cv, err := column(c, cells, 2)
		if err != nil {
			return zero, err
		}
		return assemble(av, bv, cv), nil
	}}
}

// Columns4 builds a four-column row decoder.
func Columns4[A, B, C, D, T any](a Value[A], b Value[B], c Value[C], d Value[D], assemble func(A, B, C, D) T) Decoder[T] {
	return rowDecoder[T]{width: 4, fn: func(cells []driver.Cell) (T, error) {
		var zero T
		av, err := column(a, cells, 0)
		if err != nil {
			return zero, err
		}
		bv, err := column(b, cells, 1)
		if err != nil {
			return zero, err
		}
		cv, err := column(c, cells, 2)
		if err != nil {
			return zero, err
		}
		dv, err := column(d, cells, 3)
		if err != nil {
			return zero, err
		}
		return assemble(av, bv, cv, dv), nil
	}}
}
