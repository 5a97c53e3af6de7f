package decode

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/satishbabariya/rowset-go/runtime/driver"
)

// Struct builds a row decoder for a struct type. Columns map to the
// exported fields in declaration order; the decoder's width is the
// number of exported fields. Pointer fields decode SQL NULL to nil,
// value fields reject it. The db tag, when present, names the field in
// decode errors.
func Struct[T any]() (Decoder[T], error) {
	var probe T
	typ := reflect.TypeOf(probe)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("decode target must be a struct, got %v", typ)
	}

	var fields []structField
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fields = append(fields, structField{
			index: i,
			name:  columnName(field),
		})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("struct %s has no exported fields", typ.Name())
	}

	return structDecoder[T]{fields: fields}, nil
}

type structField struct {
	index int
	name  string
}

type structDecoder[T any] struct {
	fields []structField
}

func (d structDecoder[T]) Width() int { return len(d.fields) }

func (d structDecoder[T]) Decode(cells []driver.Cell) (T, error) {
	var out T
	val := reflect.ValueOf(&out).Elem()

	for col, field := range d.fields {
		target := val.Field(field.index)
		if err := assignCell(target, cells[col]); err != nil {
			return out, fmt.Errorf("column %d (%s): %v", col, field.name, err)
		}
	}
	return out, nil
}

// columnName resolves the column name for a field from its db tag,
// falling back to the field name.
func columnName(field reflect.StructField) string {
	if tag := field.Tag.Get("db"); tag != "" {
		if name := strings.Split(tag, ",")[0]; name != "" {
			return name
		}
	}
	return field.Name
}

// assignCell parses a raw cell into a struct field value.
func assignCell(target reflect.Value, cell driver.Cell) error {
	if target.Kind() == reflect.Ptr {
		if cell.Null {
			target.SetZero()
			return nil
		}
		elem := reflect.New(target.Type().Elem())
		if err := assignCell(elem.Elem(), cell); err != nil {
			return err
		}
		target.Set(elem)
		return nil
	}

	if cell.Null {
		return fmt.Errorf("unexpected NULL")
	}
	raw := string(cell.Value)

	if target.Type() == timeType {
		t := Time()
		parsed, err := t(cell)
		if err != nil {
			return err
		}
		target.Set(reflect.ValueOf(parsed))
		return nil
	}

	switch target.Kind() {
	case reflect.String:
		target.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, target.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		target.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, target.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", raw)
		}
		target.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, target.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float %q", raw)
		}
		target.SetFloat(f)
	case reflect.Bool:
		b := Bool()
		parsed, err := b(cell)
		if err != nil {
			return err
		}
		target.SetBool(parsed)
	case reflect.Slice:
		if target.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("unsupported field type %v", target.Type())
		}
		buf := make([]byte, len(cell.Value))
		copy(buf, cell.Value)
		target.SetBytes(buf)
	default:
		return fmt.Errorf("unsupported field type %v", target.Type())
	}
	return nil
}

var timeType = reflect.TypeOf(time.Time{})
