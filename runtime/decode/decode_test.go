package decode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/rowset-go/runtime/driver"
)

func TestTextValue(t *testing.T) {
	v := Text()

	got, err := v(driver.TextCell("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	// Present-and-empty is a value, not NULL.
	got, err = v(driver.TextCell(""))
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = v(driver.NullCell())
	assert.Error(t, err)
}

func TestInt64Value(t *testing.T) {
	v := Int64()

	got, err := v(driver.TextCell("-42"))
	require.NoError(t, err)
	assert.Equal(t, int64(-42), got)

	_, err = v(driver.TextCell("abc"))
	assert.Error(t, err)

	_, err = v(driver.NullCell())
	assert.Error(t, err)
}

func TestFloat64Value(t *testing.T) {
	v := Float64()

	got, err := v(driver.TextCell("3.25"))
	require.NoError(t, err)
	assert.Equal(t, 3.25, got)

	_, err = v(driver.TextCell("x"))
	assert.Error(t, err)
}

func TestBoolValue(t *testing.T) {
	v := Bool()

	for raw, want := range map[string]bool{
		"t": true, "true": true, "1": true,
		"f": false, "false": false, "0": false,
	} {
		got, err := v(driver.TextCell(raw))
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, want, got, "input %q", raw)
	}

	_, err := v(driver.TextCell("yes"))
	assert.Error(t, err)
}

func TestTimeValue(t *testing.T) {
	v := Time()

	got, err := v(driver.TextCell("2024-06-01 12:30:45"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC), got)

	got, err = v(driver.TextCell("2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = v(driver.TextCell("not a time"))
	assert.Error(t, err)
}

func TestBytesValueCopies(t *testing.T) {
	v := Bytes()
	cell := driver.TextCell("abc")

	got, err := v(cell)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	// Mutating the decoded slice must not touch the cell.
	got[0] = 'z'
	assert.Equal(t, []byte("abc"), cell.Value)
}

func TestNullable(t *testing.T) {
	v := Nullable(Int64())

	got, err := v(driver.NullCell())
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = v(driver.TextCell("7"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), *got)

	_, err = v(driver.TextCell("abc"))
	assert.Error(t, err)
}

func TestUnit(t *testing.T) {
	dec := Unit()
	assert.Equal(t, 0, dec.Width())

	_, err := dec.Decode(nil)
	assert.NoError(t, err)
}

func TestColumns1(t *testing.T) {
	dec := Columns1(Text())
	assert.Equal(t, 1, dec.Width())

	got, err := dec.Decode([]driver.Cell{driver.TextCell("x")})
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestColumns2(t *testing.T) {
	type pair struct {
		ID   int64
		Name string
	}
	dec := Columns2(Int64(), Text(), func(id int64, name string) pair {
		return pair{ID: id, Name: name}
	})
	assert.Equal(t, 2, dec.Width())

	got, err := dec.Decode([]driver.Cell{driver.TextCell("1"), driver.TextCell("ada")})
	require.NoError(t, err)
	assert.Equal(t, pair{ID: 1, Name: "ada"}, got)
}

func TestColumnErrorsNameTheColumn(t *testing.T) {
	dec := Columns3(Int64(), Int64(), Int64(), func(a, b, c int64) int64 {
		return a + b + c
	})
	assert.Equal(t, 3, dec.Width())

	_, err := dec.Decode([]driver.Cell{
		driver.TextCell("1"), driver.TextCell("bad"), driver.TextCell("3"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column 1")
}

func TestColumns4(t *testing.T) {
	dec := Columns4(Int64(), Text(), Bool(), Nullable(Float64()),
		func(id int64, name string, active bool, score *float64) map[string]interface{} {
			return map[string]interface{}{"id": id, "name": name, "active": active, "score": score}
		})
	assert.Equal(t, 4, dec.Width())

	got, err := dec.Decode([]driver.Cell{
		driver.TextCell("9"), driver.TextCell("grace"), driver.TextCell("t"), driver.NullCell(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got["id"])
	assert.Equal(t, "grace", got["name"])
	assert.Equal(t, true, got["active"])
	assert.Nil(t, got["score"])
}
