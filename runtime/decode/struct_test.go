package decode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/rowset-go/runtime/driver"
)

type user struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Active    bool    `db:"active"`
	Score     float64 `db:"score"`
	Bio       *string `db:"bio"`
	CreatedAt time.Time
}

func TestStructDecoder(t *testing.T) {
	dec, err := Struct[user]()
	require.NoError(t, err)
	assert.Equal(t, 6, dec.Width())

	got, err := dec.Decode([]driver.Cell{
		driver.TextCell("7"),
		driver.TextCell("ada"),
		driver.TextCell("t"),
		driver.TextCell("99.5"),
		driver.NullCell(),
		driver.TextCell("2024-06-01 12:00:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "ada", got.Name)
	assert.True(t, got.Active)
	assert.Equal(t, 99.5, got.Score)
	assert.Nil(t, got.Bio)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), got.CreatedAt)
}

func TestStructDecoderNullableField(t *testing.T) {
	dec, err := Struct[user]()
	require.NoError(t, err)

	got, err := dec.Decode([]driver.Cell{
		driver.TextCell("1"),
		driver.TextCell("grace"),
		driver.TextCell("f"),
		driver.TextCell("0"),
		driver.TextCell("pioneer"),
		driver.TextCell("2024-01-01"),
	})
	require.NoError(t, err)
	require.NotNil(t, got.Bio)
	assert.Equal(t, "pioneer", *got.Bio)
}

func TestStructDecoderRejectsNullValueField(t *testing.T) {
	dec, err := Struct[user]()
	require.NoError(t, err)

	_, err = dec.Decode([]driver.Cell{
		driver.NullCell(), // ID is not a pointer
		driver.TextCell("ada"),
		driver.TextCell("t"),
		driver.TextCell("1"),
		driver.NullCell(),
		driver.TextCell("2024-01-01"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column 0")
	assert.Contains(t, err.Error(), "id")
}

func TestStructDecoderErrorNamesTaggedColumn(t *testing.T) {
	dec, err := Struct[user]()
	require.NoError(t, err)

	_, err = dec.Decode([]driver.Cell{
		driver.TextCell("1"),
		driver.TextCell("ada"),
		driver.TextCell("maybe"),
		driver.TextCell("1"),
		driver.NullCell(),
		driver.TextCell("2024-01-01"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column 2")
	assert.Contains(t, err.Error(), "active")
}

func TestStructDecoderSkipsUnexportedFields(t *testing.T) {
	type mixed struct {
		ID   int64
		Name string
		note string
	}
	dec, err := Struct[mixed]()
	require.NoError(t, err)
	assert.Equal(t, 2, dec.Width())
}

func TestStructDecoderRejectsNonStructs(t *testing.T) {
	_, err := Struct[int]()
	assert.Error(t, err)

	type empty struct{}
	_, err = Struct[empty]()
	assert.Error(t, err)
}
