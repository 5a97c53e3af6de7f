package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/rowset-go/runtime/driver"
)

func TestCheckSuccess(t *testing.T) {
	assert.NoError(t, Check(driver.NewStatic(driver.StatusTuplesOK, nil)))
	assert.NoError(t, Check(driver.NewStatic(driver.StatusCommandOK, nil)))
}

func TestCheckSQLError(t *testing.T) {
	raw := driver.NewStatic(driver.StatusFatalError, nil).
		WithError("23505", "duplicate key value violates unique constraint")

	err := Check(raw)
	require.Error(t, err)
	assert.True(t, IsSQL(err))

	sqlErr, ok := AsSQLError(err)
	require.True(t, ok)
	assert.Equal(t, driver.StatusFatalError, sqlErr.Status)
	assert.Equal(t, "23505", sqlErr.Code)
	assert.Equal(t, "duplicate key value violates unique constraint", sqlErr.Message)
}

func TestCheckMissingErrorField(t *testing.T) {
	// A failed statement with no SQLSTATE at all means the driver is
	// broken, not that the query is wrong.
	raw := driver.NewStatic(driver.StatusFatalError, nil)

	err := Check(raw)
	require.Error(t, err)
	assert.True(t, IsConnection(err))
	assert.False(t, IsSQL(err))

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "ErrorField", connErr.Call)
}

func TestCheckMissingErrorMessage(t *testing.T) {
	raw := driver.NewStatic(driver.StatusFatalError, nil).
		WithErrorField(driver.FieldSQLState, "57P01")

	err := Check(raw)
	require.Error(t, err)
	assert.True(t, IsConnection(err))

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "ErrorMessage", connErr.Call)
}

func TestCheckNonSuccessStatuses(t *testing.T) {
	for _, status := range []driver.Status{
		driver.StatusEmptyQuery,
		driver.StatusBadResponse,
		driver.StatusNonfatalError,
		driver.StatusFatalError,
	} {
		raw := driver.NewStatic(status, nil).WithError("XX000", "boom")
		err := Check(raw)
		require.Error(t, err, "status %s", status)

		sqlErr, ok := AsSQLError(err)
		require.True(t, ok)
		assert.Equal(t, status, sqlErr.Status)
	}
}

func TestErrorPassthroughs(t *testing.T) {
	raw := driver.NewStatic(driver.StatusFatalError, nil).WithError("42601", "syntax error")

	msg, ok := ErrorMessage(raw)
	assert.True(t, ok)
	assert.Equal(t, "syntax error", msg)

	code, ok := ErrorCode(raw)
	assert.True(t, ok)
	assert.Equal(t, "42601", code)

	clean := driver.NewStatic(driver.StatusTuplesOK, nil)
	_, ok = ErrorMessage(clean)
	assert.False(t, ok)
	_, ok = ErrorCode(clean)
	assert.False(t, ok)
}
