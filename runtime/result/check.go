package result

import (
	"github.com/satishbabariya/rowset-go/runtime/driver"
)

// Check validates the backend outcome for a raw result. Successful
// statements (rows or not) pass. For anything else it extracts the
// SQLSTATE and the error message and returns a SQLError carrying both.
//
// A well-behaved backend always supplies both fields on failure; if
// either is missing the driver itself is broken, and Check returns a
// ConnectionError naming the accessor that came up empty so callers can
// tell "the query is wrong" apart from "the connection is unusable".
func Check(res driver.Result) error {
	switch res.Status() {
	case driver.StatusCommandOK, driver.StatusTuplesOK:
		return nil
	}

	code, ok := ErrorCode(res)
	if !ok {
		return &ConnectionError{Call: "ErrorField"}
	}
	message, ok := ErrorMessage(res)
	if !ok {
		return &ConnectionError{Call: "ErrorMessage"}
	}
	return &SQLError{Status: res.Status(), Code: code, Message: message}
}

// ErrorMessage returns the raw human-readable error message for a
// failed statement, without further classification.
func ErrorMessage(res driver.Result) (string, bool) {
	raw, ok := res.ErrorMessage()
	if !ok {
		return "", false
	}
	return string(raw), true
}

// ErrorCode returns the raw SQLSTATE diagnostic field for a failed
// statement, without further classification.
func ErrorCode(res driver.Result) (string, bool) {
	raw, ok := res.ErrorField(driver.FieldSQLState)
	if !ok {
		return "", false
	}
	return string(raw), true
}
