package driver

// StaticResult is a fully materialized in-memory Result. It is the
// concrete handle built by the database/sql adapters and is also handy
// for constructing results by hand in tests.
//
// The zero value is an empty COMMAND_OK-like result with no metadata;
// use the builder methods to populate it. A StaticResult must not be
// modified once it is shared.
type StaticResult struct {
	rows    [][]Cell
	nfields int
	status  Status

	cmdStatus    []byte
	hasCmdStatus bool
	cmdTuples    []byte
	hasCmdTuples bool

	errMessage []byte
	hasErrMsg  bool
	errFields  map[FieldCode][]byte

	columns []string
}

// NewStatic returns a handle with the given status and rows. All rows
// must have the same length; nfields is taken from the first row.
func NewStatic(status Status, rows [][]Cell) *StaticResult {
	nfields := 0
	if len(rows) > 0 {
		nfields = len(rows[0])
	}
	return &StaticResult{
		rows:    rows,
		nfields: nfields,
		status:  status,
	}
}

// WithNfields overrides the column count reported by the handle. Used
// for empty results, where no row exists to infer the width from.
func (r *StaticResult) WithNfields(n int) *StaticResult {
	r.nfields = n
	return r
}

// WithColumns records the column names. Names are presentation
// metadata only; nothing in the typed access path depends on them.
func (r *StaticResult) WithColumns(names []string) *StaticResult {
	r.columns = names
	return r
}

// Columns returns the recorded column names, if any.
func (r *StaticResult) Columns() []string { return r.columns }

// WithCmdStatus sets the command tag.
func (r *StaticResult) WithCmdStatus(tag string) *StaticResult {
	r.cmdStatus = []byte(tag)
	r.hasCmdStatus = true
	return r
}

// WithCmdTuples sets the raw affected-row count field.
func (r *StaticResult) WithCmdTuples(raw string) *StaticResult {
	r.cmdTuples = []byte(raw)
	r.hasCmdTuples = true
	return r
}

// WithError sets the error message and the SQLSTATE diagnostic field.
func (r *StaticResult) WithError(sqlState, message string) *StaticResult {
	r.errMessage = []byte(message)
	r.hasErrMsg = true
	if r.errFields == nil {
		r.errFields = make(map[FieldCode][]byte)
	}
	r.errFields[FieldSQLState] = []byte(sqlState)
	return r
}

// WithErrorField sets a single diagnostic field without touching the
// error message.
func (r *StaticResult) WithErrorField(code FieldCode, value string) *StaticResult {
	if r.errFields == nil {
		r.errFields = make(map[FieldCode][]byte)
	}
	r.errFields[code] = []byte(value)
	return r
}

// Ntuples implements Result.
func (r *StaticResult) Ntuples() int { return len(r.rows) }

// Nfields implements Result.
func (r *StaticResult) Nfields() int { return r.nfields }

// Cell implements Result.
func (r *StaticResult) Cell(row, col int) Cell {
	if row < 0 || row >= len(r.rows) {
		return NullCell()
	}
	cells := r.rows[row]
	if col < 0 || col >= len(cells) {
		return NullCell()
	}
	return cells[col]
}

// Status implements Result.
func (r *StaticResult) Status() Status { return r.status }

// CmdStatus implements Result.
func (r *StaticResult) CmdStatus() ([]byte, bool) {
	return r.cmdStatus, r.hasCmdStatus
}

// CmdTuples implements Result.
func (r *StaticResult) CmdTuples() ([]byte, bool) {
	return r.cmdTuples, r.hasCmdTuples
}

// ErrorMessage implements Result.
func (r *StaticResult) ErrorMessage() ([]byte, bool) {
	return r.errMessage, r.hasErrMsg
}

// ErrorField implements Result.
func (r *StaticResult) ErrorField(code FieldCode) ([]byte, bool) {
	v, ok := r.errFields[code]
	return v, ok
}
