package feed

// state is the position of the applier inside the feed document.
type state int

const (
	// stateIdle expects the opening brace of the document.
	stateIdle state = iota
	// stateAwaitingKey expects a top-level key or the closing brace.
	stateAwaitingKey
	// stateInRecordArray is inside a typed array, between records.
	stateInRecordArray
	// stateInRecord expects a field name or the end of the record.
	stateInRecord
	// stateInRecordField expects the value of the current field.
	stateInRecordField
	// stateDone is reached after the closing brace of the document.
	stateDone
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateAwaitingKey:
		return "awaiting_key"
	case stateInRecordArray:
		return "in_record_array"
	case stateInRecord:
		return "in_record"
	case stateInRecordField:
		return "in_record_field"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}
