package logging

// Standard attribute keys shared across packages.
const (
	FieldComponent = "component"
	FieldSessionID = "session_id"
	FieldCommand   = "command"
	FieldErrorKind = "error_kind"
	FieldEventType = "event_type"
	FieldErrorHint = "error_hint"
)
