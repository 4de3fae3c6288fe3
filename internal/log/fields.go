package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldRetried    = "retried"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldResource   = "resource"
	FieldUserEmail  = "user_email"
	FieldStoreKey   = "store_key"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentSession   = "session"
	ComponentCredStore = "credstore"
	ComponentAPI       = "api"
	ComponentCache     = "cache"
	ComponentCLI       = "cli"
)

// Operations defines standard operation names
const (
	OpLogin   = "login"
	OpLogout  = "logout"
	OpRestore = "restore"
	OpRefresh = "refresh"
	OpCreate  = "create"
	OpRead    = "read"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpList    = "list"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithRequestID adds request ID field
func (f LogFields) WithRequestID(requestID string) LogFields {
	f[FieldRequestID] = requestID
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithCall adds outbound call fields
func (f LogFields) WithCall(method, path string, retried bool) LogFields {
	f[FieldMethod] = method
	f[FieldPath] = path
	f[FieldRetried] = retried
	return f
}

// WithResponse adds response fields
func (f LogFields) WithResponse(statusCode int, durationMs int64) LogFields {
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = durationMs
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
