package errors

// ErrorCode identifies an application error in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL ErrorCode = 1000

	// Meetings
	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 2000
	ErrorCode_MISSING_FILE          ErrorCode = 2001
	ErrorCode_INVALID_EXPORT_FORMAT ErrorCode = 2002
	ErrorCode_EXPORT_FAILED         ErrorCode = 2003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 3000

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 4000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_MISSING_FILE:               "MISSING_FILE",
	ErrorCode_INVALID_EXPORT_FORMAT:      "INVALID_EXPORT_FORMAT",
	ErrorCode_EXPORT_FAILED:              "EXPORT_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
