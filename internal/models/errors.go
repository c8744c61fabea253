package models

// APIError represents a standardized error response format for the API.
type APIError struct {
	Code    string      `json:"code"`              // Application-specific error code (e.g., "REPORT_NOT_FOUND")
	Message string      `json:"message"`           // Human-readable message describing the error
	Details interface{} `json:"details,omitempty"` // Optional field for additional error details
}

// Predefined application-specific error codes.
const (
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeValidation          = "VALIDATION_ERROR"
	ErrorCodeInvalidIDFormat     = "INVALID_ID_FORMAT"
	ErrorCodeInvalidCSV          = "INVALID_CSV"
	ErrorCodeMissingFile         = "MISSING_FILE"
	ErrorCodeReportNotFound      = "REPORT_NOT_FOUND"
)
