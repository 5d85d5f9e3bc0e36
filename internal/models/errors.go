package models

import "net/http"

// FieldError reports one rejected request field inside an ErrorResponse.
type FieldError struct {
	FieldName        string   `json:"fieldName"`
	Message          string   `json:"message"`
	MessageArguments []string `json:"messageArguments"`
	MessageCode      string   `json:"messageCode"`
	RejectedValue    string   `json:"rejectedValue"`
}

// ErrorResponse is the structured body ChatSurfer returns on request
// errors. The same shape serves 400 and 404 class failures.
type ErrorResponse struct {
	Classification string       `json:"classification"`
	Code           int          `json:"code"`
	FieldErrors    []FieldError `json:"fieldErrors"`
	Message        string       `json:"message"`
}

// NewBadRequest builds a 400 ErrorResponse with the given field errors.
func NewBadRequest(message string, fields ...FieldError) ErrorResponse {
	if fields == nil {
		fields = []FieldError{}
	}
	return ErrorResponse{
		Classification: Unclassified,
		Code:           http.StatusBadRequest,
		FieldErrors:    fields,
		Message:        message,
	}
}
