package response

// ErrorBody is the envelope used by middleware when a request is rejected
// before it reaches a handler.
type ErrorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Error(code, message string, details any) ErrorBody {
	return ErrorBody{
		Status:  "error",
		Code:    code,
		Message: message,
		Details: details,
	}
}
