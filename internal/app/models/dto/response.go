package dto

// SuccessResponse is the envelope of every successful call: {"success": true, "data": ...}
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the envelope of every failed call: {"success": false, "error": "..."}
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"User not found"`
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// NewErrorResponse wraps a message in a failure envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}
