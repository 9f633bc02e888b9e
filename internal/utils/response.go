package utils

// Response is the standard envelope for every API reply: a status code, a
// message, and the payload (null for errors).
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// NewSuccessResponse creates a success Response with status 200.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Status:  200,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates an error Response with no data.
func NewErrorResponse(status int, message string) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    nil,
	}
}
