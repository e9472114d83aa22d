package requestresponse

// APIResponseDTO encapsulates the standard mid-tier response.
type APIResponseDTO struct {
	Success bool        `json:"Success"`
	Status  int         `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data"`
}

// NewSuccess builds a successful response.
func NewSuccess(status int, message string, data interface{}) APIResponseDTO {
	if message == "" {
		message = "OK"
	}
	return APIResponseDTO{
		Success: true,
		Status:  status,
		Message: message,
		Data:    data,
	}
}

// NewError builds an error response.
func NewError(status int, message string, data interface{}) APIResponseDTO {
	if message == "" {
		message = "Error"
	}
	return APIResponseDTO{
		Success: false,
		Status:  status,
		Message: message,
		Data:    data,
	}
}
