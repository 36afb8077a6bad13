package dto

// StatusResponse is the {status, message} body used for confirmations and most failures
type StatusResponse struct {
	Status  int    `json:"status" example:"1"`
	Message string `json:"message"`
}

// SuccessResponse is the {success, message} body used by update confirmations
// and by user lookups that fail
type SuccessResponse struct {
	Success int    `json:"success" example:"1"`
	Message string `json:"message"`
}

// MessageResponse carries only a message
type MessageResponse struct {
	Message string `json:"message"`
}

// NewStatusResponse builds a StatusResponse; ok maps to status 1, otherwise 0
func NewStatusResponse(ok bool, message string) StatusResponse {
	return StatusResponse{Status: flag(ok), Message: message}
}

// NewSuccessResponse builds a SuccessResponse; ok maps to success 1, otherwise 0
func NewSuccessResponse(ok bool, message string) SuccessResponse {
	return SuccessResponse{Success: flag(ok), Message: message}
}

func flag(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
