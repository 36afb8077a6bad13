package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"secret"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	UserEmail string `json:"user_email" example:"a@x.com"`
	Token     string `json:"token"`
}

// TokenResponse carries a freshly issued token
type TokenResponse struct {
	Token string `json:"token"`
}

// TokenErrorResponse is returned when a token cannot be refreshed
type TokenErrorResponse struct {
	Error string `json:"error" example:"Token is Invalid"`
}
