package dto

// CreateUserRequest represents the body of POST /v1/users
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required" example:"John"`
	Email    string `json:"email" binding:"required,email" example:"john@x.com"`
	Password string `json:"password" binding:"required,max=72" example:"secret"`
}

// UpdateUserRequest represents a partial update; nil fields are left unchanged.
// A supplied password is re-hashed before it is stored.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=1,max=72"`
}
