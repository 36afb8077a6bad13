package dto

// CreateStudentRequest represents the body of POST /v1/students.
// Status is not accepted; new students are always active.
type CreateStudentRequest struct {
	Fullname  string `json:"fullname" binding:"required" example:"Jane"`
	Email     string `json:"email" binding:"required,email" example:"j@x.com"`
	ContactNo string `json:"contact_no" example:"555"`
}

// UpdateStudentRequest represents a partial update; nil fields are left unchanged
type UpdateStudentRequest struct {
	Fullname  *string `json:"fullname" binding:"omitempty,min=1"`
	Email     *string `json:"email" binding:"omitempty,email"`
	ContactNo *string `json:"contact_no"`
	Status    *int    `json:"status" binding:"omitempty,oneof=0 1"`
}
