package models

import "time"

// Student status values
const (
	StudentInactive = 0
	StudentActive   = 1
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Fullname  string    `json:"fullname" db:"fullname" example:"Jane Doe"`
	Email     string    `json:"email" db:"email" example:"jane@school.test"`
	ContactNo string    `json:"contact_no" db:"contact_no" example:"555-0100"`
	Status    int       `json:"status" db:"status" example:"1"` // 1 active, 0 inactive
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
