package models

// Column names shared by the repositories and the services building partial
// updates, so both sides agree on the writable fields.
const (
	ColumnFullname  = "fullname"
	ColumnEmail     = "email"
	ColumnContactNo = "contact_no"
	ColumnStatus    = "status"
	ColumnName      = "name"
	ColumnPassword  = "password"
	ColumnUpdatedAt = "updated_at"
)

// Fields is a set of column → value assignments for a partial update
type Fields map[string]interface{}
