package dto

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,notblank,max=100"`
}
