package request

// CreateProfileRequest represents a staff account creation request
type CreateProfileRequest struct {
	FullName    string  `json:"full_name" binding:"required,min=2,max=255"`
	UserName    string  `json:"username" binding:"required,min=2,max=100"`
	Password    string  `json:"password" binding:"required,min=6"`
	Role        string  `json:"role" binding:"omitempty,oneof=admin waiter"`
	NumberPhone *string `json:"number_phone"`
}

// UpdateProfileRequest represents a staff account update request
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin waiter"`
	NumberPhone *string `json:"number_phone"`
}
