package request

type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"max=100"`
	LastName string `json:"last_name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}
