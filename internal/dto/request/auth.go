package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,password"`
	Name     string `json:"name" validate:"max=100"`
	LastName string `json:"last_name" validate:"max=100"`
}

// LoginRequest accepts a username or an email in Login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required,uuid"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty" validate:"omitempty,uuid"`
}
