package contract

type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,min=2,max=80,nospaces"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=64,hasupper,haslower,hasdigit,hasspecial"`
	FirstName   string `json:"first_name" validate:"max=80"`
	LastName    string `json:"last_name" validate:"max=80"`
	IsSuperuser bool   `json:"is_superuser"`
	IsStaff     bool   `json:"is_staff"`
	IsActive    bool   `json:"is_active"`
}

type UpdateUserRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=2,max=80,nospaces"`
	Email       *string `json:"email" validate:"omitempty,email"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=80"`
	LastName    *string `json:"last_name" validate:"omitempty,max=80"`
	IsSuperuser *bool   `json:"is_superuser"`
	IsStaff     *bool   `json:"is_staff"`
	IsActive    *bool   `json:"is_active"`
	LastLogin   *int64  `json:"last_login"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=64,hasupper,haslower,hasdigit,hasspecial"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	OTP      string `json:"otp" validate:"omitempty,numeric,len=6"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
