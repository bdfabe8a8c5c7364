package entity

// User is an administrative account. Password and OTPSecret never leave
// the service boundary.
type User struct {
	ID          int32  `gorm:"primaryKey" json:"id"`
	Password    string `gorm:"not null" json:"-"`
	OTPSecret   string `gorm:"column:otp_secret;not null;default:''" json:"-"`
	LastLogin   *int64 `json:"last_login"`
	IsSuperuser bool   `gorm:"not null;default:false" json:"is_superuser"`
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	FirstName   string `gorm:"not null" json:"first_name"`
	LastName    string `gorm:"not null" json:"last_name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	IsStaff     bool   `gorm:"not null;default:false" json:"is_staff"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	DateJoined  int64  `gorm:"not null" json:"date_joined"`
}

func (User) TableName() string {
	return "auth_users"
}
