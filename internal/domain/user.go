package domain

import "time"

type UserRole string

const (
	RoleTraveller UserRole = "traveller"
	RoleStaff     UserRole = "staff"
)

type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username" gorm:"uniqueIndex" validate:"required"`
	Email          string     `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash   string     `json:"-"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Phone          string     `json:"phone,omitempty"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Role           UserRole   `json:"role"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (u *User) IsStaff() bool { return u.Role == RoleStaff }

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LocalGuide is a one-to-one extension of a User. Guides are created only by
// staff; deleting a guide also deletes its user (an explicit transactional
// pair delete in the guide service, not an FK cascade).
type LocalGuide struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id" gorm:"uniqueIndex"`
	Region          string    `json:"region" validate:"required"`
	Description     string    `json:"description" gorm:"type:text"`
	ExperienceYears int       `json:"experience_years" validate:"gte=0"`
	Languages       string    `json:"languages"`
	HourlyRate      float64   `json:"hourly_rate" validate:"gte=0"`
	Phone           string    `json:"phone"`
	GuidePhoto      string    `json:"guide_photo,omitempty"`
	References      string    `json:"references,omitempty" gorm:"type:text"`
	IsVerified      bool      `json:"is_verified"`
	Rating          float64   `json:"rating"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
