package guide

type CreateGuideRequest struct {
	Username        string  `json:"username" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name"`
	Password        string  `json:"password"` // optional; guides created without one cannot log in
	Region          string  `json:"region" binding:"required"`
	Description     string  `json:"description"`
	ExperienceYears int     `json:"experience_years" binding:"gte=0"`
	Languages       string  `json:"languages"`
	HourlyRate      float64 `json:"hourly_rate" binding:"gte=0"`
	Phone           string  `json:"phone"`
	References      string  `json:"references"`
}

type UpdateGuideRequest struct {
	Username        *string  `json:"username"`
	Email           *string  `json:"email"`
	FirstName       *string  `json:"first_name"`
	LastName        *string  `json:"last_name"`
	Region          *string  `json:"region"`
	Description     *string  `json:"description"`
	ExperienceYears *int     `json:"experience_years"`
	Languages       *string  `json:"languages"`
	HourlyRate      *float64 `json:"hourly_rate"`
	Phone           *string  `json:"phone"`
	References      *string  `json:"references"`
	IsVerified      *bool    `json:"is_verified"`
}
