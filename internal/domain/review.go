package domain

import "time"

// ReviewSubject tags which kind of entity a review (or review photo) is
// attached to.
type ReviewSubject string

const (
	SubjectDestination   ReviewSubject = "destination"
	SubjectAccommodation ReviewSubject = "accommodation"
	SubjectGuide         ReviewSubject = "guide"
)

// RatingTitle derives a review headline from the rating. Derived, never stored.
func RatingTitle(rating int) string {
	switch rating {
	case 5:
		return "Excellent"
	case 4:
		return "Very Good"
	case 3:
		return "Good"
	case 2:
		return "Fair"
	case 1:
		return "Poor"
	}
	return ""
}

// Each review kind is unique per (subject, user): a user reviews a given
// subject at most once, enforced by a composite unique index so concurrent
// submissions race on the constraint rather than on a read-check.

type DestinationReview struct {
	ID            int64     `json:"id"`
	DestinationID int64     `json:"destination_id" gorm:"uniqueIndex:idx_destination_review_user"`
	UserID        int64     `json:"user_id" gorm:"uniqueIndex:idx_destination_review_user"`
	Content       string    `json:"content" gorm:"type:text"`
	Rating        int       `json:"rating" validate:"required,gte=1,lte=5"`
	IsApproved    bool      `json:"is_approved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Destination *Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
	User        *User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (r *DestinationReview) Title() string { return RatingTitle(r.Rating) }

type AccommodationReview struct {
	ID              int64     `json:"id"`
	AccommodationID int64     `json:"accommodation_id" gorm:"uniqueIndex:idx_accommodation_review_user"`
	UserID          int64     `json:"user_id" gorm:"uniqueIndex:idx_accommodation_review_user"`
	Content         string    `json:"content" gorm:"type:text"`
	Rating          int       `json:"rating" validate:"required,gte=1,lte=5"`
	IsApproved      bool      `json:"is_approved"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Accommodation *Accommodation `json:"accommodation,omitempty" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
	User          *User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (r *AccommodationReview) Title() string { return RatingTitle(r.Rating) }

type GuideReview struct {
	ID         int64     `json:"id"`
	GuideID    int64     `json:"guide_id" gorm:"uniqueIndex:idx_guide_review_user"`
	UserID     int64     `json:"user_id" gorm:"uniqueIndex:idx_guide_review_user"`
	Content    string    `json:"content" gorm:"type:text"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=5"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Guide *LocalGuide `json:"guide,omitempty" gorm:"foreignKey:GuideID;constraint:OnDelete:CASCADE"`
	User  *User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (r *GuideReview) Title() string { return RatingTitle(r.Rating) }

// ReviewPhoto belongs to exactly one review, identified by a kind tag plus the
// review id within that kind's table.
type ReviewPhoto struct {
	ID         int64         `json:"id"`
	Subject    ReviewSubject `json:"subject" gorm:"column:subject_kind"`
	ReviewID   int64         `json:"review_id"`
	Image      string        `json:"image"`
	Caption    string        `json:"caption,omitempty"`
	UploadedAt time.Time     `json:"uploaded_at" gorm:"autoCreateTime"`
}
