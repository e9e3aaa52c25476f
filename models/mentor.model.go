package models

import "time"

const defaultMentorImage = "https://avatars.githubusercontent.com/u/154300871?v=4&size=64"

// Mentor offers courses. Name is the natural key used when a course is
// created against a mentor that does not exist yet.
type Mentor struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"uniqueIndex;not null"`
	ImageURL      string    `json:"imageUrl" gorm:"not null;default:'https://avatars.githubusercontent.com/u/154300871?v=4&size=64'"`
	Bio           string    `json:"bio"`
	WebsiteLink   string    `json:"websiteLink"`
	InstagramLink string    `json:"instagramLink"`
	LinkedinLink  string    `json:"linkedinLink"`
	TwitterLink   string    `json:"twitterLink"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Courses []Course `json:"-" gorm:"foreignKey:MentorID;constraint:OnDelete:CASCADE"`
}

func (Mentor) TableName() string { return "mentors" }

// NewMentorByName builds the implicit mentor row created when a course
// references an unknown mentor name.
func NewMentorByName(name string) Mentor {
	return Mentor{Name: name, ImageURL: defaultMentorImage}
}
