package models

import "time"

// Course is a catalog entry owned by a mentor. Its status/progress are
// catalog-level defaults, distinct from any user's enrollment progress.
type Course struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MentorID    uint      `json:"mentorId" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	WebsiteLink string    `json:"websiteLink" gorm:"not null"`
	ImageURL    string    `json:"imageUrl"`
	Duration    int64     `json:"duration" gorm:"not null;default:0"` // minutes
	Status      Status    `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	Progress    int       `json:"progress" gorm:"not null;default:0"` // 0-100
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Mentor      Mentor       `json:"-" gorm:"foreignKey:MentorID;constraint:OnDelete:CASCADE"`
	Enrollments []Enrollment `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

func (Course) TableName() string { return "courses" }
