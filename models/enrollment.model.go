package models

import "time"

// Enrollment links one user to one course and tracks per-user progress.
// MentorID is denormalized from the course at creation time so mentor-scoped
// listings skip a join; it is not re-synced if the course changes mentors.
type Enrollment struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	UserID   uint `json:"userId" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID uint `json:"courseId" gorm:"not null;uniqueIndex:idx_user_course"`
	MentorID uint `json:"mentorId" gorm:"index;not null"`

	Status    Status    `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	Progress  int       `json:"progress" gorm:"not null;default:0"` // 0-100; COMPLETED forces 100
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Mentor Mentor `json:"-" gorm:"foreignKey:MentorID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the original user_courses table name.
func (Enrollment) TableName() string { return "user_courses" }
