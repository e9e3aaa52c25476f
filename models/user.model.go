package models

import "time"

// User mirrors an identity-provider account into a local row.
// Provisioning happens externally; we only sync profile fields.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ClerkUserID string    `json:"clerkUserId" gorm:"uniqueIndex;not null"`
	Username    string    `json:"username" gorm:"uniqueIndex;not null"` // lowercase letters, digits, hyphen, underscore
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	ImageURL    string    `json:"imageUrl"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Enrollments []Enrollment `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }
