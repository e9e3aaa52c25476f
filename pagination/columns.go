package pagination

import (
	"stage/models"

	"gorm.io/gorm"
)

// Sortable column allow-lists, caller-facing field name to database column.
// Anything outside these maps falls back to id.
var (
	EnrollmentColumns = map[string]string{
		"id":        "id",
		"userId":    "user_id",
		"courseId":  "course_id",
		"mentorId":  "mentor_id",
		"status":    "status",
		"progress":  "progress",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}

	// EnrollmentDetailColumns qualifies the enrollment columns for joined
	// detail queries where bare names would be ambiguous.
	EnrollmentDetailColumns = map[string]string{
		"id":        "user_courses.id",
		"userId":    "user_courses.user_id",
		"courseId":  "user_courses.course_id",
		"mentorId":  "user_courses.mentor_id",
		"status":    "user_courses.status",
		"progress":  "user_courses.progress",
		"createdAt": "user_courses.created_at",
		"updatedAt": "user_courses.updated_at",
	}

	CourseColumns = map[string]string{
		"id":        "id",
		"mentorId":  "mentor_id",
		"title":     "title",
		"duration":  "duration",
		"status":    "status",
		"progress":  "progress",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
)

// EnrollmentFilters are optional equality predicates for enrollment listings.
// nil means "not provided"; a zero value is a real filter, so progress=0 is
// expressible.
type EnrollmentFilters struct {
	UserID   *uint
	CourseID *uint
	MentorID *uint
	Status   *models.Status
	Progress *int
}

// Apply ANDs the present predicates onto the query.
func (f EnrollmentFilters) Apply(db *gorm.DB) *gorm.DB {
	if f.UserID != nil {
		db = db.Where("user_id = ?", *f.UserID)
	}
	if f.CourseID != nil {
		db = db.Where("course_id = ?", *f.CourseID)
	}
	if f.MentorID != nil {
		db = db.Where("mentor_id = ?", *f.MentorID)
	}
	if f.Status != nil {
		db = db.Where("status = ?", *f.Status)
	}
	if f.Progress != nil {
		db = db.Where("progress = ?", *f.Progress)
	}
	return db
}

// CourseFilters are optional equality predicates for course listings.
type CourseFilters struct {
	MentorID *uint
	Status   *models.Status
	Progress *int
}

func (f CourseFilters) Apply(db *gorm.DB) *gorm.DB {
	if f.MentorID != nil {
		db = db.Where("mentor_id = ?", *f.MentorID)
	}
	if f.Status != nil {
		db = db.Where("status = ?", *f.Status)
	}
	if f.Progress != nil {
		db = db.Where("progress = ?", *f.Progress)
	}
	return db
}
