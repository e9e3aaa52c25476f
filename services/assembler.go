package services

import (
	"errors"
	"fmt"

	"stage/models"
	"stage/pagination"

	"gorm.io/gorm"
)

// EnrollmentDetail is the read-side projection of an enrollment joined with
// its course and mentor. Every enrollment resolves to both thanks to the
// foreign keys, so the joins are inner.
type EnrollmentDetail struct {
	UserID   uint          `json:"userId"`
	CourseID uint          `json:"courseId"`
	MentorID uint          `json:"mentorId"`
	Status   models.Status `json:"status"`
	Progress int           `json:"progress"`

	CourseTitle       string        `json:"courseTitle"`
	CourseDescription string        `json:"courseDescription"`
	WebsiteLink       string        `json:"websiteLink"`
	ImageURL          string        `json:"imageUrl"`
	Duration          int64         `json:"duration"`
	CourseStatus      models.Status `json:"courseStatus"`
	CourseProgress    int           `json:"courseProgress"`
	MentorName        string        `json:"mentorName"`
}

const detailColumns = `user_courses.user_id,
	user_courses.course_id,
	user_courses.mentor_id,
	user_courses.status,
	user_courses.progress,
	courses.title AS course_title,
	courses.description AS course_description,
	courses.website_link AS website_link,
	courses.image_url AS image_url,
	courses.duration AS duration,
	courses.status AS course_status,
	courses.progress AS course_progress,
	mentors.name AS mentor_name`

func detailQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Enrollment{}).
		Select(detailColumns).
		Joins("JOIN courses ON courses.id = user_courses.course_id").
		Joins("JOIN mentors ON mentors.id = user_courses.mentor_id")
}

// GetEnrollmentDetail returns the joined projection for one enrollment.
func GetEnrollmentDetail(db *gorm.DB, userID, courseID uint) (*EnrollmentDetail, error) {
	var detail EnrollmentDetail
	err := detailQuery(db).
		Where("user_courses.user_id = ? AND user_courses.course_id = ?", userID, courseID).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment for user %d and course %d: %w", userID, courseID, ErrNotFound)
		}
		return nil, fmt.Errorf("load enrollment detail: %w", err)
	}
	return &detail, nil
}

// ListUserEnrollmentDetails returns a user's enrollments with their course
// and mentor fields, paginated.
func ListUserEnrollmentDetails(db *gorm.DB, userID uint, params pagination.Params) (*pagination.Page[EnrollmentDetail], error) {
	query := detailQuery(db).Where("user_courses.user_id = ?", userID)
	return pagination.Paginate[EnrollmentDetail](query, params, pagination.EnrollmentDetailColumns)
}
