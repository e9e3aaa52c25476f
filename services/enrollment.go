package services

import (
	"errors"
	"fmt"

	"stage/models"
	"stage/pagination"

	"gorm.io/gorm"
)

// CreateEnrollmentInput carries the validated create payload. Status and
// Progress are optional; the policy fills in the defaults.
type CreateEnrollmentInput struct {
	UserID   uint
	CourseID uint
	Status   *models.Status
	Progress *int
}

// UpdateEnrollmentInput carries the fields a caller may change. At least one
// must be present.
type UpdateEnrollmentInput struct {
	Status   *models.Status
	Progress *int
}

// CreateEnrollment enrolls a user in a course. The mentor id is always
// recomputed from the course row, never trusted from the caller. The whole
// check-then-insert runs in one transaction and the composite unique index on
// (user_id, course_id) backstops concurrent creates.
func CreateEnrollment(db *gorm.DB, in CreateEnrollmentInput) (*models.Enrollment, error) {
	if in.UserID == 0 || in.CourseID == 0 {
		return nil, fmt.Errorf("userId and courseId are required: %w", ErrMissingField)
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, fmt.Errorf("status %q: %w", *in.Status, ErrInvalidStatus)
	}
	if in.Progress != nil && (*in.Progress < 0 || *in.Progress > 100) {
		return nil, ErrInvalidProgress
	}

	enrollment := models.Enrollment{
		UserID:   in.UserID,
		CourseID: in.CourseID,
		Status:   models.StatusPending,
		Progress: 0,
	}
	if in.Status != nil {
		enrollment.Status = *in.Status
	}
	if in.Progress != nil {
		enrollment.Progress = *in.Progress
	}
	if enrollment.Status == models.StatusCompleted {
		enrollment.Progress = 100
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, in.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %d: %w", in.UserID, ErrNotFound)
			}
			return fmt.Errorf("load user: %w", err)
		}

		var course models.Course
		if err := tx.First(&course, in.CourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("course %d: %w", in.CourseID, ErrNotFound)
			}
			return fmt.Errorf("load course: %w", err)
		}

		// Denormalized for mentor-scoped listings; not re-synced later.
		enrollment.MentorID = course.MentorID

		var existing models.Enrollment
		err := tx.Where("user_id = ? AND course_id = ?", in.UserID, in.CourseID).
			First(&existing).Error
		if err == nil {
			return fmt.Errorf("enrollment for user %d and course %d: %w", in.UserID, in.CourseID, ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check existing enrollment: %w", err)
		}

		if err := tx.Create(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("enrollment for user %d and course %d: %w", in.UserID, in.CourseID, ErrConflict)
			}
			return fmt.Errorf("insert enrollment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// UpdateEnrollment applies a status/progress change to the enrollment
// identified by (userID, courseID). COMPLETED forces progress to 100 no
// matter what was supplied. When the computed state equals the current state
// nothing is written and unchanged reports true; updatedAt stays untouched.
func UpdateEnrollment(db *gorm.DB, userID, courseID uint, in UpdateEnrollmentInput) (enrollment *models.Enrollment, unchanged bool, err error) {
	if in.Status == nil && in.Progress == nil {
		return nil, false, fmt.Errorf("provide status or progress to update: %w", ErrMissingField)
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, false, fmt.Errorf("status %q: %w", *in.Status, ErrInvalidStatus)
	}
	if in.Progress != nil && (*in.Progress < 0 || *in.Progress > 100) {
		return nil, false, ErrInvalidProgress
	}

	var current models.Enrollment
	err = db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("enrollment for user %d and course %d: %w", userID, courseID, ErrNotFound)
		}
		return nil, false, fmt.Errorf("load enrollment: %w", err)
	}

	newStatus := current.Status
	if in.Status != nil {
		newStatus = *in.Status
	}
	newProgress := current.Progress
	if in.Progress != nil {
		newProgress = *in.Progress
	}
	if newStatus == models.StatusCompleted {
		newProgress = 100
	}

	if newStatus == current.Status && newProgress == current.Progress {
		return &current, true, nil
	}

	err = db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND mentor_id = ?", userID, courseID, current.MentorID).
		Updates(map[string]interface{}{
			"status":   newStatus,
			"progress": newProgress,
		}).Error
	if err != nil {
		return nil, false, fmt.Errorf("update enrollment: %w", err)
	}

	current.Status = newStatus
	current.Progress = newProgress
	return &current, false, nil
}

// DeleteEnrollment removes the enrollment identified by (userID, courseID).
// The mentor id comes from the stored row, not the caller.
func DeleteEnrollment(db *gorm.DB, userID, courseID uint) error {
	var existing models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("enrollment for user %d and course %d: %w", userID, courseID, ErrNotFound)
		}
		return fmt.Errorf("load enrollment: %w", err)
	}

	err = db.Where("user_id = ? AND course_id = ? AND mentor_id = ?", userID, courseID, existing.MentorID).
		Delete(&models.Enrollment{}).Error
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}

// ListEnrollments is the filtered, sorted, paginated listing over the raw
// enrollment rows.
func ListEnrollments(db *gorm.DB, filters pagination.EnrollmentFilters, params pagination.Params) (*pagination.Page[models.Enrollment], error) {
	query := filters.Apply(db.Model(&models.Enrollment{}))
	return pagination.Paginate[models.Enrollment](query, params, pagination.EnrollmentColumns)
}
