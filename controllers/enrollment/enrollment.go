package controllers

import (
	"errors"
	"log"

	"stage/database"
	"stage/middleware"
	"stage/models"
	"stage/pagination"
	"stage/services"
	"stage/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllEnrollments lists enrollments across all users with filters, sorting
// and pagination.
func GetAllEnrollments(c *fiber.Ctx) error {
	params, _ := c.Locals("listParams").(pagination.Params)
	filters, _ := c.Locals("listFilters").(pagination.EnrollmentFilters)

	page, err := services.ListEnrollments(database.Database.Db, filters, params)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User courses fetched successfully!", page)
}

// GetUserEnrollments lists one user's enrollments joined with course and
// mentor fields.
func GetUserEnrollments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	params, _ := c.Locals("listParams").(pagination.Params)

	page, err := services.ListUserEnrollmentDetails(database.Database.Db, userID, params)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User courses fetched successfully!", page)
}

// GetEnrollment returns one enrollment with its joined course/mentor fields.
func GetEnrollment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	courseID := c.Locals("courseID").(uint)

	detail, err := services.GetEnrollmentDetail(database.Database.Db, userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User course found!", detail)
}

// CreateEnrollment enrolls a user in a course.
func CreateEnrollment(c *fiber.Ctx) error {
	input, ok := c.Locals("validatedEnrollment").(services.CreateEnrollmentInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, err := services.CreateEnrollment(database.Database.Db, input)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	notifyEnrollment(enrollment, false)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User course created successfully!", enrollment)
}

// UpdateEnrollment changes status and/or progress of an enrollment.
func UpdateEnrollment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	courseID := c.Locals("courseID").(uint)
	input, ok := c.Locals("validatedUpdate").(services.UpdateEnrollmentInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	wasCompleted := false
	var before models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&before).Error; err == nil {
		wasCompleted = before.Status == models.StatusCompleted
	}

	enrollment, unchanged, err := services.UpdateEnrollment(database.Database.Db, userID, courseID, input)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	if unchanged {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No changes detected.", fiber.Map{
			"unchanged":  true,
			"enrollment": enrollment,
		})
	}

	if !wasCompleted && enrollment.Status == models.StatusCompleted {
		notifyEnrollment(enrollment, true)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User course updated successfully!", fiber.Map{
		"unchanged":  false,
		"enrollment": enrollment,
	})
}

// DeleteEnrollment removes an enrollment.
func DeleteEnrollment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	courseID := c.Locals("courseID").(uint)

	if err := services.DeleteEnrollment(database.Database.Db, userID, courseID); err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User course deleted successfully!", fiber.Map{})
}

// serviceErrorResponse maps policy errors onto HTTP statuses. Store failures
// are logged and answered with an opaque message.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrInvalidIdentifier):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidProgress):
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrConflict):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	default:
		log.Printf("[ENROLLMENT] store failure: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}

// notifyEnrollment sends the confirmation or completion email, best effort.
func notifyEnrollment(enrollment *models.Enrollment, completed bool) {
	var user models.User
	if err := database.Database.Db.First(&user, enrollment.UserID).Error; err != nil {
		return
	}
	var course models.Course
	if err := database.Database.Db.First(&course, enrollment.CourseID).Error; err != nil {
		return
	}

	go func() {
		var err error
		if completed {
			err = utils.SendCompletionEmail(user.Email, user.Username, course.Title)
		} else {
			err = utils.SendEnrollmentEmail(user.Email, user.Username, course.Title)
		}
		if err != nil {
			log.Printf("[ENROLLMENT] email failed: %v", err)
		}
	}()
}
