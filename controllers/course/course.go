package controllers

import (
	"errors"
	"log"
	"strings"

	"stage/database"
	"stage/middleware"
	"stage/models"
	"stage/pagination"
	courseValidator "stage/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses lists the course catalog with filters, sorting and pagination.
func GetAllCourses(c *fiber.Ctx) error {
	params, _ := c.Locals("listParams").(pagination.Params)
	filters, _ := c.Locals("courseFilters").(pagination.CourseFilters)

	query := filters.Apply(database.Database.Db.Model(&models.Course{}))
	page, err := pagination.Paginate[models.Course](query, params, pagination.CourseColumns)
	if err != nil {
		log.Printf("[COURSE] list failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", page)
}

// CreateCourse adds a catalog entry. When only a mentor name is supplied the
// mentor row is created implicitly.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.Course
	if err := db.Where("title = ?", reqData.Title).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already exists!", nil)
	}

	mentorID, err := resolveMentor(db, reqData.MentorID, reqData.MentorName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		log.Printf("[COURSE] mentor resolve failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	course := models.Course{
		MentorID:    mentorID,
		Title:       reqData.Title,
		Description: reqData.Description,
		WebsiteLink: reqData.WebsiteLink,
		ImageURL:    reqData.ImageURL,
		Duration:    reqData.Duration,
		Status:      models.StatusPending,
	}
	if reqData.Status != nil {
		course.Status = models.Status(strings.ToUpper(*reqData.Status))
	}
	if reqData.Progress != nil {
		course.Progress = *reqData.Progress
	}

	if err := db.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already exists!", nil)
		}
		log.Printf("[COURSE] create failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course added successfully!", course)
}

// GetCourseByID returns one catalog entry.
func GetCourseByID(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("[COURSE] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course found!", course)
}

// UpdateCourse changes catalog-level fields. The id and owning mentor are
// immutable here.
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("[COURSE] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.WebsiteLink != nil {
		course.WebsiteLink = *reqData.WebsiteLink
	}
	if reqData.ImageURL != nil {
		course.ImageURL = *reqData.ImageURL
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.Status != nil {
		course.Status = models.Status(strings.ToUpper(*reqData.Status))
	}
	if reqData.Progress != nil {
		course.Progress = *reqData.Progress
	}

	if err := db.Save(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course title already taken!", nil)
		}
		log.Printf("[COURSE] update failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a catalog entry; the store cascades enrollments.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("[COURSE] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := db.Delete(&course).Error; err != nil {
		log.Printf("[COURSE] delete failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", fiber.Map{})
}

// GetMentorCourses lists one mentor's courses, paginated.
func GetMentorCourses(c *fiber.Ctx) error {
	mentorID := c.Locals("mentorID").(uint)
	params, _ := c.Locals("listParams").(pagination.Params)

	db := database.Database.Db

	var mentor models.Mentor
	if err := db.First(&mentor, mentorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		log.Printf("[COURSE] mentor fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	query := db.Model(&models.Course{}).Where("mentor_id = ?", mentorID)
	page, err := pagination.Paginate[models.Course](query, params, pagination.CourseColumns)
	if err != nil {
		log.Printf("[COURSE] mentor list failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses found!", page)
}

// resolveMentor returns the mentor id for a new course, creating the mentor
// by name when no id was supplied.
func resolveMentor(db *gorm.DB, mentorID *uint, mentorName *string) (uint, error) {
	if mentorID != nil {
		var mentor models.Mentor
		if err := db.First(&mentor, *mentorID).Error; err != nil {
			return 0, err
		}
		return mentor.ID, nil
	}

	name := strings.TrimSpace(*mentorName)
	var mentor models.Mentor
	err := db.Where("name = ?", name).First(&mentor).Error
	if err == nil {
		return mentor.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	mentor = models.NewMentorByName(name)
	if err := db.Create(&mentor).Error; err != nil {
		return 0, err
	}
	return mentor.ID, nil
}
