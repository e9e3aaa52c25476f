package enrollmentValidator

import (
	"strconv"
	"strings"

	"stage/middleware"
	"stage/models"
	"stage/pagination"
	"stage/services"

	"github.com/gofiber/fiber/v2"
)

// ListParams parses page/limit/orderBy/order plus the optional equality
// filters. Filters are only set when actually present in the query string, so
// progress=0 filters on zero instead of being dropped.
func ListParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := pagination.Params{
			Page:    c.QueryInt("page", 1),
			Limit:   c.QueryInt("limit", pagination.DefaultLimit),
			OrderBy: c.Query("orderBy", "id"),
			Order:   c.Query("order", "desc"),
		}

		filters := pagination.EnrollmentFilters{}
		errors := make(map[string]string)

		if v := c.Query("userId"); v != "" {
			if id, err := parseID(v); err != nil {
				errors["userId"] = "userId must be a positive integer!"
			} else {
				filters.UserID = &id
			}
		}
		if v := c.Query("courseId"); v != "" {
			if id, err := parseID(v); err != nil {
				errors["courseId"] = "courseId must be a positive integer!"
			} else {
				filters.CourseID = &id
			}
		}
		if v := c.Query("mentorId"); v != "" {
			if id, err := parseID(v); err != nil {
				errors["mentorId"] = "mentorId must be a positive integer!"
			} else {
				filters.MentorID = &id
			}
		}
		if v := c.Query("status"); v != "" {
			status := models.Status(strings.ToUpper(v))
			if !status.IsValid() {
				errors["status"] = "Unknown status value!"
			} else {
				filters.Status = &status
			}
		}
		if v := c.Query("progress"); v != "" {
			progress, err := strconv.Atoi(v)
			if err != nil || progress < 0 || progress > 100 {
				errors["progress"] = "Progress must be between 0 and 100!"
			} else {
				filters.Progress = &progress
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("listParams", params)
		c.Locals("listFilters", filters)
		return c.Next()
	}
}

// UserPath validates the :userId path parameter.
func UserPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c.Params("userId"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}

// UserCoursePath validates the :userId and :courseId path parameters.
func UserCoursePath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, uerr := parseID(c.Params("userId"))
		courseID, cerr := parseID(c.Params("courseId"))
		if uerr != nil || cerr != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id or course id!", nil)
		}
		c.Locals("userID", userID)
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateEnrollment validates the enrollment create body.
func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint    `json:"userId"`
			CourseID uint    `json:"courseId"`
			Status   *string `json:"status"`
			Progress *int    `json:"progress"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.UserID == 0 || reqData.CourseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID and Course ID are required!", nil)
		}

		input := services.CreateEnrollmentInput{
			UserID:   reqData.UserID,
			CourseID: reqData.CourseID,
			Progress: reqData.Progress,
		}

		errors := make(map[string]string)
		if reqData.Status != nil {
			status := models.Status(strings.ToUpper(*reqData.Status))
			if !status.IsValid() {
				errors["status"] = "Unknown status value!"
			} else {
				input.Status = &status
			}
		}
		if reqData.Progress != nil && (*reqData.Progress < 0 || *reqData.Progress > 100) {
			errors["progress"] = "Progress must be between 0 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", input)
		return c.Next()
	}
}

// UpdateEnrollment validates the status/progress update body.
func UpdateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status   *string `json:"status"`
			Progress *int    `json:"progress"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Status == nil && reqData.Progress == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide status or progress to update!", nil)
		}

		input := services.UpdateEnrollmentInput{Progress: reqData.Progress}

		errors := make(map[string]string)
		if reqData.Status != nil {
			status := models.Status(strings.ToUpper(*reqData.Status))
			if !status.IsValid() {
				errors["status"] = "Unknown status value!"
			} else {
				input.Status = &status
			}
		}
		if reqData.Progress != nil && (*reqData.Progress < 0 || *reqData.Progress > 100) {
			errors["progress"] = "Progress must be between 0 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdate", input)
		return c.Next()
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
