package courseValidator

import (
	"strconv"
	"strings"

	"stage/middleware"
	"stage/models"
	"stage/pagination"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourseBody is the validated create payload. A course needs either an
// existing mentorId or a mentorName to create the mentor implicitly.
type CreateCourseBody struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description"`
	WebsiteLink string  `json:"websiteLink" validate:"required,url"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	Duration    int64   `json:"duration" validate:"gte=0"` // minutes
	MentorID    *uint   `json:"mentorId"`
	MentorName  *string `json:"mentorName"`
	Status      *string `json:"status"`
	Progress    *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

// UpdateCourseBody carries optional catalog-level field changes.
type UpdateCourseBody struct {
	Title       *string `json:"title" validate:"omitempty,min=3"`
	Description *string `json:"description"`
	WebsiteLink *string `json:"websiteLink" validate:"omitempty,url"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Duration    *int64  `json:"duration" validate:"omitempty,gte=0"`
	Status      *string `json:"status"`
	Progress    *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

// ListCourses parses pagination params and the course filters.
func ListCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := pagination.Params{
			Page:    c.QueryInt("page", 1),
			Limit:   c.QueryInt("limit", pagination.DefaultLimit),
			OrderBy: c.Query("orderBy", "id"),
			Order:   c.Query("order", "desc"),
		}

		filters := pagination.CourseFilters{}
		errors := make(map[string]string)

		if v := c.Query("mentorId"); v != "" {
			id, err := strconv.ParseUint(v, 10, 32)
			if err != nil || id == 0 {
				errors["mentorId"] = "mentorId must be a positive integer!"
			} else {
				mentorID := uint(id)
				filters.MentorID = &mentorID
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
		c.Locals("courseFilters", filters)
		return c.Next()
	}
}

// CreateCourse validates the course create body.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		if reqData.MentorID == nil && (reqData.MentorName == nil || strings.TrimSpace(*reqData.MentorName) == "") {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide mentorId or mentorName!", nil)
		}

		if reqData.Status != nil && !models.Status(strings.ToUpper(*reqData.Status)).IsValid() {
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Unknown status value!"})
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the course update body.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title == nil && reqData.Description == nil && reqData.WebsiteLink == nil &&
			reqData.ImageURL == nil && reqData.Duration == nil && reqData.Status == nil && reqData.Progress == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide data to update!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		if reqData.Status != nil && !models.Status(strings.ToUpper(*reqData.Status)).IsValid() {
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Unknown status value!"})
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CoursePath validates the numeric course id path parameter.
func CoursePath(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid course ID!", nil)
		}
		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// MentorPath validates the numeric mentor id path parameter.
func MentorPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("mentorId"))
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid mentor ID!", nil)
		}
		c.Locals("mentorID", uint(id))
		return c.Next()
	}
}

// fieldErrors flattens validator.ValidationErrors into the field map shape
// used by ValidationErrorResponse.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out[fe.Field()] = "Failed validation: " + fe.Tag()
		}
		return out
	}
	out["body"] = err.Error()
	return out
}
