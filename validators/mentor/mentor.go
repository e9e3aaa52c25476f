package mentorValidator

import (
	"strconv"
	"strings"

	"stage/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateMentorBody is the validated mentor create payload.
type CreateMentorBody struct {
	Name          string `json:"name" validate:"required,min=2"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,url"`
	Bio           string `json:"bio"`
	WebsiteLink   string `json:"websiteLink" validate:"omitempty,url"`
	InstagramLink string `json:"instagramLink" validate:"omitempty,url"`
	LinkedinLink  string `json:"linkedinLink" validate:"omitempty,url"`
	TwitterLink   string `json:"twitterLink" validate:"omitempty,url"`
}

// UpdateMentorBody carries optional mentor profile changes.
type UpdateMentorBody struct {
	Name          *string `json:"name" validate:"omitempty,min=2"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,url"`
	Bio           *string `json:"bio"`
	WebsiteLink   *string `json:"websiteLink" validate:"omitempty,url"`
	InstagramLink *string `json:"instagramLink" validate:"omitempty,url"`
	LinkedinLink  *string `json:"linkedinLink" validate:"omitempty,url"`
	TwitterLink   *string `json:"twitterLink" validate:"omitempty,url"`
}

func CreateMentor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateMentorBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide mentor name!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedMentor", reqData)
		return c.Next()
	}
}

func UpdateMentor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateMentorBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Name == nil && reqData.ImageURL == nil && reqData.Bio == nil &&
			reqData.WebsiteLink == nil && reqData.InstagramLink == nil &&
			reqData.LinkedinLink == nil && reqData.TwitterLink == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide fields to update!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedMentorUpdate", reqData)
		return c.Next()
	}
}

// MentorPath validates the numeric mentor id path parameter.
func MentorPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid mentor id!", nil)
		}
		c.Locals("mentorID", uint(id))
		return c.Next()
	}
}

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
