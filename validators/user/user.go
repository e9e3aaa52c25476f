package userValidator

import (
	"strconv"
	"strings"

	"stage/middleware"
	"stage/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateUserBody is the validated payload for mirroring a new identity-
// provider account.
type CreateUserBody struct {
	ClerkUserID string `json:"clerkUserId" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
}

// UpdateUserBody carries profile field changes. Email and clerkUserId are
// restricted and rejected when present.
type UpdateUserBody struct {
	ClerkUserID *string `json:"clerkUserId"`
	Email       *string `json:"email"`
	Username    *string `json:"username"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		if !utils.IsValidUsername(reqData.Username) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
				"Username can only contain lowercase letters, numbers, hyphens, and underscores!", nil)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Email != nil || reqData.ClerkUserID != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot update email or clerk user id!", nil)
		}

		if reqData.Username == nil && reqData.ImageURL == nil && reqData.FirstName == nil && reqData.LastName == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide fields to update!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		if reqData.Username != nil && !utils.IsValidUsername(*reqData.Username) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
				"Username can only contain lowercase letters, numbers, hyphens, and underscores!", nil)
		}

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}

// UserPath validates the numeric user id path parameter.
func UserPath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}
		c.Locals("userID", uint(id))
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
