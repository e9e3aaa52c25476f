package controllers

import (
	"errors"
	"log"
	"strconv"

	"stage/database"
	"stage/middleware"
	"stage/models"
	userValidator "stage/validators/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllUsers lists every mirrored user.
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Find(&users).Error; err != nil {
		log.Printf("[USER] list failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// CreateUser mirrors a new identity-provider account into a local row.
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Per-field conflict reporting, username and email are both unique.
	var existing []models.User
	if err := db.Where("email = ? OR username = ?", reqData.Email, reqData.Username).Find(&existing).Error; err != nil {
		log.Printf("[USER] uniqueness check failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}
	conflicts := make(map[string]string)
	for _, u := range existing {
		if u.Email == reqData.Email {
			conflicts["email"] = "Email already exists!"
		}
		if u.Username == reqData.Username {
			conflicts["username"] = "Username already exists!"
		}
	}
	if len(conflicts) > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists!", conflicts)
	}

	user := models.User{
		ClerkUserID: reqData.ClerkUserID,
		Username:    reqData.Username,
		Email:       reqData.Email,
		ImageURL:    reqData.ImageURL,
		FirstName:   reqData.FirstName,
		LastName:    reqData.LastName,
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists!", nil)
		}
		log.Printf("[USER] create failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", user)
}

// GetUserByID returns one user. Non-numeric ids fall through to a username
// lookup.
func GetUserByID(c *fiber.Ctx) error {
	raw := c.Params("id")
	if _, err := strconv.ParseUint(raw, 10, 32); err != nil {
		return getUserByUsername(c, raw)
	}

	var user models.User
	if err := database.Database.Db.First(&user, raw).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("[USER] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User found!", user)
}

// GetUserByUsername returns one user by username.
func GetUserByUsername(c *fiber.Ctx) error {
	return getUserByUsername(c, c.Params("username"))
}

func getUserByUsername(c *fiber.Ctx, username string) error {
	if username == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Username is required!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("[USER] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User found!", user)
}

// UpdateUser changes profile fields; email and the external id stay fixed.
func UpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	reqData, ok := c.Locals("validatedUserUpdate").(*userValidator.UpdateUserBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("[USER] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	if reqData.Username != nil && *reqData.Username != user.Username {
		var taken models.User
		if err := db.Where("username = ?", *reqData.Username).First(&taken).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username already taken!", nil)
		}
		user.Username = *reqData.Username
	}
	if reqData.ImageURL != nil {
		user.ImageURL = *reqData.ImageURL
	}
	if reqData.FirstName != nil {
		user.FirstName = *reqData.FirstName
	}
	if reqData.LastName != nil {
		user.LastName = *reqData.LastName
	}

	if err := db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username already taken!", nil)
		}
		log.Printf("[USER] update failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

// DeleteUser removes a user; the store cascades enrollment rows.
func DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("[USER] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	if err := db.Delete(&user).Error; err != nil {
		log.Printf("[USER] delete failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", fiber.Map{})
}
