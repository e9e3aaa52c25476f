package controllers

import (
	"errors"
	"log"

	"stage/database"
	"stage/middleware"
	"stage/models"
	mentorValidator "stage/validators/mentor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllMentors lists every mentor.
func GetAllMentors(c *fiber.Ctx) error {
	var mentors []models.Mentor
	if err := database.Database.Db.Find(&mentors).Error; err != nil {
		log.Printf("[MENTOR] list failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentors fetched successfully!", mentors)
}

// CreateMentor adds a mentor; names are unique.
func CreateMentor(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMentor").(*mentorValidator.CreateMentorBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.Mentor
	if err := db.Where("name = ?", reqData.Name).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Mentor already exists!", nil)
	}

	// Zero ImageURL falls back to the column default avatar.
	mentor := models.Mentor{
		Name:          reqData.Name,
		ImageURL:      reqData.ImageURL,
		Bio:           reqData.Bio,
		WebsiteLink:   reqData.WebsiteLink,
		InstagramLink: reqData.InstagramLink,
		LinkedinLink:  reqData.LinkedinLink,
		TwitterLink:   reqData.TwitterLink,
	}

	if err := db.Create(&mentor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Mentor already exists!", nil)
		}
		log.Printf("[MENTOR] create failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Mentor added successfully!", mentor)
}

// GetMentorByID returns one mentor.
func GetMentorByID(c *fiber.Ctx) error {
	mentorID := c.Locals("mentorID").(uint)

	var mentor models.Mentor
	if err := database.Database.Db.First(&mentor, mentorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		log.Printf("[MENTOR] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor found!", mentor)
}

// UpdateMentor applies a keep-current merge over the supplied fields.
func UpdateMentor(c *fiber.Ctx) error {
	mentorID := c.Locals("mentorID").(uint)
	reqData, ok := c.Locals("validatedMentorUpdate").(*mentorValidator.UpdateMentorBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var mentor models.Mentor
	if err := db.First(&mentor, mentorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		log.Printf("[MENTOR] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update mentor!", nil)
	}

	if reqData.Name != nil {
		mentor.Name = *reqData.Name
	}
	if reqData.ImageURL != nil {
		mentor.ImageURL = *reqData.ImageURL
	}
	if reqData.Bio != nil {
		mentor.Bio = *reqData.Bio
	}
	if reqData.WebsiteLink != nil {
		mentor.WebsiteLink = *reqData.WebsiteLink
	}
	if reqData.InstagramLink != nil {
		mentor.InstagramLink = *reqData.InstagramLink
	}
	if reqData.LinkedinLink != nil {
		mentor.LinkedinLink = *reqData.LinkedinLink
	}
	if reqData.TwitterLink != nil {
		mentor.TwitterLink = *reqData.TwitterLink
	}

	if err := db.Save(&mentor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Mentor name already taken!", nil)
		}
		log.Printf("[MENTOR] update failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor updated successfully!", mentor)
}

// DeleteMentor removes a mentor; courses and enrollments cascade.
func DeleteMentor(c *fiber.Ctx) error {
	mentorID := c.Locals("mentorID").(uint)
	db := database.Database.Db

	var mentor models.Mentor
	if err := db.First(&mentor, mentorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		log.Printf("[MENTOR] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete mentor!", nil)
	}

	if err := db.Delete(&mentor).Error; err != nil {
		log.Printf("[MENTOR] delete failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor deleted successfully!", fiber.Map{})
}
