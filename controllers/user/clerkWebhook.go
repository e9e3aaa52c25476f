package controllers

import (
	"errors"
	"log"

	"stage/database"
	"stage/middleware"
	"stage/models"
	"stage/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// clerkEvent is the identity-provider webhook payload shape we consume.
type clerkEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		Username       string `json:"username"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// ClerkWebhook mirrors identity-provider account events into the local users
// table. Unknown event types are acknowledged and ignored.
func ClerkWebhook(c *fiber.Ctx) error {
	event := new(clerkEvent)
	if err := c.BodyParser(event); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid webhook payload!", nil)
	}

	db := database.Database.Db

	var err error
	switch event.Type {
	case "user.created":
		err = mirrorCreate(db, event)
	case "user.updated":
		err = mirrorUpdate(db, event)
	case "user.deleted":
		err = db.Where("clerk_user_id = ?", event.Data.ID).Delete(&models.User{}).Error
	default:
		log.Printf("[WEBHOOK] unhandled event type: %s", event.Type)
	}
	if err != nil {
		log.Printf("[WEBHOOK] processing %s failed: %v", event.Type, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing webhook!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook received successfully!", nil)
}

// ResyncUser re-fetches a mirrored user from the identity provider and
// updates the local row with whatever the provider currently holds.
func ResyncUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("[USER] fetch failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resync user!", nil)
	}

	identity, err := utils.FetchIdentityUser(user.ClerkUserID)
	if err != nil {
		log.Printf("[USER] identity fetch failed for %s: %v", user.ClerkUserID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Identity provider unavailable!", nil)
	}

	if identity.Username != "" && utils.IsValidUsername(identity.Username) {
		user.Username = identity.Username
	}
	user.FirstName = identity.FirstName
	user.LastName = identity.LastName
	if identity.ImageURL != "" {
		user.ImageURL = identity.ImageURL
	}

	if err := db.Save(&user).Error; err != nil {
		log.Printf("[USER] resync save failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resync user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User resynced successfully!", user)
}

func mirrorCreate(db *gorm.DB, event *clerkEvent) error {
	if event.Data.ID == "" || len(event.Data.EmailAddresses) == 0 {
		return nil // nothing we can mirror
	}

	user := models.User{
		ClerkUserID: event.Data.ID,
		Username:    event.Data.Username,
		Email:       event.Data.EmailAddresses[0].EmailAddress,
		ImageURL:    event.Data.ImageURL,
		FirstName:   event.Data.FirstName,
		LastName:    event.Data.LastName,
	}

	err := db.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil // already mirrored, webhook redelivery
	}
	return err
}

func mirrorUpdate(db *gorm.DB, event *clerkEvent) error {
	var user models.User
	err := db.Where("clerk_user_id = ?", event.Data.ID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return mirrorCreate(db, event)
		}
		return err
	}

	if event.Data.Username != "" {
		user.Username = event.Data.Username
	}
	if len(event.Data.EmailAddresses) > 0 {
		user.Email = event.Data.EmailAddresses[0].EmailAddress
	}
	if event.Data.ImageURL != "" {
		user.ImageURL = event.Data.ImageURL
	}
	user.FirstName = event.Data.FirstName
	user.LastName = event.Data.LastName

	return db.Save(&user).Error
}
