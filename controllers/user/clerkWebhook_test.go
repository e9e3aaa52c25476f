package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"stage/database"
	"stage/models"
	"stage/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupWebhookApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Mentor{},
		&models.Course{},
		&models.Enrollment{},
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, payload interface{}) int {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/webhooks/clerk", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func createdEvent(id, username, email string) fiber.Map {
	return fiber.Map{
		"type": "user.created",
		"data": fiber.Map{
			"id":         id,
			"username":   username,
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email_addresses": []fiber.Map{
				{"email_address": email},
			},
		},
	}
}

func TestClerkWebhookUserCreated(t *testing.T) {
	app := setupWebhookApp(t)

	code := postWebhook(t, app, createdEvent("user_wh_1", "ada", "ada@example.com"))
	assert.Equal(t, fiber.StatusOK, code)

	var user models.User
	require.NoError(t, database.Database.Db.Where("clerk_user_id = ?", "user_wh_1").First(&user).Error)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.FirstName)

	// Webhook redelivery is acknowledged without creating a second row.
	code = postWebhook(t, app, createdEvent("user_wh_1", "ada", "ada@example.com"))
	assert.Equal(t, fiber.StatusOK, code)

	var count int64
	require.NoError(t, database.Database.Db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestClerkWebhookUserUpdated(t *testing.T) {
	app := setupWebhookApp(t)

	require.Equal(t, fiber.StatusOK, postWebhook(t, app, createdEvent("user_wh_2", "lin", "lin@example.com")))

	code := postWebhook(t, app, fiber.Map{
		"type": "user.updated",
		"data": fiber.Map{
			"id":         "user_wh_2",
			"username":   "lin-dev",
			"first_name": "Lin",
			"last_name":  "Park",
			"email_addresses": []fiber.Map{
				{"email_address": "lin@example.com"},
			},
		},
	})
	assert.Equal(t, fiber.StatusOK, code)

	var user models.User
	require.NoError(t, database.Database.Db.Where("clerk_user_id = ?", "user_wh_2").First(&user).Error)
	assert.Equal(t, "lin-dev", user.Username)
	assert.Equal(t, "Park", user.LastName)
}

func TestClerkWebhookUpdateForUnknownUserCreates(t *testing.T) {
	app := setupWebhookApp(t)

	code := postWebhook(t, app, fiber.Map{
		"type": "user.updated",
		"data": fiber.Map{
			"id":       "user_wh_3",
			"username": "ghost",
			"email_addresses": []fiber.Map{
				{"email_address": "ghost@example.com"},
			},
		},
	})
	assert.Equal(t, fiber.StatusOK, code)

	var user models.User
	require.NoError(t, database.Database.Db.Where("clerk_user_id = ?", "user_wh_3").First(&user).Error)
	assert.Equal(t, "ghost", user.Username)
}

func TestClerkWebhookUserDeleted(t *testing.T) {
	app := setupWebhookApp(t)

	require.Equal(t, fiber.StatusOK, postWebhook(t, app, createdEvent("user_wh_4", "tmp", "tmp@example.com")))

	code := postWebhook(t, app, fiber.Map{
		"type": "user.deleted",
		"data": fiber.Map{"id": "user_wh_4"},
	})
	assert.Equal(t, fiber.StatusOK, code)

	var count int64
	require.NoError(t, database.Database.Db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestClerkWebhookUnknownEventAcknowledged(t *testing.T) {
	app := setupWebhookApp(t)

	code := postWebhook(t, app, fiber.Map{
		"type": "session.created",
		"data": fiber.Map{"id": "sess_1"},
	})
	assert.Equal(t, fiber.StatusOK, code)
}
