package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"stage/config"
	"stage/database"
	"stage/models"
	"stage/routers/userCourseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// envelope mirrors middleware.JsonResponse's shape.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupApp points the global database at an in-memory store and builds a
// fiber app with the enrollment routes.
func setupApp(t *testing.T) *fiber.App {
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
	config.AppConfig = &config.Config{} // no SendGrid key, emails are no-ops

	app := fiber.New()
	userCourseRoutes.SetupUserCourseRoutes(app)
	return app
}

func seedCatalog(t *testing.T) (models.User, models.Course) {
	t.Helper()
	db := database.Database.Db

	user := models.User{
		ClerkUserID: "user_test_1",
		Username:    "ada",
		Email:       "ada@example.com",
	}
	require.NoError(t, db.Create(&user).Error)

	mentor := models.Mentor{Name: "Grace Hopper"}
	require.NoError(t, db.Create(&mentor).Error)

	course := models.Course{
		MentorID:    mentor.ID,
		Title:       "Compilers From Scratch",
		WebsiteLink: "https://example.com/compilers",
	}
	require.NoError(t, db.Create(&course).Error)

	return user, course
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestCreateEnrollmentEndpoint(t *testing.T) {
	app := setupApp(t)
	user, course := seedCatalog(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/user-courses/", fiber.Map{
		"userId":   user.ID,
		"courseId": course.ID,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.Status)
	assert.Equal(t, "User course created successfully!", env.Message)

	var created models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, course.MentorID, created.MentorID)
	assert.Equal(t, models.StatusPending, created.Status)

	// Re-enrolling the same pair answers 409.
	resp, env = doJSON(t, app, fiber.MethodPost, "/api/user-courses/", fiber.Map{
		"userId":   user.ID,
		"courseId": course.ID,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)
}

func TestCreateEnrollmentEndpointRejectsBadInput(t *testing.T) {
	app := setupApp(t)
	user, course := seedCatalog(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/user-courses/", fiber.Map{"userId": user.ID})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User ID and Course ID are required!", env.Message)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/user-courses/", fiber.Map{
		"userId":   user.ID,
		"courseId": course.ID,
		"status":   "DONE",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/user-courses/", fiber.Map{
		"userId":   user.ID,
		"courseId": 9999,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListEnrollmentsEndpoint(t *testing.T) {
	app := setupApp(t)
	user, course := seedCatalog(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/user-courses/", fiber.Map{
		"userId":   user.ID,
		"courseId": course.ID,
		"status":   "in_progress",
		"progress": 40,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.True(t, env.Status)

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/user-courses/?status=IN_PROGRESS&page=1&limit=10", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page struct {
		Data     []models.Enrollment `json:"data"`
		Metadata struct {
			TotalItems  int64 `json:"totalItems"`
			CurrentPage int   `json:"currentPage"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, models.StatusInProgress, page.Data[0].Status)
	assert.Equal(t, int64(1), page.Metadata.TotalItems)

	// A status the domain does not know is rejected, not silently ignored.
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/user-courses/?status=DONE", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/user-courses/?progress=250", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetUserEnrollmentsEndpoint(t *testing.T) {
	app := setupApp(t)
	user, course := seedCatalog(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user-courses/", fiber.Map{
		"userId":   user.ID,
		"courseId": course.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/user-courses/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page struct {
		Data []struct {
			CourseTitle string `json:"courseTitle"`
			MentorName  string `json:"mentorName"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, course.Title, page.Data[0].CourseTitle)
	assert.Equal(t, "Grace Hopper", page.Data[0].MentorName)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/user-courses/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateEnrollmentEndpoint(t *testing.T) {
	app := setupApp(t)
	user, course := seedCatalog(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user-courses/", fiber.Map{
		"userId":   user.ID,
		"courseId": course.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	target := "/api/user-courses/1/1"

	resp, env := doJSON(t, app, fiber.MethodPut, target, fiber.Map{"progress": 70})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Unchanged  bool              `json:"unchanged"`
		Enrollment models.Enrollment `json:"enrollment"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.False(t, result.Unchanged)
	assert.Equal(t, 70, result.Enrollment.Progress)

	// Same payload again reports an unchanged state with 200.
	resp, env = doJSON(t, app, fiber.MethodPut, target, fiber.Map{"progress": 70})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "No changes detected.", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Unchanged)

	resp, _ = doJSON(t, app, fiber.MethodPut, target, fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/user-courses/1/9999", fiber.Map{"progress": 10})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteEnrollmentEndpoint(t *testing.T) {
	app := setupApp(t)
	user, course := seedCatalog(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/user-courses/", fiber.Map{
		"userId":   user.ID,
		"courseId": course.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodDelete, "/api/user-courses/1/1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Status)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/user-courses/1/1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/user-courses/1/1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
