package pagination

import (
	"testing"

	"stage/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedEnrollments(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		e := models.Enrollment{
			UserID:   uint(i),
			CourseID: uint(100 + i),
			MentorID: uint(1 + i%3),
			Status:   models.StatusPending,
			Progress: i % 101,
		}
		require.NoError(t, db.Create(&e).Error)
	}
}

func TestParamsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults kept", Params{Page: 1, Limit: 10, Order: "desc"}, Params{Page: 1, Limit: 10, Order: "desc"}},
		{"zero page clamps to one", Params{Page: 0, Limit: 10}, Params{Page: 1, Limit: 10, Order: "desc"}},
		{"negative page clamps to one", Params{Page: -5, Limit: 10}, Params{Page: 1, Limit: 10, Order: "desc"}},
		{"zero limit defaults", Params{Page: 2, Limit: 0}, Params{Page: 2, Limit: DefaultLimit, Order: "desc"}},
		{"oversized limit clamps", Params{Page: 1, Limit: 1000}, Params{Page: 1, Limit: MaxLimit, Order: "desc"}},
		{"asc kept", Params{Page: 1, Limit: 10, Order: "asc"}, Params{Page: 1, Limit: 10, Order: "asc"}},
		{"unknown order defaults to desc", Params{Page: 1, Limit: 10, Order: "sideways"}, Params{Page: 1, Limit: 10, Order: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			got.OrderBy = tt.want.OrderBy // ordering column is not part of Normalize
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderClauseAllowList(t *testing.T) {
	p := Params{OrderBy: "progress", Order: "asc"}
	assert.Equal(t, "progress asc", p.orderClause(EnrollmentColumns))

	p = Params{OrderBy: "userId", Order: "desc"}
	assert.Equal(t, "user_id desc", p.orderClause(EnrollmentColumns))

	// Anything outside the allow-list falls back to id, never reaches SQL raw.
	p = Params{OrderBy: "user_id; DROP TABLE user_courses", Order: "desc"}
	assert.Equal(t, "id desc", p.orderClause(EnrollmentColumns))

	p = Params{OrderBy: "createdAt", Order: "desc"}
	assert.Equal(t, "user_courses.created_at desc", p.orderClause(EnrollmentDetailColumns))
}

func TestPaginateMetadata(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollments(t, db, 25)

	query := db.Model(&models.Enrollment{})
	page, err := Paginate[models.Enrollment](query, Params{Page: 2, Limit: 10, OrderBy: "id", Order: "asc"}, EnrollmentColumns)
	require.NoError(t, err)

	assert.Len(t, page.Data, 10)
	assert.Equal(t, 2, page.Metadata.CurrentPage)
	assert.Equal(t, int64(25), page.Metadata.TotalItems)
	assert.Equal(t, 3, page.Metadata.TotalPages)
	assert.True(t, page.Metadata.HasNextPage)
	assert.True(t, page.Metadata.HasPrevPage)
	assert.Equal(t, 10, page.Metadata.Limit)

	// Page 2 ascending by id starts after the first ten rows.
	assert.Equal(t, uint(11), page.Data[0].UserID)
}

func TestPaginateLastPage(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollments(t, db, 25)

	query := db.Model(&models.Enrollment{})
	page, err := Paginate[models.Enrollment](query, Params{Page: 3, Limit: 10, OrderBy: "id", Order: "asc"}, EnrollmentColumns)
	require.NoError(t, err)

	assert.Len(t, page.Data, 5)
	assert.False(t, page.Metadata.HasNextPage)
	assert.True(t, page.Metadata.HasPrevPage)
}

func TestPaginateOutOfRangeInputs(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollments(t, db, 5)

	query := db.Model(&models.Enrollment{})
	page, err := Paginate[models.Enrollment](query, Params{Page: -3, Limit: 1000}, EnrollmentColumns)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Metadata.CurrentPage)
	assert.Equal(t, MaxLimit, page.Metadata.Limit)
	assert.Len(t, page.Data, 5)
	assert.False(t, page.Metadata.HasPrevPage)
	assert.False(t, page.Metadata.HasNextPage)
}

func TestPaginateEmptySet(t *testing.T) {
	db := setupTestDB(t)

	query := db.Model(&models.Enrollment{})
	page, err := Paginate[models.Enrollment](query, Params{Page: 1, Limit: 10}, EnrollmentColumns)
	require.NoError(t, err)

	assert.Empty(t, page.Data)
	assert.Equal(t, int64(0), page.Metadata.TotalItems)
	assert.Equal(t, 0, page.Metadata.TotalPages)
	assert.False(t, page.Metadata.HasNextPage)
	assert.False(t, page.Metadata.HasPrevPage)
}

func TestEnrollmentFiltersApply(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollments(t, db, 10)

	userID := uint(3)
	filters := EnrollmentFilters{UserID: &userID}
	query := filters.Apply(db.Model(&models.Enrollment{}))

	page, err := Paginate[models.Enrollment](query, Params{Page: 1, Limit: 10}, EnrollmentColumns)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, userID, page.Data[0].UserID)
}

func TestProgressZeroFilterIsExpressible(t *testing.T) {
	db := setupTestDB(t)

	rows := []models.Enrollment{
		{UserID: 1, CourseID: 101, MentorID: 1, Status: models.StatusPending, Progress: 0},
		{UserID: 2, CourseID: 102, MentorID: 1, Status: models.StatusInProgress, Progress: 50},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	progress := 0
	filters := EnrollmentFilters{Progress: &progress}
	query := filters.Apply(db.Model(&models.Enrollment{}))

	page, err := Paginate[models.Enrollment](query, Params{Page: 1, Limit: 10}, EnrollmentColumns)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 0, page.Data[0].Progress)
	assert.Equal(t, uint(1), page.Data[0].UserID)
}
