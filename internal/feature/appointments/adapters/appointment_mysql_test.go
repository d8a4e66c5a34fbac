package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"repair_backend/internal/feature/appointments/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Appointment{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestAppointmentMySQL_Create(t *testing.T) {
	t.Run("successful creation sets ID and CreatedAt", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAppointmentMySQL(db)

		appointment := &entity.Appointment{
			UserID:     1,
			PhoneModel: "Pixel 7",
			Issue:      "cracked screen",
			Date:       date("2024-05-01"),
		}

		err := repo.Create(context.Background(), appointment)

		assert.NoError(t, err, "failed to create appointment")
		assert.NotZero(t, appointment.ID, "ID is not set")
		assert.False(t, appointment.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("past dates are accepted", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAppointmentMySQL(db)

		appointment := &entity.Appointment{
			UserID:     1,
			PhoneModel: "iPhone 12",
			Issue:      "battery drain",
			Date:       date("2001-01-01"),
		}

		err := repo.Create(context.Background(), appointment)

		assert.NoError(t, err, "no semantic date validation exists")
	})
}

func TestAppointmentMySQL_FindByUserID(t *testing.T) {
	t.Run("returns appointments ordered by date descending", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAppointmentMySQL(db)

		// Insert out of order on purpose
		appointments := []*entity.Appointment{
			{UserID: 1, PhoneModel: "Pixel 7", Issue: "cracked screen", Date: date("2024-05-01")},
			{UserID: 1, PhoneModel: "iPhone 14", Issue: "won't charge", Date: date("2024-07-15")},
			{UserID: 1, PhoneModel: "Galaxy S23", Issue: "water damage", Date: date("2024-06-10")},
		}
		for _, a := range appointments {
			require.NoError(t, repo.Create(context.Background(), a))
		}

		found, err := repo.FindByUserID(context.Background(), 1)

		assert.NoError(t, err, "failed to list appointments")
		require.Len(t, found, 3, "all appointments should be returned")
		assert.Equal(t, "iPhone 14", found[0].PhoneModel, "newest date first")
		assert.Equal(t, "Galaxy S23", found[1].PhoneModel)
		assert.Equal(t, "Pixel 7", found[2].PhoneModel, "oldest date last")
	})

	t.Run("only the owner's appointments are visible", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAppointmentMySQL(db)

		require.NoError(t, repo.Create(context.Background(),
			&entity.Appointment{UserID: 1, PhoneModel: "Pixel 7", Issue: "cracked screen", Date: date("2024-05-01")}))
		require.NoError(t, repo.Create(context.Background(),
			&entity.Appointment{UserID: 2, PhoneModel: "iPhone 14", Issue: "won't charge", Date: date("2024-05-02")}))

		found, err := repo.FindByUserID(context.Background(), 1)

		assert.NoError(t, err)
		require.Len(t, found, 1, "other users' appointments must not leak")
		assert.Equal(t, uint(1), found[0].UserID)
	})

	t.Run("empty slice when no appointments exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAppointmentMySQL(db)

		found, err := repo.FindByUserID(context.Background(), 42)

		assert.NoError(t, err, "no appointments is not an error")
		assert.Empty(t, found, "result should be empty")
	})

	t.Run("fresh query each call", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAppointmentMySQL(db)

		first, err := repo.FindByUserID(context.Background(), 1)
		require.NoError(t, err)
		require.Empty(t, first)

		require.NoError(t, repo.Create(context.Background(),
			&entity.Appointment{UserID: 1, PhoneModel: "Pixel 7", Issue: "cracked screen", Date: date("2024-05-01")}))

		second, err := repo.FindByUserID(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, second, 1, "a later call should observe the new record")
	})
}
