package controllers

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"techgetafrica/config"
	"techgetafrica/database"
	"techgetafrica/models"
	courseModels "techgetafrica/models/course"
	"techgetafrica/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDb(t *testing.T) {
	t.Helper()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}

	db, err := gorm.Open(sqlite.Open("file:payment_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}

func seedPendingPayment(t *testing.T) (*models.User, *courseModels.Course, *models.Payment) {
	t.Helper()
	db := database.Database.Db

	user := models.User{Name: "Buyer", Email: "buyer@test.test", Role: "USER", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{
		InstructorID: user.ID + 1000,
		Title:        "Cloud Fundamentals",
		Description:  "Compute, storage and networking basics.",
		Price:        500000,
		Status:       courseModels.CoursePublished,
	}
	require.NoError(t, db.Create(&course).Error)

	payment := models.Payment{
		UserID:    user.ID,
		CourseID:  course.ID,
		Reference: utils.GeneratePaymentReference(),
		Amount:    course.Price,
		Status:    models.PaymentPending,
	}
	require.NoError(t, db.Create(&payment).Error)

	return &user, &course, &payment
}

func TestConfirmPaymentIdempotent(t *testing.T) {
	setupTestDb(t)

	user, course, payment := seedPendingPayment(t)
	db := database.Database.Db

	require.NoError(t, ConfirmPayment(payment.Reference, "card", 987654321))

	var got models.Payment
	require.NoError(t, db.Where("reference = ?", payment.Reference).First(&got).Error)
	assert.Equal(t, models.PaymentPaid, got.Status)
	assert.Equal(t, "card", got.Channel)
	assert.Equal(t, "987654321", got.GatewayRef)
	require.NotNil(t, got.PaidAt)
	firstPaidAt := *got.PaidAt

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentPaymentPaid, enrollment.PaymentStatus)

	// USER was promoted to STUDENT by the paid enrollment
	var buyer models.User
	require.NoError(t, db.Where("id = ?", user.ID).First(&buyer).Error)
	assert.Equal(t, "STUDENT", buyer.Role)

	// Replay is a no-op
	require.NoError(t, ConfirmPayment(payment.Reference, "bank", 111111))

	require.NoError(t, db.Where("reference = ?", payment.Reference).First(&got).Error)
	assert.Equal(t, "card", got.Channel)
	assert.Equal(t, "987654321", got.GatewayRef)
	assert.Equal(t, firstPaidAt, *got.PaidAt)

	var enrollments int64
	db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&enrollments)
	assert.Equal(t, int64(1), enrollments)
}

func TestConfirmPaymentUnknownReference(t *testing.T) {
	setupTestDb(t)

	err := ConfirmPayment("tga_does-not-exist", "card", 0)
	assert.Error(t, err)
}

func TestVerifyPaystackSignature(t *testing.T) {
	config.AppConfig = &config.Config{PaystackSecretKey: "sk_test_secret"}

	body := []byte(`{"event":"charge.success","data":{"reference":"tga_ref"}}`)
	mac := hmac.New(sha512.New, []byte("sk_test_secret"))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, utils.VerifyPaystackSignature(body, valid))
	assert.False(t, utils.VerifyPaystackSignature(body, ""))
	assert.False(t, utils.VerifyPaystackSignature(body, "deadbeef"))
	assert.False(t, utils.VerifyPaystackSignature([]byte(`tampered`), valid))
}
