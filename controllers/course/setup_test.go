package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"techgetafrica/config"
	"techgetafrica/database"
	"techgetafrica/models"
	courseModels "techgetafrica/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDb swaps the global connection for an in-memory sqlite database
// so each test starts from empty tables.
func setupTestDb(t *testing.T) {
	t.Helper()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}

	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", userSeq())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
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

func seedUser(t *testing.T, role string) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("user%d@test.test", userSeq()),
		Role:     role,
		Password: "hashed",
	}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

var seq int

func userSeq() int {
	seq++
	return seq
}

func seedCourse(t *testing.T, instructorID uint, price int64, status string) *courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		InstructorID: instructorID,
		Title:        "Intro to Distributed Systems",
		Description:  "Consensus, replication and failure detection.",
		Price:        price,
		Status:       status,
	}
	if err := database.Database.Db.Create(&course).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}
	return &course
}

func seedLesson(t *testing.T, courseID uint, orderIndex int, published bool) *courseModels.Lesson {
	t.Helper()

	lesson := courseModels.Lesson{
		CourseID:    courseID,
		Title:       fmt.Sprintf("Lesson %d", orderIndex),
		OrderIndex:  orderIndex,
		VideoURL:    "https://cdn.test/videos/lesson.mp4",
		DurationSec: 600,
		IsPublished: published,
	}
	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		t.Fatalf("failed to seed lesson: %v", err)
	}
	return &lesson
}

func seedEnrollment(t *testing.T, userID, courseID uint) *courseModels.Enrollment {
	t.Helper()

	enrollment := courseModels.Enrollment{
		UserID:        userID,
		CourseID:      courseID,
		Status:        courseModels.EnrollmentActive,
		PaymentStatus: courseModels.EnrollmentFree,
	}
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		t.Fatalf("failed to seed enrollment: %v", err)
	}
	return &enrollment
}

func seedReview(t *testing.T, userID, courseID uint, rating int) *courseModels.Review {
	t.Helper()

	review := courseModels.Review{
		UserID:   userID,
		CourseID: courseID,
		Rating:   rating,
		Comment:  "Solid material.",
	}
	if err := database.Database.Db.Create(&review).Error; err != nil {
		t.Fatalf("failed to seed review: %v", err)
	}
	return &review
}

// testApp builds a fiber app that injects the acting user the way the JWT
// middleware would, then runs handler behind the given locals.
func testApp(userID uint, locals map[string]interface{}, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.All("/t", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		for key, value := range locals {
			c.Locals(key, value)
		}
		return handler(c)
	})
	return app
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method string) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, "/t", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", body, err)
	}
	return resp.StatusCode, env
}
