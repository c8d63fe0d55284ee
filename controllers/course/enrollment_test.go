package controllers

import (
	"testing"

	"techgetafrica/constants"
	"techgetafrica/database"
	"techgetafrica/models"
	courseModels "techgetafrica/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrollApp(userID uint, courseID int) *fiber.App {
	return testApp(userID, map[string]interface{}{"courseID": courseID}, EnrollInCourse)
}

func TestEnrollInFreeCourse(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	user := seedUser(t, constants.RoleUser)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)

	status, env := doRequest(t, enrollApp(user.ID, int(course.ID)), "POST")
	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, env.Status)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
	assert.Equal(t, courseModels.EnrollmentFree, enrollment.PaymentStatus)

	// First enrollment promotes USER to STUDENT
	var got models.User
	require.NoError(t, database.Database.Db.Where("id = ?", user.ID).First(&got).Error)
	assert.Equal(t, constants.RoleStudent, got.Role)

	// An enrollment notification was written
	var notifications int64
	database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ?", user.ID).Count(&notifications)
	assert.Equal(t, int64(1), notifications)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	student := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)

	status, _ := doRequest(t, enrollApp(student.ID, int(course.ID)), "POST")
	require.Equal(t, fiber.StatusCreated, status)

	status, env := doRequest(t, enrollApp(student.ID, int(course.ID)), "POST")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.False(t, env.Status)

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollPaidCourseRejected(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	student := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 250000, courseModels.CoursePublished)

	status, env := doRequest(t, enrollApp(student.ID, int(course.ID)), "POST")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, env.Status)

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ?", student.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestEnrollUnpublishedCourseNotFound(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	student := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CourseDraft)

	status, _ := doRequest(t, enrollApp(student.ID, int(course.ID)), "POST")
	assert.Equal(t, fiber.StatusNotFound, status)
}
