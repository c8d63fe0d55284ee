package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"techgetafrica/constants"
	"techgetafrica/database"
	courseModels "techgetafrica/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllCoursesSearch(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	match := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	other := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	other.Title = "Practical Networking"
	require.NoError(t, database.Database.Db.Save(other).Error)
	// Drafts never show up in the catalog
	seedCourse(t, instructor.ID, 0, courseModels.CourseDraft)

	app := testApp(instructor.ID, nil, GetAllCourses)
	req, err := http.NewRequest("GET", "/t?search=Distributed", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	var payload struct {
		Courses    []courseModels.Course `json:"courses"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.Len(t, payload.Courses, 1)
	assert.Equal(t, match.ID, payload.Courses[0].ID)
	assert.Equal(t, int64(1), payload.Pagination.Total)
}
