package controllers

import (
	"testing"

	"techgetafrica/constants"
	"techgetafrica/database"
	courseModels "techgetafrica/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertLessonProgressCompletion(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	student := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	lesson := seedLesson(t, course.ID, 1, true)
	seedEnrollment(t, student.ID, course.ID)

	// Below the threshold nothing completes
	progress, completedNow, err := upsertLessonProgress(student.ID, lesson, 120, 45, 120)
	require.NoError(t, err)
	assert.False(t, completedNow)
	assert.False(t, progress.IsCompleted)
	assert.Nil(t, progress.CompletedAt)
	assert.Equal(t, 45.0, progress.WatchPercentage)

	// Crossing the threshold completes exactly once
	progress, completedNow, err = upsertLessonProgress(student.ID, lesson, 540, 92, 300)
	require.NoError(t, err)
	assert.True(t, completedNow)
	assert.True(t, progress.IsCompleted)
	require.NotNil(t, progress.CompletedAt)
	firstCompletedAt := *progress.CompletedAt

	// A later report above the threshold does not move the timestamp
	progress, completedNow, err = upsertLessonProgress(student.ID, lesson, 580, 97, 60)
	require.NoError(t, err)
	assert.False(t, completedNow)
	assert.True(t, progress.IsCompleted)
	assert.True(t, firstCompletedAt.Equal(*progress.CompletedAt))

	// A lower report never reverts completion or the high-water mark
	progress, completedNow, err = upsertLessonProgress(student.ID, lesson, 30, 10, 30)
	require.NoError(t, err)
	assert.False(t, completedNow)
	assert.True(t, progress.IsCompleted)
	assert.Equal(t, 97.0, progress.WatchPercentage)
	assert.Equal(t, 30, progress.LastPositionSec)
}

func TestUpsertLessonProgressAccumulatesTime(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	student := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	lesson := seedLesson(t, course.ID, 1, true)
	seedEnrollment(t, student.ID, course.ID)

	_, _, err := upsertLessonProgress(student.ID, lesson, 60, 10, 60)
	require.NoError(t, err)
	progress, _, err := upsertLessonProgress(student.ID, lesson, 120, 20, 45)
	require.NoError(t, err)

	assert.Equal(t, 105, progress.TimeSpentSec)

	// Still a single row for the pair
	var count int64
	database.Database.Db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", student.ID, lesson.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateEnrollmentProgressPercentage(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	student := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	seedEnrollment(t, student.ID, course.ID)

	lessons := make([]*courseModels.Lesson, 0, 4)
	for i := 1; i <= 4; i++ {
		lessons = append(lessons, seedLesson(t, course.ID, i, true))
	}
	// Draft lessons stay out of the percentage
	seedLesson(t, course.ID, 5, false)

	for _, lesson := range lessons[:3] {
		_, _, err := upsertLessonProgress(student.ID, lesson, 540, 95, 540)
		require.NoError(t, err)
	}
	updateEnrollmentProgress(student.ID, course.ID)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error)

	assert.Equal(t, 75.0, enrollment.Progress)
	assert.Equal(t, 3, enrollment.CompletedLessons)
	assert.Equal(t, 4, enrollment.TotalLessons)
	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
	assert.Nil(t, enrollment.CompletedAt)

	// Completing the last lesson completes the enrollment
	_, _, err := upsertLessonProgress(student.ID, lessons[3], 540, 95, 540)
	require.NoError(t, err)
	updateEnrollmentProgress(student.ID, course.ID)

	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error)

	assert.Equal(t, 100.0, enrollment.Progress)
	assert.Equal(t, courseModels.EnrollmentCompleted, enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestRecomputeCourseEnrollmentsAfterLessonChange(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	student := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	seedEnrollment(t, student.ID, course.ID)

	first := seedLesson(t, course.ID, 1, true)
	_, _, err := upsertLessonProgress(student.ID, first, 540, 95, 540)
	require.NoError(t, err)
	updateEnrollmentProgress(student.ID, course.ID)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error)
	assert.Equal(t, 100.0, enrollment.Progress)

	// Publishing a second lesson halves the percentage on recompute
	seedLesson(t, course.ID, 2, true)
	recomputeCourseEnrollments(course.ID)

	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		First(&enrollment).Error)
	assert.Equal(t, 50.0, enrollment.Progress)
	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
}
