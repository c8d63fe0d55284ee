package controllers

import (
	"testing"

	"techgetafrica/constants"
	"techgetafrica/database"
	courseModels "techgetafrica/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedQuiz(t *testing.T, lesson *courseModels.Lesson) (*courseModels.Quiz, [][]courseModels.QuizOption) {
	t.Helper()
	db := database.Database.Db

	quiz := courseModels.Quiz{
		LessonID:    lesson.ID,
		CourseID:    lesson.CourseID,
		Title:       "Checkpoint",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&quiz).Error)

	options := make([][]courseModels.QuizOption, 0, 2)
	for i := 0; i < 2; i++ {
		question := courseModels.QuizQuestion{
			QuizID:     quiz.ID,
			Prompt:     "Pick the right answer",
			OrderIndex: i,
		}
		require.NoError(t, db.Create(&question).Error)

		row := make([]courseModels.QuizOption, 0, 3)
		for j := 0; j < 3; j++ {
			option := courseModels.QuizOption{
				QuestionID: question.ID,
				OptionText: "Option",
				IsCorrect:  j == 0,
				OrderIndex: j,
			}
			require.NoError(t, db.Create(&option).Error)
			row = append(row, option)
		}
		options = append(options, row)
	}

	return &quiz, options
}

func attemptApp(userID uint, quizID int, selected []uint) *fiber.App {
	return testApp(userID, map[string]interface{}{
		"quizID": quizID,
		"validatedQuizAttempt": &struct {
			SelectedOptionIDs []uint `json:"selected_option_ids"`
		}{SelectedOptionIDs: selected},
	}, SubmitQuizAttempt)
}

func TestSubmitQuizAttemptScoring(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	student := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	lesson := seedLesson(t, course.ID, 1, true)
	seedEnrollment(t, student.ID, course.ID)
	quiz, options := seedQuiz(t, lesson)

	// One correct and one wrong pick scores 1 of 2
	selected := []uint{options[0][0].ID, options[1][2].ID}
	status, _ := doRequest(t, attemptApp(student.ID, int(quiz.ID), selected), "POST")
	assert.Equal(t, fiber.StatusOK, status)

	var attempt courseModels.QuizAttempt
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND quiz_id = ?", student.ID, quiz.ID).
		Order("attempt_number desc").First(&attempt).Error)
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 2, attempt.MaxScore)
	assert.Equal(t, 1, attempt.AttemptNumber)

	// Second try with both correct scores full and bumps the attempt number
	selected = []uint{options[0][0].ID, options[1][0].ID}
	status, _ = doRequest(t, attemptApp(student.ID, int(quiz.ID), selected), "POST")
	assert.Equal(t, fiber.StatusOK, status)

	attempt = courseModels.QuizAttempt{}
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND quiz_id = ?", student.ID, quiz.ID).
		Order("attempt_number desc").First(&attempt).Error)
	assert.Equal(t, 2, attempt.Score)
	assert.Equal(t, 2, attempt.AttemptNumber)
}

func TestSubmitQuizAttemptRequiresEnrollment(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	outsider := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	lesson := seedLesson(t, course.ID, 1, true)
	quiz, options := seedQuiz(t, lesson)

	status, _ := doRequest(t, attemptApp(outsider.ID, int(quiz.ID), []uint{options[0][0].ID}), "POST")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestGetLessonQuizHidesAnswers(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	student := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	lesson := seedLesson(t, course.ID, 1, true)
	seedEnrollment(t, student.ID, course.ID)
	seedQuiz(t, lesson)

	app := testApp(student.ID, map[string]interface{}{"lessonID": int(lesson.ID)}, GetLessonQuiz)
	status, env := doRequest(t, app, "GET")
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotContains(t, string(env.Data), `"is_correct":true`)
}
