package controllers

import (
	"encoding/json"

	"techgetafrica/database"
	"techgetafrica/middleware"
	courseModels "techgetafrica/models/course"

	"github.com/gofiber/fiber/v2"
)

// QuestionWithOptions is a question and its options with correct flags
// stripped for students
type QuestionWithOptions struct {
	courseModels.QuizQuestion
	Options []courseModels.QuizOption `json:"options"`
}

// GetLessonQuiz returns the published quiz for a lesson. Correct answers
// are never exposed to students.
func GetLessonQuiz(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("lesson_id = ? AND is_deleted = ? AND is_published = ?", lessonID, false, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, quiz.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var questions []courseModels.QuizQuestion
	db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Order("order_index asc").Find(&questions)

	result := make([]QuestionWithOptions, len(questions))
	for i, q := range questions {
		result[i].QuizQuestion = q

		var options []courseModels.QuizOption
		db.Where("question_id = ? AND is_deleted = ?", q.ID, false).Order("order_index asc").Find(&options)
		// Hide answers from students
		for j := range options {
			options[j].IsCorrect = false
		}
		result[i].Options = options
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": result,
	})
}

// SubmitQuizAttempt scores the submitted option IDs server-side and
// records the attempt.
func SubmitQuizAttempt(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuizAttempt").(*struct {
		SelectedOptionIDs []uint `json:"selected_option_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", quizID, false, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, quiz.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var questions []courseModels.QuizQuestion
	db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Find(&questions)
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz has no questions!", nil)
	}

	selected := make(map[uint]bool, len(reqData.SelectedOptionIDs))
	for _, id := range reqData.SelectedOptionIDs {
		selected[id] = true
	}

	// One point per question whose correct option was selected
	score := 0
	for _, q := range questions {
		var correct []courseModels.QuizOption
		db.Where("question_id = ? AND is_correct = ? AND is_deleted = ?", q.ID, true, false).Find(&correct)
		for _, opt := range correct {
			if selected[opt.ID] {
				score++
				break
			}
		}
	}

	var attemptCount int64
	db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", user.ID, quiz.ID, false).
		Count(&attemptCount)

	selectedJSON, _ := json.Marshal(reqData.SelectedOptionIDs)

	attempt := courseModels.QuizAttempt{
		UserID:          user.ID,
		QuizID:          quiz.ID,
		SelectedOptions: string(selectedJSON),
		Score:           score,
		MaxScore:        len(questions),
		AttemptNumber:   int(attemptCount) + 1,
	}

	if err := db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", attempt)
}

// CreateQuiz creates a quiz on a lesson of an owned course
func CreateQuiz(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	_, course, err := loadManagedCourse(c, courseID)
	if err != nil {
		return err
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, course.ID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var existing courseModels.Quiz
	if err := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already has a quiz!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		Title string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := courseModels.Quiz{
		LessonID: lesson.ID,
		CourseID: course.ID,
		Title:    reqData.Title,
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AddQuizQuestion adds a question with its options to an owned quiz
func AddQuizQuestion(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	_, _, err := loadManagedCourse(c, int(quiz.CourseID))
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedQuizQuestion").(*struct {
		Prompt     string `json:"prompt"`
		OrderIndex int    `json:"order_index"`
		Options    []struct {
			OptionText string `json:"option_text"`
			IsCorrect  bool   `json:"is_correct"`
		} `json:"options"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question := courseModels.QuizQuestion{
		QuizID:     quiz.ID,
		Prompt:     reqData.Prompt,
		OrderIndex: reqData.OrderIndex,
	}

	db := database.Database.Db
	if err := db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	for i, opt := range reqData.Options {
		option := courseModels.QuizOption{
			QuestionID: question.ID,
			OptionText: opt.OptionText,
			IsCorrect:  opt.IsCorrect,
			OrderIndex: i,
		}
		db.Create(&option)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

// PublishQuiz makes a quiz available to students
func PublishQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	_, _, err := loadManagedCourse(c, int(quiz.CourseID))
	if err != nil {
		return err
	}

	var questions int64
	database.Database.Db.Model(&courseModels.QuizQuestion{}).
		Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Count(&questions)
	if questions == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz needs at least one question!", nil)
	}

	quiz.IsPublished = true
	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz published successfully!", quiz)
}
