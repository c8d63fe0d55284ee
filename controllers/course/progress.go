package controllers

import (
	"time"

	"techgetafrica/database"
	"techgetafrica/middleware"
	courseModels "techgetafrica/models/course"
	"techgetafrica/utils"

	"github.com/gofiber/fiber/v2"
)

// RecordLessonProgress upserts the caller's watch state for a lesson.
// Completion flips true exactly once when the watch percentage reaches the
// threshold; later reports never flip it back.
func RecordLessonProgress(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		PositionSec     int     `json:"position_sec"`
		WatchPercentage float64 `json:"watch_percentage"`
		TimeSpentSec    int     `json:"time_spent_sec"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", lessonID, false, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, lesson.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	progress, completedNow, err := upsertLessonProgress(user.ID, &lesson, reqData.PositionSec, reqData.WatchPercentage, reqData.TimeSpentSec)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	if completedNow {
		updateEnrollmentProgress(user.ID, lesson.CourseID)
		utils.TouchDailyActivity(user, 10)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress recorded successfully!", progress)
}

// upsertLessonProgress writes the per-lesson progress row and reports
// whether this call completed the lesson.
func upsertLessonProgress(userID uint, lesson *courseModels.Lesson, positionSec int, watchPct float64, timeSpentSec int) (*courseModels.LessonProgress, bool, error) {
	db := database.Database.Db

	var progress courseModels.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.ID, false).First(&progress).Error
	if err != nil {
		progress = courseModels.LessonProgress{
			UserID:   userID,
			LessonID: lesson.ID,
			CourseID: lesson.CourseID,
		}
	}

	progress.LastPositionSec = positionSec
	progress.TimeSpentSec += timeSpentSec
	if watchPct > progress.WatchPercentage {
		progress.WatchPercentage = watchPct
	}

	// One-way transition: a completed lesson never reverts, and the
	// completion timestamp is written only on the first crossing.
	completedNow := false
	if !progress.IsCompleted && watchPct >= courseModels.CompletionThreshold {
		now := time.Now()
		progress.IsCompleted = true
		progress.CompletedAt = &now
		completedNow = true
	}

	if err := db.Save(&progress).Error; err != nil {
		return nil, false, err
	}

	return &progress, completedNow, nil
}

// GetCourseProgress returns the caller's enrollment with per-lesson rows
func GetCourseProgress(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var lessonProgress []courseModels.LessonProgress
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).
		Find(&lessonProgress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"lessons":    lessonProgress,
	})
}

// updateEnrollmentProgress recomputes the derived percentage on the
// enrollment from completed published lessons.
func updateEnrollmentProgress(userID uint, courseID uint) {
	db := database.Database.Db

	var totalLessons int64
	db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Count(&totalLessons)

	var completedLessons int64
	db.Model(&courseModels.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.user_id = ? AND lesson_progresses.course_id = ? AND lesson_progresses.is_completed = ? AND lesson_progresses.is_deleted = ?", userID, courseID, true, false).
		Where("lessons.is_deleted = ? AND lessons.is_published = ?", false, true).
		Count(&completedLessons)

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	now := time.Now()
	enrollment.CompletedLessons = int(completedLessons)
	enrollment.TotalLessons = int(totalLessons)
	enrollment.Progress = utils.RoundProgress(completedLessons, totalLessons)
	enrollment.LastAccessedAt = &now

	if enrollment.Progress >= 100 {
		if enrollment.Status != courseModels.EnrollmentCompleted {
			enrollment.Status = courseModels.EnrollmentCompleted
			enrollment.CompletedAt = &now
		}
	} else {
		enrollment.Status = courseModels.EnrollmentActive
	}

	db.Save(&enrollment)
}

// recomputeCourseEnrollments refreshes every enrollment of a course after
// the published-lesson set changed.
func recomputeCourseEnrollments(courseID uint) {
	var userIDs []uint
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Pluck("user_id", &userIDs)

	for _, userID := range userIDs {
		updateEnrollmentProgress(userID, courseID)
	}
}
