package controllers

import (
	"techgetafrica/constants"
	"techgetafrica/database"
	"techgetafrica/middleware"
	"techgetafrica/models"
	courseModels "techgetafrica/models/course"
	"techgetafrica/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse handles free enrollment. Paid courses must go through the
// payment flow; this endpoint rejects them.
func EnrollInCourse(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, courseModels.CoursePublished).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	if !course.IsFree() {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "This course is paid. Use the payment flow to enroll.", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:        user.ID,
		CourseID:      uint(courseID),
		Status:        courseModels.EnrollmentActive,
		PaymentStatus: courseModels.EnrollmentFree,
	}

	// Unique (user_id, course_id) backs idempotency under concurrent
	// double submission.
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	// First enrollment promotes a plain USER to STUDENT
	if user.Role == constants.RoleUser {
		database.Database.Db.Model(&models.User{}).Where("id = ?", user.ID).Update("role", constants.RoleStudent)
	}

	utils.NotifySystem(user.ID, "COURSE", "ENROLLMENT", "Enrollment confirmed",
		"You are now enrolled in "+course.Title, map[string]interface{}{"course_id": course.ID})
	utils.SendEmailAsync(user.Email, user.Name, "Course Enrollment Confirmation",
		utils.EnrollmentEmailBody(user.Name, course.Title))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the caller's enrollments
func GetEnrollments(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollmentList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", user.ID, false)

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	response := map[string]interface{}{
		"enrollments": enrollments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}
