package controllers

import (
	"techgetafrica/constants"
	"techgetafrica/database"
	"techgetafrica/middleware"
	"techgetafrica/models"
	courseModels "techgetafrica/models/course"

	"github.com/gofiber/fiber/v2"
)

// canManageCourse reports whether the user owns the course or is an admin
func canManageCourse(user *models.User, course *courseModels.Course) bool {
	return course.InstructorID == user.ID || constants.HasPermission(user.Role, constants.RoleAdmin)
}

// loadManagedCourse fetches the course and enforces ownership. Returns a
// response already written on failure.
func loadManagedCourse(c *fiber.Ctx, courseID int) (*models.User, *courseModels.Course, error) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !canManageCourse(user, &course) {
		return nil, nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage your own courses!", nil)
	}

	return user, &course, nil
}

func CreateCourse(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Price       int64  `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		InstructorID: user.ID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Price:        reqData.Price,
		Status:       courseModels.CourseDraft,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	_, course, err := loadManagedCourse(c, courseID)
	if err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Price       *int64  `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func PublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	_, course, err := loadManagedCourse(c, courseID)
	if err != nil {
		return err
	}

	var publishedLessons int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", course.ID, false, true).
		Count(&publishedLessons)
	if publishedLessons == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course needs at least one published lesson!", nil)
	}

	course.Status = courseModels.CoursePublished
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

func ArchiveCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	_, course, err := loadManagedCourse(c, courseID)
	if err != nil {
		return err
	}

	course.Status = courseModels.CourseArchived
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to archive course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course archived successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	_, course, err := loadManagedCourse(c, courseID)
	if err != nil {
		return err
	}

	var enrollments int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&enrollments)
	if enrollments > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course has enrollments and cannot be deleted. Archive it instead.", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetMyCourses lists the instructor's own courses with enrollment counts
func GetMyCourses(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type courseStats struct {
		courseModels.Course
		Enrollments int64 `json:"enrollments"`
	}

	result := make([]courseStats, len(courses))
	for i, crs := range courses {
		result[i].Course = crs
		database.Database.Db.Model(&courseModels.Enrollment{}).
			Where("course_id = ? AND is_deleted = ?", crs.ID, false).
			Count(&result[i].Enrollments)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetInstructorDashboard aggregates stats over the instructor's courses
func GetInstructorDashboard(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courseIDs []uint
	db.Model(&courseModels.Course{}).Where("instructor_id = ? AND is_deleted = ?", user.ID, false).
		Pluck("id", &courseIDs)

	var totalEnrollments, completedEnrollments, totalReviews int64
	if len(courseIDs) > 0 {
		db.Model(&courseModels.Enrollment{}).Where("course_id IN ? AND is_deleted = ?", courseIDs, false).
			Count(&totalEnrollments)
		db.Model(&courseModels.Enrollment{}).Where("course_id IN ? AND status = ? AND is_deleted = ?", courseIDs, courseModels.EnrollmentCompleted, false).
			Count(&completedEnrollments)
		db.Model(&courseModels.Review{}).Where("course_id IN ? AND is_deleted = ?", courseIDs, false).
			Count(&totalReviews)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_courses":         len(courseIDs),
		"total_enrollments":     totalEnrollments,
		"completed_enrollments": completedEnrollments,
		"total_reviews":         totalReviews,
	})
}
