package controllers

import (
	"time"

	"techgetafrica/constants"
	"techgetafrica/database"
	"techgetafrica/middleware"
	"techgetafrica/models"
	courseModels "techgetafrica/models/course"
	"techgetafrica/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAdminDashboard returns platform-wide stats for admins
func GetAdminDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)

	usersByRole := make(map[string]int64)
	for _, role := range []string{constants.RoleUser, constants.RoleStudent, constants.RoleInstructor, constants.RoleAdmin} {
		var count int64
		db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", role, false).Count(&count)
		usersByRole[role] = count
	}

	var totalCourses, publishedCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).
		Where("status = ? AND is_deleted = ?", courseModels.CoursePublished, false).
		Count(&publishedCourses)

	var totalEnrollments, completedEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).
		Where("status = ? AND is_deleted = ?", courseModels.EnrollmentCompleted, false).
		Count(&completedEnrollments)

	var totalRevenue int64
	db.Model(&models.Payment{}).
		Where("status = ? AND is_deleted = ?", models.PaymentPaid, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue)

	var pendingCertificates int64
	db.Model(&courseModels.CertificateRequest{}).
		Where("status = ? AND is_deleted = ?", "PENDING", false).
		Count(&pendingCertificates)

	var reportedReviews int64
	db.Model(&courseModels.Review{}).
		Where("is_reported = ? AND is_deleted = ?", true, false).
		Count(&reportedReviews)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"users": fiber.Map{
			"total":   totalUsers,
			"by_role": usersByRole,
		},
		"courses": fiber.Map{
			"total":     totalCourses,
			"published": publishedCourses,
		},
		"enrollments": fiber.Map{
			"total":     totalEnrollments,
			"completed": completedEnrollments,
		},
		"revenue":              totalRevenue,
		"pending_certificates": pendingCertificates,
		"reported_reviews":     reportedReviews,
	})
}

// GetUserList lists platform users with optional role filter and search
func GetUserList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	if role := c.Query("role"); role != "" {
		db = db.Where("role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		db = db.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ChangeUserRole updates a user's role. Only admins can grant or revoke
// the ADMIN role, and an admin cannot demote themselves.
func ChangeUserRole(c *fiber.Ctx) error {
	admin, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	userID := c.Locals("targetUserID").(int)

	reqData, ok := c.Locals("validatedRoleChange").(*struct {
		Role string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !constants.IsValidRole(reqData.Role) {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Unknown role!", nil)
	}

	if uint(userID) == admin.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot change your own role!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	oldRole := user.Role
	user.Role = reqData.Role
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	utils.NotifySystem(user.ID, "ROLE_CHANGED", "ACCOUNT", "Your role was updated",
		"Your account role is now "+user.Role+".",
		map[string]interface{}{"old_role": oldRole, "new_role": user.Role})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", user)
}

// BlockUser toggles the manual block flag on an account
func BlockUser(c *fiber.Ctx) error {
	admin, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	userID := c.Locals("targetUserID").(int)

	if uint(userID) == admin.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot block your own account!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsBlocked = !user.IsBlocked
	if !user.IsBlocked {
		user.BlockedUntil = nil
		user.FailedLoginAttempts = 0
	}
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	message := "User unblocked successfully!"
	if user.IsBlocked {
		message = "User blocked successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, user)
}

// GetPendingCertificateRequests lists certificate requests awaiting review
func GetPendingCertificateRequests(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.CertificateRequest{}).
		Where("status = ? AND is_deleted = ?", "PENDING", false)

	var total int64
	db.Count(&total)

	var requests []courseModels.CertificateRequest
	if err := db.Offset(offset).Limit(limit).Order("requested_at asc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate requests fetched successfully!", fiber.Map{
		"requests": requests,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ApproveCertificateRequest approves a pending request and issues the
// certificate with a snapshot of the course title.
func ApproveCertificateRequest(c *fiber.Ctx) error {
	admin, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID := c.Locals("requestID").(int)
	db := database.Database.Db

	var request courseModels.CertificateRequest
	if err := db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Request has already been reviewed!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ?", request.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	now := time.Now()
	certificate := courseModels.Certificate{
		UserID:            request.UserID,
		CourseID:          request.CourseID,
		CourseTitle:       course.Title,
		CertificateNumber: utils.GenerateCertificateNumber(),
		IssuedAt:          now,
	}

	request.Status = "APPROVED"
	request.ReviewedAt = &now
	request.ReviewedBy = &admin.ID

	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&certificate).Error; err != nil {
			return err
		}
		return tx.Save(&request).Error
	}); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	utils.NotifySystem(request.UserID, "CERTIFICATE_ISSUED", "CERTIFICATE", "Certificate issued",
		"Your certificate for "+course.Title+" has been issued.",
		map[string]interface{}{"certificate_id": certificate.ID, "certificate_number": certificate.CertificateNumber})

	var student models.User
	if err := db.Where("id = ?", request.UserID).First(&student).Error; err == nil {
		utils.SendEmailAsync(student.Email, student.Name, "Your certificate is ready",
			utils.CertificateEmailBody(student.Name, course.Title, certificate.CertificateNumber))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", certificate)
}

// RejectCertificateRequest rejects a pending request with a reason
func RejectCertificateRequest(c *fiber.Ctx) error {
	admin, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID := c.Locals("requestID").(int)

	reqData, ok := c.Locals("validatedRejection").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Request has already been reviewed!", nil)
	}

	now := time.Now()
	request.Status = "REJECTED"
	request.ReviewedAt = &now
	request.ReviewedBy = &admin.ID
	request.RejectionReason = reqData.Reason
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update request!", nil)
	}

	utils.NotifySystem(request.UserID, "CERTIFICATE_REJECTED", "CERTIFICATE", "Certificate request rejected",
		"Your certificate request was rejected: "+reqData.Reason,
		map[string]interface{}{"request_id": request.ID})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request rejected!", request)
}

// GetReportedReviews lists reviews flagged by students for moderation
func GetReportedReviews(c *fiber.Ctx) error {
	var reviews []courseModels.Review
	if err := database.Database.Db.
		Where("is_reported = ? AND is_deleted = ?", true, false).
		Order("updated_at desc").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reported reviews fetched successfully!", reviews)
}
