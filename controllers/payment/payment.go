package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"techgetafrica/constants"
	"techgetafrica/database"
	"techgetafrica/middleware"
	"techgetafrica/models"
	courseModels "techgetafrica/models/course"
	"techgetafrica/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InitializeCoursePayment starts the paid enrollment flow: it creates a
// PENDING payment row and asks the gateway for an authorization URL.
func InitializeCoursePayment(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, courseModels.CoursePublished).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	if course.IsFree() {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "This course is free. Use the enroll endpoint.", nil)
	}

	var existingEnrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	payment := models.Payment{
		UserID:    user.ID,
		CourseID:  uint(courseID),
		Reference: utils.GeneratePaymentReference(),
		Amount:    course.Price,
		Status:    models.PaymentPending,
	}

	if err := db.Create(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	initResp, err := utils.InitializePaystackTransaction(user.Email, course.Price, payment.Reference)
	if err != nil {
		logrus.Errorf("payment init failed for %s: %v", payment.Reference, err)
		db.Model(&payment).Update("status", models.PaymentFailed)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to initialize payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment initialized successfully!", fiber.Map{
		"reference":         payment.Reference,
		"authorization_url": initResp.Data.AuthorizationURL,
		"access_code":       initResp.Data.AccessCode,
		"amount":            payment.Amount,
	})
}

// paystackEvent is the webhook body shape we consume
type paystackEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
		Channel   string `json:"channel"`
		ID        int64  `json:"id"`
	} `json:"data"`
}

// PaystackWebhook confirms a transaction. The signature header is an
// HMAC-SHA512 of the raw body; events replayed for an already-PAID
// reference are acknowledged without side effects.
func PaystackWebhook(c *fiber.Ctx) error {
	body := c.Body()

	if !utils.VerifyPaystackSignature(body, c.Get("x-paystack-signature")) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid signature!", nil)
	}

	var event paystackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid event body!", nil)
	}

	if event.Event != "charge.success" || event.Data.Status != "success" {
		// Acknowledge everything else without acting
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event ignored.", nil)
	}

	if err := ConfirmPayment(event.Data.Reference, event.Data.Channel, event.Data.ID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unknown payment reference!", nil)
		}
		logrus.Errorf("payment confirmation failed for %s: %v", event.Data.Reference, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed.", nil)
}

// VerifyCoursePayment lets the client confirm a pending payment after the
// gateway redirect, by asking the gateway directly.
func VerifyCoursePayment(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reference := c.Params("reference")

	var payment models.Payment
	if err := database.Database.Db.Where("reference = ? AND user_id = ? AND is_deleted = ?", reference, user.ID, false).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	if payment.Status == models.PaymentPaid {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment already confirmed.", payment)
	}

	verifyResp, err := utils.VerifyPaystackTransaction(reference)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify payment!", nil)
	}

	if verifyResp.Data.Status != "success" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment not completed yet.", payment)
	}

	if err := ConfirmPayment(reference, verifyResp.Data.Channel, verifyResp.Data.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to confirm payment!", nil)
	}

	database.Database.Db.Where("reference = ?", reference).First(&payment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed.", payment)
}

// ListMyPayments lists the caller's payments
func ListMyPayments(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}

// ConfirmPayment transitions a payment PENDING -> PAID once and creates
// the enrollment. Safe to call again for the same reference; replays are
// no-ops.
func ConfirmPayment(reference, channel string, gatewayID int64) error {
	db := database.Database.Db

	return db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.Where("reference = ? AND is_deleted = ?", reference, false).First(&payment).Error; err != nil {
			return err
		}

		if payment.Status == models.PaymentPaid {
			return nil
		}

		now := time.Now()
		payment.Status = models.PaymentPaid
		payment.Channel = channel
		if gatewayID != 0 {
			payment.GatewayRef = strconv.FormatInt(gatewayID, 10)
		}
		payment.PaidAt = &now
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		// Enrollment may already exist if both webhook and client verify
		// raced; the unique key keeps it single.
		var enrollment courseModels.Enrollment
		if err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = ?", payment.UserID, payment.CourseID, false).First(&enrollment).Error; err == nil {
			return nil
		}

		enrollment = courseModels.Enrollment{
			UserID:        payment.UserID,
			CourseID:      payment.CourseID,
			Status:        courseModels.EnrollmentActive,
			PaymentStatus: courseModels.EnrollmentPaymentPaid,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.Where("id = ?", payment.UserID).First(&user).Error; err == nil {
			if user.Role == constants.RoleUser {
				tx.Model(&models.User{}).Where("id = ?", user.ID).Update("role", constants.RoleStudent)
			}

			var course courseModels.Course
			if err := tx.Where("id = ?", payment.CourseID).First(&course).Error; err == nil {
				utils.NotifySystem(user.ID, "PAYMENT", "ENROLLMENT", "Payment received",
					"Your payment for "+course.Title+" was confirmed.", map[string]interface{}{
						"course_id": course.ID,
						"reference": payment.Reference,
					})
				utils.SendEmailAsync(user.Email, user.Name, "Course Enrollment Confirmation",
					utils.EnrollmentEmailBody(user.Name, course.Title))
			}
		}

		return nil
	})
}
