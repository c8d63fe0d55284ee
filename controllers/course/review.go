package controllers

import (
	"techgetafrica/constants"
	"techgetafrica/database"
	"techgetafrica/middleware"
	courseModels "techgetafrica/models/course"
	"techgetafrica/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateReview submits a review for an enrolled course. One review per
// (user, course).
func CreateReview(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, courseModels.CoursePublished).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Only enrolled users can review
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var existing courseModels.Review
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	review := courseModels.Review{
		UserID:   user.ID,
		CourseID: uint(courseID),
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	recomputeCourseRating(uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// UpdateReview edits the caller's own review
func UpdateReview(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID := c.Locals("reviewID").(int)

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var review courseModels.Review
	if err := db.Where("id = ? AND is_deleted = ?", reviewID, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if review.UserID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only edit your own review!", nil)
	}

	review.Rating = reqData.Rating
	review.Comment = reqData.Comment
	if err := db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	recomputeCourseRating(review.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}

// GetCourseReviews lists reviews for a course
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&courseModels.Review{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&total)

	var reviews []courseModels.Review
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("helpful_count desc, created_at desc").
		Offset(offset).Limit(limit).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// VoteReview toggles the caller's helpful/unhelpful vote on a review.
// No prior vote creates one; a same-type vote removes it; an opposite-type
// vote switches it. Counters move with the vote inside one transaction.
func VoteReview(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID := c.Locals("reviewID").(int)
	voteType := c.Locals("voteType").(string)

	db := database.Database.Db

	var review courseModels.Review
	if err := db.Where("id = ? AND is_deleted = ?", reviewID, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if review.UserID == user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot vote on your own review!", nil)
	}

	counterColumn := map[string]string{
		courseModels.VoteHelpful:   "helpful_count",
		courseModels.VoteUnhelpful: "unhelpful_count",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var vote courseModels.ReviewVote
		findErr := tx.Where("user_id = ? AND review_id = ?", user.ID, reviewID).First(&vote).Error

		switch {
		case findErr == gorm.ErrRecordNotFound:
			// First vote
			vote = courseModels.ReviewVote{
				UserID:   user.ID,
				ReviewID: uint(reviewID),
				VoteType: voteType,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			return tx.Model(&courseModels.Review{}).Where("id = ?", reviewID).
				Update(counterColumn[voteType], gorm.Expr(counterColumn[voteType]+" + 1")).Error

		case findErr != nil:
			return findErr

		case vote.VoteType == voteType:
			// Same vote again removes it
			if err := tx.Unscoped().Delete(&vote).Error; err != nil {
				return err
			}
			return tx.Model(&courseModels.Review{}).Where("id = ?", reviewID).
				Update(counterColumn[voteType], gorm.Expr(counterColumn[voteType]+" - 1")).Error

		default:
			// Switch sides
			oldType := vote.VoteType
			vote.VoteType = voteType
			if err := tx.Save(&vote).Error; err != nil {
				return err
			}
			if err := tx.Model(&courseModels.Review{}).Where("id = ?", reviewID).
				Update(counterColumn[oldType], gorm.Expr(counterColumn[oldType]+" - 1")).Error; err != nil {
				return err
			}
			return tx.Model(&courseModels.Review{}).Where("id = ?", reviewID).
				Update(counterColumn[voteType], gorm.Expr(counterColumn[voteType]+" + 1")).Error
		}
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record vote!", nil)
	}

	db.Where("id = ?", reviewID).First(&review)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vote recorded successfully!", review)
}

// ReportReview flags a review for moderation. One report per (user,
// review); the review stays visible.
func ReportReview(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID := c.Locals("reviewID").(int)

	reqData, ok := c.Locals("validatedReport").(*struct {
		Reason string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var review courseModels.Review
	if err := db.Where("id = ? AND is_deleted = ?", reviewID, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if review.UserID == user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot report your own review!", nil)
	}

	var existing courseModels.ReviewReport
	if err := db.Where("user_id = ? AND review_id = ?", user.ID, reviewID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reported this review!", nil)
	}

	report := courseModels.ReviewReport{
		UserID:   user.ID,
		ReviewID: uint(reviewID),
		Reason:   reqData.Reason,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Review{}).Where("id = ?", reviewID).
			Update("is_reported", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reported this review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review reported successfully!", report)
}

// DeleteReview removes a review. Allowed for the author or an admin; votes
// and reports cascade inside the transaction, then the course rating is
// recomputed.
func DeleteReview(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID := c.Locals("reviewID").(int)

	db := database.Database.Db

	var review courseModels.Review
	if err := db.Where("id = ? AND is_deleted = ?", reviewID, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if review.UserID != user.ID && !constants.HasPermission(user.Role, constants.RoleAdmin) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own review!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("review_id = ?", reviewID).Delete(&courseModels.ReviewVote{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("review_id = ?", reviewID).Delete(&courseModels.ReviewReport{}).Error; err != nil {
			return err
		}
		// Hard delete so the (user_id, course_id) unique index frees up
		// and the author can review the course again later
		return tx.Unscoped().Where("id = ?", reviewID).
			Delete(&courseModels.Review{}).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	recomputeCourseRating(review.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}

// recomputeCourseRating refreshes the course's derived rating statistics
// from its live reviews.
func recomputeCourseRating(courseID uint) {
	db := database.Database.Db

	var stats struct {
		Avg   float64
		Count int64
	}
	db.Model(&courseModels.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Scan(&stats)

	db.Model(&courseModels.Course{}).Where("id = ?", courseID).
		Updates(map[string]interface{}{
			"average_rating": utils.RoundRating(stats.Avg),
			"total_reviews":  stats.Count,
		})
}
