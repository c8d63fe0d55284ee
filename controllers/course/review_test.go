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

func voteApp(userID uint, reviewID int, voteType string) *fiber.App {
	return testApp(userID, map[string]interface{}{
		"reviewID": reviewID,
		"voteType": voteType,
	}, VoteReview)
}

func loadReview(t *testing.T, reviewID uint) courseModels.Review {
	t.Helper()
	var review courseModels.Review
	require.NoError(t, database.Database.Db.Where("id = ?", reviewID).First(&review).Error)
	return review
}

func TestVoteReviewToggle(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	author := seedUser(t, constants.RoleStudent)
	voter := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	review := seedReview(t, author.ID, course.ID, 5)

	// First vote increments
	status, _ := doRequest(t, voteApp(voter.ID, int(review.ID), courseModels.VoteHelpful), "POST")
	assert.Equal(t, fiber.StatusOK, status)

	got := loadReview(t, review.ID)
	assert.Equal(t, 1, got.HelpfulCount)
	assert.Equal(t, 0, got.UnhelpfulCount)

	// Same vote again removes it, net zero
	status, _ = doRequest(t, voteApp(voter.ID, int(review.ID), courseModels.VoteHelpful), "POST")
	assert.Equal(t, fiber.StatusOK, status)

	got = loadReview(t, review.ID)
	assert.Equal(t, 0, got.HelpfulCount)
	assert.Equal(t, 0, got.UnhelpfulCount)

	var votes int64
	database.Database.Db.Model(&courseModels.ReviewVote{}).
		Where("review_id = ?", review.ID).Count(&votes)
	assert.Equal(t, int64(0), votes)
}

func TestVoteReviewSwitchSides(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	author := seedUser(t, constants.RoleStudent)
	voter := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	review := seedReview(t, author.ID, course.ID, 4)

	status, _ := doRequest(t, voteApp(voter.ID, int(review.ID), courseModels.VoteHelpful), "POST")
	assert.Equal(t, fiber.StatusOK, status)

	// Opposite vote moves both counters
	status, _ = doRequest(t, voteApp(voter.ID, int(review.ID), courseModels.VoteUnhelpful), "POST")
	assert.Equal(t, fiber.StatusOK, status)

	got := loadReview(t, review.ID)
	assert.Equal(t, 0, got.HelpfulCount)
	assert.Equal(t, 1, got.UnhelpfulCount)

	// One vote row, switched in place
	var votes []courseModels.ReviewVote
	database.Database.Db.Where("review_id = ?", review.ID).Find(&votes)
	require.Len(t, votes, 1)
	assert.Equal(t, courseModels.VoteUnhelpful, votes[0].VoteType)
}

func TestVoteReviewSelfVoteForbidden(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	author := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	review := seedReview(t, author.ID, course.ID, 5)

	status, env := doRequest(t, voteApp(author.ID, int(review.ID), courseModels.VoteHelpful), "POST")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.False(t, env.Status)

	got := loadReview(t, review.ID)
	assert.Equal(t, 0, got.HelpfulCount)
}

func TestReportReviewFlagsOnce(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	author := seedUser(t, constants.RoleStudent)
	reporter := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	review := seedReview(t, author.ID, course.ID, 1)

	reportApp := func(userID uint) *fiber.App {
		return testApp(userID, map[string]interface{}{
			"reviewID": int(review.ID),
			"validatedReport": &struct {
				Reason string `json:"reason"`
			}{Reason: "Spam content"},
		}, ReportReview)
	}

	status, _ := doRequest(t, reportApp(reporter.ID), "POST")
	assert.Equal(t, fiber.StatusOK, status)

	got := loadReview(t, review.ID)
	assert.True(t, got.IsReported)

	// Second report by the same user conflicts
	status, _ = doRequest(t, reportApp(reporter.ID), "POST")
	assert.Equal(t, fiber.StatusConflict, status)

	// Self-report is forbidden
	status, _ = doRequest(t, reportApp(author.ID), "POST")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestDeleteReviewCascadesAndRecomputes(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	author := seedUser(t, constants.RoleStudent)
	other := seedUser(t, constants.RoleStudent)
	voter := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)

	review := seedReview(t, author.ID, course.ID, 1)
	seedReview(t, other.ID, course.ID, 5)
	recomputeCourseRating(course.ID)

	status, _ := doRequest(t, voteApp(voter.ID, int(review.ID), courseModels.VoteHelpful), "POST")
	require.Equal(t, fiber.StatusOK, status)

	// A stranger cannot delete
	status, _ = doRequest(t, testApp(other.ID, map[string]interface{}{"reviewID": int(review.ID)}, DeleteReview), "DELETE")
	assert.Equal(t, fiber.StatusForbidden, status)

	// The author can
	status, _ = doRequest(t, testApp(author.ID, map[string]interface{}{"reviewID": int(review.ID)}, DeleteReview), "DELETE")
	assert.Equal(t, fiber.StatusOK, status)

	var votes, reports int64
	database.Database.Db.Model(&courseModels.ReviewVote{}).Where("review_id = ?", review.ID).Count(&votes)
	database.Database.Db.Model(&courseModels.ReviewReport{}).Where("review_id = ?", review.ID).Count(&reports)
	assert.Equal(t, int64(0), votes)
	assert.Equal(t, int64(0), reports)

	// Only the remaining review counts toward the rating
	var got courseModels.Course
	require.NoError(t, database.Database.Db.Where("id = ?", course.ID).First(&got).Error)
	assert.Equal(t, 5.0, got.AverageRating)
	assert.Equal(t, int64(1), got.TotalReviews)
}

func TestDeleteReviewAllowsReviewingAgain(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	author := seedUser(t, constants.RoleStudent)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)
	seedEnrollment(t, author.ID, course.ID)
	review := seedReview(t, author.ID, course.ID, 2)

	status, _ := doRequest(t, testApp(author.ID, map[string]interface{}{"reviewID": int(review.ID)}, DeleteReview), "DELETE")
	require.Equal(t, fiber.StatusOK, status)

	// The unique index row is gone, so a fresh review goes through
	app := testApp(author.ID, map[string]interface{}{
		"courseID": int(course.ID),
		"validatedReview": &struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		}{Rating: 4, Comment: "Better on a second pass"},
	}, CreateReview)
	status, _ = doRequest(t, app, "POST")
	assert.Equal(t, fiber.StatusCreated, status)

	var count int64
	database.Database.Db.Model(&courseModels.Review{}).
		Where("user_id = ? AND course_id = ?", author.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecomputeCourseRatingRounding(t *testing.T) {
	setupTestDb(t)

	instructor := seedUser(t, constants.RoleInstructor)
	course := seedCourse(t, instructor.ID, 0, courseModels.CoursePublished)

	for _, rating := range []int{5, 5, 4} {
		student := seedUser(t, constants.RoleStudent)
		seedReview(t, student.ID, course.ID, rating)
	}
	recomputeCourseRating(course.ID)

	var got courseModels.Course
	require.NoError(t, database.Database.Db.Where("id = ?", course.ID).First(&got).Error)
	assert.Equal(t, 4.7, got.AverageRating)
	assert.Equal(t, int64(3), got.TotalReviews)
}
