package course

import "gorm.io/gorm"

// Review vote types
const (
	VoteHelpful   = "HELPFUL"
	VoteUnhelpful = "UNHELPFUL"
)

// Review is one user's rating of a course. One row per (user, course).
type Review struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_review_user_course"`
	CourseID       uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_review_user_course"`
	Rating         int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment        string `json:"comment" gorm:"type:text;default:''"`
	HelpfulCount   int    `json:"helpful_count" gorm:"default:0"`
	UnhelpfulCount int    `json:"unhelpful_count" gorm:"default:0"`
	IsReported     bool   `json:"is_reported" gorm:"default:false"`
	IsDeleted      bool   `gorm:"default:false"`
}

// ReviewVote is one user's helpful/unhelpful vote on a review. At most one
// row per (user, review); its existence and type drive the review counters.
type ReviewVote struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_vote_user_review"`
	ReviewID uint   `json:"review_id" gorm:"not null;uniqueIndex:idx_vote_user_review"`
	VoteType string `json:"vote_type" gorm:"not null"` // HELPFUL, UNHELPFUL
}

// ReviewReport flags a review for moderation. One row per (user, review);
// reporting never removes or hides the review.
type ReviewReport struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_report_user_review"`
	ReviewID uint   `json:"review_id" gorm:"not null;uniqueIndex:idx_report_user_review"`
	Reason   string `json:"reason" gorm:"type:text"`
}
