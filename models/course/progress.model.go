package course

import (
	"time"

	"gorm.io/gorm"
)

// CompletionThreshold is the watch percentage at which a lesson counts as
// completed.
const CompletionThreshold = 90.0

// LessonProgress tracks a user's watch state for one lesson. One row per
// (user, lesson); completion is a one-way transition.
type LessonProgress struct {
	gorm.Model
	UserID          uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID        uint       `json:"lesson_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	CourseID        uint       `json:"course_id" gorm:"index;not null"`
	WatchPercentage float64    `json:"watch_percentage" gorm:"default:0"`
	LastPositionSec int        `json:"last_position_sec" gorm:"default:0"`
	TimeSpentSec    int        `json:"time_spent_sec" gorm:"default:0"`
	IsCompleted     bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt     *time.Time `json:"completed_at"`
	IsDeleted       bool       `gorm:"default:false"`
}
