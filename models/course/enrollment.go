package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment payment statuses
const (
	EnrollmentFree        = "FREE"
	EnrollmentPaymentPaid = "PAID"
)

// Enrollment statuses
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
)

// Enrollment tracks a user's enrollment in a course with progress.
// Progress is derived from lesson completions and never set by clients.
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID         uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Status           string     `json:"status" gorm:"default:'ACTIVE'"`        // ACTIVE, COMPLETED
	PaymentStatus    string     `json:"payment_status" gorm:"default:'FREE'"`  // FREE, PAID
	Progress         float64    `json:"progress" gorm:"default:0"`             // completion percentage (0-100)
	CompletedLessons int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons     int        `json:"total_lessons" gorm:"default:0"`
	LastAccessedAt   *time.Time `json:"last_accessed_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	IsDeleted        bool       `gorm:"default:false"`
}
