package course

import "gorm.io/gorm"

// Course statuses
const (
	CourseDraft     = "DRAFT"
	CoursePublished = "PUBLISHED"
	CourseArchived  = "ARCHIVED"
)

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	InstructorID  uint    `json:"instructor_id" gorm:"index;not null"`
	Title         string  `json:"title"`
	Description   string  `json:"description" gorm:"type:text"`
	Price         int64   `json:"price" gorm:"default:0"`        // smallest currency unit, 0 = free
	Status        string  `json:"status" gorm:"default:'DRAFT'"` // DRAFT, PUBLISHED, ARCHIVED
	ThumbnailURL  string  `json:"thumbnail_url"`
	AverageRating float64 `json:"average_rating" gorm:"default:0"` // mean of review ratings, 1 decimal
	TotalReviews  int64   `json:"total_reviews" gorm:"default:0"`
	IsDeleted     bool    `gorm:"default:false"`
}

// IsFree reports whether the course can be enrolled without payment.
func (c Course) IsFree() bool {
	return c.Price == 0
}
