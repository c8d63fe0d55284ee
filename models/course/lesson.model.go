package course

import "gorm.io/gorm"

// Lesson is a single video lesson within a course
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	VideoURL    string `json:"video_url"`
	DurationSec int    `json:"duration_sec" gorm:"default:0"`
	IsPreview   bool   `json:"is_preview" gorm:"default:false"` // viewable without enrollment
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
