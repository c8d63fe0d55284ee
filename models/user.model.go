package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Mobile              string `gorm:"default:''"`
	Role                string `gorm:"default:'USER'"` // USER, STUDENT, INSTRUCTOR, ADMIN
	Password            string `gorm:"not null"`
	Bio                 string `gorm:"type:text;default:''"`
	AvatarURL           string `gorm:"default:''"`
	Points              int    `gorm:"default:0"`
	StreakDays          int    `gorm:"default:0"`
	LastActivityAt      *time.Time
	IsEmailVerified     bool `gorm:"default:false"`
	FailedLoginAttempts int  `gorm:"default:0"`
	LastFailedLogin     *time.Time
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	LastLogin           time.Time  `gorm:"default:NULL"`
	IsDeleted           bool       `gorm:"default:false"`
}
