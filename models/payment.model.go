package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentFailed  = "FAILED"
)

// Payment is one gateway transaction for a paid course enrollment. The
// reference is handed to the gateway and is the idempotency key for the
// confirmation webhook.
type Payment struct {
	gorm.Model
	UserID     uint       `json:"user_id" gorm:"index;not null"`
	CourseID   uint       `json:"course_id" gorm:"index;not null"`
	Reference  string     `json:"reference" gorm:"uniqueIndex;not null"`
	Amount     int64      `json:"amount" gorm:"not null"` // smallest currency unit
	Currency   string     `json:"currency" gorm:"default:'NGN'"`
	Status     string     `json:"status" gorm:"default:'PENDING'"` // PENDING, PAID, FAILED
	Channel    string     `json:"channel" gorm:"default:''"`
	GatewayRef string     `json:"gateway_ref" gorm:"default:''"`
	PaidAt     *time.Time `json:"paid_at"`
	IsDeleted  bool       `gorm:"default:false"`
}
