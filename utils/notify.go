package utils

import (
	"encoding/json"

	"techgetafrica/database"
	"techgetafrica/models"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// NotifyUser creates an in-app notification. Failures are logged and
// swallowed; notifications are best-effort and never fail a request.
func NotifyUser(userID uint, senderID *uint, notifType, category, priority, title, message string, payload map[string]interface{}) {
	var raw datatypes.JSON
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			raw = datatypes.JSON(b)
		}
	}

	notification := models.Notification{
		UserID:   userID,
		SenderID: senderID,
		Type:     notifType,
		Category: category,
		Priority: priority,
		Title:    title,
		Message:  message,
		Payload:  raw,
	}

	if err := database.Database.Db.Create(&notification).Error; err != nil {
		logrus.Errorf("failed to create notification for user %d: %v", userID, err)
	}
}

// NotifySystem creates a system-generated notification with normal priority
func NotifySystem(userID uint, notifType, category, title, message string, payload map[string]interface{}) {
	NotifyUser(userID, nil, notifType, category, "NORMAL", title, message, payload)
}
