package utils

import (
	"time"

	"techgetafrica/database"
	"techgetafrica/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartSchedulers registers the background cron jobs and starts the cron
// runner. Jobs are best-effort; a failed run waits for the next tick.
func StartSchedulers() *cron.Cron {
	c := cron.New()

	// Expire learning streaks shortly after midnight
	c.AddFunc("15 0 * * *", ExpireStaleStreaks)

	c.Start()
	logrus.Info("Schedulers started")
	return c
}

// ExpireStaleStreaks resets the streak of every user whose last activity
// was before yesterday. Run daily.
func ExpireStaleStreaks() {
	cutoff := now.BeginningOfDay().AddDate(0, 0, -1)

	result := database.Database.Db.Model(&models.User{}).
		Where("streak_days > 0 AND (last_activity_at IS NULL OR last_activity_at < ?)", cutoff).
		Update("streak_days", 0)
	if result.Error != nil {
		logrus.Errorf("streak expiry failed: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		logrus.Infof("streak expiry reset %d users", result.RowsAffected)
	}
}

// TouchDailyActivity bumps a user's streak and activity timestamp. The
// streak increments only on the first activity of a calendar day.
func TouchDailyActivity(user *models.User, points int) {
	today := now.BeginningOfDay()
	nowTime := time.Now()

	if user.LastActivityAt == nil || user.LastActivityAt.Before(today) {
		user.StreakDays++
	}
	user.LastActivityAt = &nowTime
	user.Points += points

	database.Database.Db.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"streak_days":      user.StreakDays,
			"last_activity_at": user.LastActivityAt,
			"points":           user.Points,
		})
}
