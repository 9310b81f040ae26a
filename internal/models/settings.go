package models

import "time"

// Settings stores per-user preferences; one row per user, upsert semantics.
type Settings struct {
	UserEmail          string    `db:"user_email" json:"user"`
	PushNotifications  bool      `db:"push_notifications" json:"pushNotifications"`
	DarkMode           bool      `db:"dark_mode" json:"darkMode"`
	EmailNotifications bool      `db:"email_notifications" json:"emailNotifications"`
	AutoLogout         bool      `db:"auto_logout" json:"autoLogout"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}
